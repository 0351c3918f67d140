package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vehiclehub/internal/client/api"
	"github.com/dmitrijs2005/vehiclehub/internal/client/models"
)

// ListUsers fetches one page of users and prints it. A zero size uses the
// configured page size.
func (a *App) ListUsers(ctx context.Context, page, size int) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	a.users.FetchList(ctx, page, a.pageSize(size))
	st := a.users.State()
	if st.Error != "" {
		fmt.Fprintf(a.out, "Error: %s\n", st.Error)
		return nil
	}
	printUsers(a.out, st.Items)
	printPagination(a.out, st.Pagination)
	return nil
}

func (a *App) ShowUser(ctx context.Context, key string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	u, ok := a.users.FetchOne(ctx, key)
	if !ok {
		fmt.Fprintf(a.out, "Error: %s\n", a.users.Error())
		return nil
	}
	printUser(a.out, u)
	return nil
}

// AddUser reads name=value fields and creates a user.
func (a *App) AddUser(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	fields, err := a.readFields(ctx)
	if err != nil {
		return err
	}
	payload, err := models.UserFromFields(fields)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	created, err := a.users.Create(ctx, payload)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Message(err))
		return err
	}
	fmt.Fprintf(a.out, "Created user %s\n", created.ResourceKey())
	return nil
}

// EditUser reads name=value fields and sends only those to the server.
func (a *App) EditUser(ctx context.Context, key string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	fields, err := a.readFields(ctx)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}
	if _, err := models.UserFromFields(fields); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	updated, err := a.users.Update(ctx, key, fields)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Message(err))
		return err
	}
	printUser(a.out, updated)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, key string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if err := a.users.Delete(ctx, key); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Message(err))
		return err
	}
	fmt.Fprintf(a.out, "Deleted user %s\n", key)
	return nil
}
