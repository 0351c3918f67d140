package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vehiclehub/internal/client/api"
	"github.com/dmitrijs2005/vehiclehub/internal/client/models"
)

// ListVehicles fetches one page of vehicles and prints it. A zero size uses
// the configured page size.
func (a *App) ListVehicles(ctx context.Context, page, size int) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	a.vehicles.FetchList(ctx, page, a.pageSize(size))
	st := a.vehicles.State()
	if st.Error != "" {
		fmt.Fprintf(a.out, "Error: %s\n", st.Error)
		return nil
	}
	printVehicles(a.out, st.Items)
	printPagination(a.out, st.Pagination)
	return nil
}

func (a *App) ShowVehicle(ctx context.Context, key string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	v, ok := a.vehicles.FetchOne(ctx, key)
	if !ok {
		fmt.Fprintf(a.out, "Error: %s\n", a.vehicles.Error())
		return nil
	}
	printVehicle(a.out, v)
	return nil
}

// AddVehicle reads name=value fields and creates a vehicle. "state" and
// "mileage" go into the vehicle's status.
func (a *App) AddVehicle(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	payload, err := a.readVehicle(ctx)
	if err != nil {
		return err
	}

	created, err := a.vehicles.Create(ctx, payload)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Message(err))
		return err
	}
	fmt.Fprintf(a.out, "Created vehicle %s\n", created.ResourceKey())
	return nil
}

// EditVehicle reads name=value fields and sends them as the update. Omitted
// fields are left out of the request body.
func (a *App) EditVehicle(ctx context.Context, key string) error {
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
	payload, err := a.vehicleFromFields(fields)
	if err != nil {
		return err
	}

	updated, err := a.vehicles.Update(ctx, key, payload)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Message(err))
		return err
	}
	printVehicle(a.out, updated)
	return nil
}

func (a *App) DeleteVehicle(ctx context.Context, key string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if err := a.vehicles.Delete(ctx, key); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Message(err))
		return err
	}
	fmt.Fprintf(a.out, "Deleted vehicle %s\n", key)
	return nil
}

func (a *App) readVehicle(ctx context.Context) (models.Vehicle, error) {
	fields, err := a.readFields(ctx)
	if err != nil {
		return models.Vehicle{}, err
	}
	return a.vehicleFromFields(fields)
}

func (a *App) vehicleFromFields(fields map[string]string) (models.Vehicle, error) {
	v, err := models.VehicleFromFields(fields)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return models.Vehicle{}, err
	}
	return v, nil
}
