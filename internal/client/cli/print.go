package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/vehiclehub/internal/client/models"
	"github.com/dmitrijs2005/vehiclehub/internal/client/resource"
)

func (a *App) requireAuth() error {
	if err := a.session.RequireAuth(); err != nil {
		fmt.Fprintln(a.out, "Please log in first")
		return err
	}
	return nil
}

func (a *App) readFields(ctx context.Context) (map[string]string, error) {
	lines, err := getFields(a.reader, a.out)
	if err != nil {
		return nil, err
	}
	fields, err := models.FieldsFromLines(lines)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		a.log.Debug(ctx, "bad field input", "error", err)
		return nil, err
	}
	return fields, nil
}

func printUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLOGIN\tNAME\tTYPE\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ResourceKey(), u.LoginID, u.Name, u.UserType, u.Email)
	}
	_ = tw.Flush()
}

func printUser(w io.Writer, u models.User) {
	fmt.Fprintf(w, "Key: %s\n", u.ResourceKey())
	fmt.Fprintf(w, "Login: %s\n", u.LoginID)
	fmt.Fprintf(w, "Name: %s\n", u.Name)
	fmt.Fprintf(w, "Type: %s\n", u.UserType)
	for _, f := range [][2]string{
		{"Email", u.Email}, {"Phone", u.Phone}, {"Created", u.CreatedAt}, {"Updated", u.UpdatedAt},
	} {
		if f[1] != "" {
			fmt.Fprintf(w, "%s: %s\n", f[0], f[1])
		}
	}
}

func printVehicles(w io.Writer, vehicles []models.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(w, "No vehicles")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tMANUFACTURER\tMODEL\tYEAR\tPLATE\tSTATE")
	for _, v := range vehicles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ResourceKey(), v.Name, v.Manufacturer, v.Model, year(v.Year), v.LicensePlate, vehicleState(v))
	}
	_ = tw.Flush()
}

func printVehicle(w io.Writer, v models.Vehicle) {
	fmt.Fprintf(w, "Key: %s\n", v.ResourceKey())
	fmt.Fprintf(w, "Name: %s\n", v.Name)
	fmt.Fprintf(w, "Manufacturer: %s\n", v.Manufacturer)
	fmt.Fprintf(w, "Model: %s\n", v.Model)
	fmt.Fprintf(w, "Year: %s\n", year(v.Year))
	fmt.Fprintf(w, "Plate: %s\n", v.LicensePlate)
	if v.Status != nil {
		fmt.Fprintf(w, "State: %s\n", v.Status.State)
		fmt.Fprintf(w, "Mileage: %d\n", v.Status.Mileage)
	}
}

func printPagination(w io.Writer, p resource.Pagination) {
	if p.TotalPages == 0 {
		return
	}
	fmt.Fprintf(w, "page %d/%d, %d total\n", p.CurrentPage, p.TotalPages, p.TotalElements)
}

func year(y int) string {
	if y == 0 {
		return "-"
	}
	return strconv.Itoa(y)
}

func vehicleState(v models.Vehicle) string {
	if v.Status == nil || v.Status.State == "" {
		return "-"
	}
	return v.Status.State
}
