package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/vehiclehub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVehicles_BareArray(t *testing.T) {
	app, out := loggedIn(t, &fakeFleet{}, "")

	require.NoError(t, app.ListVehicles(context.Background(), 1, 5))

	got := out()
	assert.Contains(t, got, "Truck 7")
	assert.Contains(t, got, "Volvo")
	assert.Contains(t, got, "2021")
	assert.Contains(t, got, "ACTIVE")
}

func TestShowVehicle(t *testing.T) {
	app, out := loggedIn(t, &fakeFleet{}, "")

	require.NoError(t, app.ShowVehicle(context.Background(), "v-1"))
	got := out()
	assert.Contains(t, got, "Name: Truck 7")
	assert.Contains(t, got, "Year: 2021")
	assert.NotContains(t, got, "Mileage")
}

func TestAddVehicle(t *testing.T) {
	app, out := loggedIn(t, &fakeFleet{}, "name=Van 2\nyear=2019\nstate=IDLE\nmileage=42\n\n")

	require.NoError(t, app.AddVehicle(context.Background()))

	assert.Contains(t, out(), "Created vehicle v-2")
	items := app.vehicles.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2019, items[0].Year)
	require.NotNil(t, items[0].Status)
	assert.Equal(t, "IDLE", items[0].Status.State)
	assert.Equal(t, int64(42), items[0].Status.Mileage)
}

func TestAddVehicle_BadYear(t *testing.T) {
	app, out := loggedIn(t, &fakeFleet{}, "year=soon\n\n")

	require.ErrorIs(t, app.AddVehicle(context.Background()), common.ErrorInvalidInput)
	assert.Contains(t, out(), `Error: invalid input: year "soon" is not a number`)
	assert.Empty(t, app.vehicles.Items())
}

func TestEditVehicle_OmitsUnsetFields(t *testing.T) {
	f := &fakeFleet{}
	app, out := loggedIn(t, f, "licensePlate=ZZ-999\n\n")

	require.NoError(t, app.EditVehicle(context.Background(), "v-1"))

	assert.Equal(t, map[string]any{"licensePlate": "ZZ-999"}, f.lastPut)
	assert.Contains(t, out(), "Plate: ZZ-999")
}

func TestDeleteVehicle_NotFound(t *testing.T) {
	app, out := loggedIn(t, &fakeFleet{}, "")

	err := app.DeleteVehicle(context.Background(), "v-1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, out(), "Error: not found")
}

func TestEditVehicle_NothingToUpdate(t *testing.T) {
	f := &fakeFleet{}
	app, out := loggedIn(t, f, "\n")

	require.NoError(t, app.EditVehicle(context.Background(), "v-1"))
	assert.Nil(t, f.lastPut)
	assert.Contains(t, out(), "Nothing to update")
}
