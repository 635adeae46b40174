package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetrent-service/internal/domain/vehicle"
)

func TestSeedFleet(t *testing.T) {
	r := NewRegistry()

	all := r.ListAll()
	require.Len(t, all, 20)

	for i, v := range all {
		assert.Equal(t, fmt.Sprintf("V%03d", i+1), v.ID)
	}

	tesla, ok := r.GetByID("V005")
	require.True(t, ok)
	assert.Equal(t, "Tesla Model 3", tesla.Name)
	assert.Equal(t, vehicle.StatusRented, tesla.Status)

	altima, ok := r.GetByID("V013")
	require.True(t, ok)
	assert.Equal(t, vehicle.StatusRented, altima.Status)

	hayate, ok := r.GetByID("V010")
	require.True(t, ok)
	assert.Equal(t, vehicle.StatusMaintenance, hayate.Status)

	// 20 vehicles minus the 2 seeded as Rented; Under Maintenance still
	// counts toward availability.
	assert.Equal(t, 18, r.CountAvailable())
	assert.Len(t, r.ListAvailable(), 18)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()

	v1 := r.Add("Mazda 3", vehicle.TypeCar, 44, "")
	v2 := r.Add("Vespa Primavera", vehicle.TypeMotorbike, 22, vehicle.StatusMaintenance)

	assert.Equal(t, "V021", v1.ID)
	assert.Equal(t, vehicle.StatusAvailable, v1.Status)
	assert.Equal(t, "V022", v2.ID)
	assert.Equal(t, vehicle.StatusMaintenance, v2.Status)
	assert.Len(t, r.ListAll(), 22)
}

func TestUpdatePreservesStatusWhenOmitted(t *testing.T) {
	r := NewRegistry()

	// V005 is seeded Rented; a detail edit must not free it.
	ok := r.UpdateDetails("V005", "Tesla Model 3 LR", vehicle.TypeCar, 110)
	require.True(t, ok)

	v, ok := r.GetByID("V005")
	require.True(t, ok)
	assert.Equal(t, "Tesla Model 3 LR", v.Name)
	assert.Equal(t, 110.0, v.PricePerDay)
	assert.Equal(t, vehicle.StatusRented, v.Status)

	// The full update overwrites status too.
	ok = r.Update("V005", "Tesla Model 3", vehicle.TypeCar, 100, vehicle.StatusAvailable)
	require.True(t, ok)
	v, _ = r.GetByID("V005")
	assert.Equal(t, vehicle.StatusAvailable, v.Status)

	assert.False(t, r.Update("V999", "x", vehicle.TypeCar, 1, vehicle.StatusAvailable))
	assert.False(t, r.UpdateDetails("V999", "x", vehicle.TypeCar, 1))
}

func TestDelete(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.Delete("V001"))
	_, ok := r.GetByID("V001")
	assert.False(t, ok)
	assert.Len(t, r.ListAll(), 19)

	assert.False(t, r.Delete("V001"))
}

func TestQueries(t *testing.T) {
	r := NewRegistry()

	trucks := r.ListByType(vehicle.TypeTruck)
	assert.Len(t, trucks, 6)
	for _, v := range trucks {
		assert.Equal(t, vehicle.TypeTruck, v.Type)
	}

	hits := r.SearchByName("toyota")
	require.Len(t, hits, 3)
	assert.Equal(t, "Toyota Camry", hits[0].Name)

	assert.Empty(t, r.SearchByName("zeppelin"))
}

func TestSetStatus(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.SetStatus("V001", vehicle.StatusRented))
	v, _ := r.GetByID("V001")
	assert.Equal(t, vehicle.StatusRented, v.Status)
	assert.Equal(t, 17, r.CountAvailable())

	assert.False(t, r.SetStatus("V999", vehicle.StatusRented))
}

func TestResetRestoresSeed(t *testing.T) {
	r := NewRegistry()

	r.Add("Mazda 3", vehicle.TypeCar, 44, "")
	r.Delete("V002")
	r.SetStatus("V001", vehicle.StatusLost)

	r.Reset()

	all := r.ListAll()
	require.Len(t, all, 20)
	assert.Equal(t, "V001", all[0].ID)
	assert.Equal(t, vehicle.StatusAvailable, all[0].Status)
	assert.Equal(t, 18, r.CountAvailable())

	// The id counter continues from 21 again.
	v := r.Add("Mazda 3", vehicle.TypeCar, 44, "")
	assert.Equal(t, "V021", v.ID)
}

func TestListAllReturnsCopy(t *testing.T) {
	r := NewRegistry()

	all := r.ListAll()
	all[0].Name = "mutated"

	v, _ := r.GetByID("V001")
	assert.Equal(t, "Toyota Camry", v.Name)
}

func TestMutationsFireNotifications(t *testing.T) {
	r := NewRegistry()

	fired := 0
	unsub := r.Subscribe(func() { fired++ })

	r.Add("Mazda 3", vehicle.TypeCar, 44, "")
	r.Update("V001", "Toyota Camry", vehicle.TypeCar, 52, vehicle.StatusAvailable)
	r.UpdateDetails("V001", "Toyota Camry", vehicle.TypeCar, 53)
	r.SetStatus("V001", vehicle.StatusRented)
	r.Delete("V001")
	assert.Equal(t, 5, fired)

	// Reset replaces the whole fleet and notifies like any other mutation.
	r.Reset()
	assert.Equal(t, 6, fired)

	// Failed mutations stay silent.
	r.Update("V999", "x", vehicle.TypeCar, 1, vehicle.StatusAvailable)
	r.Delete("V999")
	assert.Equal(t, 6, fired)

	unsub()
	r.Add("Vespa", vehicle.TypeMotorbike, 20, "")
	assert.Equal(t, 6, fired)
}
