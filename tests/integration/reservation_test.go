//go:build integration

package integration

import (
	"errors"
	"sync"
	"testing"

	"github.com/saborgourmet/reservation-service/internal/models"
	"github.com/saborgourmet/reservation-service/internal/repository"
	"github.com/saborgourmet/reservation-service/internal/seed"
	"github.com/saborgourmet/reservation-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTable(t *testing.T, number, capacity int, active bool) *models.Table {
	t.Helper()
	table := &models.Table{Number: number, Capacity: capacity, Active: active}
	require.NoError(t, testDB.Create(table).Error)
	return table
}

func createTestCustomer(t *testing.T, name, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Email: email, Phone: "900000000"}
	require.NoError(t, testDB.Create(customer).Error)
	return customer
}

func newReservationService() service.ReservationService {
	reservationRepo := repository.NewReservationRepository(testDB)
	tableRepo := repository.NewTableRepository(testDB)
	return service.NewReservationService(reservationRepo, tableRepo, nil)
}

// 20 concurrent requests for the same table/date/time: each passes the
// in-service availability check against an empty day, but the partial
// unique index lets exactly one insert through.
func TestConcurrentSlotBooking(t *testing.T) {
	cleanTables()
	table := createTestTable(t, 2, 4, true)
	customer := createTestCustomer(t, "Juan García", "juan.garcia@email.com")
	svc := newReservationService()

	attempts := 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	success, unavailable := 0, 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.CreateReservation(t.Context(), &models.Reservation{
				Date:       "2024-06-01",
				Time:       "20:00",
				PartySize:  2,
				CustomerID: customer.ID,
				TableID:    table.ID,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, service.ErrTableUnavailable):
				unavailable++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success, "exactly one booking should win the slot")
	assert.Equal(t, attempts-1, unavailable)

	var count int64
	testDB.Model(&models.Reservation{}).
		Where("table_id = ? AND date = ? AND time = ? AND status = ?", table.ID, "2024-06-01", "20:00", models.StatusActive).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCancelFreesSlot(t *testing.T) {
	cleanTables()
	table := createTestTable(t, 3, 6, true)
	customer := createTestCustomer(t, "María López", "maria.lopez@email.com")
	svc := newReservationService()

	created, err := svc.CreateReservation(t.Context(), &models.Reservation{
		Date: "2024-06-02", Time: "19:30", PartySize: 4, CustomerID: customer.ID, TableID: table.ID,
	})
	require.NoError(t, err)

	available, err := svc.TableAvailable(t.Context(), table.ID, "2024-06-02", "19:30")
	require.NoError(t, err)
	assert.False(t, available)

	require.NoError(t, svc.CancelReservation(t.Context(), created.ID))

	// The record still exists, but the slot is bookable again
	stored, err := svc.GetReservation(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)

	available, err = svc.TableAvailable(t.Context(), table.ID, "2024-06-02", "19:30")
	require.NoError(t, err)
	assert.True(t, available)

	rebooked, err := svc.CreateReservation(t.Context(), &models.Reservation{
		Date: "2024-06-02", Time: "19:30", PartySize: 2, CustomerID: customer.ID, TableID: table.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, rebooked.Status)
}

func TestCancelIdempotent(t *testing.T) {
	cleanTables()
	table := createTestTable(t, 4, 8, true)
	customer := createTestCustomer(t, "Pedro Martínez", "pedro.martinez@email.com")
	svc := newReservationService()

	created, err := svc.CreateReservation(t.Context(), &models.Reservation{
		Date: "2024-06-03", Time: "21:00", PartySize: 8, CustomerID: customer.ID, TableID: table.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelReservation(t.Context(), created.ID))
	require.NoError(t, svc.CancelReservation(t.Context(), created.ID))

	stored, err := svc.GetReservation(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
}

func TestFindOrCreateCustomer(t *testing.T) {
	cleanTables()
	customerRepo := repository.NewCustomerRepository(testDB)
	svc := service.NewCustomerService(customerRepo)

	first, err := svc.FindOrCreate(t.Context(), "Juan García", "juan.garcia@email.com", "912345678")
	require.NoError(t, err)

	second, err := svc.FindOrCreate(t.Context(), "J. García", "juan.garcia@email.com", "000")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "repeat booker keeps a single record")

	var count int64
	testDB.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSeedData(t *testing.T) {
	cleanTables()
	require.NoError(t, seed.Load(testDB))

	tableRepo := repository.NewTableRepository(testDB)
	tableSvc := service.NewTableService(tableRepo)

	all, err := tableSvc.ListTables(t.Context())
	require.NoError(t, err)
	assert.Len(t, all, 5)

	active, err := tableSvc.ListActiveTables(t.Context())
	require.NoError(t, err)
	assert.Len(t, active, 4)
	for _, table := range active {
		assert.NotEqual(t, 5, table.Number, "inactive table 5 must not be offered for booking")
	}

	// Seeding is guarded: running it again changes nothing
	require.NoError(t, seed.Load(testDB))
	all, err = tableSvc.ListTables(t.Context())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
