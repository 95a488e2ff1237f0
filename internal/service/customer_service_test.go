package service

import (
	"context"
	"testing"

	"github.com/saborgourmet/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock CustomerRepository ---

type mockCustomerRepo struct {
	createFn      func(ctx context.Context, c *models.Customer) error
	findByIDFn    func(ctx context.Context, id uint) (*models.Customer, error)
	findByEmailFn func(ctx context.Context, email string) (*models.Customer, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.ID = 1
	return nil
}
func (m *mockCustomerRepo) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockCustomerRepo) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}
func (m *mockCustomerRepo) FindAll(ctx context.Context) ([]models.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepo) Update(ctx context.Context, c *models.Customer) error { return nil }
func (m *mockCustomerRepo) Delete(ctx context.Context, id uint) error            { return nil }

// --- Tests ---

func TestFindOrCreate_ExistingCustomer(t *testing.T) {
	createCalled := false
	repo := &mockCustomerRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.Customer, error) {
			return &models.Customer{ID: 7, Name: "Juan García", Email: email, Phone: "912345678"}, nil
		},
		createFn: func(ctx context.Context, c *models.Customer) error {
			createCalled = true
			return nil
		},
	}
	svc := NewCustomerService(repo)

	customer, err := svc.FindOrCreate(context.Background(), "Juan G.", "juan.garcia@email.com", "000")

	require.NoError(t, err)
	assert.Equal(t, uint(7), customer.ID)
	assert.Equal(t, "Juan García", customer.Name, "existing record wins, no merge")
	assert.False(t, createCalled, "repeat bookers must not get a duplicate record")
}

func TestFindOrCreate_NewCustomer(t *testing.T) {
	repo := &mockCustomerRepo{
		createFn: func(ctx context.Context, c *models.Customer) error {
			c.ID = 42
			return nil
		},
	}
	svc := NewCustomerService(repo)

	customer, err := svc.FindOrCreate(context.Background(), "María López", "maria.lopez@email.com", "987654321")

	require.NoError(t, err)
	assert.Equal(t, uint(42), customer.ID)
	assert.Equal(t, "María López", customer.Name)
	assert.Equal(t, "maria.lopez@email.com", customer.Email)
}

func TestFindByEmail_NoMatchIsEmptyResult(t *testing.T) {
	svc := NewCustomerService(&mockCustomerRepo{})

	customer, err := svc.FindByEmail(context.Background(), "nobody@email.com")

	assert.NoError(t, err, "a missing email is an empty result, not an error")
	assert.Nil(t, customer)
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := NewCustomerService(&mockCustomerRepo{})

	customer, err := svc.GetCustomer(context.Background(), 999)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Nil(t, customer)
}
