package service

import (
	"context"
	"errors"

	"github.com/saborgourmet/reservation-service/internal/models"
	"github.com/saborgourmet/reservation-service/internal/repository"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindOrCreate(ctx context.Context, name, email, phone string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return s.repo.Create(ctx, customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	return s.repo.Update(ctx, customer)
}

// DeleteCustomer is idempotent; deleting an unknown ID is not an error.
func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// FindByEmail returns (nil, nil) on no match.
func (s *customerService) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}

// FindOrCreate looks the customer up by email and only creates a record
// on a miss, so repeat bookers keep a single customer row. Email is the
// natural identity; there is no merging beyond this one lookup.
func (s *customerService) FindOrCreate(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	customer := &models.Customer{Name: name, Email: email, Phone: phone}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.FindAll(ctx)
}
