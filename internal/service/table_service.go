package service

import (
	"context"
	"errors"

	"github.com/saborgourmet/reservation-service/internal/models"
	"github.com/saborgourmet/reservation-service/internal/repository"
	"gorm.io/gorm"
)

type TableService interface {
	CreateTable(ctx context.Context, table *models.Table) error
	UpdateTable(ctx context.Context, table *models.Table) error
	DeleteTable(ctx context.Context, id uint) error
	GetTable(ctx context.Context, id uint) (*models.Table, error)
	GetTableByNumber(ctx context.Context, number int) (*models.Table, error)
	ListTables(ctx context.Context) ([]models.Table, error)
	ListActiveTables(ctx context.Context) ([]models.Table, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type tableService struct {
	repo repository.TableRepository
}

func NewTableService(repo repository.TableRepository) TableService {
	return &tableService{repo: repo}
}

func (s *tableService) CreateTable(ctx context.Context, table *models.Table) error {
	return s.repo.Create(ctx, table)
}

func (s *tableService) UpdateTable(ctx context.Context, table *models.Table) error {
	return s.repo.Update(ctx, table)
}

// DeleteTable removes the table without checking for reservations that
// still reference it.
func (s *tableService) DeleteTable(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *tableService) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	table, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

func (s *tableService) GetTableByNumber(ctx context.Context, number int) (*models.Table, error) {
	table, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

func (s *tableService) ListTables(ctx context.Context) ([]models.Table, error) {
	return s.repo.FindAll(ctx)
}

// ListActiveTables feeds the public booking form; inactive tables never
// appear there regardless of their reservation history.
func (s *tableService) ListActiveTables(ctx context.Context) ([]models.Table, error) {
	return s.repo.FindActive(ctx)
}

// SetActive toggles whether the table is offered for booking. Unknown
// IDs are a silent no-op.
func (s *tableService) SetActive(ctx context.Context, id uint, active bool) error {
	table, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	table.Active = active
	return s.repo.Update(ctx, table)
}
