package service

import (
	"context"
	"errors"

	"github.com/saborgourmet/reservation-service/internal/models"
	"github.com/saborgourmet/reservation-service/internal/repository"
	"github.com/saborgourmet/reservation-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrTableUnavailable    = errors.New("table is not available at that date and time")
	ErrCapacityExceeded    = errors.New("party size exceeds table capacity")
)

type ReservationService interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id uint) error
	DeleteReservation(ctx context.Context, id uint) error
	UpdateReservation(ctx context.Context, reservation *models.Reservation) error
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]models.Reservation, error)
	ListActiveByDate(ctx context.Context, date string) ([]models.Reservation, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]models.Reservation, error)
	TableAvailable(ctx context.Context, tableID uint, date, timeOfDay string) (bool, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	tableRepo       repository.TableRepository
	publisher       *rabbitmq.Publisher
}

func NewReservationService(reservationRepo repository.ReservationRepository, tableRepo repository.TableRepository, publisher *rabbitmq.Publisher) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		publisher:       publisher,
	}
}

// TableAvailable reports whether the table has no ACTIVE reservation at
// the exact date+time. Matching is exact time equality only; reservations
// one minute apart on the same table do not conflict.
func (s *reservationService) TableAvailable(ctx context.Context, tableID uint, date, timeOfDay string) (bool, error) {
	activeOnDate, err := s.reservationRepo.FindByDateAndStatus(ctx, date, models.StatusActive)
	if err != nil {
		return false, err
	}
	for _, r := range activeOnDate {
		if r.TableID == tableID && r.Time == timeOfDay {
			return false, nil
		}
	}
	return true, nil
}

// TableHasCapacity reports whether the table seats the party. The bound
// is inclusive; a party of 4 fits a table for 4.
func TableHasCapacity(table *models.Table, partySize int) bool {
	return table.Capacity >= partySize
}

// CreateReservation persists the candidate reservation as ACTIVE if the
// table has capacity for the party and is free at the requested slot.
// Business-rule failures come back as ErrCapacityExceeded or
// ErrTableUnavailable with nothing persisted. A partial unique index on
// (table_id, date, time, status=ACTIVE) backs up the availability check;
// losing that race also surfaces as ErrTableUnavailable.
func (s *reservationService) CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	table, err := s.tableRepo.FindByID(ctx, reservation.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if !TableHasCapacity(table, reservation.PartySize) {
		return nil, ErrCapacityExceeded
	}

	available, err := s.TableAvailable(ctx, reservation.TableID, reservation.Date, reservation.Time)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrTableUnavailable
	}

	reservation.Status = models.StatusActive
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTableUnavailable
		}
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("reservation.created", reservation)
	}

	return reservation, nil
}

// CancelReservation flips the reservation to CANCELLED. Unknown IDs and
// already-cancelled reservations are silent no-ops; the transition is
// one-way.
func (s *reservationService) CancelReservation(ctx context.Context, id uint) error {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if reservation.Status == models.StatusCancelled {
		return nil
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return err
	}

	reservation.Status = models.StatusCancelled
	if s.publisher != nil {
		_ = s.publisher.Publish("reservation.cancelled", reservation)
	}

	return nil
}

// DeleteReservation removes the record regardless of status. Deleting a
// missing ID is not an error.
func (s *reservationService) DeleteReservation(ctx context.Context, id uint) error {
	return s.reservationRepo.Delete(ctx, id)
}

// UpdateReservation persists the record as given. Availability and
// capacity are only validated at creation time.
func (s *reservationService) UpdateReservation(ctx context.Context, reservation *models.Reservation) error {
	return s.reservationRepo.Update(ctx, reservation)
}

func (s *reservationService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.reservationRepo.FindAll(ctx)
}

func (s *reservationService) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return s.reservationRepo.FindByDate(ctx, date)
}

// ListActiveByDate is the primitive behind both the daily dashboard and
// the availability check: all reservations on the date whose status is
// ACTIVE, cancelled ones excluded.
func (s *reservationService) ListActiveByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return s.reservationRepo.FindByDateAndStatus(ctx, date, models.StatusActive)
}

func (s *reservationService) ListByCustomer(ctx context.Context, customerID uint) ([]models.Reservation, error) {
	return s.reservationRepo.FindByCustomerID(ctx, customerID)
}
