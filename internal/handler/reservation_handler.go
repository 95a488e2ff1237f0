package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/saborgourmet/reservation-service/internal/dto"
	"github.com/saborgourmet/reservation-service/internal/models"
	"github.com/saborgourmet/reservation-service/internal/service"
)

type ReservationHandler struct {
	svc         service.ReservationService
	customerSvc service.CustomerService
	tableSvc    service.TableService
}

func NewReservationHandler(svc service.ReservationService, customerSvc service.CustomerService, tableSvc service.TableService) *ReservationHandler {
	return &ReservationHandler{svc: svc, customerSvc: customerSvc, tableSvc: tableSvc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	reservations := e.Group("/api/v1/reservations")
	reservations.POST("", h.CreateReservation)
	reservations.GET("", h.ListReservations)
	reservations.GET("/:id", h.GetReservation)
	reservations.PUT("/:id", h.UpdateReservation)
	reservations.POST("/:id/cancel", h.CancelReservation)
	reservations.DELETE("/:id", h.DeleteReservation)

	e.GET("/api/v1/dashboard", h.GetDashboard)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customer_name, customer_email and customer_phone are required")
	}
	if req.TableID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "table_id is required")
	}
	if req.PartySize < 1 || req.PartySize > 20 {
		return echo.NewHTTPError(http.StatusBadRequest, "party_size must be between 1 and 20")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be an ISO calendar date (YYYY-MM-DD)")
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "time must be a 24-hour HH:MM value")
	}

	ctx := c.Request().Context()

	table, err := h.tableSvc.GetTable(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "table not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Repeat bookers are matched by email, never duplicated
	customer, err := h.customerSvc.FindOrCreate(ctx, req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	reservation := &models.Reservation{
		Date:       req.Date,
		Time:       req.Time,
		PartySize:  req.PartySize,
		CustomerID: customer.ID,
		TableID:    table.ID,
	}

	created, err := h.svc.CreateReservation(ctx, reservation)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTableNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTableUnavailable), errors.Is(err, service.ErrCapacityExceeded):
			return echo.NewHTTPError(http.StatusConflict, "no availability for that table at the requested date and time")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	created.Customer = customer
	created.Table = table
	return c.JSON(http.StatusCreated, dto.ToReservationResponse(created))
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	ctx := c.Request().Context()

	if email := c.QueryParam("email"); email != "" {
		customer, err := h.customerSvc.FindByEmail(ctx, email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if customer == nil {
			return echo.NewHTTPError(http.StatusNotFound, "customer not found")
		}
		reservations, err := h.svc.ListByCustomer(ctx, customer.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
	}

	date := c.QueryParam("date")
	activeOnly := c.QueryParam("active") == "true"

	var (
		reservations []models.Reservation
		err          error
	)
	switch {
	case date != "" && activeOnly:
		reservations, err = h.svc.ListActiveByDate(ctx, date)
	case date != "":
		reservations, err = h.svc.ListByDate(ctx, date)
	default:
		reservations, err = h.svc.ListReservations(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	reservation, err := h.svc.GetReservation(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// UpdateReservation persists the record exactly as supplied; availability
// and capacity are only checked on creation.
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	var req dto.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation := &models.Reservation{
		ID:         uint(id),
		Date:       req.Date,
		Time:       req.Time,
		PartySize:  req.PartySize,
		Status:     models.ReservationStatus(req.Status),
		CustomerID: req.CustomerID,
		TableID:    req.TableID,
	}

	if err := h.svc.UpdateReservation(c.Request().Context(), reservation); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// CancelReservation is a silent no-op for unknown or already-cancelled
// reservations.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	if err := h.svc.CancelReservation(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	if err := h.svc.DeleteReservation(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	today := time.Now().Format("2006-01-02")

	tables, err := h.tableSvc.ListTables(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	activeTables, err := h.tableSvc.ListActiveTables(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	reservations, err := h.svc.ListReservations(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	todayActive, err := h.svc.ListActiveByDate(ctx, today)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.DashboardResponse{
		TotalTables:       len(tables),
		ActiveTables:      len(activeTables),
		TotalReservations: len(reservations),
		ActiveToday:       len(todayActive),
		Today:             dto.ToReservationResponses(todayActive),
	})
}
