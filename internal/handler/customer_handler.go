package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/saborgourmet/reservation-service/internal/dto"
	"github.com/saborgourmet/reservation-service/internal/models"
	"github.com/saborgourmet/reservation-service/internal/service"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	customers := e.Group("/api/v1/customers")
	customers.POST("", h.CreateCustomer)
	customers.GET("", h.ListCustomers)
	customers.GET("/:id", h.GetCustomer)
	customers.PUT("/:id", h.UpdateCustomer)
	customers.DELETE("/:id", h.DeleteCustomer)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and phone are required")
	}

	customer := &models.Customer{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.svc.CreateCustomer(c.Request().Context(), customer); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	if email := c.QueryParam("email"); email != "" {
		customer, err := h.svc.FindByEmail(ctx, email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if customer == nil {
			return c.JSON(http.StatusOK, []dto.CustomerResponse{})
		}
		return c.JSON(http.StatusOK, []dto.CustomerResponse{dto.ToCustomerResponse(customer)})
	}

	customers, err := h.svc.ListCustomers(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = dto.ToCustomerResponse(&customers[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	customer, err := h.svc.GetCustomer(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "customer not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and phone are required")
	}

	customer := &models.Customer{
		ID:    uint(id),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := h.svc.UpdateCustomer(c.Request().Context(), customer); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	if err := h.svc.DeleteCustomer(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
