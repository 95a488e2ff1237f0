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

type TableHandler struct {
	svc service.TableService
}

func NewTableHandler(svc service.TableService) *TableHandler {
	return &TableHandler{svc: svc}
}

func (h *TableHandler) RegisterRoutes(e *echo.Echo) {
	tables := e.Group("/api/v1/tables")
	tables.POST("", h.CreateTable)
	tables.GET("", h.ListTables)
	tables.GET("/:id", h.GetTable)
	tables.GET("/number/:number", h.GetTableByNumber)
	tables.PUT("/:id", h.UpdateTable)
	tables.PATCH("/:id/active", h.SetTableActive)
	tables.DELETE("/:id", h.DeleteTable)
}

func (h *TableHandler) CreateTable(c echo.Context) error {
	var req dto.CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Number <= 0 || req.Capacity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "number and capacity must be positive")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	table := &models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Active:   active,
	}
	if err := h.svc.CreateTable(c.Request().Context(), table); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToTableResponse(table))
}

func (h *TableHandler) ListTables(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		tables []models.Table
		err    error
	)
	if c.QueryParam("active") == "true" {
		tables, err = h.svc.ListActiveTables(ctx)
	} else {
		tables, err = h.svc.ListTables(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TableResponse, len(tables))
	for i := range tables {
		resp[i] = dto.ToTableResponse(&tables[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TableHandler) GetTable(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid table id")
	}

	table, err := h.svc.GetTable(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "table not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

func (h *TableHandler) GetTableByNumber(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid table number")
	}

	table, err := h.svc.GetTableByNumber(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "table not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

func (h *TableHandler) UpdateTable(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid table id")
	}

	var req dto.CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Number <= 0 || req.Capacity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "number and capacity must be positive")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	table := &models.Table{
		ID:       uint(id),
		Number:   req.Number,
		Capacity: req.Capacity,
		Active:   active,
	}
	if err := h.svc.UpdateTable(c.Request().Context(), table); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

// SetTableActive toggles the active flag; unknown IDs are a silent no-op.
func (h *TableHandler) SetTableActive(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid table id")
	}

	var req dto.SetTableActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.SetActive(c.Request().Context(), uint(id), req.Active); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TableHandler) DeleteTable(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid table id")
	}

	if err := h.svc.DeleteTable(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
