package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/repository"
)

// ServicioHandler exposes the servicio catalog.
type ServicioHandler struct {
	Servicios *repository.ServicioRepo
}

func NewServicioHandler(servicios *repository.ServicioRepo) *ServicioHandler {
	return &ServicioHandler{Servicios: servicios}
}

type createServicioReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List returns the full catalog in id order.
func (h *ServicioHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Servicios.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list servicios failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds a servicio to the catalog.
func (h *ServicioHandler) Create(c echo.Context) error {
	var req createServicioReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.Servicio{Name: name}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		s.Description = &desc
	}
	if err := h.Servicios.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create servicio failed"})
	}
	return c.JSON(http.StatusCreated, s)
}
