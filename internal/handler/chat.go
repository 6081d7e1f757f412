package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/repository"
	"github.com/cargasinestres/booking-backend/internal/service"
)

// ChatHandler opens chat threads on reservations.  A chat row only
// mints the thread id; messages themselves live in an external
// messaging system.
type ChatHandler struct {
	Chats        *repository.ChatRepo
	Reservations *service.ReservationService
}

func NewChatHandler(chats *repository.ChatRepo, reservations *service.ReservationService) *ChatHandler {
	return &ChatHandler{Chats: chats, Reservations: reservations}
}

// Create opens a chat on a reservation and attaches its id.  Either
// party of the reservation may open the chat; opening it again
// overwrites the linkage with a fresh thread.
func (h *ChatHandler) Create(c echo.Context) error {
	reservationID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	accountID, err := getAccountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return writeServiceError(c, err)
	}
	role, _ := c.Get("role").(string)
	party := (role == repository.AccountCustomer && res.CustomerID == accountID) ||
		(role == repository.AccountCompany && res.CompanyID == accountID)
	if !party {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ch := &model.Chat{ReservationID: reservationID}
	if err := h.Chats.Create(ctx, ch); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create chat failed"})
	}
	out, err := h.Reservations.UpdateReservationChatID(ctx, reservationID, ch.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
