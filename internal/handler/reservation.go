package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/queue"
	"github.com/cargasinestres/booking-backend/internal/service"
)

// ReservationHandler exposes the reservation lifecycle over HTTP.
// Creation and status changes additionally publish events to the
// broker; publish failures are logged and do not fail the request.
type ReservationHandler struct {
	Reservations *service.ReservationService
}

func NewReservationHandler(reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Reservations: reservations}
}

type createReservationReq struct {
	OriginAddress      string   `json:"origin_address"`
	DestinationAddress string   `json:"destination_address"`
	StartDate          string   `json:"start_date"` // YYYY-MM-DD
	StartTime          string   `json:"start_time"`
	EndDate            string   `json:"end_date"` // YYYY-MM-DD
	ServicioIDs        []uint64 `json:"servicio_ids"`
}

type updatePriceReq struct {
	Price float64 `json:"price"`
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// Create books a move with a company on behalf of the authenticated
// customer.  The reservation starts in PENDING with price 0.
func (h *ReservationHandler) Create(c echo.Context) error {
	companyID, err := parseIDParam(c, "companyId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company id"})
	}
	customerID, err := getAccountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	startDate, err := time.Parse(dateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	endDate, err := time.Parse(dateLayout, strings.TrimSpace(req.EndDate))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Reservations.CreateReservation(ctx, customerID, companyID, &service.ReservationRequest{
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		StartDate:          startDate,
		StartTime:          req.StartTime,
		EndDate:            endDate,
		ServicioIDs:        req.ServicioIDs,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	_ = queue.PublishReservationEvent(ctx, queue.ReservationEvent{
		Kind:          queue.EventReservationCreated,
		ReservationID: out.ID,
		CompanyID:     out.Company.ID,
		CompanyName:   out.Company.Name,
		CustomerID:    out.Customer.ID,
		Status:        out.Status,
		Price:         out.Price,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, out)
}

// ListMine returns the authenticated customer's reservations.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	customerID, err := getAccountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Reservations.GetReservationByCustomerID(ctx, customerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListForCompany returns a company's reservations, optionally filtered
// by the exact status given in ?status=.  A company may only list its
// own reservations.
func (h *ReservationHandler) ListForCompany(c echo.Context) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	accountID, err := getAccountID(c)
	if err != nil || accountID != companyID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := c.QueryParam("status")
	var out []*service.ReservationResponse
	if status != "" {
		out, err = h.Reservations.GetReservationByCompanyIDAndStatus(ctx, companyID, status)
	} else {
		out, err = h.Reservations.GetReservationByCompanyID(ctx, companyID)
	}
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdatePrice sets the quoted price of a reservation.  Only the
// company the reservation was made with may quote.
func (h *ReservationHandler) UpdatePrice(c echo.Context) error {
	reservationID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req updatePriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.authorizeCompany(ctx, c, reservationID); err != nil {
		return writeServiceError(c, err)
	}
	out, err := h.Reservations.UpdateReservationPrice(ctx, reservationID, req.Price)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus overwrites the status of a reservation and publishes a
// status-changed event.  Only the owning company may change status.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	reservationID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.authorizeCompany(ctx, c, reservationID); err != nil {
		return writeServiceError(c, err)
	}
	out, err := h.Reservations.UpdateReservationStatus(ctx, reservationID, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}

	_ = queue.PublishReservationEvent(ctx, queue.ReservationEvent{
		Kind:          queue.EventReservationStatusChanged,
		ReservationID: out.ID,
		CompanyID:     out.Company.ID,
		CompanyName:   out.Company.Name,
		CustomerID:    out.Customer.ID,
		Status:        out.Status,
		Price:         out.Price,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, out)
}

// authorizeCompany checks that the authenticated company owns the
// reservation.  It returns a service error suitable for
// writeServiceError, except for the forbidden case which is written
// directly.
func (h *ReservationHandler) authorizeCompany(ctx context.Context, c echo.Context, reservationID uint64) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	res, err := h.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if res.CompanyID != accountID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}
