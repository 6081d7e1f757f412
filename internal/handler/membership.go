package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/repository"
)

// MembershipHandler manages company memberships.  A company holds at
// most one membership.
type MembershipHandler struct {
	Memberships *repository.MembershipRepo
}

func NewMembershipHandler(memberships *repository.MembershipRepo) *MembershipHandler {
	return &MembershipHandler{Memberships: memberships}
}

type createMembershipReq struct {
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // YYYY-MM-DD
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type membershipResp struct {
	ID          uint64  `json:"id"`
	CompanyID   uint64  `json:"company_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func newMembershipResp(m *model.Membership) membershipResp {
	return membershipResp{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		StartDate:   m.StartDate.Format(dateLayout),
		EndDate:     m.EndDate.Format(dateLayout),
		Description: m.Description,
		Price:       m.Price,
	}
}

// Get returns the membership of a company.  A company may only see its
// own membership.
func (h *MembershipHandler) Get(c echo.Context) error {
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

	m, err := h.Memberships.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no membership for this company"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, newMembershipResp(m))
}

// Create subscribes a company to a membership.  The subscription is
// rejected when the company already holds one.
func (h *MembershipHandler) Create(c echo.Context) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	accountID, err := getAccountID(c)
	if err != nil || accountID != companyID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req createMembershipReq
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
	if endDate.Before(startDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must not precede start_date"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := &model.Membership{
		CompanyID:   companyID,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
	}
	if err := h.Memberships.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "company already holds a membership"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create membership failed"})
	}
	return c.JSON(http.StatusCreated, newMembershipResp(m))
}
