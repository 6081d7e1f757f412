package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/repository"
	"github.com/cargasinestres/booking-backend/internal/service"
)

// RatingHandler records and lists company ratings.
type RatingHandler struct {
	Ratings   *repository.RatingRepo
	Companies *service.CompanyService
}

func NewRatingHandler(ratings *repository.RatingRepo, companies *service.CompanyService) *RatingHandler {
	return &RatingHandler{Ratings: ratings, Companies: companies}
}

type createRatingReq struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}

// Create records a rating for a company.  Stars must be between 1 and
// 5; the comment is optional.
func (h *RatingHandler) Create(c echo.Context) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req createRatingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Stars < 1 || req.Stars > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stars must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Companies.GetCompanyByID(ctx, companyID); err != nil {
		return writeServiceError(c, err)
	}

	rt := &model.Rating{CompanyID: companyID, Stars: req.Stars}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		rt.Comment = &comment
	}
	if err := h.Ratings.Create(ctx, rt); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create rating failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":         rt.ID,
		"company_id": rt.CompanyID,
		"stars":      rt.Stars,
		"comment":    rt.Comment,
		"created_at": rt.CreatedAt,
	})
}

// List returns all ratings of a company in insertion order.
func (h *RatingHandler) List(c echo.Context) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Companies.GetCompanyByID(ctx, companyID); err != nil {
		return writeServiceError(c, err)
	}
	list, err := h.Ratings.ListByCompany(ctx, companyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list ratings failed"})
	}
	out := make([]echo.Map, 0, len(list))
	for _, rt := range list {
		out = append(out, echo.Map{
			"id":         rt.ID,
			"company_id": rt.CompanyID,
			"stars":      rt.Stars,
			"comment":    rt.Comment,
			"created_at": rt.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
