// Package router wires the HTTP surface: which paths exist, which are
// public and which sit behind JWT and role middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/handler"
	"github.com/cargasinestres/booking-backend/internal/middleware"
	"github.com/cargasinestres/booking-backend/internal/repository"
)

// Handlers groups every handler the router needs.
type Handlers struct {
	Auth         *handler.AuthHandler
	Companies    *handler.CompanyHandler
	Reservations *handler.ReservationHandler
	Chats        *handler.ChatHandler
	Ratings      *handler.RatingHandler
	Servicios    *handler.ServicioHandler
	Memberships  *handler.MembershipHandler
}

// Register mounts all routes.  cacheMW is applied to the public browse
// endpoints only; authenticated reads must always be fresh.
func Register(e *echo.Echo, h Handlers, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Public browse endpoints.  Company registration is open, like
	// customer registration.
	e.GET("/v1/companies", h.Companies.List, cacheMW)
	e.GET("/v1/companies/:id", h.Companies.Get, cacheMW)
	e.GET("/v1/companies/:id/ratings", h.Ratings.List, cacheMW)
	e.GET("/v1/servicios", h.Servicios.List, cacheMW)
	e.POST("/v1/companies", h.Companies.Create)

	// Session endpoints.  Logout works with either a bearer token or a
	// refresh token in the body, so it stays outside the JWT group.
	auth := e.Group("/v1/auth")
	auth.POST("/customers/register", h.Auth.RegisterCustomer)
	auth.POST("/customers/login", h.Auth.LoginCustomer)
	auth.POST("/companies/login", h.Auth.LoginCompany)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	jwt := middleware.JWTAuth(jwtSecret)
	anyRole := middleware.RequireRole(repository.AccountCustomer, repository.AccountCompany)
	customerOnly := middleware.RequireRole(repository.AccountCustomer)
	companyOnly := middleware.RequireRole(repository.AccountCompany)

	v1 := e.Group("/v1", jwt)
	v1.GET("/me", h.Auth.Me, anyRole)

	// Customer operations.
	v1.POST("/companies/:companyId/reservations", h.Reservations.Create, customerOnly)
	v1.GET("/my-reservations", h.Reservations.ListMine, customerOnly)
	v1.POST("/companies/:id/ratings", h.Ratings.Create, customerOnly)

	// Either party of a reservation may open its chat.
	v1.POST("/reservations/:id/chat", h.Chats.Create, anyRole)

	// Company operations.
	v1.PUT("/companies/:id", h.Companies.Update, companyOnly)
	v1.GET("/companies/:id/reservations", h.Reservations.ListForCompany, companyOnly)
	v1.PATCH("/reservations/:id/price", h.Reservations.UpdatePrice, companyOnly)
	v1.PATCH("/reservations/:id/status", h.Reservations.UpdateStatus, companyOnly)

	// Membership management.
	v1.GET("/companies/:id/membership", h.Memberships.Get, companyOnly)
	v1.POST("/companies/:id/membership", h.Memberships.Create, companyOnly)

	// Catalog management.
	v1.POST("/servicios", h.Servicios.Create, companyOnly)
}
