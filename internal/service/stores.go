package service

import (
	"context"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// The store interfaces below are the persistence gateway the services
// operate through.  They are satisfied by the concrete repositories in
// internal/repository; tests substitute in-memory fakes.  Store
// implementations signal missing rows with their package's not-found
// sentinels, which services map onto ErrNotFound.

// CustomerStore resolves customer records.
type CustomerStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Customer, error)
}

// CompanyStore persists and looks up company records.  Reads return
// companies populated with their servicios and ratings.
type CompanyStore interface {
	Create(ctx context.Context, co *model.Company) error
	Update(ctx context.Context, co *model.Company) error
	GetByID(ctx context.Context, id uint64) (*model.Company, error)
	GetByEmail(ctx context.Context, email string) (*model.Company, error)
	ListAll(ctx context.Context) ([]*model.Company, error)
	ExistsByNameAndTIC(ctx context.Context, name, tic string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
}

// ServicioStore resolves servicio catalog references.  FindAllByIDs
// silently skips unknown ids (find-all semantics, not fail-fast).
type ServicioStore interface {
	FindAllByIDs(ctx context.Context, ids []uint64) ([]model.Servicio, error)
}

// ReservationStore persists and looks up reservation records.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	Update(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]*model.Reservation, error)
	ListByCompany(ctx context.Context, companyID uint64) ([]*model.Reservation, error)
	ListByCompanyAndStatus(ctx context.Context, companyID uint64, status string) ([]*model.Reservation, error)
}
