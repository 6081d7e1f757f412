package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/repository"
	"github.com/cargasinestres/booking-backend/internal/utils"
)

// CompanyRequest carries the fields a caller supplies when registering
// or updating a company.  ServicioIDs reference catalog entries; ids
// that do not resolve are silently dropped.
type CompanyRequest struct {
	Name        string   `json:"name"`
	TIC         string   `json:"tic"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	Password    string   `json:"password"`
	Description *string  `json:"description"`
	LogoURL     *string  `json:"logo_url"`
	ServicioIDs []uint64 `json:"servicio_ids"`
}

// CompanyService is the company directory.  It validates and stores
// company records, enforces the uniqueness constraints and enriches
// read responses with the aggregated rating.
type CompanyService struct {
	companies  CompanyStore
	servicios  ServicioStore
	bcryptCost int
}

// NewCompanyService wires the directory with its stores and the bcrypt
// cost used when hashing company passwords.
func NewCompanyService(companies CompanyStore, servicios ServicioStore, bcryptCost int) *CompanyService {
	return &CompanyService{companies: companies, servicios: servicios, bcryptCost: bcryptCost}
}

// GetAllCompanies returns every company projected to response form,
// each with its average rating computed.
func (s *CompanyService) GetAllCompanies(ctx context.Context) ([]*CompanyResponse, error) {
	companies, err := s.companies.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*CompanyResponse, 0, len(companies))
	for _, co := range companies {
		out = append(out, newCompanyResponse(co))
	}
	return out, nil
}

// GetCompanyByID returns a single company projection.
func (s *CompanyService) GetCompanyByID(ctx context.Context, id uint64) (*CompanyResponse, error) {
	co, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, notFoundf("no such company with id: %d", id)
		}
		return nil, err
	}
	return newCompanyResponse(co), nil
}

// CreateCompany registers a new company.  Uniqueness checks run in
// order ((name, TIC) pair, then email, then phone) and the first
// violation wins before anything is written.  Structural validation
// follows, then servicio resolution (unknown ids dropped), then the
// insert.  The password is stored bcrypt-hashed.
func (s *CompanyService) CreateCompany(ctx context.Context, req *CompanyRequest) (*CompanyResponse, error) {
	name := strings.TrimSpace(req.Name)
	tic := strings.TrimSpace(req.TIC)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.PhoneNumber)

	taken, err := s.companies.ExistsByNameAndTIC(ctx, name, tic)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictf("a company with that name and TIC already exists")
	}
	taken, err = s.companies.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictf("a company with that email already exists")
	}
	taken, err = s.companies.ExistsByPhoneNumber(ctx, phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictf("a company with that phone number already exists")
	}

	if err := validateCompanyRequest(req, true); err != nil {
		return nil, err
	}

	servicios, err := s.servicios.FindAllByIDs(ctx, req.ServicioIDs)
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	co := &model.Company{
		Name:         name,
		TIC:          tic,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		Servicios:    servicios,
	}
	if err := s.companies.Create(ctx, co); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflictf("a company with those details already exists")
		}
		return nil, err
	}
	return newCompanyResponse(co), nil
}

// UpdateCompany overwrites all mutable fields of an existing company
// from the request and replaces its servicio list in full.  A blank
// password keeps the stored hash.
func (s *CompanyService) UpdateCompany(ctx context.Context, id uint64, req *CompanyRequest) (*CompanyResponse, error) {
	co, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, notFoundf("no such company with id: %d", id)
		}
		return nil, err
	}
	if err := validateCompanyRequest(req, false); err != nil {
		return nil, err
	}
	servicios, err := s.servicios.FindAllByIDs(ctx, req.ServicioIDs)
	if err != nil {
		return nil, err
	}

	co.Name = strings.TrimSpace(req.Name)
	co.TIC = strings.TrimSpace(req.TIC)
	co.Email = strings.ToLower(strings.TrimSpace(req.Email))
	co.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	co.Description = req.Description
	co.LogoURL = req.LogoURL
	co.Servicios = servicios
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		co.PasswordHash = hash
	}

	if err := s.companies.Update(ctx, co); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, notFoundf("no such company with id: %d", id)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflictf("a company with those details already exists")
		}
		return nil, err
	}
	return newCompanyResponse(co), nil
}

// GetCompanyForLogin resolves a company by email and verifies the
// password against the stored bcrypt hash.  Both a missing email and a
// wrong password report the same not-found error so callers cannot
// probe which part failed.
func (s *CompanyService) GetCompanyForLogin(ctx context.Context, email, password string) (*CompanyResponse, error) {
	co, err := s.companies.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, notFoundf("no company with that email and password")
		}
		return nil, err
	}
	if !utils.VerifyPassword(co.PasswordHash, password) {
		return nil, notFoundf("no company with that email and password")
	}
	return newCompanyResponse(co), nil
}
