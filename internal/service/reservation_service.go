package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/repository"
)

// ReservationRequest carries the fields a customer supplies when
// requesting a move.  Scheduling data is externally supplied and not
// interpreted beyond parsing; ServicioIDs that do not resolve are
// silently dropped.
type ReservationRequest struct {
	OriginAddress      string
	DestinationAddress string
	StartDate          time.Time
	StartTime          string
	EndDate            time.Time
	ServicioIDs        []uint64
}

// ReservationService is the reservation lifecycle manager.  It creates
// reservations bound to a customer and a company, answers lookups and
// applies the price, status and chat-link updates.  Every mutating
// operation persists through the stores before returning; no state is
// cached in memory.
type ReservationService struct {
	reservations ReservationStore
	customers    CustomerStore
	companies    CompanyStore
	servicios    ServicioStore
}

// NewReservationService wires the lifecycle manager with its stores.
func NewReservationService(reservations ReservationStore, customers CustomerStore, companies CompanyStore, servicios ServicioStore) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		customers:    customers,
		companies:    companies,
		servicios:    servicios,
	}
}

// CreateReservation builds a new reservation bound to the given
// customer and company.  Both parties must resolve before anything is
// written; the reservation starts in PENDING with price 0 and no chat
// attached.  The returned projection embeds the resolved company and
// customer.
func (s *ReservationService) CreateReservation(ctx context.Context, customerID, companyID uint64, req *ReservationRequest) (*ReservationResponse, error) {
	cu, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, notFoundf("no such customer with id: %d", customerID)
		}
		return nil, err
	}
	co, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, notFoundf("no such company with id: %d", companyID)
		}
		return nil, err
	}
	servicios, err := s.servicios.FindAllByIDs(ctx, req.ServicioIDs)
	if err != nil {
		return nil, err
	}

	res := &model.Reservation{
		CompanyID:          companyID,
		CustomerID:         customerID,
		StartDate:          req.StartDate,
		StartTime:          strings.TrimSpace(req.StartTime),
		EndDate:            req.EndDate,
		OriginAddress:      strings.TrimSpace(req.OriginAddress),
		DestinationAddress: strings.TrimSpace(req.DestinationAddress),
		Price:              0,
		Status:             model.StatusPending,
		Servicios:          servicios,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	return newReservationResponse(res, co, cu), nil
}

// GetReservationByCustomerID returns all reservations made by the
// customer in insertion order, projected to response form.  An empty
// slice, not an error, is returned when none exist.
func (s *ReservationService) GetReservationByCustomerID(ctx context.Context, customerID uint64) ([]*ReservationResponse, error) {
	list, err := s.reservations.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, list)
}

// GetReservationByCompanyID returns all reservations owned by the
// company in insertion order, projected to response form.
func (s *ReservationService) GetReservationByCompanyID(ctx context.Context, companyID uint64) ([]*ReservationResponse, error) {
	list, err := s.reservations.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, list)
}

// GetReservationByCompanyIDAndStatus filters the company's reservations
// to the exact given status string.  Matching is case sensitive; no
// fuzzy or substring matching is performed.
func (s *ReservationService) GetReservationByCompanyIDAndStatus(ctx context.Context, companyID uint64, status string) ([]*ReservationResponse, error) {
	list, err := s.reservations.ListByCompanyAndStatus(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, list)
}

// UpdateReservationPrice overwrites the price of a reservation.
// Negative prices are rejected; the reservation's status is not
// consulted.
func (s *ReservationService) UpdateReservationPrice(ctx context.Context, reservationID uint64, price float64) (*ReservationResponse, error) {
	if price < 0 {
		return nil, validationf("price must not be negative")
	}
	res, err := s.getByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	res.Price = price
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}
	return s.projectOne(ctx, res)
}

// UpdateReservationStatus overwrites the status of a reservation with
// any non-blank string.  There is no transition table: the current
// status is not consulted and unknown tokens are accepted.
func (s *ReservationService) UpdateReservationStatus(ctx context.Context, reservationID uint64, status string) (*ReservationResponse, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, validationf("status is required")
	}
	res, err := s.getByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	res.Status = status
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}
	return s.projectOne(ctx, res)
}

// UpdateReservationChatID attaches (or overwrites) the chat linkage of
// a reservation.
func (s *ReservationService) UpdateReservationChatID(ctx context.Context, reservationID, chatID uint64) (*ReservationResponse, error) {
	res, err := s.getByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	res.ChatID = &chatID
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}
	return s.projectOne(ctx, res)
}

// GetByID returns the raw reservation entity.
func (s *ReservationService) GetByID(ctx context.Context, reservationID uint64) (*model.Reservation, error) {
	return s.getByID(ctx, reservationID)
}

func (s *ReservationService) getByID(ctx context.Context, reservationID uint64) (*model.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, notFoundf("no such reservation with id: %d", reservationID)
		}
		return nil, err
	}
	return res, nil
}

// projectOne resolves the company and customer of a single reservation
// and builds its response projection.
func (s *ReservationService) projectOne(ctx context.Context, res *model.Reservation) (*ReservationResponse, error) {
	out, err := s.project(ctx, []*model.Reservation{res})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// project builds response projections for a list of reservations,
// resolving each distinct company and customer once.
func (s *ReservationService) project(ctx context.Context, list []*model.Reservation) ([]*ReservationResponse, error) {
	companies := make(map[uint64]*model.Company)
	customers := make(map[uint64]*model.Customer)
	out := make([]*ReservationResponse, 0, len(list))
	for _, res := range list {
		co, ok := companies[res.CompanyID]
		if !ok {
			var err error
			co, err = s.companies.GetByID(ctx, res.CompanyID)
			if err != nil {
				return nil, err
			}
			companies[res.CompanyID] = co
		}
		cu, ok := customers[res.CustomerID]
		if !ok {
			var err error
			cu, err = s.customers.GetByID(ctx, res.CustomerID)
			if err != nil {
				return nil, err
			}
			customers[res.CustomerID] = cu
		}
		out = append(out, newReservationResponse(res, co, cu))
	}
	return out, nil
}
