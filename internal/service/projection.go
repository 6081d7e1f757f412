package service

import (
	"github.com/cargasinestres/booking-backend/internal/model"
)

// dateLayout is the wire format for DATE fields.
const dateLayout = "2006-01-02"

// CompanyResponse is the read projection of a company.  Password hashes
// are never exposed; AverageRating is computed from the rating records
// at render time.
type CompanyResponse struct {
	ID            uint64           `json:"id"`
	Name          string           `json:"name"`
	TIC           string           `json:"tic"`
	Email         string           `json:"email"`
	PhoneNumber   string           `json:"phone_number"`
	Description   *string          `json:"description,omitempty"`
	LogoURL       *string          `json:"logo_url,omitempty"`
	Servicios     []model.Servicio `json:"servicios"`
	AverageRating int              `json:"averageRating"`
}

// CustomerResponse is the read projection of a customer embedded in
// reservation responses.
type CustomerResponse struct {
	ID          uint64 `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// ReservationResponse is the read projection of a reservation.  It
// embeds the resolved company and customer rather than just their ids.
type ReservationResponse struct {
	ID                 uint64            `json:"id"`
	Company            *CompanyResponse  `json:"company"`
	Customer           *CustomerResponse `json:"customer"`
	StartDate          string            `json:"start_date"`
	StartTime          string            `json:"start_time"`
	EndDate            string            `json:"end_date"`
	OriginAddress      string            `json:"origin_address"`
	DestinationAddress string            `json:"destination_address"`
	Servicios          []model.Servicio  `json:"servicios"`
	Price              float64           `json:"price"`
	Status             string            `json:"status"`
	ChatID             *uint64           `json:"chat_id"`
}

// newCompanyResponse projects a company entity, computing its average
// rating from the loaded rating records.
func newCompanyResponse(co *model.Company) *CompanyResponse {
	servicios := co.Servicios
	if servicios == nil {
		servicios = []model.Servicio{}
	}
	return &CompanyResponse{
		ID:            co.ID,
		Name:          co.Name,
		TIC:           co.TIC,
		Email:         co.Email,
		PhoneNumber:   co.PhoneNumber,
		Description:   co.Description,
		LogoURL:       co.LogoURL,
		Servicios:     servicios,
		AverageRating: CalculateAverageRating(co),
	}
}

// newCustomerResponse projects a customer entity.
func newCustomerResponse(cu *model.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          cu.ID,
		FirstName:   cu.FirstName,
		LastName:    cu.LastName,
		Email:       cu.Email,
		PhoneNumber: cu.PhoneNumber,
	}
}

// newReservationResponse projects a reservation with its resolved
// company and customer.
func newReservationResponse(res *model.Reservation, co *model.Company, cu *model.Customer) *ReservationResponse {
	servicios := res.Servicios
	if servicios == nil {
		servicios = []model.Servicio{}
	}
	return &ReservationResponse{
		ID:                 res.ID,
		Company:            newCompanyResponse(co),
		Customer:           newCustomerResponse(cu),
		StartDate:          res.StartDate.Format(dateLayout),
		StartTime:          res.StartTime,
		EndDate:            res.EndDate.Format(dateLayout),
		OriginAddress:      res.OriginAddress,
		DestinationAddress: res.DestinationAddress,
		Servicios:          servicios,
		Price:              res.Price,
		Status:             res.Status,
		ChatID:             res.ChatID,
	}
}
