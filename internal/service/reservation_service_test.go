package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargasinestres/booking-backend/internal/model"
)

func seedCustomer() *model.Customer {
	return &model.Customer{
		ID:        7,
		FirstName: "Ana",
		LastName:  "Quispe",
		Email:     "ana@example.pe",
	}
}

func newReservationFixture(t *testing.T) (*ReservationService, *fakeReservationStore, *model.Customer, *model.Company) {
	t.Helper()
	cu := seedCustomer()
	co := seedCompany()
	reservations := newFakeReservationStore()
	servicios := newFakeServicioStore(
		model.Servicio{ID: 1, Name: "carga"},
		model.Servicio{ID: 2, Name: "embalaje"},
	)
	svc := NewReservationService(reservations, newFakeCustomerStore(cu), newFakeCompanyStore(co), servicios)
	return svc, reservations, cu, co
}

func baseRequest() *ReservationRequest {
	return &ReservationRequest{
		OriginAddress:      "Av. Arequipa 123",
		DestinationAddress: "Jr. Cusco 456",
		StartDate:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:30",
		EndDate:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		ServicioIDs:        []uint64{1, 2},
	}
}

func TestCreateReservationUnknownCustomer(t *testing.T) {
	svc, reservations, _, co := newReservationFixture(t)

	_, err := svc.CreateReservation(context.Background(), 999, co.ID, baseRequest())
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "customer")
	// The failed create must not leave anything behind.
	assert.Empty(t, reservations.reservations)
}

func TestCreateReservationUnknownCompany(t *testing.T) {
	svc, reservations, cu, _ := newReservationFixture(t)

	_, err := svc.CreateReservation(context.Background(), cu.ID, 999, baseRequest())
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "company")
	assert.Empty(t, reservations.reservations)
}

func TestCreateReservationDefaults(t *testing.T) {
	svc, reservations, cu, co := newReservationFixture(t)

	req := baseRequest()
	req.OriginAddress = "  Av. Arequipa 123  "
	req.ServicioIDs = []uint64{2, 42} // 42 does not exist and is dropped

	out, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, req)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, out.Status)
	assert.Zero(t, out.Price)
	assert.Nil(t, out.ChatID)
	assert.Equal(t, "Av. Arequipa 123", out.OriginAddress)
	assert.Equal(t, "2026-09-15", out.StartDate)
	assert.Equal(t, "09:30", out.StartTime)
	require.Len(t, out.Servicios, 1)
	assert.Equal(t, uint64(2), out.Servicios[0].ID)
	assert.Equal(t, co.ID, out.Company.ID)
	assert.Equal(t, cu.ID, out.Customer.ID)
	assert.Len(t, reservations.reservations, 1)
}

func TestUpdateReservationPrice(t *testing.T) {
	svc, reservations, cu, co := newReservationFixture(t)
	created, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, baseRequest())
	require.NoError(t, err)

	out, err := svc.UpdateReservationPrice(context.Background(), created.ID, 450.50)
	require.NoError(t, err)
	assert.Equal(t, 450.50, out.Price)
	assert.Equal(t, 450.50, reservations.reservations[created.ID].Price)

	// Zero is a valid quote.
	out, err = svc.UpdateReservationPrice(context.Background(), created.ID, 0)
	require.NoError(t, err)
	assert.Zero(t, out.Price)
}

func TestUpdateReservationPriceNegative(t *testing.T) {
	svc, _, cu, co := newReservationFixture(t)
	created, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, baseRequest())
	require.NoError(t, err)

	_, err = svc.UpdateReservationPrice(context.Background(), created.ID, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateReservationPriceNotFound(t *testing.T) {
	svc, _, _, _ := newReservationFixture(t)
	_, err := svc.UpdateReservationPrice(context.Background(), 999, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReservationStatus(t *testing.T) {
	svc, _, cu, co := newReservationFixture(t)
	created, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, baseRequest())
	require.NoError(t, err)

	out, err := svc.UpdateReservationStatus(context.Background(), created.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, out.Status)

	// Any non-blank token is accepted; there is no transition table.
	out, err = svc.UpdateReservationStatus(context.Background(), created.ID, "ON_HOLD")
	require.NoError(t, err)
	assert.Equal(t, "ON_HOLD", out.Status)

	_, err = svc.UpdateReservationStatus(context.Background(), created.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateReservationChatID(t *testing.T) {
	svc, _, cu, co := newReservationFixture(t)
	created, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, baseRequest())
	require.NoError(t, err)

	out, err := svc.UpdateReservationChatID(context.Background(), created.ID, 55)
	require.NoError(t, err)
	require.NotNil(t, out.ChatID)
	assert.Equal(t, uint64(55), *out.ChatID)
}

func TestListReservationsByCustomerOrder(t *testing.T) {
	svc, _, cu, co := newReservationFixture(t)
	first, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, baseRequest())
	require.NoError(t, err)
	second, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, baseRequest())
	require.NoError(t, err)

	out, err := svc.GetReservationByCustomerID(context.Background(), cu.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, first.ID, out[0].ID)
	assert.Equal(t, second.ID, out[1].ID)

	// Unknown customers get an empty list, not an error.
	out, err = svc.GetReservationByCustomerID(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListReservationsByCompanyAndStatusIsCaseSensitive(t *testing.T) {
	svc, _, cu, co := newReservationFixture(t)
	created, err := svc.CreateReservation(context.Background(), cu.ID, co.ID, baseRequest())
	require.NoError(t, err)
	_, err = svc.UpdateReservationStatus(context.Background(), created.ID, model.StatusConfirmed)
	require.NoError(t, err)

	out, err := svc.GetReservationByCompanyIDAndStatus(context.Background(), co.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = svc.GetReservationByCompanyIDAndStatus(context.Background(), co.ID, "confirmed")
	require.NoError(t, err)
	assert.Empty(t, out)
}
