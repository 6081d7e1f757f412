package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/utils"
)

func strptr(s string) *string { return &s }

func seedCompany() *model.Company {
	return &model.Company{
		ID:           1,
		Name:         "Mudanzas Lima",
		TIC:          "20123456789",
		Email:        "contact@mudanzaslima.pe",
		PhoneNumber:  "+51987654321",
		PasswordHash: "$2a$10$irrelevant",
	}
}

func TestCreateCompanyUniquenessOrder(t *testing.T) {
	existing := seedCompany()

	cases := []struct {
		name    string
		mutate  func(*CompanyRequest)
		message string
	}{
		{
			// Same name+TIC, email and phone all collide; the pair
			// check runs first and wins.
			name:    "name and TIC wins over email and phone",
			mutate:  func(r *CompanyRequest) {},
			message: "a company with that name and TIC already exists",
		},
		{
			name: "email checked second",
			mutate: func(r *CompanyRequest) {
				r.Name = "Otra Empresa"
			},
			message: "a company with that email already exists",
		},
		{
			name: "phone checked last",
			mutate: func(r *CompanyRequest) {
				r.Name = "Otra Empresa"
				r.Email = "otra@empresa.pe"
			},
			message: "a company with that phone number already exists",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			companies := newFakeCompanyStore(existing)
			svc := NewCompanyService(companies, newFakeServicioStore(), 4)

			req := &CompanyRequest{
				Name:        existing.Name,
				TIC:         existing.TIC,
				Email:       existing.Email,
				PhoneNumber: existing.PhoneNumber,
				Password:    "s3cretpass",
			}
			tc.mutate(req)

			_, err := svc.CreateCompany(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConflict)
			assert.Contains(t, err.Error(), tc.message)
			// Nothing must be written on conflict.
			assert.Len(t, companies.companies, 1)
		})
	}
}

func TestCreateCompanyConflictBeatsValidation(t *testing.T) {
	existing := seedCompany()
	companies := newFakeCompanyStore(existing)
	svc := NewCompanyService(companies, newFakeServicioStore(), 4)

	// Invalid email AND taken (name, TIC): the conflict is reported,
	// not the validation failure.
	_, err := svc.CreateCompany(context.Background(), &CompanyRequest{
		Name:        existing.Name,
		TIC:         existing.TIC,
		Email:       "not-an-email",
		PhoneNumber: "+51911111111",
		Password:    "s3cretpass",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateCompanyRoundTrip(t *testing.T) {
	companies := newFakeCompanyStore()
	servicios := newFakeServicioStore(
		model.Servicio{ID: 1, Name: "carga"},
		model.Servicio{ID: 2, Name: "embalaje"},
	)
	svc := NewCompanyService(companies, servicios, 4)

	out, err := svc.CreateCompany(context.Background(), &CompanyRequest{
		Name:        "  Mudanzas Lima ",
		TIC:         "20123456789",
		Email:       "Contact@MudanzasLima.pe",
		PhoneNumber: "+51987654321",
		Password:    "s3cretpass",
		Description: strptr("mudanzas locales"),
		ServicioIDs: []uint64{2, 99, 1}, // 99 does not exist and is dropped
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "Mudanzas Lima", out.Name)
	assert.Equal(t, "contact@mudanzaslima.pe", out.Email)
	assert.Equal(t, 0, out.AverageRating)
	require.Len(t, out.Servicios, 2)
	assert.Equal(t, uint64(1), out.Servicios[0].ID)
	assert.Equal(t, uint64(2), out.Servicios[1].ID)

	stored := companies.companies[out.ID]
	require.NotNil(t, stored)
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "s3cretpass"))
	assert.NotEqual(t, "s3cretpass", stored.PasswordHash)
}

func TestCreateCompanyValidationRejected(t *testing.T) {
	companies := newFakeCompanyStore()
	svc := NewCompanyService(companies, newFakeServicioStore(), 4)

	_, err := svc.CreateCompany(context.Background(), &CompanyRequest{
		Name:        "Mudanzas Lima",
		TIC:         "20123456789",
		Email:       "bad-email",
		PhoneNumber: "+51987654321",
		Password:    "s3cretpass",
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, companies.companies)
}

func TestUpdateCompanyReplacesServicios(t *testing.T) {
	existing := seedCompany()
	existing.Servicios = []model.Servicio{{ID: 1, Name: "carga"}, {ID: 2, Name: "embalaje"}}
	companies := newFakeCompanyStore(existing)
	servicios := newFakeServicioStore(
		model.Servicio{ID: 1, Name: "carga"},
		model.Servicio{ID: 2, Name: "embalaje"},
		model.Servicio{ID: 3, Name: "transporte"},
	)
	svc := NewCompanyService(companies, servicios, 4)

	oldHash := existing.PasswordHash
	out, err := svc.UpdateCompany(context.Background(), existing.ID, &CompanyRequest{
		Name:        existing.Name,
		TIC:         existing.TIC,
		Email:       existing.Email,
		PhoneNumber: existing.PhoneNumber,
		ServicioIDs: []uint64{3, 77}, // 77 does not exist and is dropped
	})
	require.NoError(t, err)

	// The list is replaced in full, not merged.
	require.Len(t, out.Servicios, 1)
	assert.Equal(t, uint64(3), out.Servicios[0].ID)

	// Blank password keeps the stored hash.
	assert.Equal(t, oldHash, companies.companies[existing.ID].PasswordHash)
}

func TestUpdateCompanyNotFound(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyStore(), newFakeServicioStore(), 4)
	_, err := svc.UpdateCompany(context.Background(), 42, &CompanyRequest{
		Name:        "X",
		TIC:         "123456",
		Email:       "x@y.pe",
		PhoneNumber: "+51911111111",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCompanyByID(t *testing.T) {
	existing := seedCompany()
	existing.Ratings = []model.Rating{{Stars: 3}, {Stars: 4}}
	svc := NewCompanyService(newFakeCompanyStore(existing), newFakeServicioStore(), 4)

	out, err := svc.GetCompanyByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, out.AverageRating) // 3.5 rounds up

	_, err = svc.GetCompanyByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCompanyForLogin(t *testing.T) {
	hash, err := utils.HashPassword("s3cretpass", 4)
	require.NoError(t, err)
	existing := seedCompany()
	existing.PasswordHash = hash
	svc := NewCompanyService(newFakeCompanyStore(existing), newFakeServicioStore(), 4)

	out, err := svc.GetCompanyForLogin(context.Background(), existing.Email, "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, out.ID)

	// Wrong password and unknown email fail identically.
	_, errPass := svc.GetCompanyForLogin(context.Background(), existing.Email, "wrongpass")
	_, errMail := svc.GetCompanyForLogin(context.Background(), "nobody@nowhere.pe", "s3cretpass")
	require.ErrorIs(t, errPass, ErrNotFound)
	require.ErrorIs(t, errMail, ErrNotFound)
	assert.Equal(t, errPass.Error(), errMail.Error())
}
