package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReq() *CompanyRequest {
	return &CompanyRequest{
		Name:        "Mudanzas Lima",
		TIC:         "20123456789",
		Email:       "contact@mudanzaslima.pe",
		PhoneNumber: "+51987654321",
		Password:    "s3cretpass",
	}
}

func TestValidateCompanyRequestAccepts(t *testing.T) {
	require.NoError(t, validateCompanyRequest(validReq(), true))
}

func TestValidateCompanyRequestRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CompanyRequest)
	}{
		{"blank name", func(r *CompanyRequest) { r.Name = "  " }},
		{"blank tic", func(r *CompanyRequest) { r.TIC = "" }},
		{"tic with letters", func(r *CompanyRequest) { r.TIC = "20A456" }},
		{"blank email", func(r *CompanyRequest) { r.Email = "" }},
		{"email without at", func(r *CompanyRequest) { r.Email = "contact.example.com" }},
		{"email with two ats", func(r *CompanyRequest) { r.Email = "a@b@c.com" }},
		{"email without domain dot", func(r *CompanyRequest) { r.Email = "a@example" }},
		{"email with trailing dot", func(r *CompanyRequest) { r.Email = "a@example." }},
		{"blank phone", func(r *CompanyRequest) { r.PhoneNumber = "" }},
		{"phone too short", func(r *CompanyRequest) { r.PhoneNumber = "12345" }},
		{"phone too long", func(r *CompanyRequest) { r.PhoneNumber = "1234567890123456" }},
		{"phone with letters", func(r *CompanyRequest) { r.PhoneNumber = "98765x321" }},
		{"missing password", func(r *CompanyRequest) { r.Password = "" }},
		{"short password", func(r *CompanyRequest) { r.Password = "short" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validReq()
			tc.mutate(req)
			err := validateCompanyRequest(req, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateCompanyRequestUpdateAllowsBlankPassword(t *testing.T) {
	req := validReq()
	req.Password = ""
	assert.NoError(t, validateCompanyRequest(req, false))

	// A non-blank password on update still has to meet the length rule.
	req.Password = "short"
	assert.ErrorIs(t, validateCompanyRequest(req, false), ErrValidation)
}
