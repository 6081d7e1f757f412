package service

import (
	"strings"
)

// validateCompanyRequest applies the structural rules for company
// create and update requests.  requirePassword is true on create; on
// update a blank password keeps the stored hash.  The first violated
// rule wins and is reported with the offending field name.
func validateCompanyRequest(req *CompanyRequest, requirePassword bool) error {
	if strings.TrimSpace(req.Name) == "" {
		return validationf("name is required")
	}
	tic := strings.TrimSpace(req.TIC)
	if tic == "" {
		return validationf("tic is required")
	}
	if !digitsOnly(tic) {
		return validationf("tic must contain digits only")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return validationf("email is required")
	}
	if !validEmail(email) {
		return validationf("email format is invalid")
	}
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return validationf("phone_number is required")
	}
	if !validPhone(phone) {
		return validationf("phone_number format is invalid")
	}
	if requirePassword && req.Password == "" {
		return validationf("password is required")
	}
	if req.Password != "" && len(req.Password) < 8 {
		return validationf("password must be at least 8 characters")
	}
	return nil
}

// validEmail checks the minimal shape local@domain.tld: exactly one
// "@", a non-empty local part and a dotted domain.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// validPhone accepts 6 to 15 digits with an optional leading "+".
func validPhone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if len(s) < 6 || len(s) > 15 {
		return false
	}
	return digitsOnly(s)
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
