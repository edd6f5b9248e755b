package service

import (
	"net/mail"
	"strings"

	"github.com/dtroode/clinic-server/internal/model"
)

const (
	minPasswordLength = 8
	// bcrypt only accepts passwords up to 72 bytes.
	maxPasswordBytes = 72
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return model.NewValidationError(field, "must not be empty")
	}
	return nil
}

func optionalText(field string, value *string) error {
	if value == nil {
		return nil
	}
	return requireText(field, *value)
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return model.NewValidationError("email", "is not a valid address")
	}
	return nil
}

func validatePositive(field string, value int64) error {
	if value <= 0 {
		return model.NewValidationError(field, "must be a positive id")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
