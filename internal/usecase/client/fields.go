package client

import (
	"math"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/validators"
)

// Fields is the full client payload. Age is a pointer so a missing or zero
// age trips the required-fields check like any empty string.
type Fields struct {
	Name     string
	Password string
	Email    string
	Phone    string
	Age      *float64
}

// validateFields runs the shared field checks for create and update, in a
// fixed order, stopping at the first failure.
func validateFields(in Fields) error {
	if in.Name == "" || in.Password == "" || in.Email == "" || in.Phone == "" ||
		in.Age == nil || *in.Age == 0 {
		return httperr.Invalid("missing_fields", "All fields are required")
	}

	if !validators.IsValidName(in.Name) {
		return httperr.Invalid("invalid_name",
			"Name must contain only letters and spaces, and be at least 2 characters long")
	}
	if utf8.RuneCountInString(in.Name) > 100 {
		return httperr.Invalid("name_too_long", "Name cannot exceed 100 characters")
	}

	if !validators.IsValidEmail(in.Email) {
		return httperr.Invalid("invalid_email", "Please provide a valid email address")
	}
	if utf8.RuneCountInString(in.Email) > 100 {
		return httperr.Invalid("email_too_long", "Email cannot exceed 100 characters")
	}

	if !validators.IsValidPassword(in.Password) {
		return httperr.Invalid("invalid_password",
			"Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	if utf8.RuneCountInString(in.Password) > 100 {
		return httperr.Invalid("password_too_long", "Password cannot exceed 100 characters")
	}

	if !validators.IsValidPhone(in.Phone) {
		return httperr.Invalid("invalid_phone", "Please provide a valid phone number")
	}

	if *in.Age != math.Trunc(*in.Age) {
		return httperr.Invalid("invalid_age", "Age must be a whole number")
	}
	if *in.Age < 15 || *in.Age > 80 {
		return httperr.Invalid("age_out_of_range", "Age must be between 15 and 80 years")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseID rejects anything that is not a 24-hex-character identifier before
// the store is ever touched.
func parseID(id string) (primitive.ObjectID, error) {
	if !validators.IsValidObjectID(id) {
		return primitive.NilObjectID, httperr.Invalid("invalid_id", "Invalid ID format")
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, httperr.Invalid("invalid_id", "Invalid ID format")
	}
	return oid, nil
}
