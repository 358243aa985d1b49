package reservation

import (
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/validators"
)

// Fields is the full reservation payload.
type Fields struct {
	ClientID string
	Vehicle  string
	Service  string
	Status   string
}

// validateFields runs the shared checks for create and update. The client id
// only has to look like a store identifier; whether the client exists is not
// checked on writes, only resolved on reads.
func validateFields(in Fields) error {
	if in.ClientID == "" || in.Vehicle == "" || in.Service == "" || in.Status == "" {
		return httperr.Invalid("missing_fields", "All fields are required")
	}

	if !validators.IsValidObjectID(in.ClientID) {
		return httperr.Invalid("invalid_client_id", "Invalid client ID format")
	}

	if strings.TrimSpace(in.Vehicle) == "" {
		return httperr.Invalid("invalid_vehicle", "Vehicle cannot be empty")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Vehicle)) > 200 {
		return httperr.Invalid("vehicle_too_long", "Vehicle cannot exceed 200 characters")
	}

	if strings.TrimSpace(in.Service) == "" {
		return httperr.Invalid("invalid_service", "Service cannot be empty")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Service)) > 350 {
		return httperr.Invalid("service_too_long", "Service cannot exceed 350 characters")
	}

	if !validators.IsValidStatus(strings.TrimSpace(in.Status)) {
		return httperr.Invalid("invalid_status",
			"Status must be one of: "+strings.Join(validators.Statuses, ", "))
	}

	return nil
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

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
