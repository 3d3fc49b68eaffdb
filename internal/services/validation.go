package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invoicepay/backend/internal/models"
)

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{
		validator: validator.New(),
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// DecodeBody decodes a single JSON object from the request body into dst.
// The body is capped at 1 MB, unknown fields are rejected, and trailing
// content after the object is an error.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errors.New("Invalid request body")
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("Request body must only contain a single JSON object")
	}

	return nil
}

// SendJSON writes an envelope response with the given status code.
func SendJSON(w http.ResponseWriter, statusCode int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// SendPaymentRequired writes a 402 denial carrying the minted invoice.
func SendPaymentRequired(w http.ResponseWriter, resp *models.PaymentRequiredResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusPaymentRequired)
	json.NewEncoder(w).Encode(resp)
}

// SendErrorResponse sends a JSON error response in the envelope format.
// Validation errors, when present, are summarised in the message field.
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	resp := models.APIResponse{
		Success: false,
		Error:   message,
	}

	var verrs validator.ValidationErrors
	if errors.As(validationErr, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, err := range verrs {
			details = append(details, fmt.Sprintf("field %s failed on '%s' tag", err.Field(), err.Tag()))
		}
		resp.Message = strings.Join(details, "; ")
	}

	SendJSON(w, statusCode, resp)
}
