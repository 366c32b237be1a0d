package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/services"
	"newskoop/newsroom/internal/workflow"
)

var validate = validator.New()

// bind decodes the JSON body into dst and validates it.
func bind(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.NewValidationError("body", "invalid JSON payload")
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return services.NewValidationError(fieldErrs[0].Field(), "failed validation on '"+fieldErrs[0].Tag()+"'")
		}
		return services.NewValidationError("body", "validation failed")
	}
	return nil
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var invalidTransition *workflow.ErrInvalidTransition

	switch {
	case services.IsValidation(err):
		common.RespondError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &invalidTransition):
		common.RespondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrDuplicateTranslation):
		common.RespondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrPermissionDenied):
		common.RespondError(w, "permission denied", http.StatusForbidden)
	case errors.Is(err, services.ErrNotFound):
		common.RespondError(w, "not found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountInactive),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked):
		common.RespondError(w, "authentication failed", http.StatusUnauthorized)
	default:
		logging.Error("request failed",
			"request_id", auth.GetRequestID(r.Context()),
			"endpoint", r.URL.Path,
			"error", err.Error())
		common.RespondError(w, "internal server error", http.StatusInternalServerError)
	}
}
