package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
)

// validationError turns validator failures into a single 400 response whose
// message lists every failed field.
func validationError(err error) *echo.HTTPError {
	var messages []string
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			messages = append(messages, fieldMessage(fe))
		}
	} else {
		messages = append(messages, err.Error())
	}

	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: strings.Join(messages, "; "),
		Code:  "VALIDATION_FAILED",
	})
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
