package handler

import (
	"errors"
	"net/http"

	"unifarm/internal/core"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// statusFor maps a service error to an HTTP status and the detail shown to the client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidCurrency),
		errors.Is(err, core.ErrInvalidLevel):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrInvalidInitData):
		return http.StatusUnauthorized, "init data could not be verified"
	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrInsufficientFunds):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "unexpected error occurred"
	}
}
