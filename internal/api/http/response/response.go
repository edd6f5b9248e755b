// Package response writes JSON bodies and maps domain errors to HTTP statuses.
package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/clinic-server/internal/model"
)

// RequestIDHeader carries the request id to and from clients.
const RequestIDHeader = "X-Request-Id"

// StatusClientClosedRequest is reported when the client went away before the
// response was written.
const StatusClientClosedRequest = 499

// APIError is the body of every error response.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse is the envelope around APIError.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// BadRequestError is a request that could not be decoded or parsed.
type BadRequestError struct {
	Message string
}

// BadRequest creates a BadRequestError.
func BadRequest(message string) error {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// WriteJSON writes value as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// WriteError maps err and writes the error envelope. Token failures also get a
// WWW-Authenticate challenge.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get(RequestIDHeader); rid != "" {
		resp.Error.RequestID = rid
	}

	var authErr *model.AuthError
	if errors.As(err, &authErr) && !errors.Is(err, model.ErrInvalidCredentials) {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	WriteJSON(w, status, resp)
}

// ToHTTP converts err into a status code and an error envelope. Details of
// unexpected errors never reach the client.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := classify(err)
	return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

func classify(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, "internal", "internal error"
	}

	var authErr *model.AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized, authCode(authErr.Kind), authErr.Reason
	}

	var badReq *BadRequestError
	if errors.As(err, &badReq) {
		return http.StatusBadRequest, "bad_request", badReq.Message
	}

	var valErr *model.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusUnprocessableEntity, "validation_failed", valErr.Error()
	}

	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict, "already_exists", "already exists"
	case errors.Is(err, model.ErrInvalidReference):
		return http.StatusConflict, "invalid_reference", "referenced resource does not exist or is still in use"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "request timed out"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "request canceled"
	}

	return http.StatusInternalServerError, "internal", "internal error"
}

func authCode(kind error) string {
	switch {
	case errors.Is(kind, model.ErrExpiredToken):
		return "expired_token"
	case errors.Is(kind, model.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(kind, model.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "invalid_token"
	}
}
