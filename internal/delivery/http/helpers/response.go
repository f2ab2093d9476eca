package helpers

import (
	"encoding/json"
	"net/http"

	"eventory/internal/schema"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbidden     = "forbidden"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// User-facing messages shared by several endpoints.
const (
	MsgInvalidPayload = "Invalid Payload"
	MsgInternalError  = "Internal Server Error"
)

// ErrorResponse is the body of every non-2xx API response.
// Issues is set only for validation failures.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Issues  []schema.Issue `json:"error,omitempty"`
}

// SuccessResponse is the body of endpoints that return nothing but an acknowledgement.
// swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes an ErrorResponse with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Message: message, Code: code})
}

// WriteValidationError writes a 400 listing every issue in verr.
func WriteValidationError(w http.ResponseWriter, verr *schema.ValidationError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: MsgInvalidPayload,
		Code:    ErrCodeBadRequest,
		Issues:  verr.Issues,
	})
}

// WriteInternalError writes a 500 without any detail about the cause.
func WriteInternalError(w http.ResponseWriter) {
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, MsgInternalError)
}
