package helpers

import (
	"errors"
	"io"
	"net/http"

	"eventory/internal/schema"
)

// MaxBodyBytes caps the size of JSON request bodies.
const MaxBodyBytes = 1 << 20

// ReadBody reads the whole request body, up to MaxBodyBytes. On failure it
// writes a 400 JSON error and returns false.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "request body too large")
			return nil, false
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "could not read request body")
		return nil, false
	}
	return body, true
}

// DecodeAndValidate reads the request body and runs parse over it. A
// *schema.ValidationError is written as a 400 listing every issue; any other
// parse error is written as a plain 400. Callers should return immediately
// when ok is false.
func DecodeAndValidate[T any](w http.ResponseWriter, r *http.Request, parse func([]byte) (T, error)) (v T, ok bool) {
	body, ok := ReadBody(w, r)
	if !ok {
		return v, false
	}
	v, err := parse(body)
	if err != nil {
		if verr, isValidation := schema.AsValidationError(err); isValidation {
			WriteValidationError(w, verr)
			return v, false
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return v, false
	}
	return v, true
}
