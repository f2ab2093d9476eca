// Package schema decodes untyped JSON payloads into typed request values and
// validates them against struct-tag rules, reporting every violated field.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"eventory/internal/domain"
)

// Issue codes reported in ValidationError.
const (
	CodeInvalidJSON      = "invalid_json"
	CodeInvalidType      = "invalid_type"
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeInvalidString    = "invalid_string"
	CodeInvalidEnumValue = "invalid_enum_value"
	CodeUnrecognizedKeys = "unrecognized_keys"
)

// Issue is one violated rule. Path is the JSON key path of the offending field; empty for the payload itself.
// swagger:model Issue
type Issue struct {
	Path    []string `json:"path"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
}

// Field returns the top-level key of the issue, or "" for payload-level issues.
func (i Issue) Field() string {
	if len(i.Path) == 0 {
		return ""
	}
	return i.Path[0]
}

// ValidationError lists every issue found in a payload.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if f := is.Field(); f != "" {
			parts = append(parts, f+": "+is.Message)
			continue
		}
		parts = append(parts, is.Message)
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match validation failures with errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// Has reports whether any issue concerns field.
func (e *ValidationError) Has(field string) bool {
	for _, is := range e.Issues {
		if is.Field() == field {
			return true
		}
	}
	return false
}

// Without drops the issues for the given fields. It returns nil when nothing is left.
func (e *ValidationError) Without(fields ...string) *ValidationError {
	if e == nil {
		return nil
	}
	var kept []Issue
	for _, is := range e.Issues {
		drop := false
		for _, f := range fields {
			if is.Field() == f {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, is)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &ValidationError{Issues: kept}
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Validator is implemented by schemas whose rules go beyond struct tags.
type Validator interface {
	Validate() error
}

// messenger is implemented by schemas that override the default issue messages.
// Keys are "<json field>.<tag>".
type messenger interface {
	messages() map[string]string
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("attendance", func(fl validator.FieldLevel) bool {
		return domain.Attendance(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the struct-tag rules of v and returns a *ValidationError listing every failure.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}
	var custom map[string]string
	if m, ok := v.(messenger); ok {
		custom = m.messages()
	}
	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, issueFor(fe, custom))
	}
	return &ValidationError{Issues: issues}
}

func issueFor(fe validator.FieldError, custom map[string]string) Issue {
	is := Issue{Path: []string{fe.Field()}}
	switch fe.Tag() {
	case "required":
		is.Code, is.Message = CodeInvalidType, "Required"
	case "min":
		is.Code, is.Message = CodeTooSmall, fmt.Sprintf("Must contain at least %s character(s)", fe.Param())
	case "max":
		is.Code, is.Message = CodeTooBig, fmt.Sprintf("Must contain at most %s character(s)", fe.Param())
	case "email":
		is.Code, is.Message = CodeInvalidString, "Invalid email"
	case "hexcolor":
		is.Code, is.Message = CodeInvalidString, "Invalid hex color"
	case "attendance":
		is.Code, is.Message = CodeInvalidEnumValue, attendanceMessage()
	default:
		is.Code, is.Message = CodeInvalidString, "Invalid value"
	}
	if msg, ok := custom[fe.Field()+"."+fe.Tag()]; ok {
		is.Message = msg
	}
	return is
}

func attendanceMessage() string {
	quoted := make([]string, len(domain.Attendances))
	for i, a := range domain.Attendances {
		quoted[i] = "'" + string(a) + "'"
	}
	return "Invalid enum value. Expected " + strings.Join(quoted, " | ")
}

// Decode unmarshals the JSON object in data into dest, which must be a pointer to a struct.
// Every key whose value has the wrong JSON type is reported, not just the first.
// With strict, keys dest does not declare are reported as unrecognized; otherwise they are ignored.
func Decode(data []byte, dest any, strict bool) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode: destination must be a pointer to a struct, got %T", dest)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ValidationError{Issues: []Issue{{
			Path:    []string{},
			Code:    CodeInvalidJSON,
			Message: "Expected a JSON object",
		}}}
	}

	elem := rv.Elem()
	fields := jsonFields(elem.Type())
	var issues []Issue
	if strict {
		known := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			known[f.name] = struct{}{}
		}
		var unknown []string
		for k := range raw {
			if _, ok := known[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			issues = append(issues, Issue{
				Path:    []string{k},
				Code:    CodeUnrecognizedKeys,
				Message: fmt.Sprintf("Unrecognized key: %q", k),
			})
		}
	}
	for _, f := range fields {
		msg, ok := raw[f.name]
		if !ok {
			continue
		}
		fv := elem.Field(f.index)
		if err := json.Unmarshal(msg, fv.Addr().Interface()); err != nil {
			fv.Set(reflect.Zero(fv.Type()))
			issues = append(issues, Issue{
				Path:    []string{f.name},
				Code:    CodeInvalidType,
				Message: "Expected " + describe(fv.Type()),
			})
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Parse decodes data into dest and validates it. Decode and rule issues are reported together;
// a field with a decode issue is not reported again by the rules.
func Parse(data []byte, dest any, strict bool) error {
	decodeErr := Decode(data, dest, strict)
	var decoded *ValidationError
	if decodeErr != nil {
		var ok bool
		if decoded, ok = AsValidationError(decodeErr); !ok {
			return decodeErr
		}
		if len(decoded.Issues) == 1 && decoded.Issues[0].Code == CodeInvalidJSON {
			return decoded
		}
	}

	var ruleErr error
	if v, ok := dest.(Validator); ok {
		ruleErr = v.Validate()
	} else {
		ruleErr = Validate(reflect.ValueOf(dest).Elem().Interface())
	}
	rules, _ := AsValidationError(ruleErr)
	if ruleErr != nil && rules == nil {
		return ruleErr
	}

	if decoded == nil {
		if rules == nil {
			return nil
		}
		return rules
	}
	if rules != nil {
		for _, is := range rules.Issues {
			if !decoded.Has(is.Field()) {
				decoded.Issues = append(decoded.Issues, is)
			}
		}
	}
	return decoded
}

type jsonField struct {
	name  string
	index int
}

func jsonFields(t reflect.Type) []jsonField {
	fields := make([]jsonField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, jsonField{name: name, index: i})
	}
	return fields
}

func describe(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}
