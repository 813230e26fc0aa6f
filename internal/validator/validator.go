package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

// bodyField is the field name reported when the payload itself is unusable
const bodyField = "body"

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	// Report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// payload is a decoded JSON object whose members are still raw
type payload map[string]json.RawMessage

// decodeObject parses body as a JSON object
func decodeObject(body []byte) (payload, *serviceerror.ServiceError) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, serviceerror.ValidationFailure([]serviceerror.FieldError{
			{Field: bodyField, Message: "must be a JSON object"},
		})
	}

	var p payload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, serviceerror.ValidationFailure([]serviceerror.FieldError{
			{Field: bodyField, Message: "must be a valid JSON object"},
		})
	}
	return p, nil
}

// stringField reads an optional string member. Missing and null members yield nil.
func (p payload) stringField(name string, typeErrors map[string]string) *string {
	raw, ok := p[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		typeErrors[name] = "must be a string"
		return nil
	}
	return &s
}

// collectErrors runs struct rules and merges them with type errors in field order
func collectErrors(v interface{}, order []string, typeErrors map[string]string) []serviceerror.FieldError {
	byField := make(map[string]string, len(typeErrors))
	for field, msg := range typeErrors {
		byField[field] = msg
	}

	if err := validate.Struct(v); err != nil {
		if verrs, ok := err.(playground.ValidationErrors); ok {
			for _, fe := range verrs {
				if _, seen := byField[fe.Field()]; seen {
					continue
				}
				byField[fe.Field()] = ruleMessage(fe)
			}
		} else {
			byField[bodyField] = err.Error()
		}
	}

	details := make([]serviceerror.FieldError, 0, len(byField))
	for _, field := range order {
		if msg, ok := byField[field]; ok {
			details = append(details, serviceerror.FieldError{Field: field, Message: msg})
			delete(byField, field)
		}
	}
	if msg, ok := byField[bodyField]; ok {
		details = append(details, serviceerror.FieldError{Field: bodyField, Message: msg})
	}
	return details
}

func ruleMessage(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
