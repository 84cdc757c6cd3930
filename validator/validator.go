package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/GovCraft/typeid-suffix/uuidver"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const canonicalLen = 36

var (
	v        *validator.Validate
	uuidType = reflect.TypeOf(uuid.UUID{})
)

var versionRules = map[string]validator.Func{
	"uuid_v1":  versionRule[uuidver.V1],
	"uuid_v3":  versionRule[uuidver.V3],
	"uuid_v4":  versionRule[uuidver.V4],
	"uuid_v5":  versionRule[uuidver.V5],
	"uuid_v6":  versionRule[uuidver.V6],
	"uuid_v7":  versionRule[uuidver.V7],
	"uuid_nil": versionRule[uuidver.Nil],
}

func init() {
	v = validator.New()
	for tag, fn := range versionRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validator: register %s: %v", tag, err))
		}
	}
}

func Instance() *validator.Validate {
	return v
}

// Validate returns failed fields mapped to error codes, or nil when s is valid.
// Nested fields are keyed by their path below the root struct, e.g. "Order.ID".
func Validate(s any) map[string]string {
	if err := v.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string, len(errs))
			for _, e := range errs {
				out[fieldPath(e)] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

func fieldPath(e validator.FieldError) string {
	ns := e.StructNamespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// versionRule accepts string fields holding a T in the canonical 36-char
// form, uuid.UUID fields and uuidver wrappers whose value is a T.
func versionRule[T uuidver.Kind](fl validator.FieldLevel) bool {
	field := fl.Field()

	var u uuid.UUID
	switch {
	case field.Kind() == reflect.String:
		s := field.String()
		if len(s) != canonicalLen {
			return false
		}
		parsed, err := uuid.Parse(s)
		if err != nil {
			return false
		}
		u = parsed
	case field.Type() == uuidType:
		u = field.Interface().(uuid.UUID)
	case field.CanInterface():
		id, ok := field.Interface().(uuidver.Version)
		if !ok {
			return false
		}
		u = id.UUID()
	default:
		return false
	}

	_, err := uuidver.Wrap[T](u)
	return err == nil
}
