// Package uuidver wraps github.com/google/uuid values in one type per
// generation scheme, so the scheme is picked at compile time.
package uuidver

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrVersionMismatch is returned when a UUID is wrapped into a variant that
// did not produce it.
var ErrVersionMismatch = errors.New("uuid version mismatch")

// Version is the read-only view shared by every variant.
type Version interface {
	// UUID returns a copy of the wrapped identifier.
	UUID() uuid.UUID
	// Bytes returns a fresh 16-byte slice.
	Bytes() []byte
	String() string
	IsZero() bool
}

// Kind is the closed set of variants.
type Kind interface {
	V1 | V3 | V4 | V5 | V6 | V7 | Nil
	Version
}

// New generates a T with its variant's default constructor. Errors from the
// generator are returned unchanged.
func New[T Kind]() (T, error) {
	var (
		zero T
		v    any
		err  error
	)

	switch any(zero).(type) {
	case V1:
		v, err = NewV1()
	case V3:
		v = NewV3()
	case V4:
		v, err = NewV4()
	case V5:
		v = NewV5()
	case V6:
		v, err = NewV6()
	case V7:
		v, err = NewV7()
	case Nil:
		v = NewNil()
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Wrap checks that u was produced by T's scheme and wraps it. Versioned
// variants also require the RFC 4122 variant bits.
func Wrap[T Kind](u uuid.UUID) (T, error) {
	var (
		zero T
		v    any
		err  error
	)

	switch any(zero).(type) {
	case V1:
		v, err = WrapV1(u)
	case V3:
		v, err = WrapV3(u)
	case V4:
		v, err = WrapV4(u)
	case V5:
		v, err = WrapV5(u)
	case V6:
		v, err = WrapV6(u)
	case V7:
		v, err = WrapV7(u)
	case Nil:
		v, err = WrapNil(u)
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Parse decodes s with uuid.Parse and wraps the result as T.
func Parse[T Kind](s string) (T, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return Wrap[T](u)
}

// VersionOf reports the version nibble carried by T. Nil reports 0.
func VersionOf[T Kind]() uuid.Version {
	var zero T
	switch any(zero).(type) {
	case V1:
		return 1
	case V3:
		return 3
	case V4:
		return 4
	case V5:
		return 5
	case V6:
		return 6
	case V7:
		return 7
	default:
		return 0
	}
}

// Field logs v as an object with id and version keys.
func Field(key string, v Version) zap.Field {
	return zap.Object(key, payload{v.UUID()})
}

func expectVersion(u uuid.UUID, want uuid.Version) error {
	if got := u.Version(); got != want {
		return fmt.Errorf("%w: want v%d, got v%d", ErrVersionMismatch, want, got)
	}
	if v := u.Variant(); v != uuid.RFC4122 {
		return fmt.Errorf("%w: want RFC 4122 variant, got %s", ErrVersionMismatch, v)
	}
	return nil
}
