package uuidver

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

// payload carries the identifier for every variant. It is embedded unexported
// so the value can be read through the promoted methods but never reassigned
// from outside the package.
type payload struct{ u uuid.UUID }

func (p payload) UUID() uuid.UUID { return p.u }

func (p payload) Bytes() []byte {
	b := make([]byte, len(p.u))
	copy(b, p.u[:])
	return b
}

func (p payload) String() string { return p.u.String() }
func (p payload) IsZero() bool   { return p.u == uuid.Nil }

func (p payload) MarshalText() ([]byte, error) { return p.u.MarshalText() }

// Value stores the canonical string form.
func (p payload) Value() (driver.Value, error) { return p.u.String(), nil }

func (p payload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", p.u.String())
	enc.AddUint8("version", uint8(p.u.Version()))
	return nil
}

// V1 is a time-based UUID built from a timestamp and the node id.
type V1 struct{ payload }

// NewV1 generates a version 1 UUID using the process-wide node id and clock
// sequence.
func NewV1() (V1, error) {
	u, err := uuid.NewUUID()
	if err != nil {
		return V1{}, err
	}
	return V1{payload{u}}, nil
}

// V3 is a name-based UUID hashed with MD5.
type V3 struct{ payload }

// NewV3 hashes an empty name in the DNS namespace.
func NewV3() V3 {
	return NewV3From(uuid.NameSpaceDNS, nil)
}

func NewV3From(namespace uuid.UUID, name []byte) V3 {
	return V3{payload{uuid.NewMD5(namespace, name)}}
}

// V4 is a random UUID.
type V4 struct{ payload }

func NewV4() (V4, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return V4{}, err
	}
	return V4{payload{u}}, nil
}

// V5 is a name-based UUID hashed with SHA-1.
type V5 struct{ payload }

// NewV5 hashes an empty name in the DNS namespace.
func NewV5() V5 {
	return NewV5From(uuid.NameSpaceDNS, nil)
}

func NewV5From(namespace uuid.UUID, name []byte) V5 {
	return V5{payload{uuid.NewSHA1(namespace, name)}}
}

// V6 is a time-based UUID with the timestamp fields reordered so that the
// byte order follows generation order.
type V6 struct{ payload }

func NewV6() (V6, error) {
	u, err := uuid.NewV6()
	if err != nil {
		return V6{}, err
	}
	return V6{payload{u}}, nil
}

// V7 is a time-ordered UUID with a Unix millisecond timestamp in the leading
// 48 bits.
type V7 struct{ payload }

func NewV7() (V7, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return V7{}, err
	}
	return V7{payload{u}}, nil
}

// Nil is the all-zero UUID. Its zero value is ready to use.
type Nil struct{ payload }

func NewNil() Nil { return Nil{payload{uuid.Nil}} }

func WrapV1(u uuid.UUID) (V1, error) {
	if err := expectVersion(u, 1); err != nil {
		return V1{}, err
	}
	return V1{payload{u}}, nil
}

func WrapV3(u uuid.UUID) (V3, error) {
	if err := expectVersion(u, 3); err != nil {
		return V3{}, err
	}
	return V3{payload{u}}, nil
}

func WrapV4(u uuid.UUID) (V4, error) {
	if err := expectVersion(u, 4); err != nil {
		return V4{}, err
	}
	return V4{payload{u}}, nil
}

func WrapV5(u uuid.UUID) (V5, error) {
	if err := expectVersion(u, 5); err != nil {
		return V5{}, err
	}
	return V5{payload{u}}, nil
}

func WrapV6(u uuid.UUID) (V6, error) {
	if err := expectVersion(u, 6); err != nil {
		return V6{}, err
	}
	return V6{payload{u}}, nil
}

func WrapV7(u uuid.UUID) (V7, error) {
	if err := expectVersion(u, 7); err != nil {
		return V7{}, err
	}
	return V7{payload{u}}, nil
}

// WrapNil accepts only uuid.Nil.
func WrapNil(u uuid.UUID) (Nil, error) {
	if u != uuid.Nil {
		return Nil{}, fmt.Errorf("%w: want nil uuid, got v%d", ErrVersionMismatch, u.Version())
	}
	return NewNil(), nil
}
