// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/avdva/fixedpoint/internal/core"
)

// Null is an optional value. The zero Null is invalid, i.e. has no value.
// It is marshaled into json null when invalid.
type Null[T any] struct {
	V     T
	Valid bool
}

// NullOf returns a valid Null holding v.
func NullOf[T any](v T) Null[T] {
	return Null[T]{V: v, Valid: true}
}

// Get returns the value and its validity.
func (n Null[T]) Get() (T, bool) {
	return n.V, n.Valid
}

// ValueOr returns the value if it is valid, def otherwise.
func (n Null[T]) ValueOr(def T) T {
	if !n.Valid {
		return def
	}
	return n.V
}

func (n Null[T]) String() string {
	if !n.Valid {
		return "null"
	}
	return fmt.Sprint(n.V)
}

// MarshalJSON implements json.Marshaler.
func (n Null[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return core.JSONNull, nil
	}
	return json.Marshal(n.V)
}

// UnmarshalJSON implements json.Unmarshaler.
// null makes n invalid. n is left unchanged on error.
func (n *Null[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), core.JSONNull) {
		*n = Null[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = NullOf(v)
	return nil
}
