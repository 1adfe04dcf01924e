// Package record persists the per-namespace contact record as two scalar
// string values in an external key-value store: the canonical phone number
// and a base-10 change counter.
package record

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("record: key not found")

// Store is the minimal contract against the external KV store: scalar string
// reads and writes. Implementations must return ErrNotFound for absent keys
// so callers can tell "never written" from "store broken".
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// PhoneKey returns the key holding a namespace's canonical phone number.
func PhoneKey(ns string) string {
	return fmt.Sprintf("%s:phone_number", ns)
}

// ChangeCountKey returns the key holding a namespace's change counter.
func ChangeCountKey(ns string) string {
	return fmt.Sprintf("%s:change_count", ns)
}
