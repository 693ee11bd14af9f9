package storage

import (
	"context"
	"errors"
)

// ErrEmptySlot is returned when no document has ever been saved.
var ErrEmptySlot = errors.New("storage: document slot is empty")

// DocumentSlot is the tier-1 persistence surface: one durable slot holding
// the serialized application document. It is the source of truth at startup.
type DocumentSlot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, document []byte) error
}
