package kernel

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes",
)

// UUID identifies aggregates. It wraps github.com/google/uuid so that the nil UUID
// can be rejected by Validate.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	tableID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses any textual form accepted by uuid.Parse
// (plain, braced, urn-prefixed or without hyphens).
//
// Parameters:
//   - s: textual identifier, usually a path parameter or a request body field
//
// Returns:
//   - UUID: the parsed identifier; the nil UUID parses but fails Validate
//   - error: an "invalid UUID format" error wrapping the uuid.Parse failure
//
// Example:
//
//	id, err := kernel.UUIDFromString("urn:uuid:550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 550e8400-e29b-41d4-a716-446655440000
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16 byte slice. The nil UUID is rejected,
// which is how persisted identifiers are checked when rows are mapped back to aggregates.
//
// Parameters:
//   - b: exactly 16 bytes
//
// Returns:
//   - UUID: the identifier
//   - error: "invalid UUID format" for a wrong length, ErrUUIDIsNotConstructed
//     for sixteen zero bytes
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value (a copy).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// DistinctUUIDs returns ids without duplicates, keeping first occurrences in order.
// Repositories look up rows by the distinct set, so callers compare the result
// length with the number of rows found to detect unknown ids.
//
// Example:
//
//	kernel.DistinctUUIDs([]kernel.UUID{b, a, b}) // [b a]
func DistinctUUIDs(ids []UUID) []UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	distinct := make([]UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id.id]; ok {
			continue
		}
		seen[id.id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}
