package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no record matched the identifier.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID means the identifier is not in the store's native key format.
	ErrInvalidID = errors.New("invalid record id")
)

func invalidID(id string, err error) error {
	return fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
}
