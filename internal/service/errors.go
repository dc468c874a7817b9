package service

import (
	"errors"
	"fmt"
)

// ErrStore marks a failed storage operation (the PersistenceFailure kind).
// Handlers map it to a 500; anything else coming out of a service — other
// than repository.ErrNotFound — is treated as caller input error (400).
var ErrStore = errors.New("storage operation failed")

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}
