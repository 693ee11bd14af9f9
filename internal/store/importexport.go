package store

import (
	"zulaflow/internal/clock"
	"zulaflow/internal/storage"
)

// Import replaces the whole document with the decoded snapshot, defaulting
// any missing field. It is all-or-nothing: a malformed document returns an
// error and leaves current state untouched.
func (s *Store) Import(raw []byte) error {
	state, err := storage.DecodeDocument(raw)
	if err != nil {
		return err
	}
	s.state = state
	s.persist()
	// An imported document may carry a stale lastLogin; reconcile it the
	// same way a fresh load would.
	s.CheckRollover()
	return nil
}

// Export serializes the full document with lastLogin refreshed to today.
// The output round-trips through Import.
func (s *Store) Export() ([]byte, error) {
	return storage.EncodeDocument(cloneState(s.state), clock.Today(s.clock))
}
