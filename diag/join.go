package diag

import "errors"

// joinErrors is a thin wrapper over errors.Join kept in its own file so the
// rest of the package reads as pure accumulator logic.
func joinErrors(errs []error) error {
	return errors.Join(errs...)
}
