package paths

import (
	"github.com/otomatty/shinsei/pkg/errors"
)

// Roles a validated name can play, recorded on validation errors.
const (
	RoleDatastore = "datastore"
	RoleKey       = "key"
)

// ValidateName ensures a datastore or key name is safe for use as a
// path component. Names must:
// - Not be empty
// - Contain only ASCII lowercase letters and hyphens
//
// The charset rule excludes path separators and "."/"..", so a valid
// name can never escape its datastore directory.
func ValidateName(value, role string) error {
	if value == "" {
		return errors.Newf(errors.ErrInvalidName, "%s name cannot be empty", role).
			WithDetail("value", value).
			WithDetail("role", role)
	}

	for _, c := range value {
		if (c < 'a' || c > 'z') && c != '-' {
			return errors.Newf(errors.ErrInvalidName,
				"%s (%s) contains invalid characters", role, value).
				WithDetail("value", value).
				WithDetail("role", role)
		}
	}

	return nil
}
