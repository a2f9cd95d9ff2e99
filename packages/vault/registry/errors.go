package registry

import "github.com/cockroachdb/errors"

var (
	// ErrUnauthorized is returned if a caller other than the administrative principal tries to change the Registry.
	ErrUnauthorized = errors.New("caller is not the administrative principal")
)
