// SPDX-License-Identifier: MIT

// Package errs holds the error helpers shared by mapio and the command line:
// context with a stack trace (pkg/errors) and collection of several failures
// into one error (go-multierror).
package errs

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Context prefixes err with a formatted message. A nil err stays nil.
func Context(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Collect adds err to acc and returns the collection. A nil err leaves acc
// untouched, so Collect(nil, nil) is nil. Any non-nil result is a
// *multierror.Error, even with a single entry.
func Collect(acc, err error) error {
	if err == nil {
		return acc
	}

	return multierror.Append(acc, err)
}
