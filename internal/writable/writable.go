// Package writable reports whether the current process may overwrite a file.
//
// Replacing a file through a sibling temp file and a rename succeeds even when
// the file itself is read-only, as long as its directory is writable. Check
// asks the OS about the file so that read-only assets are left alone.
package writable

import "github.com/pkg/errors"

// ErrReadOnly is the cause of errors returned by Check for files that exist
// but may not be written.
var ErrReadOnly = errors.New("file is read-only")

// Check returns nil if path can be opened for writing.
func Check(path string) error {
	if err := check(path); err != nil {
		return errors.Wrapf(err, "cannot overwrite %s", path)
	}
	return nil
}
