//go:build !unix && !windows

package writable

import "os"

func check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o222 == 0 {
		return ErrReadOnly
	}
	return nil
}
