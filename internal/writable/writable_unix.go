//go:build unix

package writable

import "golang.org/x/sys/unix"

func check(path string) error {
	switch err := unix.Access(path, unix.W_OK); err {
	case nil:
		return nil
	case unix.EACCES, unix.EPERM, unix.EROFS:
		return ErrReadOnly
	default:
		return err
	}
}
