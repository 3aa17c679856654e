//go:build windows

package writable

import "golang.org/x/sys/windows"

func check(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
		return ErrReadOnly
	}
	return nil
}
