//go:build windows

package utils

import (
	"github.com/hectane/go-acl"
	"golang.org/x/sys/windows"
)

// SetFilePermission sets the permission of a non executable file.
func SetFilePermission(path string, perm FSPermission) error {
	switch perm {
	case AdminOnlyPermission:
		// Set only admin rights, remove all others.
		return acl.Apply(path, true, false, acl.GrantName(windows.GENERIC_ALL|windows.STANDARD_RIGHTS_ALL, "Administrators"))
	case PublicReadPermission:
		// Set admin rights and read rights for users, remove all others.
		if err := acl.Apply(path, true, false, acl.GrantName(windows.GENERIC_ALL|windows.STANDARD_RIGHTS_ALL, "Administrators")); err != nil {
			return err
		}
		return acl.Apply(path, false, false, acl.GrantName(windows.GENERIC_READ, "Users"))
	case PublicWritePermission:
		// Full control to admin and regular users. Guest users will not have access.
		if err := acl.Apply(path, true, false, acl.GrantName(windows.GENERIC_ALL|windows.STANDARD_RIGHTS_ALL, "Administrators")); err != nil {
			return err
		}
		return acl.Apply(path, false, false, acl.GrantName(windows.GENERIC_ALL|windows.STANDARD_RIGHTS_ALL, "Users"))
	}
	return nil
}
