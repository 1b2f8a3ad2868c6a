// Package osutil holds operating system constants.
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)
