// Package platform exposes compile-time flags for the operating systems
// kern-comm-lib targets.
package platform

import "runtime"

const (
	// IsWindows is true when compiled for Windows.
	IsWindows = runtime.GOOS == "windows"

	// IsDarwin is true when compiled for macOS.
	IsDarwin = runtime.GOOS == "darwin"

	// IsLinux is true when compiled for Linux.
	IsLinux = runtime.GOOS == "linux"
)
