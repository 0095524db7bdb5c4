//go:build !linux && !darwin && !windows

package platform

import "runtime"

// platformName falls back to GOOS for targets without a dedicated name.
func platformName() string {
	return runtime.GOOS
}
