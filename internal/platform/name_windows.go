//go:build windows

package platform

func platformName() string {
	return "Windows"
}
