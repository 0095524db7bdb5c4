//go:build darwin && !ios

package platform

func platformName() string {
	return "macOS"
}
