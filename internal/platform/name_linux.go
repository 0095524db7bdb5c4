//go:build linux && !android

package platform

func platformName() string {
	return "Linux"
}
