//go:build ios

package platform

func platformName() string {
	return "iOS"
}
