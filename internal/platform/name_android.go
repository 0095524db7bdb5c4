//go:build android

package platform

func platformName() string {
	return "Android"
}
