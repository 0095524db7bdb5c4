package query

const (
	// MethodGetPlatformVersion asks for "<PlatformName> <osVersion>".
	MethodGetPlatformVersion = "getPlatformVersion"
	// MethodGetAppVersion asks for the installed application's version metadata.
	MethodGetAppVersion = "getAppVersion"
)

// Request names a single operation on the channel.
type Request struct {
	// Method is the operation identifier.
	Method string
}

// NewRequest builds a request for the provided operation name.
func NewRequest(method string) *Request {
	return &Request{
		Method: method,
	}
}

// IsKnownMethod reports whether the operation name is served by the channel.
func IsKnownMethod(method string) bool {
	switch method {
	case MethodGetPlatformVersion, MethodGetAppVersion:
		return true
	default:
		return false
	}
}
