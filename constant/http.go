package constant

// HeaderConstants defines HTTP header names used in requests
const (
	// UserAgentHeader defines the header name for the client identification in requests
	UserAgentHeader = "User-Agent"
)

// ClientConstants defines identification values sent with every request
const (
	// DefaultUserAgent is the identification sent when no custom client is configured
	DefaultUserAgent = "lib-fetch-go/1.0"
)
