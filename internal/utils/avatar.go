package utils

import "net/url"

// DefaultAvatarBaseURL is the generated-avatar service used when a client or
// professional has no uploaded avatar.
const DefaultAvatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg"

// FallbackAvatarURL builds a deterministic avatar URL seeded by name. The same
// name always yields the same avatar.
func FallbackAvatarURL(baseURL, name string) string {
	if baseURL == "" {
		baseURL = DefaultAvatarBaseURL
	}
	return baseURL + "?seed=" + url.QueryEscape(name)
}
