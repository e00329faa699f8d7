package httpapi

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Checked in order before falling back to the socket address.
var clientIPHeaders = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}

// resolveClientIP is used for request logs only and is never trusted for
// access decisions.
func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip, ok := parseClientIP(r.Header.Get(header)); ok {
			return ip
		}
	}
	if ip, ok := parseClientIP(r.RemoteAddr); ok {
		return ip
	}
	return ""
}

// parseClientIP takes the first hop of a forwarded list and drops any port.
func parseClientIP(raw string) (string, bool) {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}

	addr, err := netip.ParseAddr(strings.Trim(value, "[]"))
	if err != nil {
		return "", false
	}
	return addr.Unmap().String(), true
}
