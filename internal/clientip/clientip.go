// Package clientip resolves the address of the requesting client behind
// reverse proxies: the first X-Forwarded-For entry wins, then X-Real-IP,
// then the transport peer.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

func FromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return rip
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
