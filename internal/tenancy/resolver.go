package tenancy

import (
	"net/http"
	"strings"
)

// DefaultNamespace is the terminal fallback when neither an explicit
// namespace nor a request host is available.
const DefaultNamespace = "default"

// hostPrefix marks namespaces derived from the request host. Host-derived
// namespaces are unstable across deployments that share one store: a preview
// host and a production host write to different records.
const hostPrefix = "host:"

// Resolve picks the namespace for a request. An explicitly configured
// namespace always wins; otherwise the request host identifies the
// deployment; otherwise DefaultNamespace. The client never chooses the
// namespace.
func Resolve(explicit string, r *http.Request) string {
	if ns := strings.TrimSpace(explicit); ns != "" {
		return ns
	}
	if r != nil {
		if host := strings.TrimSpace(r.Host); host != "" {
			return hostPrefix + host
		}
	}
	return DefaultNamespace
}
