// Package tenancy resolves and carries the record namespace for a request.
// Every request belongs to exactly one namespace; records in different
// namespaces never see each other.
package tenancy

import "context"

type ctxKey string

const namespaceKey ctxKey = "contactline.namespace"

// WithNamespace stores the namespace in context.
func WithNamespace(ctx context.Context, ns string) context.Context {
	return context.WithValue(ctx, namespaceKey, ns)
}

// NamespaceFromContext extracts the namespace if present.
func NamespaceFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(namespaceKey)
	if val == nil {
		return "", false
	}
	ns, ok := val.(string)
	return ns, ok && ns != ""
}
