// Package permissions holds the single access rule of the API: anyone may
// read, only the owner may write.
package permissions

import "net/http"

// IsOwnerOrReadOnly reports whether a request using the given HTTP method
// may act on a record owned by owner. requester is the authenticated user
// id, zero for anonymous callers. Safe methods always pass; unsafe methods
// require requester == owner. Pure predicate, no side effects.
func IsOwnerOrReadOnly(method string, requester, owner uint) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return requester != 0 && requester == owner
}
