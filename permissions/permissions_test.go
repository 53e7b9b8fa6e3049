package permissions

import (
	"net/http"
	"testing"
)

func TestIsOwnerOrReadOnly(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		requester uint
		owner     uint
		want      bool
	}{
		{"anonymous read", http.MethodGet, 0, 1, true},
		{"non-owner read", http.MethodGet, 2, 1, true},
		{"head is safe", http.MethodHead, 0, 1, true},
		{"options is safe", http.MethodOptions, 0, 1, true},
		{"owner update", http.MethodPut, 1, 1, true},
		{"owner delete", http.MethodDelete, 1, 1, true},
		{"non-owner update", http.MethodPut, 2, 1, false},
		{"non-owner delete", http.MethodDelete, 2, 1, false},
		{"anonymous update", http.MethodPut, 0, 1, false},
		{"anonymous delete", http.MethodDelete, 0, 1, false},
		{"anonymous write to ownerless record", http.MethodPut, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsOwnerOrReadOnly(tt.method, tt.requester, tt.owner)
			if got != tt.want {
				t.Errorf("IsOwnerOrReadOnly(%s, %d, %d) = %v, want %v",
					tt.method, tt.requester, tt.owner, got, tt.want)
			}
		})
	}
}
