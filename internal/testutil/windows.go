package testutil

import "testing"

// RequireWindowEqual fails t if got and want differ in length or in any
// element. Windows are compared oldest-first, the order Samplers use.
func RequireWindowEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("window length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("window[%d] = %v, want %v (got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// RequireLen fails t if the window length differs from want.
func RequireLen[T any](t *testing.T, window []T, want int) {
	t.Helper()
	if len(window) != want {
		t.Fatalf("window length = %d, want %d", len(window), want)
	}
}
