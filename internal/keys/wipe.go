package keys

import "runtime"

// wipe zeroes b. Best-effort; it keeps b live until after the loop so the
// writes are not elided.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
