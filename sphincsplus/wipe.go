package sphincsplus

import "runtime"

// Zero a buffer holding secret material. Best-effort: it reduces the
// exposure window of secret bytes in memory but cannot guarantee that
// no copy survives elsewhere (GC moves, stack copies). Marked noinline
// so the compiler does not elide the stores.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}

// WipeSecretKey zeroes an encoded secret key buffer. Callers that are
// done with a signing key should call this to limit the lifetime of
// the secret material; it is a hardening measure, not a correctness
// requirement.
func WipeSecretKey(skey []byte) {
	wipe(skey)
}
