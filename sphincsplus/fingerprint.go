package sphincsplus

import (
	"crypto/subtle"
	"encoding/hex"

	sha3 "golang.org/x/crypto/sha3"
)

// Number of digest bytes kept in a fingerprint (32 hex characters).
const fingerprintBytes = 16

// Fingerprint returns a short hex fingerprint of an encoded verifying
// key: the SHA3-256 digest of the key, truncated to 16 bytes. It is a
// human-checkable identifier for a key, not a substitute for the key
// itself. The empty string is returned for a key buffer of the wrong
// length.
func Fingerprint(vkey []byte) string {
	if len(vkey) != PublicKeySize {
		return ""
	}
	sum := sha3.Sum256(vkey)
	return hex.EncodeToString(sum[:fingerprintBytes])
}

// FingerprintEqual compares two fingerprints in constant time. Either
// argument may come from an untrusted source (e.g. read back from a
// peer for comparison against a locally computed value).
func FingerprintEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
