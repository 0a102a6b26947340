package sphincsplus

import (
	"github.com/kasperdi/SPHINCSPLUS-golang/parameters"
)

// Parameter set: SPHINCS+-SHA-256-128s-simple.
//
//	n = 16    security parameter (bytes)
//	w = 16    Winternitz parameter
//	h = 63    total hypertree height
//	d = 7     hypertree layers (subtrees of height 9)
//	k = 14    FORS trees
//	a = 12    FORS tree height (2^12 leaves per tree)
//	len = 35  WOTS+ chains per signature
const (
	paramN    = 16
	paramH    = 63
	paramD    = 7
	paramK    = 14
	paramA    = 12
	paramLen  = 35
	seedBytes = 3 * paramN
)

// Size of an encoded public (verifying) key, in bytes:
// PK.seed || PK.root.
const PublicKeySize = 2 * paramN

// Size of an encoded secret (signing) key, in bytes:
// SK.seed || SK.prf || PK.seed || PK.root.
const SecretKeySize = 4 * paramN

// Size of an encoded signature, in bytes:
// R || SIG_FORS || SIG_HT = n*(1 + k*(a+1) + h + d*len).
const SignatureSize = paramN * (1 + paramK*(paramA+1) + paramH + paramD*paramLen)

// Scheme parameters handed to the underlying implementation. RANDOMIZE
// is false: the message randomizer is derived deterministically from
// SK.prf and the message (see the package documentation). Initialized
// once; never written after init.
var spxParams = parameters.MakeSphincsPlusSHA256128sSimple(false)

// Get the size of an encoded public key, in bytes. The value is
// constant for the life of the process.
func PublicKeySizeBytes() int {
	return PublicKeySize
}

// Get the size of an encoded secret key, in bytes. The value is
// constant for the life of the process.
func SecretKeySizeBytes() int {
	return SecretKeySize
}

// Get the size of an encoded signature, in bytes. Signatures produced
// by [Sign] always have exactly this size. The value is constant for
// the life of the process.
func SignatureSizeBytes() int {
	return SignatureSize
}
