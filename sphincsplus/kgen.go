package sphincsplus

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/kasperdi/SPHINCSPLUS-golang/hypertree"
	"github.com/kasperdi/SPHINCSPLUS-golang/sphincs"
)

// Generate a new key pair.
//
//   - rng is the random source to use (nil to use the OS RNG).
//
// Output is the new key pair (signing and verifying keys, both encoded
// as fixed-length byte slices of [SecretKeySize] and [PublicKeySize]
// bytes). The halves are mathematically linked: a signature produced
// with skey verifies under vkey.
//
// Using the OS RNG (i.e. setting rng to nil) is recommended. If an
// explicit random source is provided, then the caller MUST make sure
// that it provides sufficient entropy and that it is safe for the
// intended concurrency. If the source cannot supply the required seed
// bytes, an error wrapping [ErrEntropyFailure] is returned and no key
// material is produced.
func KeyGen(rng io.Reader) (skey []byte, vkey []byte, err error) {
	if rng == nil {
		rng = rand.Reader
	}
	var seed [seedBytes]byte
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	skey, vkey = keygen_from_seed(seed[:])
	wipe(seed[:])
	return skey, vkey, nil
}

// Inner key generation; deterministic for the provided seed, which
// must have exactly seedBytes (3n) bytes: SK.seed || SK.prf || PK.seed.
// Used directly by tests for reproducible key pairs.
func keygen_from_seed(seed []byte) (skey []byte, vkey []byte) {
	sk := new(sphincs.SPHINCS_SK)
	sk.SKseed = append([]byte(nil), seed[:paramN]...)
	sk.SKprf = append([]byte(nil), seed[paramN:2*paramN]...)
	sk.PKseed = append([]byte(nil), seed[2*paramN:3*paramN]...)
	sk.PKroot = hypertree.Ht_PKgen(spxParams, sk.SKseed, sk.PKseed)

	pk := new(sphincs.SPHINCS_PK)
	pk.PKseed = sk.PKseed
	pk.PKroot = sk.PKroot

	skey = encode_secret_key(sk)
	vkey = encode_public_key(pk)
	wipe(sk.SKseed)
	wipe(sk.SKprf)
	return skey, vkey
}
