package sphincsplus

import (
	"github.com/kasperdi/SPHINCSPLUS-golang/sphincs"
)

// Verify a SPHINCS+ signature.
//
//   - vkey is the verifying key (public)
//   - msg is the signed message
//   - sig is the signature to verify
//
// Returned value is true for a valid signature, false otherwise. Any
// malformed input — a key or signature buffer of the wrong length, or
// arbitrary garbage bytes — yields false; this function never panics
// for bad input. A false result is an expected outcome ("not
// authentic"), not an error condition.
func Verify(vkey []byte, msg []byte, sig []byte) bool {
	ok, _ := verify_inner(vkey, msg, sig)
	return ok
}

// Verify a SPHINCS+ signature, distinguishing structural rejection
// from a cryptographic mismatch. On success the result is (true, nil).
// Otherwise the result is false, and the error tells the caller why:
// [ErrInvalidPublicKeySize] or [ErrInvalidSignatureSize] if an input
// buffer was malformed (rejected before any computation), or
// [ErrVerificationFailed] if the inputs were well-formed but the
// signature is not valid for the message and key.
func VerifyDetailed(vkey []byte, msg []byte, sig []byte) (bool, error) {
	return verify_inner(vkey, msg, sig)
}

// Inner verification function.
func verify_inner(vkey []byte, msg []byte, sig []byte) (bool, error) {
	pk, err := decode_public_key(vkey)
	if err != nil {
		return false, err
	}
	s, err := decode_signature(sig)
	if err != nil {
		return false, err
	}
	if !sphincs.Spx_verify(spxParams, msg, s, pk) {
		return false, ErrVerificationFailed
	}
	return true, nil
}
