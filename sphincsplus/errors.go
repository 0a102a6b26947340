package sphincsplus

import (
	"errors"
)

// Errors reported by the engine. Size-mismatch conditions are detected
// before any cryptographic computation begins; a verification mismatch
// on well-formed inputs is reported (by [VerifyDetailed]) as
// [ErrVerificationFailed] and is an expected outcome, not a fault.
var (
	// The random source failed to supply the required seed bytes
	// during key pair generation. Transient; may be retried.
	ErrEntropyFailure = errors.New("sphincsplus: entropy source failure")

	// A secret key buffer does not have exactly [SecretKeySize] bytes.
	ErrInvalidKeySize = errors.New("sphincsplus: invalid secret key size")

	// A public key buffer does not have exactly [PublicKeySize] bytes.
	ErrInvalidPublicKeySize = errors.New("sphincsplus: invalid public key size")

	// A signature buffer does not have exactly [SignatureSize] bytes.
	ErrInvalidSignatureSize = errors.New("sphincsplus: invalid signature size")

	// The signature is well-formed but is not a valid signature of the
	// message under the given public key.
	ErrVerificationFailed = errors.New("sphincsplus: verification failed")
)
