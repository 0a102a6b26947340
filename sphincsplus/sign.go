package sphincsplus

import (
	"github.com/kasperdi/SPHINCSPLUS-golang/sphincs"
)

// Sign a message using a given signing key.
//
//   - skey is the signing key (private), exactly [SecretKeySize] bytes
//   - msg is the message to sign (arbitrary length, may be empty)
//
// Output is the encoded signature, exactly [SignatureSize] bytes.
// Signing is deterministic: the same key and message always produce
// the same signature (see the package documentation). The message is
// not retained after the call returns.
//
// If the key buffer does not have exactly [SecretKeySize] bytes, then
// [ErrInvalidKeySize] is returned before any computation takes place
// and no output is produced.
func Sign(skey []byte, msg []byte) ([]byte, error) {
	sk, err := decode_secret_key(skey)
	if err != nil {
		return nil, err
	}
	sig := sphincs.Spx_sign(spxParams, msg, sk)
	out := encode_signature(sig)
	wipe(sk.SKseed)
	wipe(sk.SKprf)
	return out, nil
}
