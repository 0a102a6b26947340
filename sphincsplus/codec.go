package sphincsplus

import (
	"github.com/kasperdi/SPHINCSPLUS-golang/sphincs"
)

// Conversions between the raw fixed-length buffers of the public API
// and the structures of the underlying implementation. Buffer lengths
// are validated before any content is read; decoded values are copies,
// so the engine never aliases (or retains) caller memory.

// Encode a public key as PK.seed || PK.root. The output has exactly
// [PublicKeySize] bytes.
func encode_public_key(pk *sphincs.SPHINCS_PK) []byte {
	vkey := make([]byte, PublicKeySize)
	copy(vkey[:paramN], pk.PKseed)
	copy(vkey[paramN:], pk.PKroot)
	return vkey
}

// Decode a public key from its fixed-length encoding.
func decode_public_key(vkey []byte) (*sphincs.SPHINCS_PK, error) {
	if len(vkey) != PublicKeySize {
		return nil, ErrInvalidPublicKeySize
	}
	pk := new(sphincs.SPHINCS_PK)
	pk.PKseed = append([]byte(nil), vkey[:paramN]...)
	pk.PKroot = append([]byte(nil), vkey[paramN:]...)
	return pk, nil
}

// Encode a secret key as SK.seed || SK.prf || PK.seed || PK.root. The
// output has exactly [SecretKeySize] bytes.
func encode_secret_key(sk *sphincs.SPHINCS_SK) []byte {
	skey := make([]byte, SecretKeySize)
	copy(skey[:paramN], sk.SKseed)
	copy(skey[paramN:2*paramN], sk.SKprf)
	copy(skey[2*paramN:3*paramN], sk.PKseed)
	copy(skey[3*paramN:], sk.PKroot)
	return skey
}

// Decode a secret key from its fixed-length encoding. The returned
// structure holds copies of the secret material; callers must wipe it
// with wipe_secret_key when done.
func decode_secret_key(skey []byte) (*sphincs.SPHINCS_SK, error) {
	if len(skey) != SecretKeySize {
		return nil, ErrInvalidKeySize
	}
	sk := new(sphincs.SPHINCS_SK)
	sk.SKseed = append([]byte(nil), skey[:paramN]...)
	sk.SKprf = append([]byte(nil), skey[paramN:2*paramN]...)
	sk.PKseed = append([]byte(nil), skey[2*paramN:3*paramN]...)
	sk.PKroot = append([]byte(nil), skey[3*paramN:]...)
	return sk, nil
}

// Encode a signature into its canonical fixed-length form. The
// underlying implementation serializes R || SIG_FORS || SIG_HT; a
// result of any other length than [SignatureSize] would mean the
// backend violated the parameter set, which is a fatal internal fault
// rather than a reportable error.
func encode_signature(sig *sphincs.SPHINCS_SIG) []byte {
	b, err := sig.SerializeSignature()
	if err != nil || len(b) != SignatureSize {
		panic("sphincsplus: internal fault: bad signature serialization")
	}
	return b
}

// Decode a signature from its fixed-length encoding. Only the length
// is structural: any [SignatureSize]-byte buffer parses into signature
// components, and a corrupted one simply fails verification.
func decode_signature(sig []byte) (*sphincs.SPHINCS_SIG, error) {
	if len(sig) != SignatureSize {
		return nil, ErrInvalidSignatureSize
	}
	s, err := sphincs.DeserializeSignature(spxParams, sig)
	if err != nil {
		return nil, ErrInvalidSignatureSize
	}
	return s, nil
}
