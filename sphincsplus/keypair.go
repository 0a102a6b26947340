package sphincsplus

import (
	"io"
)

// A KeyPair holds the two encoded halves produced by one key
// generation. Both slices are owned by the holder; the engine keeps no
// copy. The secret half is sensitive: call [KeyPair.Wipe] when the key
// is no longer needed.
type KeyPair struct {
	PublicKey []byte
	SecretKey []byte
}

// GenerateKeyPair creates a fresh key pair from the given random
// source (nil to use the OS RNG). See [KeyGen] for the entropy
// requirements and failure mode.
func GenerateKeyPair(rng io.Reader) (*KeyPair, error) {
	skey, vkey, err := KeyGen(rng)
	if err != nil {
		return nil, err
	}
	return &KeyPair{PublicKey: vkey, SecretKey: skey}, nil
}

// Sign signs a message with the key pair's secret half.
func (kp *KeyPair) Sign(msg []byte) ([]byte, error) {
	return Sign(kp.SecretKey, msg)
}

// Fingerprint returns the short hex fingerprint of the public half.
func (kp *KeyPair) Fingerprint() string {
	return Fingerprint(kp.PublicKey)
}

// Wipe zeroes the secret half. The key pair must not be used for
// signing afterwards.
func (kp *KeyPair) Wipe() {
	wipe(kp.SecretKey)
}
