package sphincsplus

import (
	"testing"
)

func TestFingerprint(t *testing.T) {
	_, vkey, _ := fixtures(t)
	fp := Fingerprint(vkey)
	if len(fp) != 2*fingerprintBytes {
		t.Fatalf("wrong fingerprint length: %d", len(fp))
	}
	if fp != Fingerprint(vkey) {
		t.Fatal("fingerprint is not stable")
	}
	if Fingerprint(vkey[:PublicKeySize-1]) != "" {
		t.Fatal("fingerprint accepted a truncated key")
	}

	other := append([]byte(nil), vkey...)
	other[0] ^= 0x01
	if Fingerprint(other) == fp {
		t.Fatal("distinct keys share a fingerprint")
	}
}

func TestFingerprintEqual(t *testing.T) {
	_, vkey, _ := fixtures(t)
	fp := Fingerprint(vkey)
	if !FingerprintEqual(fp, Fingerprint(vkey)) {
		t.Fatal("equal fingerprints compare unequal")
	}
	if FingerprintEqual(fp, fp[:len(fp)-1]) {
		t.Fatal("fingerprints of different lengths compare equal")
	}
	if FingerprintEqual(fp, "") {
		t.Fatal("empty fingerprint compares equal")
	}
}
