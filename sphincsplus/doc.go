// This package implements the SPHINCS+ signature scheme with the
// SHA-256-128s-simple parameter set.
//
// SPHINCS+ is a stateless hash-based signature scheme: its security
// reduces to properties of the underlying hash function rather than to
// number-theoretic assumptions, which is why it is believed to resist
// attacks by quantum computers. Unlike stateful hash-based schemes
// (XMSS, LMS), no counter or other state must be persisted between
// signing operations; losing or restoring a backup of the signing key
// cannot compromise it.
//
// This package is a contract layer: it owns key pair generation, the
// fixed-size encodings, input validation and the error taxonomy, and
// forwards the hypertree computation itself (WOTS+ chains, FORS trees,
// the XMSS layers) to the SPHINCSPLUS-golang implementation. All keys
// and signatures cross the API as raw fixed-length byte slices; the
// sizes are exported as the compile-time constants [PublicKeySize],
// [SecretKeySize] and [SignatureSize] (32, 64 and 7856 bytes for this
// parameter set).
//
// A new key pair is created with [KeyGen], which takes a source of
// randomness. The random source MUST be cryptographically secure. If
// the source is nil, then the operating system's RNG is used (through
// crypto/rand.Reader). KeyGen is the only operation that consumes
// entropy; a failing or exhausted source is reported as
// [ErrEntropyFailure] and may be retried.
//
// Signing in this package is deterministic: the internal message
// randomizer is derived from the secret PRF key and the message, so
// signing the same message with the same key always yields the same
// signature bytes. The scheme family permits either deterministic or
// randomized signing; the deterministic mode is fixed here so that
// signatures are reproducible and [Sign] never touches the entropy
// source. Callers that require per-signature randomization (e.g. as a
// fault-injection countermeasure) should not use this package as-is.
//
// Signature verification is performed with [Verify], whose output is
// Boolean: any structurally malformed input, wrong-length buffer or
// cryptographic mismatch yields false, never a panic. [VerifyDetailed]
// additionally distinguishes malformed inputs from a well-formed but
// invalid signature. Equality checks against computed digests in this
// package use constant-time comparison.
//
// All operations are pure functions of their inputs and keep no state
// between calls; any number of them may run concurrently.
package sphincsplus
