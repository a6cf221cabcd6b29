// Package ringkeys implements the key-material helpers shared by CLSAG and
// TRS: random and deterministic keypair generation, and canonical
// serialization (§4.7, §3 "Key material", §6 serialization table).
package ringkeys

import (
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"threshold.network/ringsig/group"
)

// domainHashFrom is the domain string used by the hash-derived keypair
// helper: "ringsig-trs-domain-0", the same key the transcript package uses
// for TRS's domain-0 hash. It is not the bare string "domain-0".
var domainHashFrom = []byte("ringsig-trs-domain-0")

// PublicKey is a 32-byte compressed group element.
type PublicKey struct {
	Point group.Point
}

// PrivateKey is a scalar together with its public key, serialized as the
// scalar followed by the public key per §6.
type PrivateKey struct {
	Scalar group.Scalar
	Public PublicKey
}

// GenerateKeyPair samples a uniformly random private key using rng.
func GenerateKeyPair(rng io.Reader) (PrivateKey, error) {
	s, err := group.RandomScalar(rng)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("ringkeys: generating key pair: %w", err)
	}
	return keyPairFromScalar(s), nil
}

// PrivateKeyFromSeed derives a keypair from a caller-supplied canonical
// 32-byte scalar. It fails, rather than panicking, if the bytes are not a
// canonical scalar encoding.
//
// A key from GenerateKeyPair serializes its scalar through Scalar.Bytes(),
// which is always the canonical encoding this function accepts — closing the quirk noted in spec.md §9
// where the original's `trs_generate_keypair` and `trs_keypair_from_seed`
// could disagree on what "the private key bytes" meant.
func PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	s, err := group.ScalarFromCanonicalBytes(seed)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("ringkeys: private key from seed: %w", err)
	}
	return keyPairFromScalar(s), nil
}

// KeyPairFromHash derives a keypair deterministically from arbitrary input
// bytes by feeding them to the domain-0 extendable hash and wide-reducing
// the result to a scalar (§4.7 "Keypair from arbitrary hash input").
func KeyPairFromHash(input []byte) (PrivateKey, error) {
	h, err := blake2b.New512(domainHashFrom)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("ringkeys: keyed hash init: %w", err)
	}
	h.Write(input)
	s := group.ScalarFromWideBytes(h.Sum(nil))
	return keyPairFromScalar(s), nil
}

func keyPairFromScalar(s group.Scalar) PrivateKey {
	pub := PublicKey{Point: group.ScalarBaseMult(s)}
	return PrivateKey{Scalar: s, Public: pub}
}

// Bytes returns the 32-byte compressed public key encoding.
func (pk PublicKey) Bytes() []byte {
	return pk.Point.Bytes()
}

// Equal reports whether two public keys are the same group element.
func (pk PublicKey) Equal(other PublicKey) bool {
	return pk.Point.Equal(other.Point)
}

// PublicKeyFromBytes decodes a 32-byte compressed public key, validating
// that it decompresses to a valid point. It never panics on malformed input.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	p, err := group.PointFromCompressedBytes(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("ringkeys: decoding public key: %w", err)
	}
	return PublicKey{Point: p}, nil
}

// Bytes returns the 64-byte serialization of a private key: the canonical
// scalar encoding followed by the compressed public key.
func (k PrivateKey) Bytes() []byte {
	out := make([]byte, 0, group.ScalarLen+group.PointLen)
	out = append(out, k.Scalar.Bytes()...)
	out = append(out, k.Public.Bytes()...)
	return out
}

// PrivateKeyFromBytes decodes a 64-byte private key, validating both the
// canonical scalar encoding and the public key decompression. It never
// panics on malformed input.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != group.ScalarLen+group.PointLen {
		return PrivateKey{}, fmt.Errorf(
			"ringkeys: private key must be %d bytes, got %d",
			group.ScalarLen+group.PointLen, len(b),
		)
	}
	s, err := group.ScalarFromCanonicalBytes(b[:group.ScalarLen])
	if err != nil {
		return PrivateKey{}, fmt.Errorf("ringkeys: decoding private scalar: %w", err)
	}
	pub, err := PublicKeyFromBytes(b[group.ScalarLen:])
	if err != nil {
		return PrivateKey{}, fmt.Errorf("ringkeys: decoding embedded public key: %w", err)
	}
	return PrivateKey{Scalar: s, Public: pub}, nil
}

// Signature is the 64-byte Ed25519-like helper signature (R ‖ s) mentioned
// in §6's serialization table. It is a single-key Schnorr signature over
// this module's Ristretto group, grounded on `ed25519_sign_rust` /
// `ed25519_verify_rust` from the original source.
type Signature struct {
	R group.Point
	S group.Scalar
}

// Bytes returns the 64-byte R‖s encoding.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, group.PointLen+group.ScalarLen)
	out = append(out, sig.R.Bytes()...)
	out = append(out, sig.S.Bytes()...)
	return out
}

// SignatureFromBytes decodes a 64-byte R‖s signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != group.PointLen+group.ScalarLen {
		return Signature{}, fmt.Errorf(
			"ringkeys: signature must be %d bytes, got %d",
			group.PointLen+group.ScalarLen, len(b),
		)
	}
	r, err := group.PointFromCompressedBytes(b[:group.PointLen])
	if err != nil {
		return Signature{}, fmt.Errorf("ringkeys: decoding signature R: %w", err)
	}
	s, err := group.ScalarFromCanonicalBytes(b[group.PointLen:])
	if err != nil {
		return Signature{}, fmt.Errorf("ringkeys: decoding signature s: %w", err)
	}
	return Signature{R: r, S: s}, nil
}

// Sign produces a single-key Schnorr signature over msg using the private
// scalar. The nonce is derived deterministically from the private key and
// the message, matching the original's use of Blake2b over
// `private_key ‖ msg` rather than a fresh random nonce.
func Sign(priv PrivateKey, msg []byte) Signature {
	r := deterministicNonce(priv.Scalar.Bytes(), msg)
	R := group.ScalarBaseMult(r)

	e := challenge(R, priv.Public, msg)
	s := r.Add(e.Multiply(priv.Scalar))

	return Signature{R: R, S: s}
}

// Verify checks a Sign-produced signature against a public key and message.
func Verify(pub PublicKey, msg []byte, sig Signature) bool {
	e := challenge(sig.R, pub, msg)

	lhs := group.ScalarBaseMult(sig.S)
	rhs := sig.R.Add(pub.Point.ScalarMult(e))
	return lhs.Equal(rhs)
}

func deterministicNonce(privBytes, msg []byte) group.Scalar {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(fmt.Sprintf("ringkeys: blake2b init failed: %v", err))
	}
	h.Write(privBytes)
	h.Write(msg)
	return group.ScalarFromWideBytes(h.Sum(nil))
}

func challenge(R group.Point, pub PublicKey, msg []byte) group.Scalar {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(fmt.Sprintf("ringkeys: blake2b init failed: %v", err))
	}
	h.Write(R.Bytes())
	h.Write(pub.Bytes())
	h.Write(msg)
	return group.ScalarFromWideBytes(h.Sum(nil))
}
