package ringkeys

import (
	"bytes"
	"crypto/rand"
	"testing"

	"threshold.network/ringsig/internal/testutils"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	priv, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("generating key pair: %v", err)
	}

	decoded, err := PublicKeyFromBytes(priv.Public.Bytes())
	if err != nil {
		t.Fatalf("decoding public key: %v", err)
	}
	if !priv.Public.Equal(decoded) {
		t.Fatalf("round-tripped public key does not match original")
	}
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	priv, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("generating key pair: %v", err)
	}

	decoded, err := PrivateKeyFromBytes(priv.Bytes())
	if err != nil {
		t.Fatalf("decoding private key: %v", err)
	}
	testutils.AssertScalarsEqual(t, "round-tripped private scalar", priv.Scalar, decoded.Scalar)
	if !priv.Public.Equal(decoded.Public) {
		t.Fatalf("round-tripped embedded public key does not match original")
	}
}

func TestPrivateKeyFromSeed_MatchesScalarBytes(t *testing.T) {
	priv, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("generating key pair: %v", err)
	}

	fromSeed, err := PrivateKeyFromSeed(priv.Scalar.Bytes())
	if err != nil {
		t.Fatalf("private key from seed: %v", err)
	}

	testutils.AssertScalarsEqual(t, "seed-derived scalar", priv.Scalar, fromSeed.Scalar)
	if !priv.Public.Equal(fromSeed.Public) {
		t.Fatalf("seed-derived public key does not match original")
	}
}

func TestKeyPairFromHash_IsDeterministic(t *testing.T) {
	input := []byte("some arbitrary high-entropy input")

	a, err := KeyPairFromHash(input)
	if err != nil {
		t.Fatalf("keypair from hash: %v", err)
	}
	b, err := KeyPairFromHash(input)
	if err != nil {
		t.Fatalf("keypair from hash: %v", err)
	}

	testutils.AssertScalarsEqual(t, "hash-derived scalar", a.Scalar, b.Scalar)
}

func TestSignVerify(t *testing.T) {
	priv, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("generating key pair: %v", err)
	}
	msg := []byte("ringkeys helper signature")

	sig := Sign(priv, msg)
	if !Verify(priv.Public, msg, sig) {
		t.Fatalf("expected signature to verify")
	}
}

func TestVerify_RejectsTamperedMessage(t *testing.T) {
	priv, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("generating key pair: %v", err)
	}
	sig := Sign(priv, []byte("original"))

	if Verify(priv.Public, []byte("tampered"), sig) {
		t.Fatalf("expected verification to fail on tampered message")
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	priv, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("generating key pair: %v", err)
	}
	sig := Sign(priv, []byte("msg"))

	decoded, err := SignatureFromBytes(sig.Bytes())
	if err != nil {
		t.Fatalf("decoding signature: %v", err)
	}
	if !bytes.Equal(sig.Bytes(), decoded.Bytes()) {
		t.Fatalf("round-tripped signature does not match original")
	}
}
