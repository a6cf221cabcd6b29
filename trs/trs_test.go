package trs

import (
	"bytes"
	"crypto/rand"
	"testing"

	"threshold.network/ringsig/internal/testutils"
	"threshold.network/ringsig/ringkeys"
)

// buildTag generates n random keypairs and returns the tag together with
// every position's private key.
func buildTag(t *testing.T, n int, issue []byte) (Tag, []ringkeys.PrivateKey) {
	t.Helper()

	privs := make([]ringkeys.PrivateKey, n)
	pubs := make([]ringkeys.PublicKey, n)
	for i := 0; i < n; i++ {
		priv, err := ringkeys.GenerateKeyPair(rand.Reader)
		if err != nil {
			t.Fatalf("generating key: %v", err)
		}
		privs[i] = priv
		pubs[i] = priv.Public
	}
	return Tag{Pubkeys: pubs, Issue: issue}, privs
}

func TestSignVerify(t *testing.T) {
	sizes := []int{1, 2, 4, 16, 64, 1024}
	for _, n := range sizes {
		n := n
		t.Run("", func(t *testing.T) {
			tag, privs := buildTag(t, n, []byte("issue"))
			msg := []byte("trs correctness property")
			signerIndex := n / 2

			sig, err := Sign(rand.Reader, tag, msg, privs[signerIndex])
			if err != nil {
				t.Fatalf("sign: %v", err)
			}

			if err := Verify(tag, msg, sig); err != nil {
				t.Fatalf("verify: %v", err)
			}
		})
	}
}

func TestVerify_RejectsTamperedMessage(t *testing.T) {
	tag, privs := buildTag(t, 10, []byte("issue"))
	msg := []byte("original")

	sig, err := Sign(rand.Reader, tag, msg, privs[3])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	err = Verify(tag, []byte("tampered"), sig)
	testutils.AssertErrorIs(t, "verify error", err, ErrVerificationFailed)
}

func TestSign_RejectsSignerNotInRing(t *testing.T) {
	tag, _ := buildTag(t, 5, []byte("issue"))
	outsider, err := ringkeys.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	_, err = Sign(rand.Reader, tag, []byte("msg"), outsider)
	testutils.AssertErrorIs(t, "sign error", err, ErrSignerNotInRing)
}

// TestScenarioD mirrors spec scenario D: N=20, issue = [0;32]. Key 3 signs
// m1=[1;32] and m2=[2;32]. Trace must return index 3.
func TestScenarioD_TraceIndex(t *testing.T) {
	issue := make([]byte, 32)
	tag, privs := buildTag(t, 20, issue)

	m1 := bytes.Repeat([]byte{1}, 32)
	m2 := bytes.Repeat([]byte{2}, 32)

	sig1, err := Sign(rand.Reader, tag, m1, privs[3])
	if err != nil {
		t.Fatalf("sign m1: %v", err)
	}
	sig2, err := Sign(rand.Reader, tag, m2, privs[3])
	if err != nil {
		t.Fatalf("sign m2: %v", err)
	}

	if err := Verify(tag, m1, sig1); err != nil {
		t.Fatalf("verify sig1: %v", err)
	}
	if err := Verify(tag, m2, sig2); err != nil {
		t.Fatalf("verify sig2: %v", err)
	}

	result := Trace(tag, m1, sig1, m2, sig2, nil)
	if result.Kind != Traced || result.Index != 3 {
		t.Fatalf("expected Traced(3), got %+v", result)
	}
}

// TestScenarioE mirrors spec scenario E: same key signs m1 twice with fresh
// randomness. Trace must return Linked.
func TestScenarioE_TraceLinked(t *testing.T) {
	issue := make([]byte, 32)
	tag, privs := buildTag(t, 20, issue)
	m1 := bytes.Repeat([]byte{1}, 32)

	sig1, err := Sign(rand.Reader, tag, m1, privs[3])
	if err != nil {
		t.Fatalf("sign first: %v", err)
	}
	sig2, err := Sign(rand.Reader, tag, m1, privs[3])
	if err != nil {
		t.Fatalf("sign second: %v", err)
	}

	result := Trace(tag, m1, sig1, m1, sig2, nil)
	if result.Kind != Linked {
		t.Fatalf("expected Linked, got %+v", result)
	}
}

// TestScenarioF mirrors spec scenario F: keys 3 and 7 sign m1. Trace must
// return Independent.
func TestScenarioF_TraceIndependent(t *testing.T) {
	issue := make([]byte, 32)
	tag, privs := buildTag(t, 20, issue)
	m1 := bytes.Repeat([]byte{1}, 32)

	sig1, err := Sign(rand.Reader, tag, m1, privs[3])
	if err != nil {
		t.Fatalf("sign key 3: %v", err)
	}
	sig2, err := Sign(rand.Reader, tag, m1, privs[7])
	if err != nil {
		t.Fatalf("sign key 7: %v", err)
	}

	result := Trace(tag, m1, sig1, m1, sig2, nil)
	if result.Kind != Independent {
		t.Fatalf("expected Independent, got %+v", result)
	}
}

func TestTrace_AnomalyHookNeverCalledOnWellFormedInput(t *testing.T) {
	issue := make([]byte, 32)
	tag, privs := buildTag(t, 12, issue)
	m1 := bytes.Repeat([]byte{1}, 32)
	m2 := bytes.Repeat([]byte{2}, 32)

	sig1, err := Sign(rand.Reader, tag, m1, privs[0])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig2, err := Sign(rand.Reader, tag, m2, privs[5])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	called := false
	hook := func(Tag, []byte, []byte, []int) { called = true }

	Trace(tag, m1, sig1, m2, sig2, hook)
	testutils.AssertBoolsEqual(t, "anomaly hook invoked on well-formed signatures", false, called)
}
