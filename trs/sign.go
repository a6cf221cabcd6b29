package trs

import (
	"fmt"
	"io"

	"threshold.network/ringsig/group"
	"threshold.network/ringsig/ringkeys"
)

// maxRingSize bounds N so that (i+1) always fits the signed 64-bit int
// domain this implementation indexes rings with (§4.4's pre-check is framed
// as N >= 2^64 over an unsigned index; (i+1) here is a Go int, so the tight
// bound is one bit lower).
const maxRingSize = 1<<63 - 1

// Sign produces a TRS signature over msg under tag, using priv as the
// signer's private key. priv.Public must appear in tag.Pubkeys; failing to
// find it is a precondition violation, not a forgery attempt (§4.4, §7).
func Sign(rng io.Reader, tag Tag, msg []byte, priv ringkeys.PrivateKey) (*Signature, error) {
	n := tag.N()
	if n >= maxRingSize {
		return nil, ErrRingTooLarge
	}

	j := -1
	for i, pk := range tag.Pubkeys {
		if pk.Equal(priv.Public) {
			j = i
			break
		}
	}
	if j < 0 {
		return nil, ErrSignerNotInRing
	}

	h := tag.ringBase()
	sigmaJ := h.ScalarMult(priv.Scalar)

	a0 := tag.a0(msg)

	// A1 = (j+1)^-1 * (sigma_j - A0)
	a1 := sigmaJ.Sub(a0).ScalarMult(indexScalar(j).Invert())

	sigmas := allSigmas(a0, a1, n)

	w, err := group.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("trs: sampling nonce: %w", err)
	}

	a := make([]group.Point, n)
	b := make([]group.Point, n)
	c := make([]group.Scalar, n)
	z := make([]group.Scalar, n)

	a[j] = group.ScalarBaseMult(w)
	b[j] = h.ScalarMult(w)

	for i := 0; i < n; i++ {
		if i == j {
			continue
		}
		ci, err := group.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("trs: sampling decoy challenge: %w", err)
		}
		zi, err := group.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("trs: sampling decoy response: %w", err)
		}
		c[i] = ci
		z[i] = zi

		a[i] = group.ScalarBaseMult(zi).Add(tag.Pubkeys[i].Point.ScalarMult(ci))
		b[i] = h.ScalarMult(zi).Add(sigmas[i].ScalarMult(ci))
	}

	overall := overallChallenge(tag, a0, a1, a, b)

	decoySum := group.NewScalar()
	for i := 0; i < n; i++ {
		if i != j {
			decoySum = decoySum.Add(c[i])
		}
	}
	c[j] = overall.Sub(decoySum)
	z[j] = w.Sub(c[j].Multiply(priv.Scalar))

	return &Signature{A1: a1, C: c, Z: z}, nil
}
