package trs

import (
	"fmt"

	"threshold.network/ringsig/group"
)

// Verify checks sig against tag and msg, recomputing every pseudonym and
// nonce commitment and comparing the overall challenge (§4.5). It never
// dereferences a signer index; it has no knowledge of which row signed.
func Verify(tag Tag, msg []byte, sig *Signature) error {
	n := tag.N()
	if len(sig.C) != n || len(sig.Z) != n {
		return fmt.Errorf("%w: ring size %d, got %d challenges and %d responses", ErrMalformedSignature, n, len(sig.C), len(sig.Z))
	}

	h := tag.ringBase()
	a0 := tag.a0(msg)
	sigmas := allSigmas(a0, sig.A1, n)

	a := make([]group.Point, n)
	b := make([]group.Point, n)
	for i := 0; i < n; i++ {
		a[i] = group.ScalarBaseMult(sig.Z[i]).Add(tag.Pubkeys[i].Point.ScalarMult(sig.C[i]))
		b[i] = h.ScalarMult(sig.Z[i]).Add(sigmas[i].ScalarMult(sig.C[i]))
	}

	overall := overallChallenge(tag, a0, sig.A1, a, b)
	if !overall.Equal(sumChallenges(sig.C)) {
		return ErrVerificationFailed
	}
	return nil
}
