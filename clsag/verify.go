package clsag

import (
	"fmt"

	"threshold.network/ringsig/group"
)

// Verify checks sig against ring and msg using the scalar reference path:
// one Add/ScalarMult loop per ring position, rebuilding the aggregation
// coefficients and chasing the same cyclic challenge chain as Sign (§4.3).
// It is the readable definition of correctness that OptimizedVerify must
// agree with on every input.
func Verify(ring Ring, sig *Signature, msg []byte) error {
	n, k := ring.N(), ring.K()
	if len(sig.Responses) != n {
		return fmt.Errorf("%w: signature has %d responses, ring has %d rows", ErrIncorrectNumOfPubKeys, len(sig.Responses), n)
	}
	if len(sig.KeyImages) != k {
		return fmt.Errorf("%w: signature has %d key images, ring has %d columns", ErrWrongKeyImageCount, len(sig.KeyImages), k)
	}

	pubkeyMatrixBytes := ring.Bytes()
	mu := allAggregationCoefficients(pubkeyMatrixBytes, sig.KeyImages, msg)

	chal := sig.Challenge
	for i := 0; i < n; i++ {
		weightedKeys := weightedSum(mu, ring[i])
		weightedImages := weightedSum(mu, sig.KeyImages)

		hpI := group.HashToPoint(ring[i][0].Bytes())

		li := group.ScalarBaseMult(sig.Responses[i]).Add(weightedKeys.ScalarMult(chal))
		ri := hpI.ScalarMult(sig.Responses[i]).Add(weightedImages.ScalarMult(chal))

		chal = ringChallenge(pubkeyMatrixBytes, li, ri)
	}

	if !chal.Equal(sig.Challenge) {
		return ErrChallengeMismatch
	}
	return nil
}

// OptimizedVerify checks sig against ring and msg using batched
// multi-scalar multiplication in place of the per-position Add/ScalarMult
// loop. It MUST accept and reject exactly the same inputs as Verify; the two
// are required to agree on every input, including the ordering of the error
// checks (§4.3, §9).
func OptimizedVerify(ring Ring, sig *Signature, msg []byte) error {
	n, k := ring.N(), ring.K()
	if len(sig.Responses) != n {
		return fmt.Errorf("%w: signature has %d responses, ring has %d rows", ErrIncorrectNumOfPubKeys, len(sig.Responses), n)
	}
	if len(sig.KeyImages) != k {
		return fmt.Errorf("%w: signature has %d key images, ring has %d columns", ErrWrongKeyImageCount, len(sig.KeyImages), k)
	}

	pubkeyMatrixBytes := ring.Bytes()
	mu := allAggregationCoefficients(pubkeyMatrixBytes, sig.KeyImages, msg)

	chal := sig.Challenge
	for i := 0; i < n; i++ {
		li := msmClose(sig.Responses[i], mu, ring[i], chal)

		hpI := group.HashToPoint(ring[i][0].Bytes())
		ri := msmCloseImages(sig.Responses[i], hpI, mu, sig.KeyImages, chal)

		chal = ringChallenge(pubkeyMatrixBytes, li, ri)
	}

	if !chal.Equal(sig.Challenge) {
		return ErrChallengeMismatch
	}
	return nil
}

// msmClose computes s*G + chal*Σ mu[k]*points[k] as a single multi-scalar
// multiplication: the response term uses the fixed generator, expressed
// here as G itself so it can share the batch with the weighted ring terms.
func msmClose(s group.Scalar, mu []group.Scalar, points []group.Point, chal group.Scalar) group.Point {
	scalars := make([]group.Scalar, 0, len(mu)+1)
	bases := make([]group.Point, 0, len(mu)+1)

	scalars = append(scalars, s)
	bases = append(bases, group.Base())

	for k := range mu {
		scalars = append(scalars, chal.Multiply(mu[k]))
		bases = append(bases, points[k])
	}

	return group.MultiScalarMult(scalars, bases)
}

// msmCloseImages computes s*Hp + chal*Σ mu[k]*keyImages[k] as a single
// multi-scalar multiplication over the hash-to-point base and the key
// images, the R-side analogue of msmClose.
func msmCloseImages(s group.Scalar, hp group.Point, mu []group.Scalar, keyImages []group.Point, chal group.Scalar) group.Point {
	scalars := make([]group.Scalar, 0, len(mu)+1)
	bases := make([]group.Point, 0, len(mu)+1)

	scalars = append(scalars, s)
	bases = append(bases, hp)

	for k := range mu {
		scalars = append(scalars, chal.Multiply(mu[k]))
		bases = append(bases, keyImages[k])
	}

	return group.MultiScalarMult(scalars, bases)
}
