package clsag

import (
	"fmt"
	"io"

	"threshold.network/ringsig/group"
)

// Sign produces a CLSAG signature over msg for the given ring, proving
// knowledge of the K secret scalars at row secretIndex without revealing
// secretIndex. secretKeys[k] must be the discrete log of ring[secretIndex][k]
// for every k (§4.2).
func Sign(rng io.Reader, ring Ring, secretIndex int, secretKeys []group.Scalar, msg []byte) (*Signature, error) {
	n, k := ring.N(), ring.K()
	if secretIndex < 0 || secretIndex >= n {
		return nil, fmt.Errorf("clsag: secret index %d out of range [0,%d)", secretIndex, n)
	}
	if len(secretKeys) != k {
		return nil, fmt.Errorf("clsag: got %d secret keys, ring has %d columns", len(secretKeys), k)
	}
	for i, row := range ring {
		if len(row) != k {
			return nil, fmt.Errorf("clsag: ring row %d has %d keys, want %d", i, len(row), k)
		}
	}

	hp := group.HashToPoint(ring[secretIndex][0].Bytes())

	keyImages := make([]group.Point, k)
	for j := 0; j < k; j++ {
		keyImages[j] = hp.ScalarMult(secretKeys[j])
	}

	pubkeyMatrixBytes := ring.Bytes()
	mu := allAggregationCoefficients(pubkeyMatrixBytes, keyImages, msg)

	alpha, err := group.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("%w: sampling nonce: %v", ErrUnderlying, err)
	}

	l := group.ScalarBaseMult(alpha)
	r := hp.ScalarMult(alpha)

	responses := make([]group.Scalar, n)
	chal := make([]group.Scalar, n)

	idx := (secretIndex + 1) % n
	chal[idx] = ringChallenge(pubkeyMatrixBytes, l, r)

	for steps := 0; steps < n-1; steps++ {
		s, err := group.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("%w: sampling response: %v", ErrUnderlying, err)
		}
		responses[idx] = s

		weightedKeys := weightedSum(mu, ring[idx])
		weightedImages := weightedSum(mu, keyImages)

		hpIdx := group.HashToPoint(ring[idx][0].Bytes())

		li := group.ScalarBaseMult(s).Add(weightedKeys.ScalarMult(chal[idx]))
		ri := hpIdx.ScalarMult(s).Add(weightedImages.ScalarMult(chal[idx]))

		next := (idx + 1) % n
		chal[next] = ringChallenge(pubkeyMatrixBytes, li, ri)
		idx = next
	}

	// idx is now back at secretIndex: chal[secretIndex] is c_ℓ, closing the ring.
	weightedSecret := weightedScalarSum(mu, secretKeys)
	responses[secretIndex] = alpha.Sub(chal[secretIndex].Multiply(weightedSecret))

	return &Signature{
		Challenge: chal[0],
		Responses: responses,
		KeyImages: keyImages,
	}, nil
}
