package clsag

import (
	"fmt"

	"threshold.network/ringsig/group"
)

// Ring is the public N-by-K matrix fed to signing and verification: row i,
// column j is the j-th key at ring position i. Column 0 is the signing
// column — the signer knows the scalar for cell (secretIndex, 0..K) in
// their own row only.
type Ring [][]group.Point

// DecodeRing decodes a raw N-by-K matrix of compressed points, validating
// every entry decompresses and that every row has the same width. A point
// that fails to decompress yields an error wrapping ErrBadPoint; an empty
// ring or a row of the wrong width yields a plain error. It never panics.
func DecodeRing(raw [][][]byte) (Ring, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("clsag: ring must have at least one row")
	}
	k := len(raw[0])
	ring := make(Ring, len(raw))
	for i, row := range raw {
		if len(row) != k {
			return nil, fmt.Errorf("clsag: ring row %d has %d keys, want %d", i, len(row), k)
		}
		decodedRow := make([]group.Point, k)
		for j, compressed := range row {
			p, err := group.PointFromCompressedBytes(compressed)
			if err != nil {
				return nil, fmt.Errorf("%w: ring[%d][%d]: %v", ErrBadPoint, i, j, err)
			}
			decodedRow[j] = p
		}
		ring[i] = decodedRow
	}
	return ring, nil
}

// N returns the number of ring positions.
func (r Ring) N() int { return len(r) }

// K returns the number of key-rows. It is the width of the first row; all
// rows are validated to share that width when the ring is decoded or
// passed to Sign.
func (r Ring) K() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// Bytes returns the row-major concatenation of all compressed pubkeys in
// the matrix — the "pubkey_matrix_bytes" absorbed throughout the scheme.
func (r Ring) Bytes() []byte {
	out := make([]byte, 0, len(r)*r.K()*group.PointLen)
	for _, row := range r {
		for _, p := range row {
			out = append(out, p.Bytes()...)
		}
	}
	return out
}

// weightedSum returns Σ coeffs[k]*points[k], a plain loop rather than a
// batched multi-scalar multiplication — used by the readable scalar-path
// verifier and by signing, where the optimized MSM machinery isn't worth
// the bookkeeping for a handful of key-rows.
func weightedSum(coeffs []group.Scalar, points []group.Point) group.Point {
	sum := points[0].ScalarMult(coeffs[0])
	for k := 1; k < len(coeffs); k++ {
		sum = sum.Add(points[k].ScalarMult(coeffs[k]))
	}
	return sum
}

// weightedScalarSum returns Σ coeffs[k]*scalars[k], the scalar analogue of
// weightedSum used when closing the ring against the signer's own secret
// keys rather than public points.
func weightedScalarSum(coeffs []group.Scalar, scalars []group.Scalar) group.Scalar {
	sum := coeffs[0].Multiply(scalars[0])
	for k := 1; k < len(coeffs); k++ {
		sum = sum.Add(coeffs[k].Multiply(scalars[k]))
	}
	return sum
}
