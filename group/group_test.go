package group

import (
	"crypto/rand"
	"testing"

	"threshold.network/ringsig/internal/testutils"
)

func TestScalarRoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}

	decoded, err := ScalarFromCanonicalBytes(s.Bytes())
	if err != nil {
		t.Fatalf("decoding canonical bytes: %v", err)
	}
	testutils.AssertScalarsEqual(t, "round-tripped scalar", s, decoded)
}

func TestScalarFromCanonicalBytes_RejectsNonCanonical(t *testing.T) {
	// All 32 bytes 0xff, i.e. 2^256 - 1 little-endian: far beyond the group
	// order (about 2^252), so it can never be a canonical encoding.
	overflow := make([]byte, ScalarLen)
	for i := range overflow {
		overflow[i] = 0xff
	}
	if _, err := ScalarFromCanonicalBytes(overflow); err == nil {
		t.Fatalf("expected non-canonical scalar to be rejected")
	}
}

func TestScalarFromCanonicalBytes_RejectsWrongLength(t *testing.T) {
	if _, err := ScalarFromCanonicalBytes(make([]byte, ScalarLen-1)); err == nil {
		t.Fatalf("expected short input to be rejected")
	}
}

func TestPointRoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}
	p := ScalarBaseMult(s)

	decoded, err := PointFromCompressedBytes(p.Bytes())
	if err != nil {
		t.Fatalf("decoding compressed point: %v", err)
	}
	testutils.AssertPointsEqual(t, "round-tripped point", p, decoded)
}

func TestScalarBaseMult_MatchesRepeatedAddition(t *testing.T) {
	three := ScalarFromUint64(3)
	viaMult := ScalarBaseMult(three)

	g := Base()
	viaAdd := g.Add(g).Add(g)

	testutils.AssertPointsEqual(t, "3*G via scalar mult vs repeated addition", viaAdd, viaMult)
}

func TestMultiScalarMult_MatchesSequentialSum(t *testing.T) {
	scalars := make([]Scalar, 4)
	points := make([]Point, 4)
	for i := range scalars {
		s, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("random scalar: %v", err)
		}
		scalars[i] = s
		points[i] = ScalarBaseMult(s)
	}

	want := points[0].ScalarMult(scalars[0])
	for i := 1; i < len(scalars); i++ {
		want = want.Add(points[i].ScalarMult(scalars[i]))
	}

	got := MultiScalarMult(scalars, points)
	testutils.AssertPointsEqual(t, "multi-scalar mult vs sequential sum", want, got)
}

func TestHashToPoint_IsDeterministic(t *testing.T) {
	a := HashToPoint([]byte("ringsig"), []byte("hash-to-point"))
	b := HashToPoint([]byte("ringsig"), []byte("hash-to-point"))
	testutils.AssertPointsEqual(t, "hash-to-point determinism", a, b)
}

func TestIdentity_IsAdditiveIdentity(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}
	p := ScalarBaseMult(s)

	testutils.AssertPointsEqual(t, "p + identity", p, p.Add(Identity()))
}
