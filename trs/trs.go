package trs

import (
	"threshold.network/ringsig/group"
)

// Signature is a TRS ring signature: the shared pseudonym-line point A1,
// and one challenge/response pair per ring position.
type Signature struct {
	A1 group.Point
	C  []group.Scalar
	Z  []group.Scalar
}

// EncodedLen returns the byte length of the signature's wire encoding: 32
// (A1) + 32*N (c[]) + 32*N (z[]).
func (sig *Signature) EncodedLen() int {
	return group.PointLen + group.ScalarLen*len(sig.C) + group.ScalarLen*len(sig.Z)
}

// Bytes returns the bit-exact wire encoding from §6: A1 ‖ c[] ‖ z[].
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 0, sig.EncodedLen())
	out = append(out, sig.A1.Bytes()...)
	for _, c := range sig.C {
		out = append(out, c.Bytes()...)
	}
	for _, z := range sig.Z {
		out = append(out, z.Bytes()...)
	}
	return out
}

// sumChallenges returns Σ c_i, used by verify to compare against the
// recomputed overall challenge.
func sumChallenges(c []group.Scalar) group.Scalar {
	sum := group.NewScalar()
	for _, ci := range c {
		sum = sum.Add(ci)
	}
	return sum
}

// overallChallenge recomputes c = wide_reduce(H2(tag) ‖ A0 ‖ A1 ‖ a[] ‖ b[])
// per §4.4 step 9 / §4.5 step 3. The domain-2 absorption of the tag precedes
// everything else; a, b are absorbed in ring-position order, a[] entirely
// before b[].
func overallChallenge(tag Tag, a0, a1 group.Point, a, b []group.Point) group.Scalar {
	d := tag.hash2()
	d.Update(a0.Bytes())
	d.Update(a1.Bytes())
	for _, ai := range a {
		d.Update(ai.Bytes())
	}
	for _, bi := range b {
		d.Update(bi.Bytes())
	}
	return d.FinalizeScalar()
}
