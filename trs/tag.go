// Package trs implements Fujisaki-style Traceable Ring Signatures: a ring
// signature scheme whose signatures, unlike CLSAG's, are not individually
// linkable but become linkable in hindsight when two signatures under the
// same tag are compared — the tracer can then decide "same signer, same
// message" (linked), "same signer, different message" (traceable to an
// index), or "different signers" (independent), per §4.4–§4.6.
package trs

import (
	"threshold.network/ringsig/group"
	"threshold.network/ringsig/ringkeys"
	"threshold.network/ringsig/transcript"
)

// Tag binds a signature to a fixed ring of public keys and an issue value —
// an application-chosen context string (e.g. an election or auction
// identifier) that prevents signatures minted for one context from tracing
// against another.
type Tag struct {
	Pubkeys []ringkeys.PublicKey
	Issue   []byte
}

// N returns the number of ring positions in the tag.
func (tag Tag) N() int { return len(tag.Pubkeys) }

// pubkeyBytes returns the compressed encoding of every pubkey in order, the
// prefix every domain hash absorbs before any scheme-specific material.
func (tag Tag) pubkeyBytes() [][]byte {
	out := make([][]byte, len(tag.Pubkeys))
	for i, pk := range tag.Pubkeys {
		out[i] = pk.Bytes()
	}
	return out
}

func (tag Tag) hash0() transcript.TRSDigest {
	return transcript.TagHash0(tag.pubkeyBytes(), tag.Issue)
}

func (tag Tag) hash1() transcript.TRSDigest {
	return transcript.TagHash1(tag.pubkeyBytes(), tag.Issue)
}

func (tag Tag) hash2() transcript.TRSDigest {
	return transcript.TagHash2(tag.pubkeyBytes(), tag.Issue)
}

// ringBase returns h = hash-to-point(H0(tag)), the tag-wide base point every
// pseudonym and nonce commitment in this ring is expressed against.
func (tag Tag) ringBase() group.Point {
	return tag.hash0().FinalizePoint()
}

// a0 returns A0 = hash-to-point(H1(tag) ‖ m), the message-dependent anchor
// every per-position pseudonym σ_i is built from.
func (tag Tag) a0(msg []byte) group.Point {
	d := tag.hash1()
	d.Update(msg)
	return d.FinalizePoint()
}

// indexScalar returns (i+1) as a scalar, the one-based index convention
// required throughout (§9): zero-based indexing would force the i=0 signer
// to divide by zero when solving for A1.
func indexScalar(i int) group.Scalar {
	return group.ScalarFromUint64(uint64(i + 1))
}

// sigma returns σ_i = A0 + (i+1)*A1 for ring position i, the shared
// pseudonym derivation used identically by the signer, the verifier, and
// the tracer.
func sigma(a0, a1 group.Point, i int) group.Point {
	return a0.Add(a1.ScalarMult(indexScalar(i)))
}

func allSigmas(a0, a1 group.Point, n int) []group.Point {
	out := make([]group.Point, n)
	for i := 0; i < n; i++ {
		out[i] = sigma(a0, a1, i)
	}
	return out
}
