package transcript

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"threshold.network/ringsig/group"
)

// TRS domain strings, one per independent extendable hash instance required
// by §4.1. Each instance is keyed with its own domain string so that H0, H1,
// and H2 are independent random oracles even though they absorb the same
// tag material.
var (
	trsDomain0 = []byte("ringsig-trs-domain-0")
	trsDomain1 = []byte("ringsig-trs-domain-1")
	trsDomain2 = []byte("ringsig-trs-domain-2")
)

// TRSDigest accumulates bytes for one of TRS's three domain-separated hash
// instances and finalizes into either a scalar (wide reduction) or a point
// (hash-to-point), matching the two ways §4.4/§4.5 consume a finished hash.
type TRSDigest struct {
	h interface {
		Write([]byte) (int, error)
		Sum([]byte) []byte
	}
}

func newDomainHash(domain []byte) TRSDigest {
	h, err := blake2b.New512(domain)
	if err != nil {
		// blake2b.New512 only fails when the key exceeds 64 bytes; our
		// fixed domain strings never do.
		panic(fmt.Sprintf("transcript: blake2b keyed init failed: %v", err))
	}
	return TRSDigest{h: h}
}

// TagHash0/1/2 start a fresh digest for the given tag's three domain hashes,
// already absorbing the tag's pubkeys (in order) followed by the issue
// bytes, as required by §4.1: "Each ... absorbs the concatenation of all
// compressed pubkeys in order followed by the issue bytes."
func TagHash0(pubkeyBytes [][]byte, issue []byte) TRSDigest {
	return tagHash(trsDomain0, pubkeyBytes, issue)
}

func TagHash1(pubkeyBytes [][]byte, issue []byte) TRSDigest {
	return tagHash(trsDomain1, pubkeyBytes, issue)
}

func TagHash2(pubkeyBytes [][]byte, issue []byte) TRSDigest {
	return tagHash(trsDomain2, pubkeyBytes, issue)
}

func tagHash(domain []byte, pubkeyBytes [][]byte, issue []byte) TRSDigest {
	d := newDomainHash(domain)
	for _, pk := range pubkeyBytes {
		d.h.Write(pk)
	}
	d.h.Write(issue)
	return d
}

// Update absorbs additional scheme-specific material (message bytes, point
// encodings) after the tag prefix has been absorbed.
func (d TRSDigest) Update(data []byte) {
	d.h.Write(data)
}

// FinalizeScalar finalizes the digest and wide-reduces it into a scalar.
func (d TRSDigest) FinalizeScalar() group.Scalar {
	return group.ScalarFromWideBytes(d.h.Sum(nil))
}

// FinalizePoint finalizes the digest and maps it to a point in the
// prime-order subgroup.
func (d TRSDigest) FinalizePoint() group.Point {
	sum := d.h.Sum(nil)
	return group.HashToPointFromWide(sum)
}
