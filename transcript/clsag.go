// Package transcript implements the two Fiat–Shamir adapters described in
// §4.1 of the specification: a labeled Merlin transcript for CLSAG, and
// three domain-separated extendable hashes for TRS.
package transcript

import (
	"github.com/gtank/merlin"

	"threshold.network/ringsig/group"
)

// CLSAGLabel is the application label CLSAG transcripts are initialized
// with. It must be identical on the signer and every verifier.
const CLSAGLabel = "clsag"

// CLSAG wraps a Merlin transcript with the `append_message`,
// `append_point`, and `challenge_scalar` operations the CLSAG sign/verify
// algorithms require. Labels passed to the Append* methods are opaque; this
// module consistently uses the empty label, matching the reference
// construction in the original CLSAG source this scheme is grounded on.
type CLSAG struct {
	t *merlin.Transcript
}

// NewCLSAG creates a fresh transcript for one CLSAG challenge; the clsag
// package opens a new one for every ring position.
func NewCLSAG() *CLSAG {
	return &CLSAG{t: merlin.NewTranscript(CLSAGLabel)}
}

// AppendMessage absorbs labeled bytes into the transcript.
func (c *CLSAG) AppendMessage(label string, data []byte) {
	c.t.AppendMessage([]byte(label), data)
}

// AppendPoint absorbs a labeled compressed point into the transcript.
func (c *CLSAG) AppendPoint(label string, p group.Point) {
	c.t.AppendMessage([]byte(label), p.Bytes())
}

// ChallengeScalar extracts a labeled challenge scalar from the transcript
// state accumulated so far. Merlin does not know about our scalar field, so
// we pull 64 bytes of transcript output and wide-reduce them, the same
// pattern the `TranscriptProtocol` extension trait uses over merlin's
// `challenge_bytes` in the original Rust source.
func (c *CLSAG) ChallengeScalar(label string) group.Scalar {
	wide := c.t.ExtractBytes([]byte(label), 64)
	return group.ScalarFromWideBytes(wide)
}
