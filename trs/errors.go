package trs

import "errors"

// Sentinel errors for TRS. ErrSignerNotInRing and ErrRingTooLarge are
// signing-time precondition failures: per §7, signing is total for
// well-formed inputs, so these only fire on programmer errors, since the
// caller controls both the tag and the private key. ErrMalformedSignature
// is returned by Verify for a signature whose shape does not match the tag.
var (
	// ErrSignerNotInRing is returned when the private key's public point
	// does not appear anywhere in the tag's pubkey list.
	ErrSignerNotInRing = errors.New("trs: signer public key not found in tag")

	// ErrRingTooLarge is returned when a tag's ring size would overflow
	// the "index as a scalar" convention (a theoretical, not practical,
	// bound).
	ErrRingTooLarge = errors.New("trs: ring size too large for the index-as-scalar convention")

	// ErrMalformedSignature is returned when a signature's component
	// slices do not match the tag's ring size.
	ErrMalformedSignature = errors.New("trs: signature component count does not match ring size")
)

// ErrVerificationFailed is the TRS analogue of CLSAG's ChallengeMismatch: a
// normal negative verification result, not a malformed-input error.
var ErrVerificationFailed = errors.New("trs: challenge mismatch")
