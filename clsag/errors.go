package clsag

import "errors"

// Sentinel errors identifying the taxonomy from the specification's error
// handling design. Callers distinguish failure modes with errors.Is, not by
// inspecting error strings.
var (
	// ErrIncorrectNumOfPubKeys is returned when the public matrix's row
	// count does not match the signature's response count.
	ErrIncorrectNumOfPubKeys = errors.New("clsag: incorrect number of public keys")

	// ErrWrongKeyImageCount is returned when the signature's key image count
	// does not match the ring's column count.
	ErrWrongKeyImageCount = errors.New("clsag: wrong number of key images")

	// ErrBadKeyImages is returned when a key image fails to decompress.
	ErrBadKeyImages = errors.New("clsag: key image failed to decompress")

	// ErrBadPoint is returned when any other point (a ring pubkey) fails
	// to decompress.
	ErrBadPoint = errors.New("clsag: point failed to decompress")

	// ErrChallengeMismatch is returned when the Fiat-Shamir recomputation
	// disagrees with the signature's stored challenge. This is a normal
	// negative verification result, not a malformed-input error.
	ErrChallengeMismatch = errors.New("clsag: challenge mismatch")

	// ErrUnderlying wraps an arithmetic or hashing primitive failure that
	// should be impossible for well-formed inputs.
	ErrUnderlying = errors.New("clsag: underlying primitive failure")
)
