package main

import (
	"encoding/hex"
	"errors"
	"testing"

	"threshold.network/ringsig/clsag"
	"threshold.network/ringsig/group"
)

// TestDecodeCLSAGSignature_RejectsBadKeyImage feeds a signature whose key
// image bytes do not decompress to a valid point through decodeCLSAGSignature
// and asserts the decode failure is reported via clsag.ErrBadKeyImages, not a
// bare error — the one call site in this command that can trigger a genuine
// key-image decompression failure (as opposed to a count mismatch, which is
// clsag.ErrWrongKeyImageCount).
func TestDecodeCLSAGSignature_RejectsBadKeyImage(t *testing.T) {
	challenge := make([]byte, group.ScalarLen)
	response := make([]byte, group.ScalarLen)

	badKeyImage := make([]byte, group.PointLen)
	for i := range badKeyImage {
		badKeyImage[i] = 0xff
	}

	raw := append(append(append([]byte{}, challenge...), response...), badKeyImage...)
	sigHex := hex.EncodeToString(raw)

	_, err := decodeCLSAGSignature(sigHex, 1, 1)
	if err == nil {
		t.Fatalf("expected decode error for malformed key image")
	}
	if !errors.Is(err, clsag.ErrBadKeyImages) {
		t.Fatalf("expected errors.Is(err, clsag.ErrBadKeyImages), got: %v", err)
	}
}
