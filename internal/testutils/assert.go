package testutils

import (
	"errors"
	"testing"

	"threshold.network/ringsig/group"
)

// AssertBoolsEqual checks if two booleans are equal. If not, it reports a test
// failure.
func AssertBoolsEqual(t *testing.T, description string, expected bool, actual bool) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertScalarsEqual checks if two group scalars represent the same value.
// If not, it reports a test failure comparing their canonical encodings.
func AssertScalarsEqual(t *testing.T, description string, expected, actual group.Scalar) {
	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %s\nexpected: %x\nactual:   %x\n",
			description,
			expected.Bytes(),
			actual.Bytes(),
		)
	}
}

// AssertPointsEqual checks if two group points represent the same element.
// If not, it reports a test failure comparing their compressed encodings.
func AssertPointsEqual(t *testing.T, description string, expected, actual group.Point) {
	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %s\nexpected: %x\nactual:   %x\n",
			description,
			expected.Bytes(),
			actual.Bytes(),
		)
	}
}

// AssertErrorIs checks if err satisfies errors.Is(err, target). If not, it
// reports a test failure.
func AssertErrorIs(t *testing.T, description string, err error, target error) {
	if !errors.Is(err, target) {
		t.Errorf(
			"unexpected %s\nexpected error matching: %v\nactual:                 %v\n",
			description,
			target,
			err,
		)
	}
}
