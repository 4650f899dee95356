package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_RoundsCoordinates(t *testing.T) {
	// Differences past the 4th decimal place (~11m) collapse to the
	// same key.
	a := Fingerprint("Can I build a shop?", -1.94410, 30.06190, "C1-Mixed use zone", "en")
	b := Fingerprint("Can I build a shop?", -1.94412, 30.06191, "C1-Mixed use zone", "en")
	assert.Equal(t, a, b)

	// A 4th-decimal difference is a different location.
	c := Fingerprint("Can I build a shop?", -1.9442, 30.0619, "C1-Mixed use zone", "en")
	assert.NotEqual(t, a, c)
}

func TestFingerprint_Discriminators(t *testing.T) {
	base := Fingerprint("question", -1.95, 30.06, "zone", "en")

	assert.NotEqual(t, base, Fingerprint("other question", -1.95, 30.06, "zone", "en"))
	assert.NotEqual(t, base, Fingerprint("question", -1.95, 30.06, "other zone", "en"))
	assert.NotEqual(t, base, Fingerprint("question", -1.95, 30.06, "zone", "rw"))
}

func TestFingerprint_Format(t *testing.T) {
	// md5 hex digest, stable across calls.
	fp := Fingerprint("q", -1.9536, 30.0606, "R1", "en")
	assert.Len(t, fp, 32)
	assert.Equal(t, fp, Fingerprint("q", -1.9536, 30.0606, "R1", "en"))
}
