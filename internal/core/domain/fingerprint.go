package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a stable 64-bit digest of a source locator.
// It is a pure function of the locator string; the locator's contents are
// never inspected (the locator is an opaque value supplied by the caller).
func Fingerprint(locator string) uint64 {
	return xxhash.Sum64String(locator)
}

// FormatFingerprint renders a fingerprint as fixed-width hex.
func FormatFingerprint(fp uint64) string {
	const hexWidth = 16
	s := strconv.FormatUint(fp, 16)
	for len(s) < hexWidth {
		s = "0" + s
	}
	return s
}
