package index

import (
	"bytes"
	"cmp"
)

// Compare returns the natural three-way order of a and b: negative if
// a < b, zero if equal, positive if a > b. It is the Compare function to
// pass to New for any scalar key type, the same shape slices.SortFunc and
// cmp.Compare already use in the standard library.
func Compare[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}

// BytesCompare orders []byte keys lexicographically: element by element,
// with a proper prefix sorting strictly before any extension of it. Pass
// this to New when K is []byte.
func BytesCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}
