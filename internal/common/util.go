// Package common holds small helpers shared by the GophDiary client packages.
package common

// WipeByteArray overwrites b with zeros. Use it for passwords read from the
// terminal once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
