package store

import "crypto/rand"

const pickupCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewPickupCode returns an 8-character uppercase-alphanumeric code. Codes are
// random and collision-unchecked.
func NewPickupCode() string {
	return randomCode(8)
}

func randomCode(n int) string {
	buf := make([]byte, n)
	// crypto/rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = pickupCodeAlphabet[int(b)%len(pickupCodeAlphabet)]
	}
	return string(buf)
}
