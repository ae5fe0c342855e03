package crypto

import (
	crand "crypto/rand"
	"encoding/hex"
	"io"
)

// CRandBytes returns numBytes of cryptographically secure random data.
// It panics if the underlying entropy source fails.
func CRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	_, err := crand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

// CRandHex returns a hex-encoded string of numDigits random digits.
func CRandHex(numDigits int) string {
	return hex.EncodeToString(CRandBytes(numDigits / 2))
}

// CReader returns a crand.Reader.
func CReader() io.Reader {
	return crand.Reader
}
