package common

import (
	"encoding/hex"
)

// ToHex encodes b as a 0x-prefixed hex string.
func ToHex(b []byte) string {
	h := hex.EncodeToString(b)
	if len(h) == 0 {
		return ""
	}
	return "0x" + h
}

// FromHex decodes a hex string, tolerating a 0x prefix and an odd
// number of digits.
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
