package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Recipient identities are stored obfuscated under a key derived from the
// giver's identity, so only the giver's own session can decode them. This is
// an anti-casual-disclosure measure, deliberately reversible, not a security
// boundary.

const (
	keyPrefix  = "manito-"
	keySuffix  = "-secret-key"
	hashPrefix = "manito-hash-"

	// fingerprintLen is the hex length of the taken-set tag. 16 hex chars
	// (64 bits) is far beyond collision risk for a roster of a few dozen.
	fingerprintLen = 16
)

// giverKey derives the repeating XOR key from a giver identity
func giverKey(giverID string) []byte {
	return []byte(keyPrefix + giverID + keySuffix)
}

// xorBytes combines data with a repeating key
func xorBytes(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}

// Obfuscate encodes a recipient identity under the giver's key
func Obfuscate(recipientID, giverID string) string {
	encrypted := xorBytes([]byte(recipientID), giverKey(giverID))
	return base64.StdEncoding.EncodeToString(encrypted)
}

// Reveal decodes an obfuscated recipient identity using the giver's key.
// Reveal(Obfuscate(r, g), g) == r for all r, g.
func Reveal(token, giverID string) (string, error) {
	encrypted, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("malformed recipient token: %w", err)
	}
	return string(xorBytes(encrypted, giverKey(giverID))), nil
}

// Fingerprint produces a deterministic, giver-independent one-way tag of a
// recipient identity. It is used only to test "is this recipient taken"
// without revealing who they are; it is never decoded.
func Fingerprint(recipientID string) string {
	sum := sha256.Sum256([]byte(hashPrefix + recipientID))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
