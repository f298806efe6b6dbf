package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON returns the hex SHA-256 digest of the JSON encoding of v. Map keys
// are sorted by encoding/json, so equal values hash alike.
func HashJSON(v any) (string, error) {
	h := sha256.New()
	if err := json.NewEncoder(h).Encode(v); err != nil {
		return "", err
	}
	return digest(h), nil
}

// hashKey returns "kind:" followed by the digest of parts. Parts that fail
// to encode contribute nothing.
func hashKey(kind string, parts ...any) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode(parts)
	return kind + ":" + digest(h)
}

func digest(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
