package signature

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

const (
	tokenBytes = 32
	// DefaultValidity is how long a signing link stays usable.
	DefaultValidity = 7 * 24 * time.Hour
)

var ErrMalformedToken = errors.New("malformed signing token")

// Token is handed to the customer once. Only Hash is ever stored.
type Token struct {
	Raw  string
	Hash string
}

func IssueToken() (Token, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return Token{}, err
	}
	raw := base64.RawURLEncoding.EncodeToString(b)
	return Token{Raw: raw, Hash: HashToken(raw)}, nil
}

func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// ParseToken checks the shape of a token taken from a URL and returns its hash.
func ParseToken(raw string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil || len(b) != tokenBytes {
		return "", ErrMalformedToken
	}
	return HashToken(raw), nil
}

func ComputeExpiry(createdAt time.Time, validity time.Duration) time.Time {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return createdAt.Add(validity)
}

// SignLink builds the customer-facing path for a token.
func SignLink(baseURL, raw string) string {
	return strings.TrimRight(baseURL, "/") + "/contract/sign/" + raw
}
