package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

var (
	ErrInvalidKey        = errors.New("secret key must be 32 bytes of hex")
	ErrInvalidCiphertext = errors.New("ciphertext is malformed or key mismatch")
)

// Box seals and opens small secrets (VM passwords) with a symmetric key
// so they are never stored in clear text.
type Box struct {
	key [32]byte
}

// New creates a Box from a hex-encoded 32-byte key.
func New(hexKey string) (*Box, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil || len(raw) != 32 {
		return nil, ErrInvalidKey
	}
	b := &Box{}
	copy(b.key[:], raw)
	return b, nil
}

// Seal encrypts plaintext and returns a base64 string with the nonce prefixed.
func (b *Box) Seal(plaintext string) (string, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal.
func (b *Box) Open(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil || len(raw) < 24 {
		return "", ErrInvalidCiphertext
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	opened, ok := secretbox.Open(nil, raw[24:], &nonce, &b.key)
	if !ok {
		return "", ErrInvalidCiphertext
	}
	return string(opened), nil
}
