package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/synthapp/synth/pkg/cache"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// IVLength is the AES-GCM nonce size used for chat messages
	IVLength = 12
	// TagLength is the GCM authentication tag size in bytes (128 bits)
	TagLength = 16
	// KeyLength selects AES-256
	KeyLength = 32

	keyCacheTTL = time.Hour
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveChatKey derives the shared AES key of a chat. Every member derives the
// same key from the chat id so no key exchange is needed.
func DeriveChatKey(chatID, salt string, iterations int) []byte {
	return pbkdf2.Key([]byte(chatID), []byte(salt), iterations, KeyLength, sha256.New)
}

// ChatCipher encrypts chat message bodies as base64(iv || ciphertext || tag).
// Derived keys are cached since PBKDF2 is deliberately slow.
type ChatCipher struct {
	salt       string
	iterations int
	keys       *cache.InMemoryCache[[]byte]
	rand       io.Reader
}

func NewChatCipher(salt string, iterations int) *ChatCipher {
	return &ChatCipher{
		salt:       salt,
		iterations: iterations,
		keys:       cache.NewInMemoryCache[[]byte](10 * time.Minute),
		rand:       rand.Reader,
	}
}

func (c *ChatCipher) key(chatID string) []byte {
	if k, ok := c.keys.Get(chatID); ok {
		return k
	}
	k := DeriveChatKey(chatID, c.salt, c.iterations)
	c.keys.Set(chatID, k, keyCacheTTL)
	return k
}

func (c *ChatCipher) gcm(chatID string) (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key(chatID))
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext with the chat key
func (c *ChatCipher) Encrypt(chatID, plaintext string) (string, error) {
	aead, err := c.gcm(chatID)
	if err != nil {
		return "", fmt.Errorf("Encrypt error: %w", err)
	}

	iv := make([]byte, IVLength)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return "", fmt.Errorf("Encrypt reader error: %w", err)
	}

	sealed := aead.Seal(iv, iv, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a payload produced by Encrypt
func (c *ChatCipher) Decrypt(chatID, payload string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("Decrypt decode error: %w", err)
	}
	if len(data) < IVLength+TagLength {
		return "", ErrCiphertextTooShort
	}

	aead, err := c.gcm(chatID)
	if err != nil {
		return "", fmt.Errorf("Decrypt error: %w", err)
	}

	plaintext, err := aead.Open(nil, data[:IVLength], data[IVLength:], nil)
	if err != nil {
		return "", fmt.Errorf("Decrypt open gcm error: %w", err)
	}
	return string(plaintext), nil
}

// Forget drops the cached key of a chat
func (c *ChatCipher) Forget(chatID string) {
	c.keys.Delete(chatID)
}

// Close stops the key cache
func (c *ChatCipher) Close() {
	c.keys.Stop()
}

// IsEncrypted reports whether a stored message body has the encrypted wire
// format. Legacy plaintext rows fail this check and are returned unchanged.
func IsEncrypted(message string) bool {
	if len(message) < IVLength*2 {
		return false
	}
	data, err := base64.StdEncoding.DecodeString(message)
	if err != nil {
		return false
	}
	return len(data) >= IVLength+TagLength
}
