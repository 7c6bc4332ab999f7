package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// encryptFile encrypts the file at localFilePath using AES-256 GCM with a key
// derived from protectionKey. The encrypted data is written to a temporary
// file whose path is returned along with a cleanup func that removes it.
// The nonce is prepended to the ciphertext.
func encryptFile(localFilePath, protectionKey string) (string, func(), error) {
	plaintext, err := os.ReadFile(localFilePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Derive a 32-byte key via SHA-256.
	keyHash := sha256.Sum256([]byte(protectionKey))

	block, err := aes.NewCipher(keyHash[:])
	if err != nil {
		return "", nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)

	tempFilePath := filepath.Join(os.TempDir(), fmt.Sprintf("enc-%d", time.Now().UnixNano()))
	if err := os.WriteFile(tempFilePath, ciphertext, 0600); err != nil {
		return "", nil, fmt.Errorf("failed to write encrypted file: %w", err)
	}

	cleanup := func() { os.Remove(tempFilePath) }
	return tempFilePath, cleanup, nil
}
