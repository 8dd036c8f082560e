package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"

	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
		log.Warn("host key unreadable, generating a new one", zap.String("path", path))
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "sokoban server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		log.Warn("host key not persisted", zap.String("path", path), zap.Error(err))
	} else {
		log.Info("generated host key", zap.String("path", path))
	}
	return signer, nil
}
