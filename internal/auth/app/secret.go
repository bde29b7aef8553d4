package app

import (
	"crypto/rand"
	"fmt"
	"log/slog"
)

const ephemeralSecretBytes = 32

// initSessionSecret resolves the HS256 signing secret. A configured secret
// survives restarts; without one a random secret is generated, which
// invalidates every outstanding session token when the process restarts.
func initSessionSecret(cfg Config, logger *slog.Logger) ([]byte, error) {
	if cfg.SecretKey != "" {
		return []byte(cfg.SecretKey), nil
	}

	secret := make([]byte, ephemeralSecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate ephemeral secret: %w", err)
	}

	logger.Warn("AUTH_SECRET_KEY not set, using an ephemeral signing secret; " +
		"session tokens will not survive restarts")
	return secret, nil
}
