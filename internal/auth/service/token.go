package service

import (
	"time"

	"github.com/codezen-labs/codezen/internal/auth/domain"
	"github.com/codezen-labs/codezen/pkg/jwtx"
)

// TokenService issues and verifies the stateless session tokens. Nothing is
// persisted: the signing secret and the 24h horizon are the whole story.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Issue mints a session token for the user. The email claim captures the
// address at issue time; a later email change does not invalidate the token.
func (s *TokenService) Issue(user domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(user.ID, user.Email, s.Issuer, s.ttl(), time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verify checks the signature and expiry and returns the embedded claims.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}

func (s *TokenService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTokenTTL
}
