package api

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"numberbot/pkg/controller"
	"numberbot/pkg/logger"
	"numberbot/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SubjectKey is the context key the authenticated token subject is stored under.
const SubjectKey controller.CtxKey = "Subject"

// Authenticator verifies RS256 admin tokens.
type Authenticator struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewAuthenticator parses the PEM encoded RSA public key tokens are verified with.
func NewAuthenticator(publicKeyPEM string) (*Authenticator, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Authenticator{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Authenticate returns the subject of a valid token. Every failure is an
// serrors.ErrUnauthorized.
func (a *Authenticator) Authenticate(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := a.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.key, nil
	})
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	if claims.Subject == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return claims.Subject, nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" token
// and stores the token subject in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			controller.WriteError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		subject, err := a.Authenticate(strings.TrimSpace(token))
		if err != nil {
			logger.Warn(ctx, "rejected admin token", zap.Error(err))
			controller.WriteError(ctx, w, err)

			return
		}

		ctx = context.WithValue(ctx, SubjectKey, subject)
		ctx = logger.WithFields(ctx, zap.String(string(SubjectKey), subject))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
