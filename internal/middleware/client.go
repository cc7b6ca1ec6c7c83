package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	clientIssuer    = "crazy-coffee"
	clientCookieAge = 365 * 24 * time.Hour
)

type contextKey string

const (
	clientIDKey  contextKey = "client_id"
	returningKey contextKey = "returning_client"
)

// ClientIDFromContext returns the browser id set by ClientIdentity.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok && id != ""
}

// WithClientID returns a copy of ctx carrying id.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey, id)
}

// WithReturningClient marks ctx as coming from a browser that presented a
// valid client cookie.
func WithReturningClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, returningKey, true)
}

// IsReturningClient reports whether the request carried a valid client
// cookie. Freshly issued ids have not been stored by the browser yet.
func IsReturningClient(ctx context.Context) bool {
	returning, _ := ctx.Value(returningKey).(bool)
	return returning
}

// ClientTokens signs and verifies the client cookie. The token is an HS256
// JWT whose subject is the client id.
type ClientTokens struct {
	secret []byte
}

// NewClientTokens creates a signer using secret.
func NewClientTokens(secret string) *ClientTokens {
	return &ClientTokens{secret: []byte(secret)}
}

// Issue signs a token for clientID.
func (t *ClientTokens) Issue(clientID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  clientID,
		Issuer:   clientIssuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign client token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns the client id it carries.
func (t *ClientTokens) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(clientIssuer))
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", errors.New("invalid client token")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("invalid client id: %w", err)
	}
	return claims.Subject, nil
}

// ClientIdentity gives every browser a stable id. A valid cookie is reused;
// a missing or tampered one is replaced with a freshly signed id.
func ClientIdentity(tokens *ClientTokens, cookieName string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(cookieName); err == nil {
				id, err := tokens.Parse(cookie.Value)
				if err == nil {
					ctx := WithReturningClient(WithClientID(r.Context(), id))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected client cookie")
			}

			id := uuid.NewString()
			signed, err := tokens.Issue(id, time.Now())
			if err != nil {
				logger.Error().Err(err).Msg("failed to issue client cookie")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    signed,
				Path:     "/",
				MaxAge:   int(clientCookieAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), id)))
		})
	}
}
