package fwserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/radupana/featherweight-sub015/internal/auth"
)

// JWTAuth authenticates sync requests. Tokens carry the user id in the
// standard sub claim and the device installation id in iid.
type JWTAuth struct {
	secret []byte
}

// NewJWTAuth creates a JWT authenticator with an HMAC secret.
func NewJWTAuth(secret string) *JWTAuth {
	return &JWTAuth{secret: []byte(secret)}
}

// Claims are the token claims for multi-device sync.
type Claims struct {
	InstallationID string `json:"iid"`
	jwt.RegisteredClaims
}

// GenerateToken issues a token for one user on one device installation.
func (j *JWTAuth) GenerateToken(userID, installationID string, expiration time.Duration) (string, error) {
	claims := &Claims{
		InstallationID: installationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "featherweight",
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateToken validates a token and returns its claims.
func (j *JWTAuth) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("missing sub (user id) in token")
	}
	if claims.InstallationID == "" {
		return nil, fmt.Errorf("missing iid (installation id) in token")
	}
	return claims, nil
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header required")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return "", fmt.Errorf("bearer token required")
	}
	return token, nil
}

// Middleware enforces a valid bearer token and stores the caller's
// identity in the request context.
func (j *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := j.ValidateToken(token)
		if err != nil {
			tokenPrefix := token
			if len(tokenPrefix) > 20 {
				tokenPrefix = tokenPrefix[:20]
			}
			slog.Error("JWT validation failed", "error", err, "token_prefix", tokenPrefix)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := auth.SetUserID(r.Context(), claims.Subject)
		ctx = auth.SetInstallationID(ctx, claims.InstallationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
