package fwserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/radupana/featherweight-sub015/internal/auth"
)

func TestJWTAuth_GenerateToken(t *testing.T) {
	jwtAuth := NewJWTAuth("test-secret")
	userID := "test-user-123"
	installationID := "test-install-456"
	duration := time.Hour

	token, err := jwtAuth.GenerateToken(userID, installationID, duration)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Error("Generated token should not be empty")
	}

	claims, err := jwtAuth.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate generated token: %v", err)
	}
	if claims.Subject != userID {
		t.Errorf("Expected user_id %s, got %s", userID, claims.Subject)
	}
	if claims.InstallationID != installationID {
		t.Errorf("Expected installation_id %s, got %s", installationID, claims.InstallationID)
	}

	if claims.ExpiresAt == nil {
		t.Fatal("Token should have expiration time")
	}
	expectedExpiry := time.Now().Add(duration)
	if diff := claims.ExpiresAt.Time.Sub(expectedExpiry).Abs(); diff > time.Second {
		t.Errorf("Token expiry differs by more than 1 second: got %v", claims.ExpiresAt.Time)
	}
}

func TestJWTAuth_ValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTAuth("secret-a").GenerateToken("user", "install", time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if _, err := NewJWTAuth("secret-b").ValidateToken(token); err == nil {
		t.Error("Token signed with a different secret should not validate")
	}
}

func TestJWTAuth_ValidateToken_Expired(t *testing.T) {
	jwtAuth := NewJWTAuth("test-secret")
	token, err := jwtAuth.GenerateToken("user", "install", -time.Minute)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if _, err := jwtAuth.ValidateToken(token); err == nil {
		t.Error("Expired token should not validate")
	}
}

func TestJWTAuth_ValidateToken_MissingClaims(t *testing.T) {
	secret := "test-secret"
	jwtAuth := NewJWTAuth(secret)

	// Token without the installation id claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	if _, err := jwtAuth.ValidateToken(token); err == nil {
		t.Error("Token without iid claim should not validate")
	}

	// Token without a subject.
	raw = jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		InstallationID: "install-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err = raw.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	if _, err := jwtAuth.ValidateToken(token); err == nil {
		t.Error("Token without sub claim should not validate")
	}
}

func TestJWTAuth_Middleware(t *testing.T) {
	jwtAuth := NewJWTAuth("test-secret")

	var gotUser, gotInstall string
	handler := jwtAuth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = auth.GetUserID(r.Context())
		gotInstall, _ = auth.GetInstallationID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// No Authorization header.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", rec.Code)
	}

	// Garbage token.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with invalid token, got %d", rec.Code)
	}

	// Valid token reaches the handler with identity in context.
	token, err := jwtAuth.GenerateToken("user-1", "install-1", time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 with valid token, got %d", rec.Code)
	}
	if gotUser != "user-1" {
		t.Errorf("Expected user-1 in context, got %q", gotUser)
	}
	if gotInstall != "install-1" {
		t.Errorf("Expected install-1 in context, got %q", gotInstall)
	}
}
