package auth

import "context"

type contextKey string

const (
	userIDKey         contextKey = "user_id"
	installationIDKey contextKey = "installation_id"
)

// SetUserID sets the authenticated user id in the context.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID retrieves the authenticated user id from the context.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// SetInstallationID sets the calling device's installation id in the context.
func SetInstallationID(ctx context.Context, installationID string) context.Context {
	return context.WithValue(ctx, installationIDKey, installationID)
}

// GetInstallationID retrieves the installation id from the context.
func GetInstallationID(ctx context.Context) (string, bool) {
	installationID, ok := ctx.Value(installationIDKey).(string)
	return installationID, ok
}
