package services

import (
	"context"

	"estatehub/pkg/auth"
)

// actorEmail returns the verified caller's email for audit entries.
func actorEmail(ctx context.Context) string {
	if id, ok := auth.FromContext(ctx); ok {
		return id.Email
	}
	return ""
}
