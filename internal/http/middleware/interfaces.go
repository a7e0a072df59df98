package middleware

import (
	"compliancedesk/internal/models"
	"context"
)

const pkg = "middleware/"

type SessionStorer interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
}
