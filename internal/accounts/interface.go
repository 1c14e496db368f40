package accounts

import (
	"context"

	"favsetter/pkg/domain"
)

//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go *
type Accounts interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	User(ctx context.Context, userID domain.UserID) (*domain.User, error)
	ChangePassword(ctx context.Context, userID domain.UserID, currentPassword, newPassword string) error
}
