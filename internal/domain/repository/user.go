package repository

import (
	"context"

	"github.com/avoandes/avomarket/internal/domain/model"
)

// UserRepository describes account storage. Vendors and buyers are looked up
// by (role, id) pairs because the two seed collections reuse small numeric
// identifiers.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Get(ctx context.Context, role model.Role, id string) (*model.User, error)
}
