package member

import (
	"context"

	"github.com/ifclub/ifclub-api/internal/model"
)

// Store is the durable keyed storage of members.
// Email is unique across all members; the store enforces it.
type Store interface {
	// Create assigns member.ID. ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, member *model.Member) error
	// FindByID returns ErrMemberNotFound on miss.
	FindByID(ctx context.Context, id uint64) (*model.Member, error)
	// FindByEmail returns (nil, nil) on miss.
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	FindAll(ctx context.Context) ([]model.Member, error)
	// DeleteByID is idempotent.
	DeleteByID(ctx context.Context, id uint64) error
	// Update saves the profile columns of an existing member. The refresh token is left untouched.
	Update(ctx context.Context, member *model.Member) error
	UpdateRefreshToken(ctx context.Context, id uint64, refreshToken string) error
}
