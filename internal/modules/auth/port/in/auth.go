package in

import (
	"context"

	"planview/internal/modules/auth/dto"
)

type Usecase interface {
	// Login validates and exchanges credentials; on failure the stored
	// session is left untouched.
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	// Logout clears the stored session unconditionally; idempotent.
	Logout(ctx context.Context) error
	// Current restores the persisted session, or ErrNotLoggedIn.
	Current(ctx context.Context) (dto.SessionOutput, error)
}
