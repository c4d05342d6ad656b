package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"planview/internal/modules/auth/domain"
	authout "planview/internal/modules/auth/port/out"
	apperrors "planview/internal/platform/errors"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type AuthService struct {
	authenticator authout.Authenticator
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewAuthService(authenticator authout.Authenticator, logger *zap.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		validate:      validator.New(),
		logger:        logger,
	}
}

// Login checks the form locally before going to the network; an empty or
// malformed field never costs a round-trip.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	form := loginForm{Email: email, Password: password}
	if err := s.validate.Struct(form); err != nil {
		return domain.Session{}, fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidInput)
	}
	session, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", zap.String("email", email), zap.Error(err))
		return domain.Session{}, err
	}
	if !session.Authenticated() {
		return domain.Session{}, fmt.Errorf("%w: incomplete session from server", apperrors.ErrInvalidCredentials)
	}
	s.logger.Info("login succeeded", zap.String("email", session.Identity.Email))
	return session, nil
}
