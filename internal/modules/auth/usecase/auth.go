package usecase

import (
	"context"

	"planview/internal/modules/auth/domain"
	"planview/internal/modules/auth/dto"
	authin "planview/internal/modules/auth/port/in"
	authout "planview/internal/modules/auth/port/out"
	"planview/internal/modules/auth/service"
)

type Interactor struct {
	svc   *service.AuthService
	store authout.CredentialStore
}

func NewInteractor(svc *service.AuthService, store authout.CredentialStore) authin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	session, err := i.svc.Login(ctx, input.Email, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.store.Save(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.store.Clear(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func toOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		Token:     session.Token,
		FirstName: session.Identity.FirstName,
		LastName:  session.Identity.LastName,
		Email:     session.Identity.Email,
	}
}
