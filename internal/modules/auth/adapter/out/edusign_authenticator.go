package out

import (
	"context"

	"planview/internal/modules/auth/domain"
	authout "planview/internal/modules/auth/port/out"
	"planview/internal/platform/edusign"
)

type EdusignAuthenticator struct {
	client *edusign.Client
}

func NewEdusignAuthenticator(client *edusign.Client) authout.Authenticator {
	return &EdusignAuthenticator{client: client}
}

func (a *EdusignAuthenticator) Authenticate(ctx context.Context, email, password string) (domain.Session, error) {
	account, err := a.client.Authenticate(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token: account.Token,
		Identity: domain.Identity{
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
		},
	}, nil
}
