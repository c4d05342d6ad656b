package in

import (
	"context"

	authdto "planview/internal/modules/auth/dto"
	authin "planview/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.SessionOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}
