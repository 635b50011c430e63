package interfaces

import (
	"context"

	"github.com/abdodolh14141/Website-Movies/internal/application/command"
)

type UserService interface {
	SignUp(ctx context.Context, signUpCommand *command.SignUpCommand) (*command.SignUpCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginCommand) error
	CompleteAccount(ctx context.Context, completeCommand *command.CompleteAccountCommand) error
	GoogleSignIn(ctx context.Context, googleCommand *command.GoogleSignInCommand) (*command.GoogleSignInCommandResult, error)
}

// AuthService is the session provider: it authorizes credentials or a
// verified OAuth profile and mints the session token.
type AuthService interface {
	Authorize(ctx context.Context, authorizeCommand *command.AuthorizeCommand) (*command.AuthorizeCommandResult, error)
	SignInWithProfile(ctx context.Context, email, name string) (*command.AuthorizeCommandResult, error)
	Session(token string) (*command.SessionResult, error)
}
