package services

import (
	"context"
	"errors"
	"log"

	"github.com/abdodolh14141/Website-Movies/internal/application/command"
	"github.com/abdodolh14141/Website-Movies/internal/application/common"
	"github.com/abdodolh14141/Website-Movies/internal/application/interfaces"
	"github.com/abdodolh14141/Website-Movies/internal/application/mapper"
	"github.com/abdodolh14141/Website-Movies/internal/domain/entities"
	"github.com/abdodolh14141/Website-Movies/internal/domain/repositories"
	"github.com/abdodolh14141/Website-Movies/internal/infrastructure"
)

var ErrTooManyAttempts = errors.New("too many login attempts, please try again later")

// AuthService is the credential provider behind /api/auth. Authorize and
// SignInWithProfile are the two transitions from anonymous to authenticated;
// Session maps a token back to an identity on each request. All secrets and
// lifetimes live in the injected JWT service.
type AuthService struct {
	userRepo   repositories.UserRepository
	users      interfaces.UserService
	jwtService *infrastructure.JWTService
	limiter    infrastructure.Limiter
}

func NewAuthService(
	userRepo repositories.UserRepository,
	users interfaces.UserService,
	jwtService *infrastructure.JWTService,
	limiter infrastructure.Limiter,
) interfaces.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		users:      users,
		jwtService: jwtService,
		limiter:    limiter,
	}
}

func (s *AuthService) Authorize(ctx context.Context, authorizeCommand *command.AuthorizeCommand) (*command.AuthorizeCommandResult, error) {
	// Limit on the normalized email so casing variants share one budget.
	email := entities.NormalizeEmail(authorizeCommand.Email)

	if !s.limiter.Allow(ctx, email) {
		return nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Println("authorize failed: no user for email")
		return nil, ErrInvalidCredentials
	}
	if err := user.CheckPassword(authorizeCommand.Password); err != nil {
		log.Println("authorize failed: password mismatch")
		return nil, ErrInvalidCredentials
	}

	return s.mintToken(mapper.NewSessionViewFromEntity(user))
}

func (s *AuthService) SignInWithProfile(ctx context.Context, email, name string) (*command.AuthorizeCommandResult, error) {
	// The OAuth bridge always succeeds for a verified profile, whether the
	// record was just created or already there.
	result, err := s.users.GoogleSignIn(ctx, &command.GoogleSignInCommand{Email: email, Name: name})
	if err != nil {
		return nil, err
	}

	return s.mintToken(&common.SessionView{
		Id:    result.Result.Id,
		Email: result.Result.Email,
		Name:  result.Result.Name,
	})
}

func (s *AuthService) Session(token string) (*command.SessionResult, error) {
	sessionUser, expires, err := s.jwtService.ParseToken(token)
	if err != nil {
		return nil, infrastructure.ErrInvalidToken
	}

	return &command.SessionResult{
		User: &common.SessionView{
			Id:    sessionUser.Id,
			Email: sessionUser.Email,
			Name:  sessionUser.Name,
		},
		Expires: expires,
	}, nil
}

func (s *AuthService) mintToken(view *common.SessionView) (*command.AuthorizeCommandResult, error) {
	token, err := s.jwtService.GenerateToken(infrastructure.SessionUser{
		Id:    view.Id,
		Email: view.Email,
		Name:  view.Name,
	})
	if err != nil {
		return nil, err
	}

	return &command.AuthorizeCommandResult{
		Token: token,
		User:  view,
	}, nil
}
