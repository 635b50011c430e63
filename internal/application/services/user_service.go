package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/abdodolh14141/Website-Movies/internal/application/command"
	"github.com/abdodolh14141/Website-Movies/internal/application/interfaces"
	"github.com/abdodolh14141/Website-Movies/internal/application/mapper"
	"github.com/abdodolh14141/Website-Movies/internal/domain/entities"
	"github.com/abdodolh14141/Website-Movies/internal/domain/repositories"
	"github.com/abdodolh14141/Website-Movies/internal/infrastructure"
	"github.com/abdodolh14141/Website-Movies/internal/messaging"
)

// ErrInvalidCredentials is the undifferentiated login failure: a missing
// user and a wrong password produce the same message, so responses never
// reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	userRepo  repositories.UserRepository
	mailer    *infrastructure.Mailer
	publisher *messaging.Publisher
}

func NewUserService(
	userRepo repositories.UserRepository,
	mailer *infrastructure.Mailer,
	publisher *messaging.Publisher,
) interfaces.UserService {
	return &UserService{
		userRepo:  userRepo,
		mailer:    mailer,
		publisher: publisher,
	}
}

func (s *UserService) SignUp(ctx context.Context, signUpCommand *command.SignUpCommand) (*command.SignUpCommandResult, error) {
	newUser := entities.NewUser(signUpCommand.Name, signUpCommand.Email, signUpCommand.Age, signUpCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	if err := newUser.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// The unique index is the existence check: a concurrent sign-up for the
	// same email loses with ErrDuplicateEmail instead of creating a second
	// document.
	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	// Welcome email and lifecycle event are best effort and stay off the
	// request path.
	go func() {
		if err := s.mailer.SendWelcome(createdUser.Email, createdUser.Username); err != nil {
			log.Println("welcome email failed:", err)
		}
		if err := s.publisher.Publish(messaging.SubjectUserCreated, mapper.NewUserResultFromEntity(createdUser)); err != nil {
			log.Println("publish user.created failed:", err)
		}
	}()

	return &command.SignUpCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) Login(ctx context.Context, loginCommand *command.LoginCommand) error {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return err
	}
	if user == nil {
		log.Println("login failed: no user for email")
		return ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		log.Println("login failed: password mismatch")
		return ErrInvalidCredentials
	}

	return nil
}

func (s *UserService) CompleteAccount(ctx context.Context, completeCommand *command.CompleteAccountCommand) error {
	if len(completeCommand.Password) < entities.MinPasswordLen {
		return &entities.ValidationError{Field: "password", Reason: "must be at least 6 characters long"}
	}
	if completeCommand.Age < 0 {
		return &entities.ValidationError{Field: "age", Reason: "cannot be negative"}
	}

	passwordHash, err := entities.HashPasswordValue(completeCommand.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// A zero-document match is reported as not found, never as success.
	if err := s.userRepo.SetPasswordAndAge(ctx, completeCommand.Name, passwordHash, completeCommand.Age); err != nil {
		return err
	}

	go func() {
		if err := s.publisher.Publish(messaging.SubjectUserCompleted, map[string]string{"name": completeCommand.Name}); err != nil {
			log.Println("publish user.completed failed:", err)
		}
	}()

	return nil
}

func (s *UserService) GoogleSignIn(ctx context.Context, googleCommand *command.GoogleSignInCommand) (*command.GoogleSignInCommandResult, error) {
	newUser := entities.NewOAuthUser(googleCommand.Name, googleCommand.Email)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	// Created-vs-existing does not matter to the identity provider; both
	// outcomes bind the external identity to exactly one local record.
	user, created, err := s.userRepo.FindOrCreateByEmail(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	if created {
		go func() {
			if err := s.publisher.Publish(messaging.SubjectUserCreated, mapper.NewUserResultFromEntity(user)); err != nil {
				log.Println("publish user.created failed:", err)
			}
		}()
	}

	return &command.GoogleSignInCommandResult{
		Created: created,
		Result:  mapper.NewUserResultFromEntity(user),
	}, nil
}
