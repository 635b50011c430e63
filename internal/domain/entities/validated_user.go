package entities

import "fmt"

// ValidationError marks a user input problem, as opposed to an
// infrastructure failure. Handlers translate it to a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}

	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}
