package entities

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for every stored password.
const PasswordCost = 10

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
	DefaultAge     = 20
)

type User struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Age       int                `bson:"age" json:"age"`
	Password  string             `bson:"password,omitempty" json:"-"`
	IsAdmin   bool               `bson:"isAdmin" json:"isAdmin"`
}

// NewUser builds a credential account. The plaintext password stays on the
// entity until HashPassword runs; repositories only ever see the hash.
func NewUser(username, email string, age int, password string) *User {
	return &User{
		CreatedAt: time.Now(),
		Username:  username,
		Email:     NormalizeEmail(email),
		Age:       age,
		Password:  password,
		IsAdmin:   false,
	}
}

// NewOAuthUser builds the minimal record created on first OAuth sign-in:
// no password, default age. The account stays incomplete until the
// account-completion step sets password and age.
func NewOAuthUser(username, email string) *User {
	return &User{
		CreatedAt: time.Now(),
		Username:  username,
		Email:     NormalizeEmail(email),
		Age:       DefaultAge,
		IsAdmin:   false,
	}
}

// NormalizeEmail trims whitespace and lowercases, matching how emails are
// stored and looked up everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) validate() error {
	if len(u.Username) < MinUsernameLen {
		return &ValidationError{Field: "username", Reason: "must be at least 3 characters long"}
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if u.Age < 0 {
		return &ValidationError{Field: "age", Reason: "cannot be negative"}
	}
	// Password is optional for OAuth-only accounts. The length rule applies
	// to the plaintext only, never to a stored hash.
	if u.Password != "" && !u.hashed() && len(u.Password) < MinPasswordLen {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters long"}
	}
	return nil
}

func (u *User) hashed() bool {
	return strings.HasPrefix(u.Password, "$2a$") || strings.HasPrefix(u.Password, "$2b$")
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), PasswordCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// HashPasswordValue hashes a plaintext outside of an entity, for partial
// updates that never load the full record.
func HashPasswordValue(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
