package travel

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserParams struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	PasswordHash string
}

type User struct {
	ID           uuid.UUID
	FirstName    string `validate:"required,max=100"`
	LastName     string `validate:"required,max=100"`
	Email        string `validate:"required,max=100,email"`
	PhoneNumber  string `validate:"max=15"`
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(id uuid.UUID, p UserParams, now time.Time) (User, error) {
	u := User{
		ID:           id,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Email:        strings.TrimSpace(p.Email),
		PhoneNumber:  strings.TrimSpace(p.PhoneNumber),
		PasswordHash: p.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	return u, nil
}

func (u User) Validate() error {
	errs := validateStruct(u)
	if !errs.Has("phone_number") {
		_, err := ValidatePhoneNumber(u.PhoneNumber)
		errs.add(err)
	}
	return errs.OrNil()
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasPassword reports whether the user can authenticate with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// Touch marks a mutation.
func (u *User) Touch(now time.Time) {
	u.UpdatedAt = now
}
