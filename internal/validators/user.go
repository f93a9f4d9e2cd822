package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-diary-keeper/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldNickname = "nickname"
	FieldAvatar   = "avatar"

	// MinPasswordLength applies on registration only.
	MinPasswordLength = 8
	// MaxNicknameLength matches the users.nickname column.
	MaxNicknameLength = 100
)

// UserValidator validates registration, login and profile update requests.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.RegisterRequest, models.LoginRequest and
// models.ProfileUpdateRequest.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.ProfileUpdateRequest:
		return v.validateProfile(value, fields...)
	case *models.ProfileUpdateRequest:
		return v.validateProfile(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldNickname}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if len(req.Password) < MinPasswordLength {
				return fmt.Errorf("%w: at least %d characters required", ErrShortPassword, MinPasswordLength)
			}
		case FieldNickname:
			if err := validateNickname(req.Nickname); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *UserValidator) validateProfile(req models.ProfileUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNickname, FieldAvatar}
	}

	for _, f := range fields {
		switch f {
		case FieldNickname:
			if err := validateNickname(req.Nickname); err != nil {
				return err
			}
		case FieldAvatar:
			if !req.Avatar.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidAvatar, req.Avatar)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateNickname(nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return ErrEmptyNickname
	}
	if utf8.RuneCountInString(nickname) > MaxNicknameLength {
		return fmt.Errorf("%w: at most %d characters allowed", ErrNicknameTooLong, MaxNicknameLength)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
