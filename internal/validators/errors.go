package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidEntryID   = errors.New("invalid diary entry ID")
	ErrInvalidSlot      = errors.New("invalid time slot")
	ErrEmptyContent     = errors.New("diary content is required")
	ErrContentTooLong   = errors.New("diary content is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidRange     = errors.New("period start must not be after its end")

	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrFuturePeriod  = errors.New("period is in the future")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrShortPassword = errors.New("password is too short")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyNickname = errors.New("nickname is required")

	ErrNicknameTooLong = errors.New("nickname is too long")
	ErrInvalidAvatar   = errors.New("avatar must be one of GREEN, PINK, YELLOW")
)
