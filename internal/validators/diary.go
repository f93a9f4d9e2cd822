package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-diary-keeper/models"
)

// Field names accepted by DiaryValidator.
const (
	FieldEntryID = "entry_id"
	FieldUserID  = "user_id"
	FieldSlot    = "slot"
	FieldContent = "content"
	FieldRange   = "range"
)

// DiaryValidator validates diary entries, partial updates and listing filters.
type DiaryValidator struct{}

// NewDiaryValidator returns a Validator for diary models.
func NewDiaryValidator() Validator {
	return &DiaryValidator{}
}

// Validate accepts models.DiaryEntry, models.DiaryUpdate and models.DiaryFilter
// by value or by pointer. When fields is empty every rule of the type is applied.
func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DiaryEntry:
		return v.validateEntry(value, fields...)
	case *models.DiaryEntry:
		return v.validateEntry(*value, fields...)

	case models.DiaryUpdate:
		return v.validateUpdate(value, fields...)
	case *models.DiaryUpdate:
		return v.validateUpdate(*value, fields...)

	case models.DiaryFilter:
		return v.validateFilter(value, fields...)
	case *models.DiaryFilter:
		return v.validateFilter(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DiaryValidator) validateEntry(entry models.DiaryEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSlot, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if entry.ID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldUserID:
			if entry.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldSlot:
			if !entry.Slot.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidSlot, entry.Slot)
			}
		case FieldContent:
			if err := validateContent(entry.Content); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateUpdate(update models.DiaryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldUserID, FieldSlot, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if update.ID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldSlot:
			if update.Slot != nil && !update.Slot.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidSlot, *update.Slot)
			}
		case FieldContent:
			if update.Content != nil {
				if err := validateContent(*update.Content); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Slot == nil && update.Content == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *DiaryValidator) validateFilter(filter models.DiaryFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSlot, FieldRange}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if filter.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldSlot:
			if filter.Slot != "" && !filter.Slot.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidSlot, filter.Slot)
			}
		case FieldRange:
			if !filter.Start.IsZero() && !filter.End.IsZero() && filter.Start.After(filter.End) {
				return ErrInvalidRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateContent counts characters, not bytes.
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if n := utf8.RuneCountInString(content); n > models.MaxDiaryContentLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrContentTooLong, n, models.MaxDiaryContentLength)
	}
	return nil
}
