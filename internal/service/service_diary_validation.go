package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/validators"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type DiaryValidationService struct {
	inner     DiaryService
	validator validators.Validator
}

func NewDiaryValidationService() DiaryServiceWrapper {
	return &DiaryValidationService{
		validator: validators.NewDiaryValidator(),
	}
}

func (v *DiaryValidationService) CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateEntry(ctx, entry)
}

func (v *DiaryValidationService) GetEntry(ctx context.Context, userID, entryID int64) (models.DiaryEntry, error) {
	if err := v.validateIDs(ctx, userID, entryID); err != nil {
		return models.DiaryEntry{}, err
	}
	return v.inner.GetEntry(ctx, userID, entryID)
}

func (v *DiaryValidationService) ListEntries(ctx context.Context, filter models.DiaryFilter) ([]models.DiaryEntry, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ListEntries(ctx, filter)
}

func (v *DiaryValidationService) UpdateEntry(ctx context.Context, update models.DiaryUpdate) (models.DiaryEntry, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateEntry(ctx, update)
}

func (v *DiaryValidationService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	if err := v.validateIDs(ctx, userID, entryID); err != nil {
		return err
	}
	return v.inner.DeleteEntry(ctx, userID, entryID)
}

func (v *DiaryValidationService) Wrap(inner DiaryService) DiaryService {
	v.inner = inner
	return v
}

func (v *DiaryValidationService) validateIDs(ctx context.Context, userID, entryID int64) error {
	entry := models.DiaryEntry{ID: entryID, UserID: userID}
	if err := v.validator.Validate(ctx, entry, validators.FieldEntryID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
