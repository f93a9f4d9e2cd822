package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type diaryService struct {
	diaryRepository store.DiaryRepository

	logger *logger.Logger
}

// NewDiaryService returns a DiaryService backed by repo. It performs no input
// validation; wrap it with NewDiaryValidationService.
func NewDiaryService(repo store.DiaryRepository, logger *logger.Logger) DiaryService {
	return &diaryService{diaryRepository: repo, logger: logger}
}

func (d *diaryService) CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	created, err := d.diaryRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("user_id", entry.UserID).Str("slot", string(entry.Slot)).Msg("diary entry creation failed")
		return models.DiaryEntry{}, fmt.Errorf("diary entry creation failed: %w", err)
	}

	log.Debug().Int64("user_id", created.UserID).Int64("entry_id", created.ID).Msg("diary entry created")
	return created, nil
}

func (d *diaryService) GetEntry(ctx context.Context, userID, entryID int64) (models.DiaryEntry, error) {
	entry, err := d.diaryRepository.GetEntry(ctx, userID, entryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("diary entry lookup failed")
		return models.DiaryEntry{}, fmt.Errorf("diary entry lookup failed: %w", err)
	}
	return entry, nil
}

func (d *diaryService) ListEntries(ctx context.Context, filter models.DiaryFilter) ([]models.DiaryEntry, error) {
	entries, err := d.diaryRepository.ListEntries(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("diary listing failed")
		return nil, fmt.Errorf("diary listing failed: %w", err)
	}
	return entries, nil
}

func (d *diaryService) UpdateEntry(ctx context.Context, update models.DiaryUpdate) (models.DiaryEntry, error) {
	updated, err := d.diaryRepository.UpdateEntry(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", update.UserID).Int64("entry_id", update.ID).Msg("diary entry update failed")
		return models.DiaryEntry{}, fmt.Errorf("diary entry update failed: %w", err)
	}
	return updated, nil
}

func (d *diaryService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	if err := d.diaryRepository.DeleteEntry(ctx, userID, entryID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("diary entry deletion failed")
		return fmt.Errorf("diary entry deletion failed: %w", err)
	}
	return nil
}
