// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// diaryRepository is the PostgreSQL-backed implementation of [DiaryRepository].
type diaryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDiaryRepository constructs a [DiaryRepository] on top of db.
func NewDiaryRepository(db *DB, logger *logger.Logger) DiaryRepository {
	return &diaryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEntry inserts entry and returns it with the database-assigned id and
// creation time.
func (d *diaryRepository) CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDiaryEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "diaryRepository.CreateEntry").Msg("failed to create query")
		return models.DiaryEntry{}, err
	}

	created, err := scanDiaryEntry(d.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "diaryRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to insert diary entry")
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetEntry returns one entry of the user or [ErrDiaryEntryNotFound].
func (d *diaryRepository) GetEntry(ctx context.Context, userID, entryID int64) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDiaryEntryQuery(userID, entryID)
	if err != nil {
		log.Err(err).Str("func", "diaryRepository.GetEntry").Msg("failed to create query")
		return models.DiaryEntry{}, err
	}

	entry, err := scanDiaryEntry(d.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaryEntry{}, ErrDiaryEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "diaryRepository.GetEntry").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to get diary entry")
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// ListEntries returns the user's entries matching filter, oldest first.
// An empty result is an empty slice, not an error.
func (d *diaryRepository) ListEntries(ctx context.Context, filter models.DiaryFilter) ([]models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDiaryEntriesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "diaryRepository.ListEntries").Msg("failed to create query")
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "diaryRepository.ListEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing diary entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.DiaryEntry, 0, 32)
	for rows.Next() {
		entry, scanErr := scanDiaryEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "diaryRepository.ListEntries").
				Int64("user_id", filter.UserID).
				Msg("failed to scan diary entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "diaryRepository.ListEntries").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// UpdateEntry writes the non-nil fields of update and returns the stored
// entry. An update without fields returns the entry unchanged.
func (d *diaryRepository) UpdateEntry(ctx context.Context, update models.DiaryUpdate) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, ok, err := buildUpdateDiaryEntryQuery(update)
	if err != nil {
		log.Err(err).Str("func", "diaryRepository.UpdateEntry").Msg("failed to create query")
		return models.DiaryEntry{}, err
	}
	if !ok {
		return d.GetEntry(ctx, update.UserID, update.ID)
	}

	entry, err := scanDiaryEntry(d.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaryEntry{}, ErrDiaryEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "diaryRepository.UpdateEntry").
			Int64("user_id", update.UserID).
			Int64("entry_id", update.ID).
			Msg("failed to update diary entry")
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// DeleteEntry removes one entry of the user or returns [ErrDiaryEntryNotFound].
func (d *diaryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDiaryEntryQuery(userID, entryID)
	if err != nil {
		log.Err(err).Str("func", "diaryRepository.DeleteEntry").Msg("failed to create query")
		return err
	}

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "diaryRepository.DeleteEntry").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to delete diary entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDiaryEntryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDiaryEntry(row rowScanner) (models.DiaryEntry, error) {
	var (
		entry models.DiaryEntry
		slot  string
	)
	if err := row.Scan(&entry.ID, &entry.UserID, &slot, &entry.Content, &entry.CreatedAt); err != nil {
		return models.DiaryEntry{}, err
	}
	entry.Slot = models.TimeSlot(slot)
	return entry, nil
}
