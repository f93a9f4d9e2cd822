package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/mock"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/internal/validators"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptrSlot(s models.TimeSlot) *models.TimeSlot { return &s }
func ptrString(s string) *string { return &s }

// ── diaryService ─────────────────────────────────────────────────────────────

func TestDiaryService_CreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockDiaryRepository(ctrl)
	svc := NewDiaryService(repo, logger.Nop())

	in := models.DiaryEntry{UserID: 1, Slot: models.TimeSlotMorning, Content: "sunny"}
	out := in
	out.ID = 10
	out.CreatedAt = time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)

	repo.EXPECT().CreateEntry(gomock.Any(), in).Return(out, nil)

	got, err := svc.CreateEntry(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestDiaryService_PropagatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockDiaryRepository(ctrl)
	svc := NewDiaryService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetEntry(gomock.Any(), int64(1), int64(2)).Return(models.DiaryEntry{}, store.ErrDiaryEntryNotFound)
	repo.EXPECT().DeleteEntry(gomock.Any(), int64(1), int64(2)).Return(store.ErrDiaryEntryNotFound)
	repo.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).Return(models.DiaryEntry{}, store.ErrDiaryEntryNotFound)

	_, err := svc.GetEntry(ctx, 1, 2)
	assert.ErrorIs(t, err, store.ErrDiaryEntryNotFound)

	err = svc.DeleteEntry(ctx, 1, 2)
	assert.ErrorIs(t, err, store.ErrDiaryEntryNotFound)

	_, err = svc.UpdateEntry(ctx, models.DiaryUpdate{ID: 2, UserID: 1, Content: ptrString("x")})
	assert.ErrorIs(t, err, store.ErrDiaryEntryNotFound)
}

func TestDiaryService_ListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockDiaryRepository(ctrl)
	svc := NewDiaryService(repo, logger.Nop())
	filter := models.DiaryFilter{UserID: 1, Slot: models.TimeSlotEvening}
	dbErr := errors.New("timeout")

	repo.EXPECT().ListEntries(gomock.Any(), filter).Return([]models.DiaryEntry{{ID: 1}}, nil)
	repo.EXPECT().ListEntries(gomock.Any(), filter).Return(nil, dbErr)

	got, err := svc.ListEntries(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListEntries(context.Background(), filter)
	assert.ErrorIs(t, err, dbErr)
}

// ── DiaryValidationService ───────────────────────────────────────────────────

func TestDiaryValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockDiaryService(ctrl)
	svc := NewDiaryValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, models.DiaryEntry{UserID: 1, Slot: "night", Content: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidSlot)

	_, err = svc.UpdateEntry(ctx, models.DiaryUpdate{ID: 1, UserID: 1})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	_, err = svc.GetEntry(ctx, 1, 0)
	assert.ErrorIs(t, err, validators.ErrInvalidEntryID)

	err = svc.DeleteEntry(ctx, 0, 5)
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	_, err = svc.ListEntries(ctx, models.DiaryFilter{UserID: 1, Start: time.Now(), End: time.Now().Add(-time.Hour)})
	assert.ErrorIs(t, err, validators.ErrInvalidRange)
}

func TestDiaryValidationService_PassesValidCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockDiaryService(ctrl)
	svc := NewDiaryValidationService().Wrap(inner)
	ctx := context.Background()

	entry := models.DiaryEntry{UserID: 1, Slot: models.TimeSlotLunch, Content: "noodles"}
	update := models.DiaryUpdate{ID: 3, UserID: 1, Slot: ptrSlot(models.TimeSlotEvening)}

	inner.EXPECT().CreateEntry(ctx, entry).Return(entry, nil)
	inner.EXPECT().UpdateEntry(ctx, update).Return(entry, nil)
	inner.EXPECT().GetEntry(ctx, int64(1), int64(3)).Return(entry, nil)
	inner.EXPECT().DeleteEntry(ctx, int64(1), int64(3)).Return(nil)
	inner.EXPECT().ListEntries(ctx, models.DiaryFilter{UserID: 1}).Return(nil, nil)

	_, err := svc.CreateEntry(ctx, entry)
	require.NoError(t, err)
	_, err = svc.UpdateEntry(ctx, update)
	require.NoError(t, err)
	_, err = svc.GetEntry(ctx, 1, 3)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(ctx, 1, 3))
	_, err = svc.ListEntries(ctx, models.DiaryFilter{UserID: 1})
	require.NoError(t, err)
}

// ── ReportValidationService ──────────────────────────────────────────────────

func TestReportValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockReportService(ctrl)
	svc := NewReportValidationService(time.UTC).Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().GetOrCreate(ctx, int64(1), 2024, 2).Return(models.MonthlyReport{Year: 2024, Month: 2}, nil)
	inner.EXPECT().Generate(ctx, int64(1), 2024, 2).Return(models.MonthlyReport{Year: 2024, Month: 2}, nil)

	_, err := svc.GetOrCreate(ctx, 1, 2024, 2)
	require.NoError(t, err)
	_, err = svc.Generate(ctx, 1, 2024, 2)
	require.NoError(t, err)

	_, err = svc.GetOrCreate(ctx, 1, 2024, 13)
	assert.ErrorIs(t, err, validators.ErrInvalidMonth)

	future := time.Now().AddDate(1, 0, 0)
	_, err = svc.Generate(ctx, 1, future.Year(), int(future.Month()))
	assert.ErrorIs(t, err, validators.ErrFuturePeriod)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Generate(ctx, 0, 2024, 2)
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
}
