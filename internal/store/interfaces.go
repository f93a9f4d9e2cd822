package store

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUser stores the nickname and the avatar of user.UserID.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// DiaryRepository persists diary entries. Every method is scoped by user id.
type DiaryRepository interface {
	CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	GetEntry(ctx context.Context, userID, entryID int64) (models.DiaryEntry, error)
	// ListEntries returns entries ordered by creation time. Zero-valued
	// filter fields are not applied; Start and End are inclusive.
	ListEntries(ctx context.Context, filter models.DiaryFilter) ([]models.DiaryEntry, error)
	UpdateEntry(ctx context.Context, update models.DiaryUpdate) (models.DiaryEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}

// ReportRepository persists at most one monthly report per (user, year, month).
type ReportRepository interface {
	FindReport(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error)
	SaveReport(ctx context.Context, report models.MonthlyReport) (models.MonthlyReport, error)
	// DeleteReport is a no-op when no report exists.
	DeleteReport(ctx context.Context, userID int64, year, month int) error
	// ReplaceReport deletes any report of the same period and inserts report
	// in one transaction.
	ReplaceReport(ctx context.Context, report models.MonthlyReport) (models.MonthlyReport, error)
}

// ErrorClassificator decides whether a storage error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
