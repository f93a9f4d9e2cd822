package service

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes the profile of an authenticated account.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.UserProfile, error)
	// UpdateProfile requires both a nickname and a known avatar.
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.UserProfile, error)
}

type DiaryService interface {
	CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	GetEntry(ctx context.Context, userID, entryID int64) (models.DiaryEntry, error)
	ListEntries(ctx context.Context, filter models.DiaryFilter) ([]models.DiaryEntry, error)
	UpdateEntry(ctx context.Context, update models.DiaryUpdate) (models.DiaryEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}

// ReportService builds and stores monthly reports.
type ReportService interface {
	// GetOrCreate returns the stored report for the month, generating and
	// storing one first when none exists.
	GetOrCreate(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error)
	// Generate always builds a new report and replaces the stored one.
	Generate(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
