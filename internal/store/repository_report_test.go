package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportRepo(t *testing.T) (*reportRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &reportRepository{
		DB:     db,
		logger: logger.Nop(),
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
		},
	}, mock
}

func sampleReport() models.MonthlyReport {
	return models.MonthlyReport{
		UserID:                5,
		Year:                  2025,
		Month:                 3,
		OneLineSummary:        "A month of small wins",
		Overview:              "Mostly steady.",
		EmotionKeywords:       []string{"joy", "calm", "hope"},
		EmotionSummary:        "Summary sentence one. Summary sentence two.",
		RiskAnalysis:          "No worrying signals.",
		HasMentalHealthRisk:   false,
		CheckupType:           models.CheckupPersonalityQuiz,
		RecommendationMessage: "Learn more about yourself with these personality quizzes:",
		SearchQuery:           "personality type test",
		Recommendations:       []models.Recommendation{{Title: "Quiz \"A\"", Link: "https://a.example/?q=1&x=<y>"}},
	}
}

const (
	sampleKeywordsJSON        = `["joy","calm","hope"]`
	sampleRecommendationsJSON = `[{"title":"Quiz \"A\"","link":"https://a.example/?q=1&x=<y>"}]`
)

var insertReportSQL = regexp.QuoteMeta("INSERT INTO monthly_reports (user_id,year,month,one_line_summary,overview,emotion_keywords,emotion_summary,risk_analysis,has_mental_health_risk,checkup_type,recommendation_message,search_query,recommendations) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id, created_at")

var deleteReportSQL = regexp.QuoteMeta("DELETE FROM monthly_reports WHERE user_id = $1 AND year = $2 AND month = $3")

func insertArgs(r models.MonthlyReport) []any {
	return []any{
		r.UserID, r.Year, r.Month, r.OneLineSummary, r.Overview, sampleKeywordsJSON,
		r.EmotionSummary, r.RiskAnalysis, r.HasMentalHealthRisk, string(r.CheckupType),
		r.RecommendationMessage, r.SearchQuery, sampleRecommendationsJSON,
	}
}

func driverValues(args []any) []driver.Value {
	out := make([]driver.Value, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// ── FindReport ───────────────────────────────────────────────────────────────

func TestReportRepository_FindReport_RoundTripsLists(t *testing.T) {
	repo, mock := newTestReportRepo(t)
	want := sampleReport()
	want.ID = 9
	want.CreatedAt = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM monthly_reports WHERE user_id = $1 AND year = $2 AND month = $3")).
		WithArgs(int64(5), 2025, 3).
		WillReturnRows(sqlmock.NewRows(reportColumns).AddRow(
			want.ID, want.UserID, want.Year, want.Month, want.OneLineSummary, want.Overview,
			[]byte(sampleKeywordsJSON), want.EmotionSummary, want.RiskAnalysis, want.HasMentalHealthRisk,
			string(want.CheckupType), want.RecommendationMessage, want.SearchQuery,
			[]byte(sampleRecommendationsJSON), want.CreatedAt,
		))

	got, err := repo.FindReport(context.Background(), 5, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReportRepository_FindReport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM monthly_reports").WillReturnRows(sqlmock.NewRows(reportColumns))
			},
			wantErr: ErrReportNotFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM monthly_reports").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "corrupt keywords",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM monthly_reports").WillReturnRows(sqlmock.NewRows(reportColumns).AddRow(
					1, 5, 2025, 3, "", "", []byte("{"), "", "", false, "", "", "", []byte("[]"), time.Now(),
				))
			},
			wantErr: ErrDecodingColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestReportRepo(t)
			tt.setup(mock)

			_, err := repo.FindReport(context.Background(), 5, 2025, 3)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── SaveReport ───────────────────────────────────────────────────────────────

func TestReportRepository_SaveReport(t *testing.T) {
	repo, mock := newTestReportRepo(t)
	report := sampleReport()
	createdAt := time.Now()

	mock.ExpectQuery(insertReportSQL).
		WithArgs(driverValues(insertArgs(report))...).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(21, createdAt))

	saved, err := repo.SaveReport(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, int64(21), saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
	assert.Equal(t, report.Recommendations, saved.Recommendations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_SaveReport_NilListsStoredAsEmptyArrays(t *testing.T) {
	repo, mock := newTestReportRepo(t)
	report := models.MonthlyReport{UserID: 5, Year: 2025, Month: 3}

	mock.ExpectQuery(insertReportSQL).
		WithArgs(int64(5), 2025, 3, "", "", "[]", "", "", false, "", "", "", "[]").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	_, err := repo.SaveReport(context.Background(), report)
	require.NoError(t, err)
}

func TestEncodeReportLists_KeepsLinksUnescaped(t *testing.T) {
	keywords, recommendations, err := encodeReportLists(sampleReport())
	require.NoError(t, err)

	// & и < должны сохраниться как есть, без \u0026 и без перевода строки в конце
	assert.Equal(t, sampleKeywordsJSON, string(keywords))
	assert.Equal(t, sampleRecommendationsJSON, string(recommendations))
	assert.NotContains(t, string(recommendations), `\u0026`)
}

func TestReportRepository_SaveReport_UniqueViolation(t *testing.T) {
	repo, mock := newTestReportRepo(t)

	mock.ExpectQuery(insertReportSQL).WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.SaveReport(context.Background(), sampleReport())
	assert.ErrorIs(t, err, ErrReportAlreadyExists)
}

// ── DeleteReport ─────────────────────────────────────────────────────────────

func TestReportRepository_DeleteReport_Idempotent(t *testing.T) {
	repo, mock := newTestReportRepo(t)

	mock.ExpectExec(deleteReportSQL).WithArgs(int64(5), 2025, 3).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteReport(context.Background(), 5, 2025, 3))
}

func TestReportRepository_DeleteReport_Error(t *testing.T) {
	repo, mock := newTestReportRepo(t)

	mock.ExpectExec(deleteReportSQL).WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.DeleteReport(context.Background(), 5, 2025, 3), ErrExecutingStatement)
}

// ── ReplaceReport ────────────────────────────────────────────────────────────

func TestReportRepository_ReplaceReport(t *testing.T) {
	repo, mock := newTestReportRepo(t)
	report := sampleReport()

	mock.ExpectBegin()
	mock.ExpectExec(deleteReportSQL).WithArgs(int64(5), 2025, 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertReportSQL).WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(30, time.Now()))
	mock.ExpectCommit()

	saved, err := repo.ReplaceReport(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, int64(30), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ReplaceReport_RetriesLostRace(t *testing.T) {
	repo, mock := newTestReportRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteReportSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(insertReportSQL).WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(deleteReportSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertReportSQL).WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(31, time.Now()))
	mock.ExpectCommit()

	saved, err := repo.ReplaceReport(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, int64(31), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ReplaceReport_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestReportRepo(t)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec(deleteReportSQL).WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	_, err := repo.ReplaceReport(context.Background(), sampleReport())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ReplaceReport_NonRetryableStopsImmediately(t *testing.T) {
	repo, mock := newTestReportRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteReportSQL).WillReturnError(pgError(pgerrcode.UndefinedTable))
	mock.ExpectRollback()

	_, err := repo.ReplaceReport(context.Background(), sampleReport())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ReplaceReport_BeginError(t *testing.T) {
	repo, mock := newTestReportRepo(t)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	_, err := repo.ReplaceReport(context.Background(), sampleReport())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}
