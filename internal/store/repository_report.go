package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"
)

const (
	replaceMaxRetries  = 3
	replaceBaseBackoff = 50 * time.Millisecond
)

// reportRepository is the PostgreSQL-backed implementation of [ReportRepository].
//
// Keywords and recommendations are stored as JSONB arrays so their order and
// content survive a round trip unchanged.
type reportRepository struct {
	*DB
	logger  *logger.Logger
	backoff func() retry.Backoff
}

// NewReportRepository constructs a [ReportRepository] on top of db.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	return &reportRepository{
		DB:     db,
		logger: logger,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(replaceMaxRetries, retry.NewExponential(replaceBaseBackoff))
		},
	}
}

// FindReport returns the report of the period or [ErrReportNotFound].
func (r *reportRepository) FindReport(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReportQuery(userID, year, month)
	if err != nil {
		log.Err(err).Str("func", "reportRepository.FindReport").Msg("failed to create query")
		return models.MonthlyReport{}, err
	}

	report, err := scanReport(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MonthlyReport{}, ErrReportNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.FindReport").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", month).
			Msg("failed to find monthly report")
		return models.MonthlyReport{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return report, nil
}

// SaveReport inserts report. A report already stored for the same period
// yields [ErrReportAlreadyExists].
func (r *reportRepository) SaveReport(ctx context.Context, report models.MonthlyReport) (models.MonthlyReport, error) {
	saved, err := r.insertReport(ctx, r.DB, report)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reportRepository.SaveReport").
			Int64("user_id", report.UserID).
			Int("year", report.Year).
			Int("month", report.Month).
			Msg("failed to save monthly report")
		return models.MonthlyReport{}, err
	}
	return saved, nil
}

// DeleteReport removes the report of the period if there is one.
func (r *reportRepository) DeleteReport(ctx context.Context, userID int64, year, month int) error {
	if err := r.deleteReport(ctx, r.DB, userID, year, month); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reportRepository.DeleteReport").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", month).
			Msg("failed to delete monthly report")
		return err
	}
	return nil
}

// ReplaceReport deletes the stored report of the period and inserts report in
// a single transaction, so readers see either the old or the new report.
//
// Concurrent replacements of the same period are serialized by the unique
// (user_id, year, month) constraint: the loser gets a unique violation and the
// whole transaction is retried. Transient errors are retried the same way.
func (r *reportRepository) ReplaceReport(ctx context.Context, report models.MonthlyReport) (models.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	saved, err := retry.DoValue(ctx, r.backoff(), func(ctx context.Context) (models.MonthlyReport, error) {
		saved, err := r.replaceOnce(ctx, report)
		if err == nil {
			return saved, nil
		}
		if errors.Is(err, ErrReportAlreadyExists) || r.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).
				Str("func", "reportRepository.ReplaceReport").
				Int64("user_id", report.UserID).
				Msg("retrying monthly report replacement")
			return models.MonthlyReport{}, retry.RetryableError(err)
		}
		return models.MonthlyReport{}, err
	})
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.ReplaceReport").
			Int64("user_id", report.UserID).
			Int("year", report.Year).
			Int("month", report.Month).
			Msg("failed to replace monthly report")
		return models.MonthlyReport{}, err
	}

	return saved, nil
}

func (r *reportRepository) replaceOnce(ctx context.Context, report models.MonthlyReport) (models.MonthlyReport, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.MonthlyReport{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = r.deleteReport(ctx, tx, report.UserID, report.Year, report.Month); err != nil {
		return models.MonthlyReport{}, err
	}

	saved, err := r.insertReport(ctx, tx, report)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.MonthlyReport{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

func (r *reportRepository) insertReport(ctx context.Context, q queryExecer, report models.MonthlyReport) (models.MonthlyReport, error) {
	keywords, recommendations, err := encodeReportLists(report)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	query, args, err := buildInsertReportQuery(report, keywords, recommendations)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	if err = q.QueryRowContext(ctx, query, args...).Scan(&report.ID, &report.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.MonthlyReport{}, fmt.Errorf("%w: %w", ErrReportAlreadyExists, err)
		}
		return models.MonthlyReport{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return report, nil
}

func (r *reportRepository) deleteReport(ctx context.Context, q queryExecer, userID int64, year, month int) error {
	query, args, err := buildDeleteReportQuery(userID, year, month)
	if err != nil {
		return err
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// encodeReportLists marshals keywords and recommendations, storing nil lists
// as empty JSON arrays.
func encodeReportLists(report models.MonthlyReport) ([]byte, []byte, error) {
	keywords := report.EmotionKeywords
	if keywords == nil {
		keywords = []string{}
	}
	recommendations := report.Recommendations
	if recommendations == nil {
		recommendations = []models.Recommendation{}
	}

	keywordsJSON, err := encodeJSONColumn(keywords)
	if err != nil {
		return nil, nil, err
	}
	recommendationsJSON, err := encodeJSONColumn(recommendations)
	if err != nil {
		return nil, nil, err
	}
	return keywordsJSON, recommendationsJSON, nil
}

// encodeJSONColumn keeps links and titles byte-for-byte: no HTML escaping,
// no trailing newline.
func encodeJSONColumn(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func scanReport(row rowScanner) (models.MonthlyReport, error) {
	var (
		report          models.MonthlyReport
		checkupType     string
		keywords        []byte
		recommendations []byte
	)

	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.Year,
		&report.Month,
		&report.OneLineSummary,
		&report.Overview,
		&keywords,
		&report.EmotionSummary,
		&report.RiskAnalysis,
		&report.HasMentalHealthRisk,
		&checkupType,
		&report.RecommendationMessage,
		&report.SearchQuery,
		&recommendations,
		&report.CreatedAt,
	)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	report.CheckupType = models.CheckupType(checkupType)

	if err = json.Unmarshal(keywords, &report.EmotionKeywords); err != nil {
		return models.MonthlyReport{}, fmt.Errorf("%w: emotion_keywords: %w", ErrDecodingColumn, err)
	}
	if err = json.Unmarshal(recommendations, &report.Recommendations); err != nil {
		return models.MonthlyReport{}, fmt.Errorf("%w: recommendations: %w", ErrDecodingColumn, err)
	}

	return report, nil
}
