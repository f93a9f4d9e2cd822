package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-diary-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, nickname)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, nickname, avatar, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, nickname, avatar, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, nickname, avatar, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserProfile = `UPDATE users
    SET nickname = $1, avatar = $2
    WHERE user_id = $3
    RETURNING user_id, email, password_hash, nickname, avatar, created_at;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var diaryColumns = []string{"id", "user_id", "slot", "content", "created_at"}

var reportColumns = []string{
	"id",
	"user_id",
	"year",
	"month",
	"one_line_summary",
	"overview",
	"emotion_keywords",
	"emotion_summary",
	"risk_analysis",
	"has_mental_health_risk",
	"checkup_type",
	"recommendation_message",
	"search_query",
	"recommendations",
	"created_at",
}

func buildInsertDiaryEntryQuery(entry models.DiaryEntry) (string, []any, error) {
	query, args, err := psql.
		Insert(models.DiaryEntry{}.TableName()).
		Columns("user_id", "slot", "content").
		Values(entry.UserID, string(entry.Slot), entry.Content).
		Suffix("RETURNING id, user_id, slot, content, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectDiaryEntryQuery(userID, entryID int64) (string, []any, error) {
	query, args, err := psql.
		Select(diaryColumns...).
		From(models.DiaryEntry{}.TableName()).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListDiaryEntriesQuery(filter models.DiaryFilter) (string, []any, error) {
	builder := psql.
		Select(diaryColumns...).
		From(models.DiaryEntry{}.TableName()).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.Slot != "" {
		builder = builder.Where(sq.Eq{"slot": string(filter.Slot)})
	}
	if !filter.Start.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": filter.Start})
	}
	if !filter.End.IsZero() {
		builder = builder.Where(sq.LtOrEq{"created_at": filter.End})
	}

	query, args, err := builder.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateDiaryEntryQuery returns ok=false when the update carries no field.
func buildUpdateDiaryEntryQuery(update models.DiaryUpdate) (query string, args []any, ok bool, err error) {
	builder := psql.Update(models.DiaryEntry{}.TableName())

	if update.Slot != nil {
		builder = builder.Set("slot", string(*update.Slot))
		ok = true
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		ok = true
	}
	if !ok {
		return "", nil, false, nil
	}

	query, args, err = builder.
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING id, user_id, slot, content, created_at").
		ToSql()
	if err != nil {
		return "", nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, true, nil
}

func buildDeleteDiaryEntryQuery(userID, entryID int64) (string, []any, error) {
	query, args, err := psql.
		Delete(models.DiaryEntry{}.TableName()).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectReportQuery(userID int64, year, month int) (string, []any, error) {
	query, args, err := psql.
		Select(reportColumns...).
		From(models.MonthlyReport{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"year": year}).
		Where(sq.Eq{"month": month}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertReportQuery expects keywords and recommendations already
// encoded as JSON.
func buildInsertReportQuery(report models.MonthlyReport, keywords, recommendations []byte) (string, []any, error) {
	query, args, err := psql.
		Insert(models.MonthlyReport{}.TableName()).
		Columns(reportColumns[1:len(reportColumns)-1]...).
		Values(
			report.UserID,
			report.Year,
			report.Month,
			report.OneLineSummary,
			report.Overview,
			string(keywords),
			report.EmotionSummary,
			report.RiskAnalysis,
			report.HasMentalHealthRisk,
			string(report.CheckupType),
			report.RecommendationMessage,
			report.SearchQuery,
			string(recommendations),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteReportQuery(userID int64, year, month int) (string, []any, error) {
	query, args, err := psql.
		Delete(models.MonthlyReport{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"year": year}).
		Where(sq.Eq{"month": month}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
