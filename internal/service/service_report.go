// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/analysis"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// DefaultMaxRecommendations is used when ReportOptions leaves it unset.
const DefaultMaxRecommendations = 3

// ReportOptions tunes the report pipeline.
type ReportOptions struct {
	// Location defines calendar months and days. Nil means UTC.
	Location *time.Location
	// MaxRecommendations caps the number of search results in a report.
	MaxRecommendations int
}

// reportService assembles monthly reports.
//
// A report is built by one sequential pass: the month's diary entries are
// rendered into a transcript, four questions are asked to the text generator
// (emotions, risk, checkup phrase, overview), and the checkup phrase is used
// for a web search. The service holds no mutable state, so concurrent
// requests only share the storage.
type reportService struct {
	userRepository   store.UserRepository
	diaryRepository  store.DiaryRepository
	reportRepository store.ReportRepository

	generator adapter.TextGenerator
	searcher  adapter.WebSearcher

	loc                *time.Location
	maxRecommendations int

	logger *logger.Logger
}

func NewReportService(
	users store.UserRepository,
	diaries store.DiaryRepository,
	reports store.ReportRepository,
	generator adapter.TextGenerator,
	searcher adapter.WebSearcher,
	opts ReportOptions,
	logger *logger.Logger,
) ReportService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.MaxRecommendations <= 0 {
		opts.MaxRecommendations = DefaultMaxRecommendations
	}

	return &reportService{
		userRepository:     users,
		diaryRepository:    diaries,
		reportRepository:   reports,
		generator:          generator,
		searcher:           searcher,
		loc:                opts.Location,
		maxRecommendations: opts.MaxRecommendations,
		logger:             logger,
	}
}

// GetOrCreate implements ReportService.
//
// A stored report is returned as is, without touching diary entries or
// external services. When two requests race to create the same report the
// loser returns the winner's report.
func (s *reportService) GetOrCreate(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureUser(ctx, userID); err != nil {
		return models.MonthlyReport{}, err
	}

	existing, err := s.reportRepository.FindReport(ctx, userID, year, month)
	if err == nil {
		log.Info().Int64("user_id", userID).Int("year", year).Int("month", month).Msg("returning stored monthly report")
		return existing, nil
	}
	if !errors.Is(err, store.ErrReportNotFound) {
		log.Err(err).Int64("user_id", userID).Msg("monthly report lookup failed")
		return models.MonthlyReport{}, fmt.Errorf("monthly report lookup failed: %w", err)
	}

	report, err := s.build(ctx, userID, year, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	saved, err := s.reportRepository.SaveReport(ctx, report)
	if errors.Is(err, store.ErrReportAlreadyExists) {
		log.Info().Int64("user_id", userID).Int("year", year).Int("month", month).
			Msg("monthly report was stored concurrently, returning stored one")
		stored, findErr := s.reportRepository.FindReport(ctx, userID, year, month)
		if findErr != nil {
			log.Err(findErr).Int64("user_id", userID).Msg("monthly report lookup failed")
			return models.MonthlyReport{}, fmt.Errorf("monthly report lookup failed: %w", findErr)
		}
		return stored, nil
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("monthly report saving failed")
		return models.MonthlyReport{}, fmt.Errorf("monthly report saving failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Int64("report_id", saved.ID).Int("year", year).Int("month", month).
		Msg("monthly report created")
	return saved, nil
}

// Generate implements ReportService. The new report replaces the stored one
// in a single transaction; on failure the previous report stays in place.
func (s *reportService) Generate(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureUser(ctx, userID); err != nil {
		return models.MonthlyReport{}, err
	}

	report, err := s.build(ctx, userID, year, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	saved, err := s.reportRepository.ReplaceReport(ctx, report)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("monthly report replacement failed")
		return models.MonthlyReport{}, fmt.Errorf("monthly report replacement failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Int64("report_id", saved.ID).Int("year", year).Int("month", month).
		Msg("monthly report regenerated")
	return saved, nil
}

func (s *reportService) ensureUser(ctx context.Context, userID int64) error {
	_, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}
	return nil
}

// build runs the analysis pipeline and returns an unsaved report.
func (s *reportService) build(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	start, end := models.ReportPeriod{Year: year, Month: month}.Bounds(s.loc)
	entries, err := s.diaryRepository.ListEntries(ctx, models.DiaryFilter{UserID: userID, Start: start, End: end})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("diary entries lookup failed")
		return models.MonthlyReport{}, fmt.Errorf("diary entries lookup failed: %w", err)
	}
	if len(entries) == 0 {
		return models.MonthlyReport{}, fmt.Errorf("%w: %04d-%02d", ErrNoDiaryEntries, year, month)
	}

	days := analysis.GroupByDay(entries, s.loc)
	transcript := analysis.RenderTranscript(days)
	log.Info().
		Int64("user_id", userID).
		Int("year", year).
		Int("month", month).
		Int("entries", len(entries)).
		Int("days", len(days)).
		Msg("monthly report analysis started")

	emotion, err := ask[analysis.EmotionResult](ctx, s.generator, analysis.EmotionAnalysis, analysis.EmotionPrompt(transcript))
	if err != nil {
		return models.MonthlyReport{}, err
	}
	if !emotion.KeywordsInRange() {
		log.Warn().
			Int("keywords", len(emotion.Keywords)).
			Int("min", analysis.MinEmotionKeywords).
			Int("max", analysis.MaxEmotionKeywords).
			Msg("unexpected number of emotion keywords")
	}

	risk, err := ask[analysis.RiskResult](ctx, s.generator, analysis.RiskAnalysis, analysis.RiskPrompt(transcript))
	if err != nil {
		return models.MonthlyReport{}, err
	}

	checkup, err := ask[analysis.CheckupResult](ctx, s.generator, analysis.CheckupPhrase, analysis.CheckupPrompt(risk.HasRisk))
	if err != nil {
		return models.MonthlyReport{}, err
	}

	overview, err := ask[analysis.OverviewResult](ctx, s.generator, analysis.Overview, analysis.OverviewPrompt(emotion.Summary, risk.Narrative))
	if err != nil {
		return models.MonthlyReport{}, err
	}

	track := analysis.TrackFor(risk.HasRisk)
	recommendations := s.searcher.Search(ctx, checkup.Phrase, s.maxRecommendations)
	if len(recommendations) == 0 {
		log.Info().Bool("has_risk", risk.HasRisk).Str("query", checkup.Phrase).Msg("using fallback recommendations")
		recommendations = track.Fallback
	}

	return models.MonthlyReport{
		UserID:                userID,
		Year:                  year,
		Month:                 month,
		OneLineSummary:        overview.OneLine,
		Overview:              overview.Paragraph,
		EmotionKeywords:       emotion.Keywords,
		EmotionSummary:        emotion.Summary,
		RiskAnalysis:          risk.Narrative,
		HasMentalHealthRisk:   risk.HasRisk,
		CheckupType:           track.CheckupType,
		RecommendationMessage: track.Message,
		SearchQuery:           checkup.Phrase,
		Recommendations:       recommendations,
	}, nil
}

// ask sends one prompt and parses the answer as the result of task.
// Both failure kinds are wrapped in ErrReportGenerationFailed and logged with
// a distinct error_kind.
func ask[T analysis.Result](ctx context.Context, generator adapter.TextGenerator, task analysis.Task, prompt string) (T, error) {
	var zero T
	log := logger.FromContext(ctx)

	log.Debug().Stringer("task", task).Msg("analysis step started")

	text, err := generator.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Stringer("task", task).Str("error_kind", "generation").Msg("analysis step failed")
		return zero, fmt.Errorf("%w: %s: %w", ErrReportGenerationFailed, task, err)
	}

	result, err := analysis.ParseAs[T](task, text)
	if err != nil {
		log.Error().Err(err).Stringer("task", task).Str("error_kind", "parse").Int("answer_len", len(text)).Msg("analysis step failed")
		return zero, fmt.Errorf("%w: %s: %w", ErrReportGenerationFailed, task, err)
	}

	log.Debug().Stringer("task", task).Msg("analysis step finished")
	return result, nil
}
