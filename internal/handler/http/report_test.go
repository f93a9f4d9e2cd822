package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/analysis"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleReport() models.MonthlyReport {
	return models.MonthlyReport{
		UserID:                testUserID,
		Year:                  2025,
		Month:                 3,
		OneLineSummary:        "A steady month.",
		Overview:              "You kept a calm rhythm.",
		EmotionKeywords:       []string{"calm", "tired", "hopeful"},
		EmotionSummary:        "Mostly calm.",
		RiskAnalysis:          "No risk.",
		CheckupType:           models.CheckupPersonalityQuiz,
		RecommendationMessage: "Try a quiz.",
		SearchQuery:           "personality quiz",
		Recommendations:       []models.Recommendation{{Title: "Quiz", Link: "https://q.example"}},
		CreatedAt:             time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestGetMonthlyReport(t *testing.T) {
	env := newTestEnv(t)
	env.authorized()
	env.report.EXPECT().GetOrCreate(gomock.Any(), testUserID, 2025, 3).Return(sampleReport(), nil)

	rec := env.do(http.MethodGet, "/api/report/monthly?year=2025&month=3", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A steady month.", body["oneLineSummary"])
	assert.Equal(t, "light_personality_quiz", body["checkupType"])
	assert.Equal(t, false, body["hasMentalHealthRisk"])
	assert.Len(t, body["emotionKeywords"], 3)
}

func TestGetMonthlyReport_DefaultsToCurrentMonth(t *testing.T) {
	env := newTestEnv(t)
	env.authorized()

	now := time.Now().UTC()
	env.report.EXPECT().GetOrCreate(gomock.Any(), testUserID, now.Year(), int(now.Month())).Return(sampleReport(), nil)

	rec := env.do(http.MethodGet, "/api/report/monthly", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMonthlyReport_BadQuery(t *testing.T) {
	env := newTestEnv(t)
	env.authorized()

	rec := env.do(http.MethodGet, "/api/report/monthly?year=twenty&month=3", nil, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMonthlyReport_ErrorMapping(t *testing.T) {
	parseFailure := fmt.Errorf("%w: overview: %w", service.ErrReportGenerationFailed, analysis.ErrParse)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no entries", service.ErrNoDiaryEntries, http.StatusNotFound},
		{"unknown user", service.ErrUserNotFound, http.StatusNotFound},
		{"generation failure", parseFailure, http.StatusBadRequest},
		{"future month", fmt.Errorf("%w: future", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authorized()
			env.report.EXPECT().GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.MonthlyReport{}, tt.err)

			rec := env.do(http.MethodGet, "/api/report/monthly?year=2025&month=3", nil, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGenerateMonthlyReport(t *testing.T) {
	env := newTestEnv(t)
	env.authorized()
	env.report.EXPECT().Generate(gomock.Any(), testUserID, 2025, 3).Return(sampleReport(), nil)

	rec := env.do(http.MethodPost, "/api/report/monthly?yearMonth=2025-03", nil, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGenerateMonthlyReport_BadYearMonth(t *testing.T) {
	for _, q := range []string{"", "2025-13", "2025/03", "March"} {
		t.Run(q, func(t *testing.T) {
			env := newTestEnv(t)
			env.authorized()

			rec := env.do(http.MethodPost, "/api/report/monthly?yearMonth="+q, nil, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), ErrInvalidYearMonth.Error())
		})
	}
}
