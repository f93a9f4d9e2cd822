package models

import "time"

// CheckupType selects the recommendation track shown in a monthly report.
type CheckupType string

const (
	CheckupMentalHealth    CheckupType = "mental_health_checkup"
	CheckupPersonalityQuiz CheckupType = "light_personality_quiz"
)

// Recommendation is a single link suggested to the user.
type Recommendation struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// MonthlyReport is the analytical summary of one user's diary for one month.
// At most one report exists per (UserID, Year, Month); regeneration replaces it.
type MonthlyReport struct {
	ID     int64 `json:"-"`
	UserID int64 `json:"-"`
	Year   int   `json:"year"`
	Month  int   `json:"month"`

	OneLineSummary        string           `json:"oneLineSummary"`
	Overview              string           `json:"overview"`
	EmotionKeywords       []string         `json:"emotionKeywords"`
	EmotionSummary        string           `json:"emotionSummary"`
	RiskAnalysis          string           `json:"riskAnalysis"`
	HasMentalHealthRisk   bool             `json:"hasMentalHealthRisk"`
	CheckupType           CheckupType      `json:"checkupType"`
	RecommendationMessage string           `json:"recommendationMessage"`
	SearchQuery           string           `json:"searchQuery"`
	Recommendations       []Recommendation `json:"recommendations"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the MonthlyReport model.
func (r MonthlyReport) TableName() string {
	return "monthly_reports"
}
