package analysis

import "github.com/MKhiriev/go-diary-keeper/models"

// Track is the recommendation block of a report, selected by the risk flag.
type Track struct {
	CheckupType models.CheckupType
	Message     string
	Fallback    []models.Recommendation
}

var (
	mentalHealthTrack = Track{
		CheckupType: models.CheckupMentalHealth,
		Message:     "Check your mental health with these self-assessment tools:",
		Fallback: []models.Recommendation{
			{Title: "Depression Self-Assessment Test", Link: "https://www.mentalhealth.go.kr/self/selfTest.do"},
			{Title: "Stress Self-Diagnosis Test", Link: "https://health.kdca.go.kr/health/pvsnMental/stress/stress.jsp"},
			{Title: "Anxiety Disorder Self-Assessment", Link: "https://www.nhis.or.kr/nhis/healthin/wbhea0405m01.do"},
		},
	}

	personalityQuizTrack = Track{
		CheckupType: models.CheckupPersonalityQuiz,
		Message:     "Learn more about yourself with these personality quizzes:",
		Fallback: []models.Recommendation{
			{Title: "MBTI Personality Type Test - 16Personalities", Link: "https://www.16personalities.com"},
			{Title: "Character Strengths Test - VIA Institute", Link: "https://www.viacharacter.org/"},
			{Title: "Enneagram Personality Type Test", Link: "https://www.enneagraminstitute.com/"},
		},
	}
)

// TrackFor returns the recommendation track for the risk flag. The fallback
// list is a copy and may be modified by the caller.
func TrackFor(hasRisk bool) Track {
	track := personalityQuizTrack
	if hasRisk {
		track = mentalHealthTrack
	}
	track.Fallback = append([]models.Recommendation(nil), track.Fallback...)
	return track
}
