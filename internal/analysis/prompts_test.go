package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptsCarryTranscript(t *testing.T) {
	transcript := "Day 1:\nMorning: coffee\n\n"

	assert.Contains(t, EmotionPrompt(transcript), transcript)
	assert.Contains(t, RiskPrompt(transcript), transcript)
}

func TestRiskPrompt_NamesBothMarkers(t *testing.T) {
	p := RiskPrompt("")
	assert.Contains(t, p, RiskMarkerYes)
	assert.Contains(t, p, RiskMarkerNo)
}

func TestCheckupPrompt_DependsOnRisk(t *testing.T) {
	assert.Contains(t, CheckupPrompt(true), "mental health self-assessment")
	assert.Contains(t, CheckupPrompt(false), "personality or emotional quiz")
	assert.NotEqual(t, CheckupPrompt(true), CheckupPrompt(false))
}

func TestOverviewPrompt(t *testing.T) {
	p := OverviewPrompt("felt calm", "no risk")

	assert.Contains(t, p, OneLineSummaryLabel+" <summary>")
	assert.Contains(t, p, ParagraphSummaryLabel+" <paragraph>")
	assert.Contains(t, p, "Emotion Summary:\nfelt calm")
	assert.Contains(t, p, "Risk Analysis:\nno risk")
}
