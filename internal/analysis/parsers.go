package analysis

import (
	"fmt"
	"strings"
)

// Sentinel markers the risk prompt asks the model to end its answer with.
const (
	RiskMarkerYes = "[MENTAL_HEALTH_RISK: YES]"
	RiskMarkerNo  = "[MENTAL_HEALTH_RISK: NO]"
)

// Labels the overview prompt asks the model to prefix its two answers with.
const (
	OneLineSummaryLabel   = "ONE_LINE_SUMMARY:"
	ParagraphSummaryLabel = "PARAGRAPH_SUMMARY:"
)

// Expected number of emotion keywords. Answers outside the range are kept.
const (
	MinEmotionKeywords = 3
	MaxEmotionKeywords = 5
)

// EmotionResult is the parsed emotion analysis.
type EmotionResult struct {
	Keywords []string
	Summary  string
}

func (EmotionResult) task() Task { return EmotionAnalysis }

// KeywordsInRange reports whether the keyword count matches what the prompt asked for.
func (r EmotionResult) KeywordsInRange() bool {
	return len(r.Keywords) >= MinEmotionKeywords && len(r.Keywords) <= MaxEmotionKeywords
}

// RiskResult is the parsed mental health risk analysis.
type RiskResult struct {
	Narrative string
	HasRisk   bool
}

func (RiskResult) task() Task { return RiskAnalysis }

// CheckupResult holds the search phrase for recommendations.
type CheckupResult struct {
	Phrase string
}

func (CheckupResult) task() Task { return CheckupPhrase }

// OverviewResult is the parsed short summary of the month.
type OverviewResult struct {
	OneLine   string
	Paragraph string
}

func (OverviewResult) task() Task { return Overview }

func requireText(task Task, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: empty %s answer", ErrParse, task)
	}
	return nil
}

// ParseEmotion reads a bullet list of keywords followed by a summary.
//
// Bulleted lines (-, * or •) are keywords until the first non-bulleted line;
// from then on every non-empty line, bulleted or not, belongs to the summary.
// The keyword count is not enforced.
func ParseEmotion(text string) (EmotionResult, error) {
	if err := requireText(EmotionAnalysis, text); err != nil {
		return EmotionResult{}, err
	}

	result := EmotionResult{Keywords: make([]string, 0, MaxEmotionKeywords)}
	var summary []string
	collectingKeywords := true

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if collectingKeywords {
			if keyword, ok := stripBullet(line); ok {
				if keyword != "" {
					result.Keywords = append(result.Keywords, keyword)
				}
				continue
			}
			collectingKeywords = false
		}

		summary = append(summary, line)
	}

	result.Summary = strings.Join(summary, " ")
	return result, nil
}

// stripBullet removes a leading bullet marker and markdown emphasis around
// the keyword. ok is false when line is not a bullet.
func stripBullet(line string) (string, bool) {
	for _, marker := range []string{"-", "*", "•"} {
		if rest, found := strings.CutPrefix(line, marker); found {
			return strings.TrimSpace(strings.Trim(strings.TrimSpace(rest), "*_")), true
		}
	}
	return "", false
}

// ParseRisk derives the risk flag from the presence of RiskMarkerYes and
// returns the text with both markers removed as the narrative. A missing
// marker counts as no risk.
func ParseRisk(text string) (RiskResult, error) {
	if err := requireText(RiskAnalysis, text); err != nil {
		return RiskResult{}, err
	}

	narrative := strings.ReplaceAll(text, RiskMarkerYes, "")
	narrative = strings.ReplaceAll(narrative, RiskMarkerNo, "")

	return RiskResult{
		Narrative: strings.TrimSpace(narrative),
		HasRisk:   strings.Contains(text, RiskMarkerYes),
	}, nil
}

// ParseCheckup returns the whole trimmed answer as the search phrase.
func ParseCheckup(text string) (CheckupResult, error) {
	if err := requireText(CheckupPhrase, text); err != nil {
		return CheckupResult{}, err
	}
	return CheckupResult{Phrase: strings.TrimSpace(text)}, nil
}

type overviewState int

const (
	overviewPreamble overviewState = iota
	overviewOneLine
	overviewParagraph
)

// ParseOverview reads the two labelled summaries.
//
// The text after OneLineSummaryLabel up to the end of its line is the one-line
// summary. The text after ParagraphSummaryLabel and every following
// non-empty unlabelled line form the paragraph. Lines before the first label
// are ignored. Missing labels leave the corresponding field empty.
func ParseOverview(text string) (OverviewResult, error) {
	if err := requireText(Overview, text); err != nil {
		return OverviewResult{}, err
	}

	var (
		result    OverviewResult
		paragraph []string
		state     = overviewPreamble
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := cutLabel(line, OneLineSummaryLabel); ok {
			result.OneLine = rest
			if state != overviewParagraph {
				state = overviewOneLine
			}
			continue
		}
		if rest, ok := cutLabel(line, ParagraphSummaryLabel); ok {
			if rest != "" {
				paragraph = append(paragraph, rest)
			}
			state = overviewParagraph
			continue
		}

		if state == overviewParagraph {
			paragraph = append(paragraph, line)
		}
	}

	result.Paragraph = strings.Join(paragraph, " ")
	return result, nil
}

// cutLabel matches label at the start of line, ignoring markdown emphasis
// such as "**ONE_LINE_SUMMARY:**".
func cutLabel(line, label string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimLeft(line, "*_# "), label)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(strings.Trim(rest, "*_ ")), true
}
