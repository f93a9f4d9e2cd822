package analysis

import (
	"errors"
	"fmt"
)

// ErrParse marks a generation answer that cannot be read into the expected
// shape. It is distinct from transport failures of the generation client.
var ErrParse = errors.New("unparseable generation response")

// Task is one analytical question asked about a month of diary entries.
type Task int

const (
	EmotionAnalysis Task = iota
	RiskAnalysis
	CheckupPhrase
	Overview

	taskCount
)

// Tasks lists every task in pipeline order.
var Tasks = [taskCount]Task{EmotionAnalysis, RiskAnalysis, CheckupPhrase, Overview}

var taskNames = [taskCount]string{
	EmotionAnalysis: "emotion_analysis",
	RiskAnalysis:    "risk_analysis",
	CheckupPhrase:   "checkup_phrase",
	Overview:        "overview",
}

func (t Task) String() string {
	if !t.valid() {
		return fmt.Sprintf("task(%d)", int(t))
	}
	return taskNames[t]
}

func (t Task) valid() bool {
	return t >= 0 && t < taskCount
}

// Result is the parsed answer of one task. It is implemented only by
// EmotionResult, RiskResult, CheckupResult and OverviewResult.
type Result interface {
	task() Task
}

type parseFunc func(text string) (Result, error)

// parsers is indexed by Task; its length ties it to the task set.
var parsers = [taskCount]parseFunc{
	EmotionAnalysis: func(text string) (Result, error) { return ParseEmotion(text) },
	RiskAnalysis:    func(text string) (Result, error) { return ParseRisk(text) },
	CheckupPhrase:   func(text string) (Result, error) { return ParseCheckup(text) },
	Overview:        func(text string) (Result, error) { return ParseOverview(text) },
}

// Parse reads text as the answer to task.
func Parse(task Task, text string) (Result, error) {
	if !task.valid() {
		return nil, fmt.Errorf("%w: unknown %s", ErrParse, task)
	}
	return parsers[task](text)
}

// ParseAs is Parse with the result narrowed to the concrete type of the task.
//
//	emotion, err := analysis.ParseAs[analysis.EmotionResult](analysis.EmotionAnalysis, text)
func ParseAs[T Result](task Task, text string) (T, error) {
	var zero T

	res, err := Parse(task, text)
	if err != nil {
		return zero, err
	}

	typed, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s does not produce %T", ErrParse, task, zero)
	}
	return typed, nil
}
