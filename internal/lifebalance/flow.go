package lifebalance

import (
	"math"
	"strings"
)

// Outcome distinguishes how a flow reached its terminal state.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeCompleted  Outcome = "completed"
	OutcomeSkipped    Outcome = "skipped"
)

// Flow walks the question bank area by area, collecting one free-text
// response per question. Position is always derived from the response
// set: the current question is the first unanswered question of the
// first incomplete area, never a stored index. That makes resuming from
// a persisted partial set idempotent, including sets with out-of-order
// gaps left by an interrupted run.
type Flow struct {
	responses map[string]string
	skipped   bool
}

// NewFlow builds a flow over an existing response set (nil for a fresh
// run). A set that already answers every question is complete
// immediately, before any submission is accepted.
func NewFlow(existing map[string]string) *Flow {
	f := &Flow{responses: make(map[string]string, TotalQuestions)}
	for id, text := range existing {
		if _, ok := QuestionByID(id); !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		f.responses[id] = text
	}
	return f
}

// CurrentQuestion returns the next unanswered question, or false when
// the flow is complete. This is the single source of truth for position.
func (f *Flow) CurrentQuestion() (Question, bool) {
	if f.skipped {
		return Question{}, false
	}
	for _, q := range questionBank {
		if _, answered := f.responses[q.ID]; !answered {
			return q, true
		}
	}
	return Question{}, false
}

// CurrentArea returns the area of the current question.
func (f *Flow) CurrentArea() (Area, bool) {
	q, ok := f.CurrentQuestion()
	if !ok {
		return "", false
	}
	return q.Area, true
}

// Complete reports whether the flow has reached its terminal state,
// either by answering every question or by skipping.
func (f *Flow) Complete() bool {
	if f.skipped {
		return true
	}
	return len(f.responses) == TotalQuestions
}

// Outcome reports how the terminal state was reached.
func (f *Flow) Outcome() Outcome {
	switch {
	case f.skipped:
		return OutcomeSkipped
	case len(f.responses) == TotalQuestions:
		return OutcomeCompleted
	}
	return OutcomeInProgress
}

// Submit records the trimmed text as the answer to the current question.
// On the submission that completes the flow it returns the full response
// set; every other successful submission returns nil. Submitting on an
// already-complete flow fails, so the completed set is emitted exactly
// once.
func (f *Flow) Submit(text string) (map[string]string, error) {
	if f.Complete() {
		return nil, ErrFlowComplete
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	q, _ := f.CurrentQuestion()
	f.responses[q.ID] = text
	if len(f.responses) == TotalQuestions {
		return f.Responses(), nil
	}
	return nil, nil
}

// Skip force-transitions to the terminal state with the response set
// unchanged. Callers can tell a skipped run from a completed one via
// Outcome.
func (f *Flow) Skip() {
	f.skipped = true
}

// AnsweredCount returns the number of recorded responses.
func (f *Flow) AnsweredCount() int {
	return len(f.responses)
}

// Progress returns answered/total in [0,1]; always recomputed, never
// stored.
func (f *Flow) Progress() float64 {
	return float64(len(f.responses)) / float64(TotalQuestions)
}

// ProgressPercent returns the display percentage, rounded to the nearest
// integer.
func (f *Flow) ProgressPercent() int {
	return int(math.Round(f.Progress() * 100))
}

// Responses returns a copy of the response set.
func (f *Flow) Responses() map[string]string {
	out := make(map[string]string, len(f.responses))
	for id, text := range f.responses {
		out[id] = text
	}
	return out
}
