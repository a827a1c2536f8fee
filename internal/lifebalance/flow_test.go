package lifebalance

import (
	"fmt"
	"testing"
)

func TestFlowWalksAreasInOrder(t *testing.T) {
	f := NewFlow(nil)

	var seen []Area
	for !f.Complete() {
		area, ok := f.CurrentArea()
		if !ok {
			t.Fatalf("incomplete flow has no current area")
		}
		if len(seen) == 0 || seen[len(seen)-1] != area {
			seen = append(seen, area)
		}
		if _, err := f.Submit(fmt.Sprintf("answer %d", f.AnsweredCount()+1)); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	want := []Area{AreaHealth, AreaWork, AreaPlay, AreaLove}
	if len(seen) != len(want) {
		t.Fatalf("saw areas %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("area %d was %s, want %s", i, seen[i], want[i])
		}
	}
	if f.Outcome() != OutcomeCompleted {
		t.Fatalf("outcome = %s, want completed", f.Outcome())
	}
}

func TestFlowProgress(t *testing.T) {
	f := NewFlow(nil)
	for i := 0; i < 4; i++ {
		if _, err := f.Submit("an answer"); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}
	if f.AnsweredCount() != 4 {
		t.Fatalf("answered = %d, want 4", f.AnsweredCount())
	}
	if f.ProgressPercent() != 25 {
		t.Fatalf("progress = %d%%, want 25%%", f.ProgressPercent())
	}
	if area, _ := f.CurrentArea(); area != AreaWork {
		t.Fatalf("current area after health = %s, want work", area)
	}
}

func TestFlowEmitsResponseSetExactlyOnce(t *testing.T) {
	f := NewFlow(nil)
	var emitted map[string]string
	for i := 0; i < TotalQuestions; i++ {
		set, err := f.Submit("an answer")
		if err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
		if i < TotalQuestions-1 && set != nil {
			t.Fatalf("response set emitted early at submission %d", i)
		}
		if i == TotalQuestions-1 {
			emitted = set
		}
	}
	if len(emitted) != TotalQuestions {
		t.Fatalf("emitted set has %d entries, want %d", len(emitted), TotalQuestions)
	}
	if _, err := f.Submit("one more"); err != ErrFlowComplete {
		t.Fatalf("submit after completion err = %v, want ErrFlowComplete", err)
	}
}

func TestFlowRejectsEmptyResponse(t *testing.T) {
	f := NewFlow(nil)
	if _, err := f.Submit("   \n\t"); err != ErrEmptyResponse {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
	if f.AnsweredCount() != 0 {
		t.Fatalf("empty submission was recorded")
	}
}

func TestFlowSkip(t *testing.T) {
	f := NewFlow(nil)
	if _, err := f.Submit("first answer"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	f.Skip()
	if !f.Complete() {
		t.Fatalf("skipped flow not complete")
	}
	if f.Outcome() != OutcomeSkipped {
		t.Fatalf("outcome = %s, want skipped", f.Outcome())
	}
	if f.AnsweredCount() != 1 {
		t.Fatalf("skip changed the response set: %d entries", f.AnsweredCount())
	}
	if _, err := f.Submit("late answer"); err != ErrFlowComplete {
		t.Fatalf("submit after skip err = %v, want ErrFlowComplete", err)
	}
}

func TestFlowResumeFromFullSetIsImmediatelyComplete(t *testing.T) {
	existing := make(map[string]string, TotalQuestions)
	for _, q := range Questions() {
		existing[q.ID] = "persisted answer"
	}
	f := NewFlow(existing)
	if !f.Complete() {
		t.Fatalf("flow over a full set should be complete immediately")
	}
	if _, ok := f.CurrentQuestion(); ok {
		t.Fatalf("complete flow should have no current question")
	}
	if f.Outcome() != OutcomeCompleted {
		t.Fatalf("outcome = %s, want completed", f.Outcome())
	}
}

func TestFlowResumeFillsGapsFirst(t *testing.T) {
	// A prior interrupted run can leave out-of-order gaps; the flow must
	// return to the first unanswered question, not "index + 1".
	existing := map[string]string{
		"health-1": "a",
		"health-3": "b",
		"work-1":   "c",
	}
	f := NewFlow(existing)
	q, ok := f.CurrentQuestion()
	if !ok {
		t.Fatalf("flow has no current question")
	}
	if q.ID != "health-2" {
		t.Fatalf("current question = %s, want health-2", q.ID)
	}
}

func TestFlowIgnoresBadPersistedEntries(t *testing.T) {
	existing := map[string]string{
		"health-1": "kept",
		"bogus-99": "dropped",
		"health-2": "   ",
		"":         "dropped",
	}
	f := NewFlow(existing)
	if f.AnsweredCount() != 1 {
		t.Fatalf("answered = %d, want 1", f.AnsweredCount())
	}
}
