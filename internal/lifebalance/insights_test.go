package lifebalance

import (
	"testing"
	"time"
)

func TestDeriveInsightsFullSet(t *testing.T) {
	responses := make(map[string]string, TotalQuestions)
	for _, q := range Questions() {
		responses[q.ID] = "an answer"
	}
	now := time.Now().UTC()

	ins := DeriveInsights(responses, now)
	for _, a := range Areas() {
		if len(ins.Takeaways[a]) != 3 {
			t.Fatalf("%s has %d takeaways, want 3", a, len(ins.Takeaways[a]))
		}
		if len(ins.ActionItems[a]) != 3 {
			t.Fatalf("%s has %d action items, want 3", a, len(ins.ActionItems[a]))
		}
	}
	if !ins.GeneratedAt.Equal(now) {
		t.Fatalf("generatedAt = %v, want %v", ins.GeneratedAt, now)
	}
}

func TestDeriveInsightsEmptySet(t *testing.T) {
	ins := DeriveInsights(map[string]string{}, time.Now().UTC())
	for _, a := range Areas() {
		if len(ins.Takeaways[a]) != 0 {
			t.Fatalf("%s takeaways should be empty", a)
		}
		if len(ins.ActionItems[a]) != 0 {
			t.Fatalf("%s action items should be empty", a)
		}
		if ins.Takeaways[a] == nil || ins.ActionItems[a] == nil {
			t.Fatalf("%s lists should be present but empty", a)
		}
	}
	if ins.GeneratedAt.IsZero() {
		t.Fatalf("generatedAt not set")
	}
}

func TestDeriveInsightsPartialSet(t *testing.T) {
	responses := map[string]string{
		"health-1": "a",
		"health-2": "b",
	}
	ins := DeriveInsights(responses, time.Now().UTC())
	if len(ins.Takeaways[AreaHealth]) != 3 {
		t.Fatalf("answered area should get takeaways")
	}
	for _, a := range []Area{AreaWork, AreaPlay, AreaLove} {
		if len(ins.Takeaways[a]) != 0 || len(ins.ActionItems[a]) != 0 {
			t.Fatalf("unanswered area %s should have empty lists", a)
		}
	}
}

func TestDeriveInsightsIgnoresUnknownIDs(t *testing.T) {
	ins := DeriveInsights(map[string]string{"mystery-1": "a"}, time.Now().UTC())
	for _, a := range Areas() {
		if len(ins.Takeaways[a]) != 0 {
			t.Fatalf("unknown question id produced insights for %s", a)
		}
	}
}
