package lifebalance

import "testing"

func TestQuestionBankShape(t *testing.T) {
	all := Questions()
	if len(all) != TotalQuestions {
		t.Fatalf("bank has %d questions, want %d", len(all), TotalQuestions)
	}
	seen := make(map[string]bool, len(all))
	for _, q := range all {
		if q.ID == "" || q.Text == "" {
			t.Fatalf("question %+v incomplete", q)
		}
		if !q.Area.Valid() {
			t.Fatalf("question %s has invalid area %q", q.ID, q.Area)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
	for _, a := range Areas() {
		if n := len(QuestionsForArea(a)); n != 4 {
			t.Fatalf("area %s has %d questions, want 4", a, n)
		}
	}
}

func TestQuestionBankAreaOrder(t *testing.T) {
	// The bank is laid out in assessment order so a linear scan visits
	// health, work, play, love.
	var order []Area
	for _, q := range Questions() {
		if len(order) == 0 || order[len(order)-1] != q.Area {
			order = append(order, q.Area)
		}
	}
	want := []Area{AreaHealth, AreaWork, AreaPlay, AreaLove}
	if len(order) != len(want) {
		t.Fatalf("area blocks %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("block %d is %s, want %s", i, order[i], want[i])
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("play-3")
	if !ok {
		t.Fatalf("play-3 missing")
	}
	if q.Area != AreaPlay {
		t.Fatalf("play-3 area = %s", q.Area)
	}
	if _, ok := QuestionByID("play-9"); ok {
		t.Fatalf("unexpected question play-9")
	}
}
