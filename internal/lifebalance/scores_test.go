package lifebalance

import (
	"errors"
	"testing"
)

func TestScoresDefaultMidpoint(t *testing.T) {
	s := NewScores()
	for _, a := range Areas() {
		if got := s.Get(a); got != DefaultScore {
			t.Fatalf("default %s score = %d, want %d", a, got, DefaultScore)
		}
	}
}

func TestScoresSetGetRoundTrip(t *testing.T) {
	s := NewScores()
	for _, v := range []int{0, 1, 50, 99, 100} {
		if err := s.Set(AreaWork, v); err != nil {
			t.Fatalf("set work=%d failed: %v", v, err)
		}
		if got := s.Get(AreaWork); got != v {
			t.Fatalf("get after set = %d, want %d", got, v)
		}
	}
}

func TestScoresRejectsOutOfRange(t *testing.T) {
	s := NewScores()
	if err := s.Set(AreaHealth, 80); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	for _, v := range []int{-1, 101, 1000} {
		err := s.Set(AreaHealth, v)
		if !errors.Is(err, ErrScoreOutOfRange) {
			t.Fatalf("set health=%d err = %v, want ErrScoreOutOfRange", v, err)
		}
		if got := s.Get(AreaHealth); got != 80 {
			t.Fatalf("prior value changed on rejected write: %d", got)
		}
	}
}

func TestScoresRejectsUnknownArea(t *testing.T) {
	s := NewScores()
	err := s.Set(Area("wealth"), 50)
	if !errors.Is(err, ErrUnknownArea) {
		t.Fatalf("err = %v, want ErrUnknownArea", err)
	}
}

func TestScoresLowest(t *testing.T) {
	s := NewScores()
	for a, v := range map[Area]int{AreaHealth: 75, AreaWork: 60, AreaPlay: 85, AreaLove: 70} {
		if err := s.Set(a, v); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}
	area, score := s.Lowest()
	if area != AreaWork || score != 60 {
		t.Fatalf("lowest = %s/%d, want work/60", area, score)
	}
}

func TestScoresLowestTieBreaksByOrder(t *testing.T) {
	s := NewScores()
	area, score := s.Lowest()
	if area != AreaHealth || score != DefaultScore {
		t.Fatalf("all-equal lowest = %s/%d, want health/%d", area, score, DefaultScore)
	}
}

func TestParseArea(t *testing.T) {
	for _, raw := range []string{"health", "work", "play", "love"} {
		a, err := ParseArea(raw)
		if err != nil {
			t.Fatalf("parse %q failed: %v", raw, err)
		}
		if string(a) != raw {
			t.Fatalf("parse %q = %s", raw, a)
		}
	}
	if _, err := ParseArea("Health"); !errors.Is(err, ErrUnknownArea) {
		t.Fatalf("area parsing should be exact, got err = %v", err)
	}
}
