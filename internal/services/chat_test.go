package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yungbote/lifebalance-backend/internal/clients/openai"
	"github.com/yungbote/lifebalance-backend/internal/lifebalance"
	"github.com/yungbote/lifebalance-backend/internal/logger"
)

type stubLLM struct {
	reply      string
	err        error
	lastSystem string
	lastMsgs   []openai.Message
}

func (s *stubLLM) Complete(_ context.Context, system string, messages []openai.Message) (string, error) {
	s.lastSystem = system
	s.lastMsgs = messages
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init failed: %v", err)
	}
	return log
}

func testScores(t *testing.T, values map[lifebalance.Area]int) lifebalance.Scores {
	t.Helper()
	scores, err := lifebalance.ScoresFromMap(values)
	if err != nil {
		t.Fatalf("scores init failed: %v", err)
	}
	return scores
}

func TestChatSeedHighlightsLowestArea(t *testing.T) {
	cs := NewChatService(testLogger(t), &stubLLM{reply: "ok"})
	scores := testScores(t, map[lifebalance.Area]int{
		lifebalance.AreaHealth: 75,
		lifebalance.AreaWork:   60,
		lifebalance.AreaPlay:   85,
		lifebalance.AreaLove:   70,
	})

	turn := cs.Seed(scores)
	if turn.Role != RoleAssistant {
		t.Fatalf("seed role = %s, want assistant", turn.Role)
	}
	if !strings.Contains(turn.Content, "work score is 60") {
		t.Fatalf("seed should name the lowest area, got: %s", turn.Content)
	}
}

func TestChatSendPassesTranscriptAndContext(t *testing.T) {
	llm := &stubLLM{reply: "try a short walk today"}
	cs := NewChatService(testLogger(t), llm)
	scores := testScores(t, map[lifebalance.Area]int{lifebalance.AreaHealth: 20})

	transcript := []Turn{{Role: RoleAssistant, Content: "hello"}}
	assessment := map[string]string{"health-1": "I never exercise"}

	turn := cs.Send(context.Background(), transcript, "help me", scores, assessment)
	if turn.Content != "try a short walk today" {
		t.Fatalf("reply = %q", turn.Content)
	}
	if len(llm.lastMsgs) != 2 {
		t.Fatalf("model got %d messages, want 2", len(llm.lastMsgs))
	}
	if llm.lastMsgs[1].Role != RoleUser || llm.lastMsgs[1].Content != "help me" {
		t.Fatalf("user turn not last: %+v", llm.lastMsgs[1])
	}
	if !strings.Contains(llm.lastSystem, "Health: 20%") {
		t.Fatalf("system prompt missing scores: %s", llm.lastSystem)
	}
	if !strings.Contains(llm.lastSystem, "I never exercise") {
		t.Fatalf("system prompt missing assessment answers")
	}
}

func TestChatSendSwallowsModelFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("upstream down")}
	cs := NewChatService(testLogger(t), llm)
	scores := testScores(t, nil)

	turn := cs.Send(context.Background(), nil, "hello?", scores, nil)
	if turn.Role != RoleAssistant {
		t.Fatalf("fallback role = %s, want assistant", turn.Role)
	}
	if turn.Content != apologyMessage {
		t.Fatalf("fallback content = %q, want the fixed apology", turn.Content)
	}
}

func TestChatSendWithoutClientFallsBack(t *testing.T) {
	cs := NewChatService(testLogger(t), nil)
	turn := cs.Send(context.Background(), nil, "hello", testScores(t, nil), nil)
	if turn.Content != apologyMessage {
		t.Fatalf("missing client should produce the apology turn")
	}
}
