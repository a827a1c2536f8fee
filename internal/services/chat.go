package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yungbote/lifebalance-backend/internal/clients/openai"
	"github.com/yungbote/lifebalance-backend/internal/lifebalance"
	"github.com/yungbote/lifebalance-backend/internal/logger"
)

// Turn is one entry of a chat transcript.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const coachSystemPrompt = `You are an empathetic and insightful life coach. Your role is to help users improve their life satisfaction scores across four key areas: health, work, play, and love.

When interacting with users:
1. Ask thoughtful questions to understand their situation
2. Show empathy and understanding for their challenges
3. Provide specific, actionable suggestions that are realistic and achievable
4. Focus on small, incremental improvements
5. Encourage reflection and self-awareness
6. Maintain a positive and supportive tone

Keep responses concise and focused on the most relevant area of improvement.`

// apologyMessage is what the user sees when the model call fails. The
// failure never reaches the transcript as an error.
const apologyMessage = "I apologize, but I'm having trouble responding right now. Please try again."

// ChatService orchestrates the coaching conversation. The transcript
// lives with the caller; nothing here is persisted.
type ChatService interface {
	// Seed produces the deterministic opening assistant turn from the
	// user's current scores.
	Seed(scores lifebalance.Scores) Turn
	// Send appends the user message context and asks the model for the
	// next assistant turn. One attempt; on failure the apology turn is
	// returned instead.
	Send(ctx context.Context, transcript []Turn, userMessage string, scores lifebalance.Scores, assessment map[string]string) Turn
}

type chatService struct {
	log *logger.Logger
	llm openai.Client
}

func NewChatService(log *logger.Logger, llm openai.Client) ChatService {
	return &chatService{
		log: log.With("service", "ChatService"),
		llm: llm,
	}
}

func (cs *chatService) Seed(scores lifebalance.Scores) Turn {
	area, score := scores.Lowest()
	content := fmt.Sprintf(
		"I notice that your %s score is %d. Can you tell me more about what's affecting your satisfaction in this area?",
		area, score,
	)
	return Turn{Role: RoleAssistant, Content: content}
}

func (cs *chatService) Send(ctx context.Context, transcript []Turn, userMessage string, scores lifebalance.Scores, assessment map[string]string) Turn {
	messages := make([]openai.Message, 0, len(transcript)+1)
	for _, t := range transcript {
		messages = append(messages, openai.Message{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, openai.Message{Role: RoleUser, Content: userMessage})

	system := coachSystemPrompt + "\n\n" + contextBlock(scores, assessment)

	if cs.llm == nil {
		cs.log.Warn("Language model client not configured")
		return Turn{Role: RoleAssistant, Content: apologyMessage}
	}
	reply, err := cs.llm.Complete(ctx, system, messages)
	if err != nil {
		cs.log.Warn("Language model call failed", "error", err)
		return Turn{Role: RoleAssistant, Content: apologyMessage}
	}
	return Turn{Role: RoleAssistant, Content: reply}
}

// contextBlock renders the user's current scores, and their assessment
// answers when present, for the system prompt.
func contextBlock(scores lifebalance.Scores, assessment map[string]string) string {
	var b strings.Builder
	b.WriteString("The user's current life balance scores:\n")
	for _, a := range lifebalance.Areas() {
		fmt.Fprintf(&b, "%s: %d%%\n", a.Label(), scores.Get(a))
	}

	if len(assessment) > 0 {
		b.WriteString("\nTheir assessment responses:\n")
		ids := make([]string, 0, len(assessment))
		for id := range assessment {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			q, ok := lifebalance.QuestionByID(id)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", q.Text, assessment[id])
		}
	}
	return b.String()
}
