package flashpoint

import (
	"context"
	"log"
	"sync"

	"github.com/growthapp/flashpoint-ai-bridge/internal/ai"
)

// replyErrorPlaceholder stands in for the assistant turn when the final
// completion call fails. The turn still happens; the transcript never stalls.
const replyErrorPlaceholder = "Error generating response."

type service struct {
	mu sync.Mutex // serializes turns; one in flight at a time

	ai   ai.Completion
	data []Record

	messages  []Turn
	shortlist []ShortlistEntry
	zones     []ZoneEntry
}

func NewService(data []Record, aiClient ai.Completion) Service {
	return &service{
		ai:   aiClient,
		data: data,
	}
}

// HandleMessage runs one full turn: append the user message, classify
// flashpoints, classify the process zone, generate a reply. Classification
// runs only when flashpoint data is loaded. Every pass degrades on failure:
// the previous shortlist/zone state is retained and the turn continues.
func (s *service) HandleMessage(ctx context.Context, text string) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Println("========== NEW MESSAGE ==========")
	log.Printf("[svc] user text=%q", short(text))

	s.messages = append(s.messages, Turn{Role: RoleUser, Content: text})

	if len(s.data) > 0 {
		s.classifyFlashpoints(ctx)
		s.classifyZone(ctx)
	}

	s.generateReply(ctx)

	return s.viewLocked()
}

func (s *service) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Reset clears the session but keeps the loaded dataset.
func (s *service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.shortlist = nil
	s.zones = nil
}

// ------------------------------------------------------------

func (s *service) classifyFlashpoints(ctx context.Context) {
	prompt := FlashpointPrompt(HistoryText(s.messages), s.data)

	raw, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[svc] flashpoint pass failed: %v", err)
		return
	}

	log.Printf("[svc][FLASHPOINT RAW] %s", short(raw))

	var shortlist []ShortlistEntry
	if err := ExtractJSONArray(raw, &shortlist); err != nil {
		log.Printf("[svc] error parsing flashpoints: %v", err)
		return
	}

	// Replaced wholesale on every successful parse, never merged.
	s.shortlist = shortlist
}

func (s *service) classifyZone(ctx context.Context) {
	prompt := ZonePrompt(HistoryText(s.messages), s.data)

	raw, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[svc] zone pass failed: %v", err)
		return
	}

	log.Printf("[svc][ZONE RAW] %s", short(raw))

	var zones []ZoneEntry
	if err := ExtractJSONArray(raw, &zones); err != nil {
		log.Printf("[svc] error parsing process zone: %v", err)
		return
	}

	s.zones = zones
}

func (s *service) generateReply(ctx context.Context) {
	prompt := ReplyPrompt(HistoryText(s.messages), s.shortlist, s.data)

	raw, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[svc] reply pass failed: %v", err)
		s.messages = append(s.messages, Turn{Role: RoleAssistant, Content: replyErrorPlaceholder})
		return
	}

	s.messages = append(s.messages, Turn{Role: RoleAssistant, Content: raw})
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
