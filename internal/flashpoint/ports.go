package flashpoint

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Record — one predefined problem scenario. Loaded once at startup,
// read-only for the session lifetime.
type Record struct {
	Srno  string `json:"srno"`
	Title string `json:"title"`
	Zone  string `json:"zone"`
}

// Turn — one transcript entry. The transcript is append-only.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ShortlistEntry — one scored candidate from the most recent successful
// flashpoint classification pass.
type ShortlistEntry struct {
	Srno        string `json:"srno"`
	Title       string `json:"title"`
	Zone        string `json:"zone"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// ZoneEntry — one scored process zone estimate.
type ZoneEntry struct {
	Zone        string `json:"zone"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// Dataset — read-once source of flashpoint records.
type Dataset interface {
	Load(ctx context.Context) ([]Record, error)
}

// Service — one chat session. Turns are serialized: a new turn is admitted
// only after the previous one has fully completed.
type Service interface {
	HandleMessage(ctx context.Context, text string) ViewState
	State() ViewState
	Reset()
}
