package domain

import "time"

// TurnRole identifies who produced a conversation turn.
type TurnRole string

const (
	TurnUser      TurnRole = "user"
	TurnAssistant TurnRole = "assistant"
)

// Turn is one entry in a session's conversation history.
type Turn struct {
	ID        string
	SessionID string
	Role      TurnRole
	Text      string
	CreatedAt time.Time
}

// Artifacts is the structured hiring output attached to a completed
// session. Content is opaque text; the engine never inspects it.
type Artifacts struct {
	JobDescription string `json:"job_description"`
	Checklist      string `json:"checklist"`
	Timeline       string `json:"timeline"`
	InterviewGuide string `json:"interview_guide,omitempty"`
	Degraded       bool   `json:"degraded,omitempty"`
}

// Session is one hiring conversation. It is owned by the state machine for
// its lifetime and processed strictly sequentially.
type Session struct {
	ID        string
	Phase     Phase
	Context   HiringContext
	AskedIDs  []string
	Turns     []Turn
	Artifacts *Artifacts

	// Completeness of the last evaluated context snapshot. Derived,
	// recomputed every turn, persisted only alongside the snapshot.
	LastScore     float64
	GenerateTries int
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Asked reports whether the question id has already been presented.
func (s *Session) Asked(id string) bool {
	for _, a := range s.AskedIDs {
		if a == id {
			return true
		}
	}
	return false
}

// RecordAsked appends question ids to the asked set, skipping duplicates.
func (s *Session) RecordAsked(ids []string) {
	for _, id := range ids {
		if !s.Asked(id) {
			s.AskedIDs = append(s.AskedIDs, id)
		}
	}
}
