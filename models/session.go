package models

// SessionState is the negotiation state of one conversation.
type SessionState string

const (
	// StateAwaitingRequest routes the next utterance through the resolvers.
	StateAwaitingRequest SessionState = "awaiting_request"
	// StateAwaitingSelection interprets the next input as a single-letter pick.
	StateAwaitingSelection SessionState = "awaiting_selection"
)

// Alternative is one free slot offered after a conflict, labelled for selection.
type Alternative struct {
	Label string `json:"label"`
	Slot  Slot   `json:"slot"`
}

// Render produces the "<letter>) <HH:MM>" presentation form.
func (a Alternative) Render() string {
	return a.Label + ") " + a.Slot.Time.String()
}

// NegotiationSession holds the per-conversation state between turns. It is
// JSON-marshalled into the session store; a zero Alternatives slice together
// with StateAwaitingRequest is the initial state.
type NegotiationSession struct {
	ConversationID string        `json:"conversationId"`
	State          SessionState  `json:"state"`
	Requested      *Slot         `json:"requested,omitempty"`
	Alternatives   []Alternative `json:"alternatives,omitempty"`
}

// NewNegotiationSession returns a fresh session in the request state.
func NewNegotiationSession(conversationID string) *NegotiationSession {
	return &NegotiationSession{
		ConversationID: conversationID,
		State:          StateAwaitingRequest,
	}
}

// FindAlternative maps a normalized letter back to its slot.
func (s *NegotiationSession) FindAlternative(label string) (Slot, bool) {
	for _, alt := range s.Alternatives {
		if alt.Label == label {
			return alt.Slot, true
		}
	}
	return Slot{}, false
}
