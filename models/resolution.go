package models

// ResolutionStatus classifies the outcome of one conversational turn.
type ResolutionStatus string

const (
	StatusBooked           ResolutionStatus = "booked"
	StatusNeedsSelection   ResolutionStatus = "needs_selection"
	StatusNoAlternatives   ResolutionStatus = "no_alternatives"
	StatusParseError       ResolutionStatus = "parse_error"
	StatusInvalidSelection ResolutionStatus = "invalid_selection"
)

// ParseErrorKind distinguishes parse failures so the UI can reprompt precisely.
type ParseErrorKind string

const (
	ParseErrorNone        ParseErrorKind = ""
	ParseErrorDate        ParseErrorKind = "unparseable_date"
	ParseErrorTime        ParseErrorKind = "unparseable_time"
	ParseErrorMissingTime ParseErrorKind = "missing_time"
)

// Resolution is the typed result of resolving one utterance. Parse failures
// are carried here rather than raised, so a bad utterance never ends a session.
type Resolution struct {
	Status       ResolutionStatus `json:"status"`
	Slot         *Slot            `json:"slot,omitempty"`
	Alternatives []Alternative    `json:"alternatives,omitempty"`
	ErrorKind    ParseErrorKind   `json:"errorKind,omitempty"`
	Message      string           `json:"message"`
}

// ChatRequest is one conversational turn from the client.
type ChatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message" binding:"required"`
}

// ChatResponse echoes the conversation id so stateless clients can thread turns.
type ChatResponse struct {
	ConversationID string           `json:"conversationId"`
	Status         ResolutionStatus `json:"status"`
	Message        string           `json:"message"`
	Slot           *Slot            `json:"slot,omitempty"`
	Alternatives   []string         `json:"alternatives,omitempty"`
	ErrorKind      ParseErrorKind   `json:"errorKind,omitempty"`
}
