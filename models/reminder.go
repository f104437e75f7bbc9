package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	ConversationID string `json:"conversationId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	FireAt         string `json:"fireAt"`
}
