package models

import "time"

// Action is the closed set of things a chat message can ask for.
type Action string

const (
	ActionBook       Action = "book"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
	ActionUnknown    Action = "unknown"
)

// ParseAction maps the model's action string onto an Action. Only the exact
// lowercase names match; anything else is ActionUnknown.
func ParseAction(s string) Action {
	switch Action(s) {
	case ActionBook:
		return ActionBook
	case ActionCancel:
		return ActionCancel
	case ActionReschedule:
		return ActionReschedule
	default:
		return ActionUnknown
	}
}

// Intent is the structured reading of one chat message. It is never persisted.
type Intent struct {
	Action  Action `json:"action"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	NewDate string `json:"new_date"` // reschedule only
	NewTime string `json:"new_time"` // reschedule only
}

// UnknownIntent is what every extraction failure collapses to.
func UnknownIntent() Intent {
	return Intent{Action: ActionUnknown}
}

// ChatRequest is the payload posted to /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response string        `json:"response"`
	Schedule []Appointment `json:"schedule"`
}

// ChatExchange is one message/reply pair kept in a client's transcript.
type ChatExchange struct {
	Message  string    `json:"message"`
	Action   Action    `json:"action"`
	Response string    `json:"response"`
	At       time.Time `json:"at"`
}
