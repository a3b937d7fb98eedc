package domain

import (
	"errors"
	"time"
)

// MessageStatus represents the review state of a visitor inquiry.
type MessageStatus string

const (
	MessageNew     MessageStatus = "new"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

// validTransitions defines the allowed review-state transitions.
// A reply is terminal; reading an already-replied message is a no-op.
var validTransitions = map[MessageStatus][]MessageStatus{
	MessageNew:  {MessageRead, MessageReplied},
	MessageRead: {MessageReplied},
}

var ErrMessageNotFound = errors.New("message not found")
var ErrInvalidTransition = errors.New("invalid message status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s MessageStatus) CanTransitionTo(next MessageStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Message is a visitor inquiry submitted through the public contact form.
// Reference is the code handed back to the visitor so they can quote it in
// follow-up correspondence.
type Message struct {
	ID        string        `json:"id"`
	Reference string        `json:"reference"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Content   string        `json:"content"`
	Status    MessageStatus `json:"status"`
	Reply     string        `json:"reply,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	RepliedAt *time.Time    `json:"replied_at,omitempty"`
}
