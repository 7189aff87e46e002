package model

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment is the coarse tone classification of a message body. It is
// computed once when the email is created and never recomputed.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Priority is the optional triage priority of an email.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ToggleField names one of the three independent boolean flags on an Email.
type ToggleField string

const (
	FieldRead     ToggleField = "read"
	FieldResolved ToggleField = "resolved"
	FieldStarred  ToggleField = "starred"
)

// ParseToggleField maps a request string onto a ToggleField.
func ParseToggleField(s string) (ToggleField, bool) {
	switch ToggleField(s) {
	case FieldRead, FieldResolved, FieldStarred:
		return ToggleField(s), true
	}
	return "", false
}

// ThreadSummary marks an email as part of a longer prior conversation
// without storing the history itself. Immutable once set.
type ThreadSummary struct {
	LastEmail time.Time `json:"last_email"`
	Count     int       `json:"count"`
}

type Email struct {
	ID         string         `json:"id"`
	From       string         `json:"from"`
	Subject    string         `json:"subject"`
	Content    string         `json:"content"`
	Timestamp  time.Time      `json:"timestamp"`
	IsRead     bool           `json:"is_read"`
	IsResolved bool           `json:"is_resolved"`
	IsStarred  bool           `json:"is_starred"`
	Sentiment  Sentiment      `json:"sentiment"`
	Thread     *ThreadSummary `json:"thread,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Priority   Priority       `json:"priority,omitempty"`
}

func NewEmail(from, subject, content string, sentiment Sentiment, timestamp time.Time) *Email {
	return &Email{
		ID:        uuid.New().String(),
		From:      from,
		Subject:   subject,
		Content:   content,
		Sentiment: sentiment,
		Timestamp: timestamp,
	}
}
