package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus is the lifecycle state of a scheduled outbound email.
// Pending is the only non-terminal state.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleDelivered ScheduleStatus = "delivered"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// ScheduledEmail is an outbound message queued for future delivery. It is
// owned exclusively by the scheduler until it is promoted into the inbox.
type ScheduledEmail struct {
	ID        string         `json:"id"`
	To        string         `json:"to"`
	Subject   string         `json:"subject"`
	Content   string         `json:"content"`
	Date      time.Time      `json:"date"`
	Status    ScheduleStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewScheduledEmail(to, subject, content string, date, now time.Time) *ScheduledEmail {
	return &ScheduledEmail{
		ID:        uuid.New().String(),
		To:        to,
		Subject:   subject,
		Content:   content,
		Date:      date,
		Status:    SchedulePending,
		CreatedAt: now,
	}
}
