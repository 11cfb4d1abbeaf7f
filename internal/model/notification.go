package model

import (
	"fmt"
	"time"
)

// NotificationType defines the type of notification.
type NotificationType string

// Notification types.
const (
	NotifyTargetReached NotificationType = "target_reached"
	NotifyTest          NotificationType = "test"
)

// Notification represents a notification to be delivered to the user.
// It is handed to every configured sink as one composite effect.
type Notification struct {
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewNotification creates a new notification.
func NewNotification(t NotificationType, title, message string) *Notification {
	return &Notification{
		Type:      t,
		Title:     title,
		Message:   message,
		Fields:    make(map[string]string),
		Timestamp: time.Now(),
	}
}

// WithField adds a field to the notification.
func (n *Notification) WithField(key, value string) *Notification {
	if n.Fields == nil {
		n.Fields = make(map[string]string)
	}
	n.Fields[key] = value
	return n
}

// NewTargetReached builds the notification emitted when the count
// first reaches the configured target.
func NewTargetReached(target, count int) *Notification {
	return NewNotification(
		NotifyTargetReached,
		"Target reached",
		fmt.Sprintf("You hit your target of %d!", target),
	).WithField("Target", fmt.Sprintf("%d", target)).
		WithField("Count", fmt.Sprintf("%d", count))
}
