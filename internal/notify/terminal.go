package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mfields/tally/internal/model"
)

// BellSink rings the terminal bell. This is the "sound" capability.
type BellSink struct {
	w io.Writer
}

// NewBellSink creates a bell sink writing to w (stdout if nil).
func NewBellSink(w io.Writer) *BellSink {
	if w == nil {
		w = os.Stdout
	}
	return &BellSink{w: w}
}

// Name identifies the sink.
func (s *BellSink) Name() string { return "bell" }

// Deliver writes a BEL to the terminal.
func (s *BellSink) Deliver(_ context.Context, _ *model.Notification) error {
	_, err := s.w.Write([]byte{'\a'})
	return err
}

// AlertSink prints the notification message. This is the "alert"
// capability for plain CLI use; inside the TUI the alert is drawn by
// the screen itself via a ChannelSink.
type AlertSink struct {
	w io.Writer
}

// NewAlertSink creates an alert sink writing to w (stderr if nil).
func NewAlertSink(w io.Writer) *AlertSink {
	if w == nil {
		w = os.Stderr
	}
	return &AlertSink{w: w}
}

// Name identifies the sink.
func (s *AlertSink) Name() string { return "alert" }

// Deliver prints the notification title and message.
func (s *AlertSink) Deliver(_ context.Context, n *model.Notification) error {
	_, err := fmt.Fprintf(s.w, "%s: %s\n", n.Title, n.Message)
	return err
}
