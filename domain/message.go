// Package domain contains core concepts of the follower-feed broker.
// This file defines the Message value and its persisted rendering.
// Messages are immutable; no runtime, network, or UI logic belongs here.
package domain

import (
	"fmt"
	"time"
)

// SentinelText is the reserved first message of a Chat stream. It opens the
// session and triggers history replay; it is never persisted nor delivered.
const SentinelText = "Start Chat"

// Message represents one chat event received from a sender's stream.
type Message struct {
	Sender string
	Text   string
	SentAt time.Time
}

// IsSentinel reports whether the message is the session-opening marker.
func (m Message) IsSentinel() bool {
	return m.Text == SentinelText
}

// LogLine renders the persisted form of the message. Replay sends these
// lines back to clients verbatim, so the separator and the timestamp
// rendering are part of the on-disk contract.
func (m Message) LogLine() string {
	return fmt.Sprintf("%s<>%s<>%s", m.Sender, m.Text, m.SentAt.UTC().Format(time.RFC3339))
}
