//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-feed/domain"
	"context"
	"reflect"
)

// ConnectResult is the outcome of a sign-in attempt.
type ConnectResult int

const (
	// ConnectCreated means the username was unknown and a session was created.
	ConnectCreated ConnectResult = iota
	// ConnectReturned means an existing, disconnected session was reactivated.
	ConnectReturned
	// ConnectRefused means the username is currently connected elsewhere.
	ConnectRefused
)

// FollowResult is the outcome of adding a follow edge.
type FollowResult int

const (
	FollowAdded FollowResult = iota
	FollowAlreadyPresent
	FollowTargetUnknown
)

// UnfollowResult is the outcome of removing a follow edge.
type UnfollowResult int

const (
	UnfollowRemoved UnfollowResult = iota
	UnfollowNotPresent
	UnfollowTargetUnknown
)

// EventSink is the live-delivery channel attached to one connected session.
// Deliver must be bounded: a slow consumer returns an error instead of
// blocking the broker indefinitely.
type EventSink interface {
	Deliver(ctx context.Context, m domain.Message) error
}

// FanoutTarget is one follower to deliver a message to. Sink is nil when the
// follower has no attached live stream or is disconnected; the inbox append
// happens either way.
type FanoutTarget struct {
	Username string
	Sink     EventSink
}

// IRegistry is the single consistency domain for identity, presence and the
// follow graph. Every method is atomic relative to the others.
type IRegistry interface {
	Connect(username string) ConnectResult
	Snapshot(username string) (all []string, following []string, err error)
	Follow(follower, target string) (FollowResult, error)
	Unfollow(follower, target string) (UnfollowResult, error)
	AttachSink(username string, sink EventSink) (attached bool, err error)
	CloseStream(username string, sink EventSink)
	FanoutTargets(sender string) []FanoutTarget
	MarkOffline(username string)
	SetInboxLines(username string, n int)
	IncInboxLines(username string)
}

// ILogStore persists the per-user append-only text logs.
type ILogStore interface {
	AppendOutbound(username, line string) error
	AppendInbox(username, line string) error
	// TailInbox returns the last max lines of the user's inbox log, verbatim
	// and in file order, together with the total number of lines on disk.
	TailInbox(username string, max int) (lines []string, total int, err error)
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// ISupervisor runs workers, recovers panics and restarts crashed workers.
type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
