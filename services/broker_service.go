// Package services holds the broker's application logic: sign-in, the follow
// operations, stream session attach/close, and the persist-and-fan-out path
// every chat message takes.
package services

import (
	"chat-feed/contract"
	"chat-feed/domain"
	"chat-feed/moderation"
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ReplayLimit is the number of inbox lines sent back when a stream attaches.
const ReplayLimit = 20

// Response payloads of the control RPCs. Domain failures ride in these
// strings on an OK status; clients print them verbatim.
const (
	textSignedIn         = "Signed in to server..!"
	textReturningUser    = "Existing User. Signed in to server..!"
	textAlreadyConnected = "Error: Somebody is already logged in with this username"
	textSelfJoin         = "You are already the owner of this room. No need to join externally"
	textUnknownTarget    = "FAILURE: requested username does not exist"
)

type IBrokerService interface {
	SignIn(username string) string
	List(username string) (all []string, following []string, err error)
	Join(username, target string) (string, error)
	Leave(username, target string) (string, error)
	// OpenSession attaches the stream's sink (first writer wins) and returns
	// the replay lines for the catch-up handshake.
	OpenSession(username string, s contract.EventSink) ([]string, error)
	Publish(ctx context.Context, m domain.Message)
	CloseSession(username string, s contract.EventSink)
}

// BrokerService wires the registry, the log store and the optional censor
// into the behavior the RPC surface exposes. It owns no locking of its own:
// all shared state lives behind the registry and the store.
type BrokerService struct {
	log      *slog.Logger
	registry contract.IRegistry
	store    contract.ILogStore
	censor   *moderation.Moderator // nil disables masking

	delivered atomic.Uint64
	persisted atomic.Uint64
}

func NewBrokerService(log *slog.Logger, registry contract.IRegistry,
	store contract.ILogStore, censor *moderation.Moderator) *BrokerService {
	return &BrokerService{
		log:      log,
		registry: registry,
		store:    store,
		censor:   censor,
	}
}

func (s *BrokerService) SignIn(username string) string {
	switch s.registry.Connect(username) {
	case contract.ConnectCreated:
		s.log.Info("new user signed in", "user", username)
		return textSignedIn
	case contract.ConnectReturned:
		s.log.Info("returning user signed in", "user", username)
		return textReturningUser
	default:
		s.log.Warn("sign-in refused, username already connected", "user", username)
		return textAlreadyConnected
	}
}

func (s *BrokerService) List(username string) ([]string, []string, error) {
	return s.registry.Snapshot(username)
}

func (s *BrokerService) Join(username, target string) (string, error) {
	if username == target {
		return textSelfJoin, nil
	}
	result, err := s.registry.Follow(username, target)
	if err != nil {
		return "", err
	}
	switch result {
	case contract.FollowTargetUnknown:
		return textUnknownTarget, nil
	case contract.FollowAlreadyPresent:
		return fmt.Sprintf("You are already following user %s", target), nil
	default:
		return fmt.Sprintf("Successfully joined %s", target), nil
	}
}

func (s *BrokerService) Leave(username, target string) (string, error) {
	result, err := s.registry.Unfollow(username, target)
	if err != nil {
		return "", err
	}
	switch result {
	case contract.UnfollowTargetUnknown:
		return textUnknownTarget, nil
	case contract.UnfollowNotPresent:
		return fmt.Sprintf("You were not following user %s in the first place.", target), nil
	default:
		return fmt.Sprintf("Successfully left %s", target), nil
	}
}

// OpenSession attaches the sink and computes the replay. The inbox line count
// is always recomputed from what is actually on disk: after a restart the
// in-memory counter starts at zero and must not be trusted.
func (s *BrokerService) OpenSession(username string, sk contract.EventSink) ([]string, error) {
	attached, err := s.registry.AttachSink(username, sk)
	if err != nil {
		return nil, err
	}
	if !attached {
		s.log.Warn("stream already attached for user, keeping first", "user", username)
	}

	lines, total, err := s.store.TailInbox(username, ReplayLimit)
	if err != nil {
		// The stream is about to die on this error; the sink and the presence
		// flag must not outlive it, or the user stays locked out of SignIn and
		// no later stream can ever attach.
		s.registry.CloseStream(username, sk)
		return nil, err
	}
	s.registry.SetInboxLines(username, total)
	s.log.Info("stream session opened", "user", username, "replay", len(lines), "inbox_lines", total)
	return lines, nil
}

// Publish persists one message and fans it out to the sender's followers.
// Persistence is best effort: an append failure is logged and fan-out keeps
// going for the remaining followers. A failed live delivery degrades only
// that follower to log-only; everyone else still gets the live write.
// Deliveries for one sender happen in call order, so each sender->follower
// edge keeps its ordering.
func (s *BrokerService) Publish(ctx context.Context, m domain.Message) {
	if s.censor != nil {
		m.Text = s.censor.Mask(m.Text)
	}
	line := m.LogLine()

	if err := s.store.AppendOutbound(m.Sender, line); err != nil {
		s.log.Error("outbound log append failed", "user", m.Sender, "error", err)
	}

	for _, target := range s.registry.FanoutTargets(m.Sender) {
		if target.Sink != nil {
			if err := target.Sink.Deliver(ctx, m); err != nil {
				s.log.Warn("live delivery failed, follower degraded to log-only",
					"follower", target.Username, "sender", m.Sender, "error", err)
				s.registry.MarkOffline(target.Username)
			} else {
				s.delivered.Add(1)
			}
		}
		if err := s.store.AppendInbox(target.Username, line); err != nil {
			s.log.Error("inbox log append failed", "follower", target.Username, "error", err)
			continue
		}
		s.registry.IncInboxLines(target.Username)
		s.persisted.Add(1)
	}
}

func (s *BrokerService) CloseSession(username string, sk contract.EventSink) {
	s.registry.CloseStream(username, sk)
	s.log.Info("stream session closed", "user", username)
}

// Counters feed the observability reporter.
func (s *BrokerService) Counters() (delivered, persisted uint64) {
	return s.delivered.Load(), s.persisted.Load()
}
