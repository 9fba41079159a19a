// Package runtime owns the broker's shared mutable state: the session
// registry, the follow graph layered on top of it, and the live sinks of
// connected streams. It carries no business wording and no transport logic.
package runtime

import (
	"chat-feed/contract"
	"chat-feed/domain"
	"chat-feed/errors"
	"sync"
)

// Registry maps usernames to their Session and, while a Chat stream is open,
// to the live EventSink of that stream. A single mutex guards both maps and
// every Session field: SignIn races, follow-set edits and presence flips all
// serialize here, so concurrent RPC handlers can never observe or produce a
// half-applied edge or a double-created session.
//
// Sessions are never removed; the registry grows with the set of usernames
// seen during the process lifetime.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	sinks    map[string]contract.EventSink
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*domain.Session),
		sinks:    make(map[string]contract.EventSink),
	}
}

// Connect creates the session on a first sign-in or reactivates a
// disconnected one. The existence check and the write happen under one lock,
// so two concurrent sign-ins for the same new username cannot both create.
func (r *Registry) Connect(username string) contract.ConnectResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[username]
	if !ok {
		r.sessions[username] = domain.NewSession(username)
		return contract.ConnectCreated
	}
	if session.Connected {
		return contract.ConnectRefused
	}
	session.Connected = true
	return contract.ConnectReturned
}

// Snapshot returns every known username and the caller's following set.
func (r *Registry) Snapshot(username string) ([]string, []string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[username]
	if !ok {
		return nil, nil, errors.ErrUnknownUser
	}

	all := make([]string, 0, len(r.sessions))
	for name := range r.sessions {
		all = append(all, name)
	}
	return all, session.Following.Names(), nil
}

// Follow inserts the mutual edge follower -> target. Both sides of the edge
// are written under the same lock acquisition, keeping the two views
// (follower.Following and target.Followers) inverses at all times.
func (r *Registry) Follow(follower, target string) (contract.FollowResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.sessions[follower]
	if !ok {
		return 0, errors.ErrUnknownUser
	}
	dst, ok := r.sessions[target]
	if !ok {
		return contract.FollowTargetUnknown, nil
	}
	if src.Following.Has(target) {
		return contract.FollowAlreadyPresent, nil
	}
	src.Following.Add(target)
	dst.Followers.Add(follower)
	return contract.FollowAdded, nil
}

// Unfollow removes the mutual edge follower -> target.
func (r *Registry) Unfollow(follower, target string) (contract.UnfollowResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.sessions[follower]
	if !ok {
		return 0, errors.ErrUnknownUser
	}
	dst, ok := r.sessions[target]
	if !ok {
		return contract.UnfollowTargetUnknown, nil
	}
	if !src.Following.Has(target) {
		return contract.UnfollowNotPresent, nil
	}
	src.Following.Remove(target)
	dst.Followers.Remove(follower)
	return contract.UnfollowRemoved, nil
}

// AttachSink registers the live stream of a session, first writer wins. A
// second stream for the same user keeps running but its sink is not attached;
// live deliveries continue to flow to the first one.
func (r *Registry) AttachSink(username string, sink contract.EventSink) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[username]; !ok {
		return false, errors.ErrUnknownUser
	}
	if _, busy := r.sinks[username]; busy {
		return false, nil
	}
	r.sinks[username] = sink
	return true, nil
}

// CloseStream ends a stream session: the user is marked disconnected and the
// sink is detached, but only if it is the very sink this stream attached. A
// non-attached second stream closing must not tear down the first one's sink.
func (r *Registry) CloseStream(username string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[username]
	if !ok {
		return
	}
	session.Connected = false
	if current, ok := r.sinks[username]; ok && current == sink {
		delete(r.sinks, username)
	}
}

// FanoutTargets resolves the sender's followers at delivery time. Followers
// with an attached sink and Connected true get it in the target; everyone
// else gets a nil sink and is persisted only.
func (r *Registry) FanoutTargets(sender string) []contract.FanoutTarget {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sender]
	if !ok {
		return nil
	}

	targets := make([]contract.FanoutTarget, 0, len(session.Followers))
	for name := range session.Followers {
		target := contract.FanoutTarget{Username: name}
		if follower, ok := r.sessions[name]; ok && follower.Connected {
			if sink, live := r.sinks[name]; live {
				target.Sink = sink
			}
		}
		targets = append(targets, target)
	}
	return targets
}

// MarkOffline degrades a follower whose live stream stopped accepting writes.
// The follower keeps receiving inbox appends and can replay them later.
func (r *Registry) MarkOffline(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[username]; ok {
		session.Connected = false
	}
}

// SetInboxLines overwrites the cached inbox size with the count recomputed
// from disk during replay.
func (r *Registry) SetInboxLines(username string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[username]; ok {
		session.InboxLines = n
	}
}

func (r *Registry) IncInboxLines(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[username]; ok {
		session.InboxLines++
	}
}

// Stats reports registry sizes for the observability reporter.
func (r *Registry) Stats() (sessions, connected, attached int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		if session.Connected {
			connected++
		}
	}
	return len(r.sessions), connected, len(r.sinks)
}
