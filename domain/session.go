// Package domain contains core concepts of the follower-feed broker.
// This file defines the per-user Session and its invariants.
package domain

// Set is a set of usernames.
type Set map[string]struct{}

func NewSet() Set {
	return make(Set)
}

func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s Set) Add(name string) {
	s[name] = struct{}{}
}

func (s Set) Remove(name string) {
	delete(s, name)
}

// Names returns the members of the set in unspecified order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	return out
}

// Session is the registry entry for one username. Follow relationships are
// stored as mutual sets of stable usernames, never as pointers into the
// registry: an edge A follows B exists iff B is in A's Following and A is in
// B's Followers, and both sides are always edited together.
//
// Sessions are created on first sign-in and live for the process lifetime;
// Connected toggles with the user's presence. All field access is guarded by
// the owning registry.
type Session struct {
	Username  string
	Connected bool
	Followers Set
	Following Set

	// InboxLines caches the number of lines in the user's inbox log. It is
	// recomputed from disk on every stream attach, so a server restart never
	// leaves it stale.
	InboxLines int
}

func NewSession(username string) *Session {
	return &Session{
		Username:  username,
		Connected: true,
		Followers: NewSet(),
		Following: NewSet(),
	}
}
