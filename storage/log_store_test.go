package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*LogStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLogStore(dir, slog.Default())
	require.NoError(t, err)
	return store, dir
}

func TestLogStore_TailInbox(t *testing.T) {
	t.Run("missing file is an empty inbox", func(t *testing.T) {
		req := require.New(t)
		store, _ := newStore(t)

		lines, total, err := store.TailInbox("alice", 20)
		req.NoError(err)
		req.Zero(total)
		req.Empty(lines)
	})

	t.Run("returns everything when under the limit", func(t *testing.T) {
		req := require.New(t)
		store, _ := newStore(t)

		for i := 0; i < 5; i++ {
			req.NoError(store.AppendInbox("alice", fmt.Sprintf("bob<>msg%d<>2026-01-01T00:00:00Z", i)))
		}

		lines, total, err := store.TailInbox("alice", 20)
		req.NoError(err)
		req.Equal(5, total)
		req.Len(lines, 5)
		req.Equal("bob<>msg0<>2026-01-01T00:00:00Z", lines[0])
	})

	t.Run("returns only the newest lines when over the limit", func(t *testing.T) {
		req := require.New(t)
		store, _ := newStore(t)

		for i := 0; i < 25; i++ {
			req.NoError(store.AppendInbox("alice", fmt.Sprintf("bob<>msg%d<>2026-01-01T00:00:00Z", i)))
		}

		lines, total, err := store.TailInbox("alice", 20)
		req.NoError(err)
		req.Equal(25, total)
		req.Len(lines, 20)
		// Oldest surviving line is msg5, newest is msg24, file order kept
		req.Equal("bob<>msg5<>2026-01-01T00:00:00Z", lines[0])
		req.Equal("bob<>msg24<>2026-01-01T00:00:00Z", lines[19])
	})

	t.Run("replays a line as large as the transport allows", func(t *testing.T) {
		req := require.New(t)
		store, _ := newStore(t)

		// A 2 MiB message is valid on the wire (gRPC defaults to 4 MiB), so
		// its inbox line must tail back without a per-line size limit.
		huge := "bob<>" + strings.Repeat("x", 2<<20) + "<>2026-01-01T00:00:00Z"
		req.NoError(store.AppendInbox("alice", "bob<>small<>2026-01-01T00:00:00Z"))
		req.NoError(store.AppendInbox("alice", huge))

		lines, total, err := store.TailInbox("alice", 20)
		req.NoError(err)
		req.Equal(2, total)
		req.Equal(huge, lines[1])
	})

	t.Run("counts a trailing line with no newline", func(t *testing.T) {
		req := require.New(t)
		store, dir := newStore(t)

		// A crash between the write and the newline must not hide the line.
		path := filepath.Join(dir, "alice"+InboxSuffix)
		req.NoError(os.WriteFile(path, []byte("bob<>one<>2026-01-01T00:00:00Z\nbob<>torn<>2026-01-01T00:00:01Z"), 0o644))

		lines, total, err := store.TailInbox("alice", 20)
		req.NoError(err)
		req.Equal(2, total)
		req.Equal("bob<>torn<>2026-01-01T00:00:01Z", lines[1])
	})

	t.Run("a fresh store re-reads what a previous one wrote", func(t *testing.T) {
		req := require.New(t)
		store, dir := newStore(t)
		req.NoError(store.AppendInbox("alice", "bob<>hello<>2026-01-01T00:00:00Z"))

		// Simulates a broker restart: no in-memory state survives
		reopened, err := NewLogStore(dir, slog.Default())
		req.NoError(err)

		lines, total, err := reopened.TailInbox("alice", 20)
		req.NoError(err)
		req.Equal(1, total)
		req.Equal([]string{"bob<>hello<>2026-01-01T00:00:00Z"}, lines)
	})
}

func TestLogStore_AppendOutbound(t *testing.T) {
	req := require.New(t)
	store, dir := newStore(t)

	req.NoError(store.AppendOutbound("alice", "alice<>hi<>2026-01-01T00:00:00Z"))
	req.NoError(store.AppendOutbound("alice", "alice<>again<>2026-01-01T00:00:01Z"))

	content, err := os.ReadFile(filepath.Join(dir, "alice.txt"))
	req.NoError(err)
	req.Equal("alice<>hi<>2026-01-01T00:00:00Z\nalice<>again<>2026-01-01T00:00:01Z\n", string(content))
}

func TestLogStore_ConcurrentAppends(t *testing.T) {
	req := require.New(t)
	store, _ := newStore(t)

	// Many goroutines appending to the same inbox: every line must land
	// complete, none torn or lost.
	const writers = 16
	const perWriter = 20
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = store.AppendInbox("alice", fmt.Sprintf("sender%d<>msg%d<>2026-01-01T00:00:00Z", w, i))
			}
		}(w)
	}
	wg.Wait()

	lines, total, err := store.TailInbox("alice", -1)
	req.NoError(err)
	req.Equal(writers*perWriter, total)
	for _, line := range lines {
		req.Regexp(`^sender\d+<>msg\d+<>2026-01-01T00:00:00Z$`, line)
	}
}
