// Package storage persists the per-user chat logs as flat append-only UTF-8
// text files. Two files exist per username: the outbound audit log
// <username>.txt and the inbox log <username>_received_chats_from_followers,
// which replay reads on stream attach.
package storage

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	goerrors "errors"
)

// InboxSuffix is appended to a username to form its inbox log filename.
const InboxSuffix = "_received_chats_from_followers"

// LogStore appends and tails the per-user log files under a single data
// directory. Appends to one file are serialized by a per-file mutex so that
// concurrent senders writing the same follower's inbox can never interleave
// partial lines. Each append opens, writes and closes the file; there are no
// long-lived handles to leak across sessions.
type LogStore struct {
	dir string
	log *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLogStore(dir string, log *slog.Logger) (*LogStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	return &LogStore{
		dir:   dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// AppendOutbound appends one line to the sender's own audit log. Nothing in
// the broker reads this file back; it exists for external consumers.
func (s *LogStore) AppendOutbound(username, line string) error {
	return s.append(username+".txt", line)
}

// AppendInbox appends one line to a follower's inbox log.
func (s *LogStore) AppendInbox(username, line string) error {
	return s.append(username+InboxSuffix, line)
}

// TailInbox returns the last max lines of the user's inbox log, verbatim and
// in file order, plus the total number of lines on disk. A missing file is an
// empty inbox, not an error.
func (s *LogStore) TailInbox(username string, max int) ([]string, int, error) {
	lock := s.fileLock(username + InboxSuffix)
	lock.Lock()
	defer lock.Unlock()

	f, err := os.Open(filepath.Join(s.dir, username+InboxSuffix))
	if err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			s.log.Debug("no inbox log yet", "user", username)
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("opening inbox log of %s: %w", username, err)
	}
	defer f.Close()

	// ReadString imposes no per-line cap: a message is only bounded by the
	// transport's max message size, and a line the broker appended must
	// always replay.
	var lines []string
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading inbox log of %s: %w", username, err)
		}
	}

	total := len(lines)
	if max >= 0 && total > max {
		lines = lines[total-max:]
	}
	return lines, total, nil
}

func (s *LogStore) append(filename, line string) error {
	lock := s.fileLock(filename)
	lock.Lock()
	defer lock.Unlock()

	f, err := os.OpenFile(filepath.Join(s.dir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending to %s: %w", filename, err)
	}
	return f.Close()
}

func (s *LogStore) fileLock(filename string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[filename]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[filename] = lock
	}
	return lock
}
