// Package ringlog is the process-wide, size-bounded execution log: a
// fixed-capacity ring of text lines mirrored to a plain file, oldest
// records evicted first.
package ringlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Log keeps the most recent lines in memory and rewrites the backing file
// on every append. Each append re-reads the file under an OS-level lock
// before merging, so records written by other processes between appends
// are never discarded.
type Log struct {
	mu    sync.Mutex
	path  string
	cap   int
	lines []string
}

// Open seeds a Log from the file at path, keeping at most capacity lines.
// A missing file is treated as empty.
func Open(path string, capacity int) (*Log, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ringlog: capacity must be positive, got %d", capacity)
	}
	l := &Log{path: path, cap: capacity}

	lines, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("ringlog: read %s: %w", path, err)
	}
	l.lines = lines
	l.evict()
	return l, nil
}

// Append records one line, evicting the oldest past capacity, and rewrites
// the file. The whole read-modify-write cycle runs under the in-process
// writer mutex plus an exclusive file lock, so concurrent appenders, in
// this process or another, never drop each other's records. Any file
// failure is swallowed after the in-memory ring is updated: logging must
// never abort the caller.
func (l *Log) Append(line string) {
	line = strings.TrimRight(line, "\n")
	if line == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if unlock, err := l.lockFile(); err == nil {
		defer unlock()
		// The file is authoritative under the lock: another process may
		// have appended since this ring last touched it.
		if lines, err := readLines(l.path); err == nil {
			l.lines = lines
		}
	}

	l.lines = append(l.lines, strings.Split(line, "\n")...)
	l.evict()
	_ = l.flushLocked()
}

// Lines returns a snapshot of the retained records, oldest first.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Log) evict() {
	if over := len(l.lines) - l.cap; over > 0 {
		l.lines = l.lines[over:]
	}
}

// lockFile takes an exclusive OS-level lock on a sidecar file. The data
// file cannot carry the lock itself: the atomic rename in flushLocked
// replaces its inode, which would strand other lockers on the old one.
func (l *Log) lockFile() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(l.path+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}

func readLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (l *Log) flushLocked() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return err
	}
	content := strings.Join(l.lines, "\n") + "\n"
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), l.path)
}
