package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FileLedger is the durable vote-count store: an in-memory map persisted as
// one whole-file JSON snapshot after every mutation, loaded once at startup.
//
// The snapshot is overwritten in place; a crash mid-write can leave a torn
// file. That is an accepted limitation of the format - recovery is
// crash-and-restart, there is no partial-write repair.
type FileLedger struct {
	path string

	mu    sync.Mutex
	votes map[string]int
}

// NewFileLedger loads the snapshot at path. A missing file is an empty
// ledger; an unreadable or malformed one is a startup error.
func NewFileLedger(path string) (*FileLedger, error) {
	l := &FileLedger{path: path, votes: make(map[string]int)}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if err := json.Unmarshal(b, &l.votes); err != nil {
		return nil, fmt.Errorf("parse ledger: %w", err)
	}

	return l, nil
}

// Get returns the vote count for an address, 0 if never voted.
func (l *FileLedger) Get(address string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.votes[address]
}

// Increment bumps the count for an address and persists the full snapshot
// before returning the new count. The count is already bumped in memory when
// a persistence failure is returned.
func (l *FileLedger) Increment(address string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.votes[address]++
	n := l.votes[address]

	if err := l.flushLocked(); err != nil {
		return n, fmt.Errorf("persist ledger: %w", err)
	}
	return n, nil
}

// Len returns the number of addresses ever voted for.
func (l *FileLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.votes)
}

func (l *FileLedger) flushLocked() error {
	b, err := json.Marshal(l.votes)
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, b, 0o644)
}
