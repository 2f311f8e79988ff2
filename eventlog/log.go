package eventlog

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Log manages the append-only event log
type Log struct {
	mu       sync.RWMutex
	filePath string
	nextID   uint64
	file     *os.File
}

// NewLog opens (or creates) an event log in dataDir
func NewLog(dataDir string, filename string) (*Log, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	l := &Log{filePath: filepath.Join(dataDir, filename)}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

// open prepares the log file for appending and recovers the next event ID
func (l *Log) open() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	l.file = f

	last, err := l.lastIDFromDisk()
	if err != nil {
		f.Close()
		return err
	}
	l.nextID = last + 1
	return nil
}

func (l *Log) lastIDFromDisk() (uint64, error) {
	rf, err := os.Open(l.filePath)
	if err != nil {
		return 0, err
	}
	defer rf.Close()

	var last uint64
	scanner := bufio.NewScanner(rf)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		if e.ID > last {
			last = e.ID
		}
	}
	return last, scanner.Err()
}

// Append writes one event atomically and returns it. The payload must be
// JSON-serializable; txID groups the events of a single statement.
func (l *Log) Append(eventType EventType, payload interface{}, txID string) (*Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	event := &Event{
		ID:        l.nextID,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		TxID:      txID,
		Payload:   raw,
	}
	event.Checksum = checksum(event)

	line, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		return nil, fmt.Errorf("append event %d: %w", event.ID, err)
	}
	if err := l.file.Sync(); err != nil {
		return nil, fmt.Errorf("sync event %d: %w", event.ID, err)
	}

	l.nextID++
	return event, nil
}

// Read returns all events in log order, verifying checksums. Events that
// fail to decode or verify are reported separately, never silently dropped.
func (l *Log) Read() ([]*Event, []EventError) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	f, err := os.Open(l.filePath)
	if err != nil {
		return nil, []EventError{{Error: err.Error(), Timestamp: time.Now()}}
	}
	defer f.Close()

	var events []*Event
	var errs []EventError

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			errs = append(errs, EventError{Error: fmt.Sprintf("decode: %v", err), Timestamp: time.Now()})
			continue
		}
		if checksum(&e) != e.Checksum {
			errs = append(errs, EventError{
				EventID:   e.ID,
				Type:      e.Type,
				Error:     "checksum mismatch",
				Timestamp: e.Timestamp,
			})
			continue
		}
		events = append(events, &e)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, EventError{Error: err.Error(), Timestamp: time.Now()})
	}

	return events, errs
}

// LastID returns the ID of the most recently appended event (0 if none)
func (l *Log) LastID() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.nextID - 1
}

// Close closes the underlying log file
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// checksum hashes the event with an empty checksum field
func checksum(e *Event) string {
	clone := *e
	clone.Checksum = ""
	data, _ := json.Marshal(&clone)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
