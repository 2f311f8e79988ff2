package storage

import (
	"fmt"
	"sync"

	"geodb/eventlog"
	"geodb/schema"
)

// EventStore wraps the event log with database-aware operations
type EventStore struct {
	mu  sync.RWMutex
	log *eventlog.Log
}

// NewEventStore creates an event store backed by an event log in dataDir
func NewEventStore(dataDir string) (*EventStore, error) {
	log, err := eventlog.NewLog(dataDir, "events.log")
	if err != nil {
		return nil, err
	}
	return &EventStore{log: log}, nil
}

// RecordTableCreated logs a table creation event
func (es *EventStore) RecordTableCreated(table schema.Table, txID string) (*eventlog.Event, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.log.Append(eventlog.TableCreated, eventlog.TableCreatedPayload{Table: table}, txID)
}

// RecordColumnAdded logs a column addition event
func (es *EventStore) RecordColumnAdded(tableName string, column schema.Column, txID string) (*eventlog.Event, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.log.Append(eventlog.ColumnAdded, eventlog.ColumnAddedPayload{
		TableName: tableName,
		Column:    column,
	}, txID)
}

// RecordRelationshipCreated logs a relationship declaration event
func (es *EventStore) RecordRelationshipCreated(rel schema.Relationship, txID string) (*eventlog.Event, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.log.Append(eventlog.RelationshipCreated, eventlog.RelationshipCreatedPayload{Relationship: rel}, txID)
}

// RecordRowInserted logs a row insertion event
func (es *EventStore) RecordRowInserted(tableName string, rowID int64, data Row, txID string) (*eventlog.Event, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.log.Append(eventlog.RowInserted, eventlog.RowInsertedPayload{
		TableName: tableName,
		RowID:     rowID,
		Data:      data,
	}, txID)
}

// RecordRowUpdated logs a row update event
func (es *EventStore) RecordRowUpdated(tableName string, rowID int64, changes, oldValues Row, txID string) (*eventlog.Event, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.log.Append(eventlog.RowUpdated, eventlog.RowUpdatedPayload{
		TableName: tableName,
		RowID:     rowID,
		Changes:   changes,
		OldValues: oldValues,
	}, txID)
}

// RecordRowDeleted logs a row deletion event
func (es *EventStore) RecordRowDeleted(tableName string, rowID int64, deleted Row, txID string) (*eventlog.Event, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.log.Append(eventlog.RowDeleted, eventlog.RowDeletedPayload{
		TableName:   tableName,
		RowID:       rowID,
		DeletedData: deleted,
	}, txID)
}

// CurrentState replays the full log into a fresh state
func (es *EventStore) CurrentState() (*State, error) {
	es.mu.RLock()
	defer es.mu.RUnlock()

	events, errs := es.log.Read()
	if len(errs) > 0 {
		return nil, fmt.Errorf("event log verification failed: %d bad event(s), first: %s", len(errs), errs[0].Error)
	}
	return StateFromEvents(events)
}

// LastEventID returns the ID of the last appended event
func (es *EventStore) LastEventID() uint64 {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.log.LastID()
}

// Close closes the event store
func (es *EventStore) Close() error {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.log.Close()
}
