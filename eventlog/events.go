package eventlog

import (
	"encoding/json"
	"time"

	"geodb/schema"
)

// EventType represents the type of event in the log
type EventType string

const (
	// TableCreated: a new table schema was created
	TableCreated EventType = "TABLE_CREATED"
	// ColumnAdded: a column was added to an existing table
	ColumnAdded EventType = "COLUMN_ADDED"
	// RelationshipCreated: a cross-table spatial constraint was declared
	RelationshipCreated EventType = "RELATIONSHIP_CREATED"
	// RowInserted: a new row was inserted
	RowInserted EventType = "ROW_INSERTED"
	// RowUpdated: a row was updated
	RowUpdated EventType = "ROW_UPDATED"
	// RowDeleted: a row was deleted (logically)
	RowDeleted EventType = "ROW_DELETED"
)

// Event represents an immutable database event
type Event struct {
	ID        uint64    `json:"id"`        // Sequential event ID (monotonic, 1-indexed)
	Type      EventType `json:"type"`      // Event type
	Timestamp time.Time `json:"timestamp"` // When the event occurred

	// Transaction ID (UUID) grouping the events of one statement
	TxID string `json:"tx_id,omitempty"`

	// Payload, decoded on demand into the type matching Type
	Payload json.RawMessage `json:"payload"`

	// SHA256 of the event excluding this field
	Checksum string `json:"checksum"`
}

// DecodePayload unmarshals the event payload into dst
func (e *Event) DecodePayload(dst interface{}) error {
	return json.Unmarshal(e.Payload, dst)
}

// TableCreatedPayload - when TABLE_CREATED occurs
type TableCreatedPayload struct {
	Table schema.Table `json:"table"`
}

// ColumnAddedPayload - when COLUMN_ADDED occurs
type ColumnAddedPayload struct {
	TableName string        `json:"table_name"`
	Column    schema.Column `json:"column"`
}

// RelationshipCreatedPayload - when RELATIONSHIP_CREATED occurs
type RelationshipCreatedPayload struct {
	Relationship schema.Relationship `json:"relationship"`
}

// RowInsertedPayload - when ROW_INSERTED occurs
type RowInsertedPayload struct {
	TableName string                 `json:"table_name"`
	RowID     int64                  `json:"row_id"`
	Data      map[string]interface{} `json:"data"`
}

// RowUpdatedPayload - when ROW_UPDATED occurs
type RowUpdatedPayload struct {
	TableName string                 `json:"table_name"`
	RowID     int64                  `json:"row_id"`
	Changes   map[string]interface{} `json:"changes"`
	OldValues map[string]interface{} `json:"old_values,omitempty"`
}

// RowDeletedPayload - when ROW_DELETED occurs
type RowDeletedPayload struct {
	TableName   string                 `json:"table_name"`
	RowID       int64                  `json:"row_id"`
	DeletedData map[string]interface{} `json:"deleted_data,omitempty"`
}

// EventError wraps an event that failed to load or verify
type EventError struct {
	EventID   uint64
	Type      EventType
	Error     string
	Timestamp time.Time
}
