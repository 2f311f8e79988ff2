package database

import (
	"sync"

	"github.com/sirupsen/logrus"

	"geodb/catalog"
	"geodb/geom"
	"geodb/index"
	"geodb/rules"
	"geodb/storage"
	"geodb/trigger"
)

// Database is the host surface: an event-sourced relational store whose
// mutating statements are validated by the topological trigger dispatcher
// before anything is committed.
type Database struct {
	// mu is held exclusively for the whole stage-validate-commit path of
	// every mutating statement. That serializes validation: two
	// statements that individually satisfy an invariant but jointly
	// violate it can never both commit.
	mu sync.Mutex

	catalog    *catalog.Catalog
	eventStore *storage.EventStore
	state      *storage.State
	dispatcher *trigger.Dispatcher
	indexes    map[string]map[string]*index.Index // table -> column -> index
	nextRowID  map[string]int64
	log        *logrus.Logger
}

// New opens (or creates) a database in dataDir. A nil logger falls back
// to the standard logger.
func New(dataDir string, logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	eventStore, err := storage.NewEventStore(dataDir)
	if err != nil {
		return nil, err
	}

	state, err := eventStore.CurrentState()
	if err != nil {
		eventStore.Close()
		return nil, err
	}

	cat, err := catalog.New(dataDir)
	if err != nil {
		eventStore.Close()
		return nil, err
	}

	db := &Database{
		catalog:    cat,
		eventStore: eventStore,
		state:      state,
		dispatcher: trigger.NewDispatcher(rules.NewRegistry(), geom.NewProvider(), logger),
		indexes:    make(map[string]map[string]*index.Index),
		nextRowID:  make(map[string]int64),
		log:        logger,
	}

	// Re-derive attachments from the catalog. Classification is
	// idempotent, so a reopened database ends up with exactly the hooks
	// it had before shutdown.
	for _, table := range cat.Tables() {
		db.state.EnsureTable(table.Name)
		db.dispatcher.TableChanged(table)
		db.nextRowID[table.Name] = db.state.MaxRowID(table.Name) + 1
	}
	for _, rel := range cat.Relationships() {
		if err := db.dispatcher.AttachRelationship(rel); err != nil {
			eventStore.Close()
			return nil, err
		}
	}

	db.rebuildAllIndexes()
	return db, nil
}

// Dispatcher exposes the trigger dispatcher (for inspection and tests)
func (db *Database) Dispatcher() *trigger.Dispatcher {
	return db.dispatcher
}

// EventStore returns the underlying event store
func (db *Database) EventStore() *storage.EventStore {
	return db.eventStore
}

// Close closes the database
func (db *Database) Close() error {
	return db.eventStore.Close()
}
