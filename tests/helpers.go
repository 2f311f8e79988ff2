package tests

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"geodb/database"
	"geodb/schema"
	"geodb/storage"
)

// TestDB is a helper struct for database testing
type TestDB struct {
	DB      *database.Database
	DataDir string
	T       *testing.T
}

// NewTestDB creates a new database instance for testing with a temporary
// directory and a quiet logger.
func NewTestDB(t *testing.T) *TestDB {
	tempDir := t.TempDir()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	db, err := database.New(tempDir, logger)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() { db.Close() })

	return &TestDB{
		DB:      db,
		DataDir: tempDir,
		T:       t,
	}
}

// Reopen closes the database and opens a fresh instance over the same data
// directory, simulating a restart.
func (tdb *TestDB) Reopen() {
	require.NoError(tdb.T, tdb.DB.Close())

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	db, err := database.New(tdb.DataDir, logger)
	require.NoError(tdb.T, err, "failed to reopen test database")
	tdb.DB = db
	tdb.T.Cleanup(func() { db.Close() })
}

// CreateSpatialTable creates a table with an integer primary key and a single
// geometry column carrying the given class domain.
func (tdb *TestDB) CreateSpatialTable(name, geomColumn, domain string) {
	columns := []schema.Column{
		{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
		{Name: geomColumn, Type: schema.TypeGeometry, Domain: domain},
	}
	require.NoError(tdb.T, tdb.DB.CreateTable(name, columns))
}

// InsertGeometry inserts a row with the given id and WKT geometry into a
// table created with CreateSpatialTable.
func (tdb *TestDB) InsertGeometry(table, geomColumn string, id int, wkt string) error {
	row := storage.Row{"id": float64(id), geomColumn: wkt}
	_, err := tdb.DB.Insert(table, row)
	return err
}

// MustInsertGeometry is InsertGeometry that fails the test on error.
func (tdb *TestDB) MustInsertGeometry(table, geomColumn string, id int, wkt string) {
	require.NoError(tdb.T, tdb.InsertGeometry(table, geomColumn, id, wkt))
}

// RowCount returns the number of committed rows in a table.
func (tdb *TestDB) RowCount(table string) int {
	rows, err := tdb.DB.Select(table, nil)
	require.NoError(tdb.T, err)
	return len(rows)
}
