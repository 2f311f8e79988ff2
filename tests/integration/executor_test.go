package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geodb/executor"
	"geodb/parser"
	"geodb/tests"
)

type sqlSession struct {
	exec *executor.Executor
	p    *parser.Parser
	t    *testing.T
}

func newSQLSession(t *testing.T) *sqlSession {
	tdb := tests.NewTestDB(t)
	return &sqlSession{exec: executor.New(tdb.DB), p: parser.New(), t: t}
}

func (s *sqlSession) run(sql string) (string, error) {
	stmt, err := s.p.Parse(sql)
	require.NoError(s.t, err, "parse: %s", sql)
	return s.exec.Execute(stmt)
}

func (s *sqlSession) mustRun(sql string) string {
	result, err := s.run(sql)
	require.NoError(s.t, err, "execute: %s", sql)
	return result
}

func TestSQLRoundTrip(t *testing.T) {
	s := newSQLSession(t)

	out := s.mustRun("CREATE TABLE contours (id INT PRIMARY KEY, elev INT, shape ISOLINE)")
	assert.Equal(t, "Table 'contours' created", out)

	out = s.mustRun("INSERT INTO contours VALUES (1, 100, 'LINESTRING (0 0, 2 0)')")
	assert.Equal(t, "Inserted row with ID 1", out)

	s.mustRun("INSERT INTO contours VALUES (2, 110, 'LINESTRING (0 1, 2 1)')")

	// crossing contour is rejected at the SQL surface too
	_, err := s.run("INSERT INTO contours VALUES (3, 120, 'LINESTRING (1 -1, 1 3)')")
	require.Error(t, err)

	out = s.mustRun("SELECT * FROM contours WHERE elev = 110")
	assert.Contains(t, out, "elev: 110")

	out = s.mustRun("UPDATE contours SET elev = 115 WHERE id = 2")
	assert.Equal(t, "Updated 1 row(s)", out)

	out = s.mustRun("DELETE FROM contours WHERE id = 1")
	assert.Equal(t, "Deleted 1 row(s)", out)
}

func TestSQLCreateRelationship(t *testing.T) {
	s := newSQLSession(t)

	s.mustRun("CREATE TABLE blocks (id INT PRIMARY KEY, shape POLYGON)")
	s.mustRun("CREATE TABLE lots (id INT PRIMARY KEY, shape POLYGON)")

	out := s.mustRun("CREATE RELATIONSHIP lots_in_blocks CONTAINMENT blocks.shape lots.shape")
	assert.Equal(t, "Relationship 'lots_in_blocks' created", out)

	s.mustRun("INSERT INTO lots VALUES (1, 'POLYGON ((1 1, 2 1, 2 2, 1 2, 1 1))')")
	s.mustRun("INSERT INTO blocks VALUES (1, 'POLYGON ((0 0, 3 0, 3 3, 0 3, 0 0))')")

	_, err := s.run("DELETE FROM lots WHERE id = 1")
	require.Error(t, err)
}

func TestSQLValueCountMismatch(t *testing.T) {
	s := newSQLSession(t)

	s.mustRun("CREATE TABLE contours (id INT PRIMARY KEY, elev INT, shape ISOLINE)")

	_, err := s.run("INSERT INTO contours VALUES (1, 100)")
	require.Error(t, err)
}
