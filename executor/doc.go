// Package executor provides SQL statement execution functionality.
//
// The executor package bridges the gap between parsed SQL statements and
// database operations. It takes ParsedStatement objects from the parser and
// executes them against the database, returning formatted results or error
// messages. Statements that violate a spatial integrity constraint are
// rejected with the database's IntegrityViolation error.
//
// Key Responsibilities:
//   - Executing CREATE TABLE statements, including geometry columns
//   - Executing CREATE RELATIONSHIP statements
//   - Executing INSERT, SELECT, UPDATE, DELETE operations
//   - Formatting query results for display
//
// Supported Operations:
//   - CREATE_TABLE: Creates new tables with specified schemas
//   - CREATE_RELATIONSHIP: Declares a containment or arc-node relationship
//   - INSERT: Inserts new rows into tables
//   - SELECT: Queries rows with optional WHERE clauses
//   - UPDATE: Updates rows matching WHERE conditions
//   - DELETE: Deletes rows matching WHERE conditions
//
// Usage Example:
//
//	exec := executor.New(db)
//
//	stmt, err := p.Parse("INSERT INTO contours VALUES (1, 100, 'LINESTRING (0 0, 1 1)')")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := exec.Execute(stmt)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result)
package executor
