// Package parser parses the SQL subset the database speaks.
//
// Supported statements:
//
//	CREATE TABLE t (id INT PRIMARY KEY, name TEXT, shape ISOLINE)
//	CREATE RELATIONSHIP r CONTAINMENT blocks.shape lots.shape
//	INSERT INTO t VALUES (1, 'ridge', 'LINESTRING (0 0, 1 1)')
//	SELECT * FROM t [WHERE col = value]
//	UPDATE t SET col = value WHERE col = value
//	DELETE FROM t WHERE col = value
//
// An OMT-G domain name (ISOLINE, PLANAR_SUBDIVISION, TIN, SAMPLE, ...) in
// column-type position declares a geometry column of that conceptual
// class; plain GEOMETRY declares an unclassified one. Geometry values are
// quoted WKT literals; the VALUES splitter is quote- and
// parenthesis-aware so their embedded commas survive.
package parser
