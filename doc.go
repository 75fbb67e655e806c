// Package querybuilder renders SELECT, INSERT, UPDATE and DELETE statements
// from typed building blocks.
//
// Known limitations:
//   - equality is the only comparison a where clause can express
//   - text literals are quoted but not escaped
//   - identifiers are never quoted
//   - a SELECT whose table name is a single character has no FROM clause
//   - SELECT renders LIMIT before ORDER BY, DELETE renders ORDER BY before LIMIT
package querybuilder
