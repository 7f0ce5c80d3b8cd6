// Package format names the document formats tomldoc reads and writes.
//
// TOML is read and written. JSON is read and written through the jsontree
// package. YAML is only read.
package format
