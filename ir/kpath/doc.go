// Package kpath parses and prints paths into TOML documents.
//
// A path is a sequence of table keys and array indices:
//
//	servers.alpha.ip          // nested tables
//	products[1].name          // array element then key
//	"site.example".port       // quoted key holding a dot
//	products[*].sku           // wildcard over an array
//	servers.*.ip              // wildcard over a table
//
// Keys use TOML key syntax so a path segment reads the same as the key
// in a document header.
package kpath
