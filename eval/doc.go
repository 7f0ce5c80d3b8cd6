// Package eval evaluates expressions over documents with
// github.com/expr-lang/expr.
//
// The top level keys of the document are variables, the whole document is
// `doc`, and these functions are available:
//
//	getpath("servers.alpha.ip")   // value at a path
//	listpath("servers.*.ip")      // values at a path with wildcards
//	haspath("owner.name")         // whether anything is at a path
//	getenv("HOME")                // environment variable
package eval
