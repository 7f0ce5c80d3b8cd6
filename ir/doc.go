// Package ir provides the in-memory model of TOML documents.
//
// # Overview
//
// A document is a [Table]: an ordered mapping from keys to [Value]s. A
// Value holds exactly one of seven variants, reported by [Value.Type]:
//
//   - StringType: UTF-8 text
//   - IntType: signed 64-bit integer
//   - FloatType: IEEE 754 binary64, including inf and nan
//   - DatetimeType: the datetime as written in the source
//   - BoolType: true or false
//   - ArrayType: an [Array], an ordered heterogeneous sequence
//   - TableType: a nested [Table]
//
// The model carries no positions or comments. Keys keep the order in which
// they were first inserted and that order is what the serializer writes.
//
// # Creating Values
//
//	s := ir.MustFromString("hello")
//	n := ir.FromInt(42)
//	arr := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
//	tbl := ir.NewTable()
//	tbl.Insert("title", s)
//	tbl.Insert("ports", ir.FromArray(arr))
//
// # Ownership
//
// A value lives in at most one container. Inserting a value that already
// belongs to a table or array stores a deep copy, so no two places in a
// document ever alias. Values handed back by Remove, Pop or replacement are
// free again and can be inserted elsewhere without copying.
//
// The typed getters on Value return a [TypeMismatchError] when asked for a
// variant the value does not hold. GetArray and GetTable return the live
// container: changing it changes the document.
//
// # Iteration
//
// [Table.All] and [Array.All] are range-over-func iterators. Adding or
// removing entries of the container being iterated panics; replacing the
// value of an existing key or index does not.
//
// # Paths
//
// [GetPath], [ListPath], [SetPath] and [DeletePath] address values with
// the paths of package kpath, for example `servers.alpha.ip` or
// `products[1].name`.
package ir
