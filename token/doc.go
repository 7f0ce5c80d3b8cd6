// Package token provides the lexical layer of the TOML parser.
//
// A [Scanner] walks a document and hands out [Token]s on request. TOML's
// lexical grammar depends on context (`1979-05-27` is a key on the left of
// `=` and a date on the right), so the parser asks for a key with
// [Scanner.Key] or for a value with [Scanner.Scalar] rather than pulling
// from a context free stream.
//
// The package also holds the quoting helpers used when writing TOML:
// [Quote], [QuoteLiteral] and [QuoteKey].
package token
