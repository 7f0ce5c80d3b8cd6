package jsontree

import "errors"

var (
	ErrJSON = errors.New("json error")
	ErrYAML = errors.New("yaml error")
)
