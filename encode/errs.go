package encode

import "errors"

var ErrNotTable = errors.New("not a table")
