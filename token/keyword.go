package token

// keyword classifies a bare value lexeme. Numbers and the inf/nan floats
// go through ParseInteger and ParseFloat; only the booleans are words.
func keyword(d []byte) (TokenType, bool) {
	switch string(d) {
	case "true":
		return TTrue, true
	case "false":
		return TFalse, true
	}
	return 0, false
}

// isValueChar reports whether c can continue a bare value lexeme.
func isValueChar(c byte) bool {
	return IsBareKeyChar(c) || c == '+' || c == '.'
}
