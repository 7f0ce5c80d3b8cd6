package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Convert bool
	Patch   bool
	Watch   bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TOMLDOC_DEBUG_PARSE")
	d.Encode = boolEnv("TOMLDOC_DEBUG_ENCODE")
	d.Convert = boolEnv("TOMLDOC_DEBUG_CONVERT")
	d.Patch = boolEnv("TOMLDOC_DEBUG_PATCH")
	d.Watch = boolEnv("TOMLDOC_DEBUG_WATCH")
	d.Eval = boolEnv("TOMLDOC_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Convert() bool {
	return d.Convert
}
func Patch() bool {
	return d.Patch
}
func Watch() bool {
	return d.Watch
}
func Eval() bool {
	return d.Eval
}
