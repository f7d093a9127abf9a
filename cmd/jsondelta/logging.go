package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// initLogger sets up apex with a terse stderr handler. debug toggles the
// level, everything else stays at warn so patch output on stdout remains
// clean for piping
func initLogger(debug bool) {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	log.SetHandler(&stderrHandler{})
	log.SetLevel(level)
}

// stderrHandler formats log entries as single lines on stderr
type stderrHandler struct{}

// HandleLog implements the log.Handler interface
func (h *stderrHandler) HandleLog(e *log.Entry) error {
	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}
	_, err := fmt.Fprintf(os.Stderr, "jsondelta: %s: %s%s\n", e.Level, e.Message, fields.String())
	return err
}
