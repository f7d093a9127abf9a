package jsondelta

import (
	"strconv"
	"strings"
)

const pathSep = "/"

// appendKey extends a path with an object key. keys are joined verbatim:
// no RFC 6901 escaping of "/" or "~" is performed, keeping paths in the
// unescaped form downstream consumers expect
func appendKey(path, key string) string {
	return path + pathSep + key
}

// appendIndex extends a path with an array index
func appendIndex(path string, idx int) string {
	return path + pathSep + strconv.Itoa(idx)
}

// SplitPath breaks a path into its segments, returning the segments, the
// segment count, and the final segment. it's a convenience for consumers
// resolving paths against a document, the differ itself never splits paths.
//
// because paths are joined without escaping, splitting a path whose keys
// contain "/" characters will not round-trip
func SplitPath(path string) (segments []string, count int, last string) {
	segments = strings.Split(path, pathSep)
	if segments[0] == "" && len(segments) > 1 {
		segments = segments[1:]
	}
	count = len(segments)
	last = segments[count-1]
	return segments, count, last
}
