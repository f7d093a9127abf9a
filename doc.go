// Package jsondelta computes a minimal, ordered sequence of RFC 6902 edit
// operations (a JSON Patch) that transforms one JSON-like value into
// another. It exists for diff-and-sync workflows: state replication, undo
// logs, shipping deltas over a network, anywhere replaying a short list of
// edits beats re-sending a whole document.
//
// Instead of operating on encoded JSON directly, jsondelta operates on the
// go types created by unmarshaling from JSON, which are two complex types:
//
//	map[string]interface{}
//	[]interface{}
//
// and four scalar types:
//
//	string, float64, bool, nil
//
// values outside that set degrade to scalar comparison by deep equality,
// which is permissive rather than validated: callers who need strict
// typing should check their inputs first.
//
// Diffing is a single synchronous recursive pass. Objects compare key by
// key. Arrays reconcile positionally by default, or by content when an
// element fingerprint is supplied via WithObjectHash, in which case
// reordered elements surface as move operations instead of remove/add
// pairs. The fingerprint function is always supplied by the caller: the
// package never guesses what makes two elements "the same".
//
// Operation paths are "/"-joined and deliberately unescaped: keys
// containing "/" or "~" are not encoded per RFC 6901. Existing consumers
// depend on the unescaped form, so it is documented as a limitation
// rather than corrected.
//
// Applying patches is out of scope. The output is plain RFC 6902 JSON, so
// any conforming patch library can replay it.
package jsondelta
