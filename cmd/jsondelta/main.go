package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/jsondelta/jsondelta"
)

// CLI defines the command-line interface
var CLI struct {
	Before string `arg:"" help:"Path to the source JSON document." type:"existingfile"`
	After  string `arg:"" help:"Path to the destination JSON document." type:"existingfile"`

	HashKey     string   `help:"Match array elements by the value at this key (GJSON path) instead of by position." short:"k"`
	Select      string   `help:"Diff only the sub-document at this GJSON path." short:"s"`
	Exclude     []string `help:"Object keys excluded from comparison on both sides." short:"x"`
	IgnoreMoves bool     `help:"Emit remove/add pairs instead of move operations for reordered elements."`

	Pretty bool `help:"Print a human-readable report instead of a JSON Patch." short:"p"`
	Color  bool `help:"ANSI colors in the pretty report." short:"c"`
	Stats  bool `help:"Print a change summary to stderr."`
	Debug  bool `help:"Enable debug logging." short:"d"`

	Version kong.VersionFlag `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsondelta"),
		kong.Description("Compute an RFC 6902 patch that transforms one JSON document into another."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.FatalIfErrorf(err)
	}

	initLogger(CLI.Debug)

	if err := run(os.Stdout); err != nil {
		log.WithError(err).Error("diff failed")
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	before, err := loadDocument(CLI.Before, CLI.Select)
	if err != nil {
		return fmt.Errorf("reading %s: %w", CLI.Before, err)
	}
	after, err := loadDocument(CLI.After, CLI.Select)
	if err != nil {
		return fmt.Errorf("reading %s: %w", CLI.After, err)
	}

	patch, err := jsondelta.Diff(before, after, diffOptions()...)
	if err != nil {
		return err
	}
	log.Debugf("computed %d operations", len(patch))

	if CLI.Stats {
		stats := patch.Stats()
		if CLI.Color {
			fmt.Fprint(os.Stderr, jsondelta.FormatStatsColor(stats))
		} else {
			fmt.Fprint(os.Stderr, jsondelta.FormatStats(stats))
		}
	}

	if CLI.Pretty {
		return jsondelta.FormatPretty(out, patch, CLI.Color)
	}

	_, err = fmt.Fprintln(out, patch)
	return err
}

// diffOptions translates flags into differ options
func diffOptions() []jsondelta.Option {
	var opts []jsondelta.Option
	if CLI.HashKey != "" {
		opts = append(opts, jsondelta.WithObjectHash(keyHash(CLI.HashKey)))
	}
	if len(CLI.Exclude) > 0 {
		opts = append(opts, jsondelta.WithPropertyFilter(excludeKeys(CLI.Exclude)))
	}
	if CLI.IgnoreMoves {
		opts = append(opts, jsondelta.IgnoreArrayMoves())
	}
	return opts
}

// loadDocument reads a JSON file & unmarshals it, optionally narrowing to
// the sub-document at a GJSON path first
func loadDocument(path, sel string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if sel != "" {
		result := gjson.GetBytes(data, sel)
		if !result.Exists() {
			return nil, fmt.Errorf("nothing at %q", sel)
		}
		data = []byte(result.Raw)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// keyHash fingerprints array elements by the value at key, resolved as a
// GJSON path so nested keys like "user.id" work. elements without the key
// hash by their full serialization
func keyHash(key string) jsondelta.HashFunc {
	return func(value interface{}, _ jsondelta.Context) string {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		if result := gjson.GetBytes(data, key); result.Exists() {
			return result.String()
		}
		return string(data)
	}
}

// excludeKeys filters the named keys out of comparison on both sides
func excludeKeys(keys []string) jsondelta.FilterFunc {
	return func(key string, _ jsondelta.Context) bool {
		return !slices.Contains(keys, key)
	}
}
