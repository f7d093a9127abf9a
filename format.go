package jsondelta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(patch Patch, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, patch, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a one-line-per-operation report to w. if colorTTY is
// true it will add
// green for adds
// red for removes
// blue for replaces
// yellow for moves
func FormatPretty(w io.Writer, patch Patch, colorTTY bool) error {
	var colorMap map[Op]string
	closeColor := ""

	if colorTTY {
		closeColor = "\x1b[0m"
		colorMap = map[Op]string{
			OpAdd:     "\x1b[32m", // green
			OpRemove:  "\x1b[31m", // red
			OpReplace: "\x1b[34m", // blue
			OpMove:    "\x1b[33m", // yellow
		}
	}

	for _, op := range patch {
		switch op.Type {
		case OpMove, OpCopy:
			fmt.Fprintf(w, "%s%s %s -> %s%s\n", colorMap[op.Type], op.Type, op.From, op.Path, closeColor)
		case OpRemove:
			fmt.Fprintf(w, "%s%s %s%s\n", colorMap[op.Type], op.Type, op.Path, closeColor)
		default:
			data, err := json.Marshal(op.Value)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%s %s: %s%s\n", colorMap[op.Type], op.Type, op.Path, string(data), closeColor)
		}
	}

	return nil
}

// FormatStats prints a single-line summary of patch stats
func FormatStats(stats *Stats) string {
	return formatStats(stats, false)
}

// FormatStatsColor prints a single-line summary of patch stats with
// ANSI colors
func FormatStatsColor(stats *Stats) string {
	return formatStats(stats, true)
}

func formatStats(s *Stats, color bool) string {
	var insertColor, deleteColor, updateColor, closeColor string

	if s == nil {
		return "<nil>"
	}

	if color {
		insertColor = "\x1b[32m"
		deleteColor = "\x1b[31m"
		updateColor = "\x1b[34m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "%d %s.", s.Total(), plural("operation", s.Total()))
	fmt.Fprintf(buf, " %s%d %s.%s", insertColor, s.Adds, plural("add", s.Adds), closeColor)
	fmt.Fprintf(buf, " %s%d %s.%s", deleteColor, s.Removes, plural("remove", s.Removes), closeColor)
	fmt.Fprintf(buf, " %s%d %s.%s", updateColor, s.Replaces, plural("replace", s.Replaces), closeColor)
	if s.Moves > 0 {
		fmt.Fprintf(buf, " %s%d %s.%s", updateColor, s.Moves, plural("move", s.Moves), closeColor)
	}
	buf.WriteRune('\n')

	return buf.String()
}

func plural(word string, n int) string {
	if n == 1 || n == -1 {
		return word
	}
	return word + "s"
}
