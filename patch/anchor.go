// Package patch rewrites specific files the Rails generator produced with
// its own defaults so they match the composed topology. Every rewrite is
// anchored and loud: a missing file or a missing (or ambiguous) anchor
// aborts the run rather than silently corrupting the output. The external
// generator owns these files' grammar, so the anchors are a documented
// compatibility risk across its major versions.
package patch

import (
	"strings"

	"github.com/railyard-cli/railyard/errors"
)

// InsertAfter inserts the given lines immediately after the single line
// whose trimmed form starts with anchor. Zero matches or more than one
// are both errors: insertion at a guessed offset corrupts a file we do
// not own.
func InsertAfter(content, anchor string, insert ...string) (string, error) {
	lines := strings.Split(content, "\n")

	matched := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), anchor) {
			if matched >= 0 {
				return "", errors.Newf("anchor %q matches more than one line", anchor)
			}
			matched = i
		}
	}
	if matched < 0 {
		return "", errors.Newf("anchor %q not found", anchor)
	}

	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:matched+1]...)
	out = append(out, insert...)
	out = append(out, lines[matched+1:]...)
	return strings.Join(out, "\n"), nil
}

// Uncomment activates the single line whose trimmed form equals the
// commented declaration, preserving its indentation. Returns ok=false
// when the pattern is absent so the caller can fall back to insertion.
func Uncomment(content, commented, active string) (result string, ok bool, err error) {
	lines := strings.Split(content, "\n")

	matched := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == commented {
			if matched >= 0 {
				return "", false, errors.Newf("commented declaration %q appears more than once", commented)
			}
			matched = i
		}
	}
	if matched < 0 {
		return content, false, nil
	}

	indent := lines[matched][:len(lines[matched])-len(strings.TrimLeft(lines[matched], " \t"))]
	lines[matched] = indent + active
	return strings.Join(lines, "\n"), true, nil
}

// UncommentOrInsert uncomments the declaration if its commented form is
// present, otherwise inserts the active form immediately after the anchor
// line.
func UncommentOrInsert(content, commented, active, anchor string) (string, error) {
	result, ok, err := Uncomment(content, commented, active)
	if err != nil {
		return "", err
	}
	if ok {
		return result, nil
	}
	return InsertAfter(content, anchor, active)
}

// AppendLine appends a declaration on its own line, ensuring exactly one
// blank line separates it from the existing content.
func AppendLine(content, line string) string {
	trimmed := strings.TrimRight(content, "\n")
	return trimmed + "\n\n" + line + "\n"
}
