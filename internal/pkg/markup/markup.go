// Package markup implements the small formatting subset used by news
// bodies: bold spans, underline spans and one subtitle marker. It offers
// the selection-aware splice used by the publishing editor and a
// whitelist parser producing a typed node tree, so content is never
// injected as raw markup.
package markup

import (
	"fmt"
	"strings"
)

// FormatKind selects the marker pair applied to a text selection.
type FormatKind string

const (
	FormatBold      FormatKind = "bold"
	FormatUnderline FormatKind = "underline"
	FormatSubtitle  FormatKind = "subtitle"
)

const (
	boldMarker     = "**"
	underlineOpen  = "<u>"
	underlineClose = "</u>"
	subtitlePrefix = "### "
)

// ApplyFormat wraps the selection [start,end) of text in the marker pair
// for kind and returns the new text together with the cursor position
// immediately after the inserted closing marker. Positions are rune
// offsets, matching editor selections.
func ApplyFormat(text string, start, end int, kind FormatKind) (string, int, error) {
	runes := []rune(text)
	if start < 0 || end < start || end > len(runes) {
		return "", 0, fmt.Errorf("selection [%d,%d) out of range for text of length %d", start, end, len(runes))
	}

	selected := string(runes[start:end])

	var formatted string
	switch kind {
	case FormatBold:
		formatted = boldMarker + selected + boldMarker
	case FormatUnderline:
		formatted = underlineOpen + selected + underlineClose
	case FormatSubtitle:
		formatted = "\n" + subtitlePrefix + selected + "\n"
	default:
		return "", 0, fmt.Errorf("unknown format kind %q", kind)
	}

	newText := string(runes[:start]) + formatted + string(runes[end:])
	cursor := start + len([]rune(formatted))
	return newText, cursor, nil
}

// NodeType identifies a node of the parsed document tree.
type NodeType string

const (
	NodeParagraph NodeType = "paragraph"
	NodeHeading   NodeType = "heading"
	NodeText      NodeType = "text"
	NodeBold      NodeType = "bold"
	NodeUnderline NodeType = "underline"
)

// Node is one element of the parsed document tree. Text nodes carry
// literal content; all other nodes carry children.
type Node struct {
	Type     NodeType `json:"type"`
	Text     string   `json:"text,omitempty"`
	Children []Node   `json:"children,omitempty"`
}

// Parse converts a news body into a list of block nodes. Each non-empty
// line becomes a heading (when prefixed with the subtitle marker) or a
// paragraph. Anything outside the whitelisted markers stays literal
// text, including unbalanced markers.
func Parse(text string) []Node {
	var blocks []Node
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, subtitlePrefix); ok {
			blocks = append(blocks, Node{Type: NodeHeading, Children: parseInline(rest)})
			continue
		}
		blocks = append(blocks, Node{Type: NodeParagraph, Children: parseInline(line)})
	}
	return blocks
}

// parseInline scans a line for bold and underline spans. The earliest
// complete marker pair wins; markers without a matching close are
// emitted as literal text.
func parseInline(s string) []Node {
	var nodes []Node

	for s != "" {
		boldStart, boldEnd := findSpan(s, boldMarker, boldMarker)
		underStart, underEnd := findSpan(s, underlineOpen, underlineClose)

		start, end := boldStart, boldEnd
		opener, closer := boldMarker, boldMarker
		spanType := NodeBold
		if underStart >= 0 && (boldStart < 0 || underStart < boldStart) {
			start, end = underStart, underEnd
			opener, closer = underlineOpen, underlineClose
			spanType = NodeUnderline
		}

		if start < 0 {
			nodes = append(nodes, Node{Type: NodeText, Text: s})
			break
		}

		if start > 0 {
			nodes = append(nodes, Node{Type: NodeText, Text: s[:start]})
		}
		inner := s[start+len(opener) : end]
		nodes = append(nodes, Node{Type: spanType, Children: parseInline(inner)})
		s = s[end+len(closer):]
	}

	return nodes
}

// findSpan locates the first complete open/close pair in s, returning
// the index of the opening marker and the index where the inner content
// ends. Both are -1 when no complete pair exists.
func findSpan(s, opener, closer string) (int, int) {
	start := strings.Index(s, opener)
	if start < 0 {
		return -1, -1
	}
	rel := strings.Index(s[start+len(opener):], closer)
	if rel < 0 {
		return -1, -1
	}
	return start, start + len(opener) + rel
}

// PlainText flattens a parsed tree back to its literal text content.
// Used when a plain excerpt of a formatted body is needed.
func PlainText(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Type == NodeText {
			b.WriteString(n.Text)
			continue
		}
		b.WriteString(PlainText(n.Children))
		if n.Type == NodeParagraph || n.Type == NodeHeading {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
