package models

import (
	"strings"

	"github.com/cybergodev/json"
)

// Cell types defined by the notebook interchange format.
const (
	CellTypeCode     = "code"
	CellTypeMarkdown = "markdown"
	CellTypeRaw      = "raw"
)

// Cell represents a single notebook cell.
type Cell struct {
	// CellType is the cell kind (code, markdown, raw).
	CellType string `json:"cell_type"`
	// Source is the cell source text.
	Source MultilineText `json:"source"`
	// Metadata is the cell-level metadata.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// ExecutionCount is the kernel execution counter for code cells
	// (nil when the cell has not been executed).
	ExecutionCount *int `json:"execution_count,omitempty"`
	// Outputs contains execution outputs for code cells.
	Outputs []Output `json:"outputs,omitempty"`
}

// MultilineText holds notebook text that the format stores either as a
// single JSON string or as an array of line strings. Both encodings
// decode to the joined text.
type MultilineText string

// UnmarshalJSON accepts both multiline text encodings.
func (m *MultilineText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MultilineText(s)
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	// Array-encoded lines keep their trailing newlines, so a plain join
	// reconstructs the text.
	*m = MultilineText(strings.Join(lines, ""))
	return nil
}

func (m MultilineText) String() string {
	return string(m)
}

// LineCount returns the number of text lines. A trailing newline does
// not start an extra line; empty text has zero lines.
func (m MultilineText) LineCount() int {
	s := string(m)
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
