package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mizuki3/nbstat-go/pkg/nbstat/models"
)

func intPtr(n int) *int { return &n }

func sampleCells() []models.Cell {
	return []models.Cell{
		{
			CellType: models.CellTypeMarkdown,
			Source:   "# Title\nSome prose.",
		},
		{
			CellType:       models.CellTypeCode,
			Source:         "x = 1\ny = 2\nprint(x + y)\n",
			ExecutionCount: intPtr(5),
			Outputs: []models.Output{
				{OutputType: models.OutputTypeStream, Name: "stdout", Text: "3\n"},
			},
		},
		{
			CellType: models.CellTypeCode,
			Source:   "",
		},
		{
			CellType: models.CellTypeRaw,
			Source:   "raw text",
		},
	}
}

func TestTallyCells(t *testing.T) {
	tally := TallyCells(sampleCells())

	if tally.Code != 2 {
		t.Errorf("Expected 2 code cells, got %d", tally.Code)
	}
	if tally.Markdown != 1 {
		t.Errorf("Expected 1 markdown cell, got %d", tally.Markdown)
	}
	if tally.Raw != 1 {
		t.Errorf("Expected 1 raw cell, got %d", tally.Raw)
	}
	if tally.Executed != 1 {
		t.Errorf("Expected 1 executed cell, got %d", tally.Executed)
	}
	// 2 + 3 + 0 + 1
	if tally.SourceLines != 6 {
		t.Errorf("Expected 6 source lines, got %d", tally.SourceLines)
	}
}

func TestSummarizeCells(t *testing.T) {
	summaries := SummarizeCells(sampleCells(), false, false)
	if len(summaries) != 4 {
		t.Fatalf("Expected 4 summaries, got %d", len(summaries))
	}

	first := summaries[0]
	if first.Index != 0 || first.Type != models.CellTypeMarkdown {
		t.Errorf("Unexpected first summary: %+v", first)
	}
	if first.SourceLines != 2 {
		t.Errorf("Expected 2 source lines, got %d", first.SourceLines)
	}
	if first.SourcePreview != "# Title" {
		t.Errorf("Expected preview of first line, got %q", first.SourcePreview)
	}
	if first.Source != "" {
		t.Errorf("Expected no full source, got %q", first.Source)
	}

	second := summaries[1]
	if second.ExecutionCount == nil || *second.ExecutionCount != 5 {
		t.Errorf("Expected execution count 5, got %v", second.ExecutionCount)
	}
	if second.OutputTypes != nil {
		t.Errorf("Expected no output types, got %v", second.OutputTypes)
	}
}

func TestSummarizeCellsVerbose(t *testing.T) {
	summaries := SummarizeCells(sampleCells(), true, true)

	if summaries[1].Source != "x = 1\ny = 2\nprint(x + y)\n" {
		t.Errorf("Expected full source, got %q", summaries[1].Source)
	}
	if summaries[1].SourcePreview != "" {
		t.Errorf("Expected no preview with full source, got %q", summaries[1].SourcePreview)
	}
	if !reflect.DeepEqual(summaries[1].OutputTypes, []string{"stream"}) {
		t.Errorf("Expected output types [stream], got %v", summaries[1].OutputTypes)
	}
	// Cells without outputs stay bare
	if summaries[2].OutputTypes != nil {
		t.Errorf("Expected no output types for empty cell, got %v", summaries[2].OutputTypes)
	}
}

func TestPreviewSource(t *testing.T) {
	long := strings.Repeat("a", 100)

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"one line", "one line"},
		{"first\nsecond", "first"},
		{long, long[:previewMaxLen]},
		{long + "\nnext", long[:previewMaxLen]},
	}

	for _, tt := range tests {
		result := previewSource(tt.input)
		if result != tt.expected {
			t.Errorf("previewSource(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
