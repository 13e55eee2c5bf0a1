// Package parser provides notebook cell summarization utilities.
package parser

import (
	"strings"

	"github.com/mizuki3/nbstat-go/pkg/nbstat/models"
)

// previewMaxLen is the maximum length of a source preview in runes.
const previewMaxLen = 80

// CellTally holds notebook-level cell totals.
type CellTally struct {
	Code        int
	Markdown    int
	Raw         int
	Executed    int
	SourceLines int
}

// TallyCells computes notebook-level totals across cells.
func TallyCells(cells []models.Cell) CellTally {
	var tally CellTally
	for _, cell := range cells {
		switch cell.CellType {
		case models.CellTypeCode:
			tally.Code++
			if cell.ExecutionCount != nil {
				tally.Executed++
			}
		case models.CellTypeMarkdown:
			tally.Markdown++
		case models.CellTypeRaw:
			tally.Raw++
		}
		tally.SourceLines += cell.Source.LineCount()
	}
	return tally
}

// SummarizeCells builds per-cell summaries.
// fullSource attaches the complete source text instead of a preview;
// includeOutputs lists the output kinds of code cells.
func SummarizeCells(cells []models.Cell, fullSource, includeOutputs bool) []models.CellSummary {
	result := make([]models.CellSummary, 0, len(cells))
	for i, cell := range cells {
		summary := models.CellSummary{
			Index:          i,
			Type:           cell.CellType,
			SourceLines:    cell.Source.LineCount(),
			SourceChars:    len(cell.Source),
			ExecutionCount: cell.ExecutionCount,
		}

		if fullSource {
			summary.Source = cell.Source.String()
		} else {
			summary.SourcePreview = previewSource(cell.Source.String())
		}

		if includeOutputs && len(cell.Outputs) > 0 {
			summary.OutputTypes = outputTypes(cell.Outputs)
		}

		result = append(result, summary)
	}
	return result
}

// previewSource returns the first line of s, truncated to previewMaxLen
// runes.
func previewSource(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	runes := []rune(s)
	if len(runes) > previewMaxLen {
		return string(runes[:previewMaxLen])
	}
	return s
}

// outputTypes lists the output kinds in order of appearance.
func outputTypes(outputs []models.Output) []string {
	types := make([]string, 0, len(outputs))
	for _, out := range outputs {
		types = append(types, out.OutputType)
	}
	return types
}
