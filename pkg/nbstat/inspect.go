package nbstat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cybergodev/json"

	"github.com/mizuki3/nbstat-go/pkg/nbstat/models"
	"github.com/mizuki3/nbstat-go/pkg/nbstat/parser"
)

// ReadNotebook reads a notebook file, validates its schema, and decodes
// it into a Notebook.
func ReadNotebook(path string) (*models.Notebook, error) {
	data, err := readNotebookFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	var nb models.Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &nb, nil
}

// CountCells reports the number of entries in the notebook's top-level
// cells array without decoding the full document.
func CountCells(path string) (int, error) {
	data, err := readNotebookFile(path)
	if err != nil {
		return 0, err
	}

	if !json.Valid(data) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}

	value, err := json.Get(string(data), "cells")
	if err != nil || value == nil {
		return 0, NewSchemaError("cells", "required field is missing")
	}
	cells, ok := value.([]interface{})
	if !ok {
		return 0, NewSchemaError("cells", "must be an array")
	}
	return len(cells), nil
}

// Inspect reads a notebook file and builds a report of its cells.
func Inspect(path string, opts Options) (*models.NotebookReport, error) {
	nb, err := ReadNotebook(path)
	if err != nil {
		return nil, err
	}
	return BuildReport(filepath.Base(path), nb, opts)
}

// BuildReport summarizes an already-decoded notebook. The report does
// not alias nb; it is built from a deep copy so callers can keep using
// the document.
func BuildReport(name string, nb *models.Notebook, opts Options) (*models.NotebookReport, error) {
	copied, err := nb.Clone()
	if err != nil {
		return nil, err
	}

	tally := parser.TallyCells(copied.Cells)

	report := &models.NotebookReport{
		NotebookName:  name,
		Nbformat:      copied.Nbformat,
		NbformatMinor: copied.NbformatMinor,
		CellCount:     len(copied.Cells),
		CodeCells:     tally.Code,
		MarkdownCells: tally.Markdown,
		RawCells:      tally.Raw,
		ExecutedCells: tally.Executed,
		SourceLines:   tally.SourceLines,
	}

	if ks := copied.Metadata.Kernelspec; ks != nil {
		report.Kernel = ks.DisplayName
		if report.Kernel == "" {
			report.Kernel = ks.Name
		}
	}
	if li := copied.Metadata.LanguageInfo; li != nil {
		report.Language = li.Name
	}

	if opts.ShouldIncludeCellSummaries() {
		report.Cells = parser.SummarizeCells(copied.Cells, opts.ShouldIncludeFullSource(), opts.ShouldIncludeOutputs())
	}

	return report, nil
}

func readNotebookFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return data, nil
}
