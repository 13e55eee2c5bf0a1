package models

// NotebookReport represents a derived, read-only summary of a notebook.
type NotebookReport struct {
	// NotebookName is the notebook file name (no path).
	NotebookName string `json:"notebook_name"`
	// Nbformat is the major notebook format version.
	Nbformat int `json:"nbformat"`
	// NbformatMinor is the minor notebook format version.
	NbformatMinor int `json:"nbformat_minor"`
	// Kernel is the kernel display name, if declared.
	Kernel string `json:"kernel,omitempty"`
	// Language is the kernel language name, if declared.
	Language string `json:"language,omitempty"`
	// CellCount is the total number of cells.
	CellCount int `json:"cell_count"`
	// CodeCells is the number of code cells.
	CodeCells int `json:"code_cells"`
	// MarkdownCells is the number of markdown cells.
	MarkdownCells int `json:"markdown_cells"`
	// RawCells is the number of raw cells.
	RawCells int `json:"raw_cells"`
	// ExecutedCells is the number of code cells with an execution count.
	ExecutedCells int `json:"executed_cells"`
	// SourceLines is the total number of source lines across all cells.
	SourceLines int `json:"source_lines"`
	// Cells contains per-cell summaries (omitted in light mode).
	Cells []CellSummary `json:"cells,omitempty"`
}

// CellSummary represents a per-cell slice of a notebook report.
type CellSummary struct {
	// Index is the zero-based position of the cell in the notebook.
	Index int `json:"index"`
	// Type is the cell type.
	Type string `json:"type"`
	// SourceLines is the number of source lines in the cell.
	SourceLines int `json:"source_lines"`
	// SourceChars is the number of source characters in the cell.
	SourceChars int `json:"source_chars"`
	// ExecutionCount is the execution counter for code cells.
	ExecutionCount *int `json:"execution_count,omitempty"`
	// OutputTypes lists the output kinds produced by a code cell.
	OutputTypes []string `json:"output_types,omitempty"`
	// SourcePreview is the truncated first source line (standard mode).
	SourcePreview string `json:"source_preview,omitempty"`
	// Source is the full source text (verbose mode).
	Source string `json:"source,omitempty"`
}

// CellView represents a single cell summary labeled with its notebook,
// used for per-cell output files.
type CellView struct {
	// NotebookName is the notebook file name owning the cell.
	NotebookName string `json:"notebook_name"`
	// Cell is the cell summary.
	Cell CellSummary `json:"cell"`
}
