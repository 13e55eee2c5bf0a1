// Package models defines data structures for notebook inspection.
package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Notebook represents a Jupyter notebook document.
type Notebook struct {
	// Cells is the ordered sequence of notebook cells.
	Cells []Cell `json:"cells"`
	// Metadata is the notebook-level metadata.
	Metadata NotebookMetadata `json:"metadata"`
	// Nbformat is the major version of the notebook format.
	Nbformat int `json:"nbformat"`
	// NbformatMinor is the minor version of the notebook format.
	NbformatMinor int `json:"nbformat_minor"`
}

// NotebookMetadata represents notebook-level metadata.
type NotebookMetadata struct {
	// Kernelspec identifies the kernel the notebook was authored against.
	Kernelspec *Kernelspec `json:"kernelspec,omitempty"`
	// LanguageInfo describes the kernel language.
	LanguageInfo *LanguageInfo `json:"language_info,omitempty"`
}

// Kernelspec identifies a notebook kernel.
type Kernelspec struct {
	// Name is the kernel registry name (e.g. python3).
	Name string `json:"name"`
	// DisplayName is the human-readable kernel name.
	DisplayName string `json:"display_name"`
	// Language is the kernel language name.
	Language string `json:"language,omitempty"`
}

// LanguageInfo describes the language of a notebook's code cells.
type LanguageInfo struct {
	// Name is the language name (e.g. python).
	Name string `json:"name"`
	// Version is the language version string.
	Version string `json:"version,omitempty"`
	// FileExtension is the source file extension (e.g. .py).
	FileExtension string `json:"file_extension,omitempty"`
}

// Clone returns a deep copy of the notebook. Callers that post-process
// cells can work on the copy without aliasing the decoded document.
func (n *Notebook) Clone() (*Notebook, error) {
	var out Notebook
	if err := deepcopy.Copy(&out, n); err != nil {
		return nil, err
	}
	return &out, nil
}
