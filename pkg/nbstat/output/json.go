// Package output provides serialization of notebook reports.
package output

import (
	"github.com/cybergodev/json"

	"github.com/mizuki3/nbstat-go/pkg/nbstat/models"
)

// ToJSON serializes a notebook report to JSON.
func ToJSON(report *models.NotebookReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// CellToJSON serializes a per-cell view to JSON.
func CellToJSON(view *models.CellView, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
