package output

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mizuki3/nbstat-go/pkg/nbstat/models"
)

const summarySheet = "Cells"

var summaryHeaders = []string{"Index", "Type", "Source Lines", "Source Chars", "Execution Count", "Outputs"}

// WriteSummaryWorkbook writes an Excel workbook with one row per cell
// summary to path.
func WriteSummaryWorkbook(report *models.NotebookReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	for col, header := range summaryHeaders {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cellName, header); err != nil {
			return err
		}
	}

	for row, cell := range report.Cells {
		values := []interface{}{
			cell.Index,
			cell.Type,
			cell.SourceLines,
			cell.SourceChars,
			executionCountValue(cell.ExecutionCount),
			strings.Join(cell.OutputTypes, ","),
		}
		for col, value := range values {
			cellName, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cellName, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// executionCountValue maps a nil execution count to an empty cell.
func executionCountValue(count *int) interface{} {
	if count == nil {
		return ""
	}
	return *count
}
