package nbstat

import (
	"fmt"

	"github.com/cybergodev/json"

	"github.com/mizuki3/nbstat-go/pkg/nbstat/models"
)

// minNbformat is the oldest notebook format major version this package
// understands. Version 4 introduced the cell layout inspected here.
const minNbformat = 4

var knownCellTypes = map[string]bool{
	models.CellTypeCode:     true,
	models.CellTypeMarkdown: true,
	models.CellTypeRaw:      true,
}

// Validate checks that data is a well-formed notebook document: valid
// JSON, a top-level cells array, a supported nbformat version, and
// structurally sound cells. Violations are reported as SchemaError
// naming the offending JSON path.
func Validate(data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	rawCells, ok := doc["cells"]
	if !ok {
		return NewSchemaError("cells", "required field is missing")
	}
	cells, ok := rawCells.([]interface{})
	if !ok {
		return NewSchemaError("cells", "must be an array")
	}

	if raw, ok := doc["nbformat"]; ok {
		v, ok := raw.(float64)
		if !ok {
			return NewSchemaError("nbformat", "must be a number")
		}
		if int(v) < minNbformat {
			return NewSchemaError("nbformat", fmt.Sprintf("unsupported notebook format %d", int(v)))
		}
	}

	for i, raw := range cells {
		cell, ok := raw.(map[string]interface{})
		if !ok {
			return NewSchemaError(fmt.Sprintf("cells[%d]", i), "must be an object")
		}
		if err := validateCell(fmt.Sprintf("cells[%d]", i), cell); err != nil {
			return err
		}
	}

	return nil
}

func validateCell(path string, cell map[string]interface{}) error {
	raw, ok := cell["cell_type"]
	if !ok {
		return NewSchemaError(path+".cell_type", "required field is missing")
	}
	cellType, ok := raw.(string)
	if !ok {
		return NewSchemaError(path+".cell_type", "must be a string")
	}
	if !knownCellTypes[cellType] {
		return NewSchemaError(path+".cell_type", fmt.Sprintf("unknown cell type %q", cellType))
	}

	if cellType == models.CellTypeCode {
		rawOutputs, ok := cell["outputs"]
		if !ok {
			return NewSchemaError(path+".outputs", "required field is missing for code cell")
		}
		if _, ok := rawOutputs.([]interface{}); !ok {
			return NewSchemaError(path+".outputs", "must be an array")
		}
		if _, ok := cell["execution_count"]; !ok {
			return NewSchemaError(path+".execution_count", "required field is missing for code cell")
		}
	}

	return nil
}
