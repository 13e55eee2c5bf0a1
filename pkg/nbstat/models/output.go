package models

// Output types defined by the notebook interchange format.
const (
	OutputTypeStream        = "stream"
	OutputTypeDisplayData   = "display_data"
	OutputTypeExecuteResult = "execute_result"
	OutputTypeError         = "error"
)

// Output represents one execution output of a code cell.
type Output struct {
	// OutputType is the output kind (stream, display_data,
	// execute_result, error).
	OutputType string `json:"output_type"`
	// Name is the stream name (stdout, stderr) for stream outputs.
	Name string `json:"name,omitempty"`
	// Text is the text payload of a stream output.
	Text MultilineText `json:"text,omitempty"`
	// Data maps MIME type to payload for display_data and
	// execute_result outputs.
	Data map[string]interface{} `json:"data,omitempty"`
	// Metadata is the output-level metadata.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// ExecutionCount is the counter attached to execute_result outputs.
	ExecutionCount *int `json:"execution_count,omitempty"`
	// Ename is the exception class name for error outputs.
	Ename string `json:"ename,omitempty"`
	// Evalue is the exception message for error outputs.
	Evalue string `json:"evalue,omitempty"`
	// Traceback is the formatted traceback for error outputs.
	Traceback []string `json:"traceback,omitempty"`
}
