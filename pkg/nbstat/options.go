// Package nbstat provides Jupyter notebook inspection functionality.
package nbstat

// Mode represents the inspection mode.
type Mode string

const (
	// ModeLight reports notebook-level totals only (no per-cell summaries).
	ModeLight Mode = "light"
	// ModeStandard reports totals and per-cell summaries with truncated
	// source previews.
	ModeStandard Mode = "standard"
	// ModeVerbose reports all data including full cell sources and
	// output summaries.
	ModeVerbose Mode = "verbose"
)

// Options configures inspection behavior.
type Options struct {
	// Mode specifies the inspection mode (light, standard, verbose).
	Mode Mode
	// IncludeOutputs specifies whether per-cell summaries list output kinds.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeOutputs *bool
	// IncludeFullSource specifies whether per-cell summaries carry the
	// full source text instead of a preview.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeFullSource *bool
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeOutputs returns whether per-cell summaries list output kinds.
func (o Options) ShouldIncludeOutputs() bool {
	if o.IncludeOutputs != nil {
		return *o.IncludeOutputs
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeFullSource returns whether per-cell summaries carry the
// full source text.
func (o Options) ShouldIncludeFullSource() bool {
	if o.IncludeFullSource != nil {
		return *o.IncludeFullSource
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeCellSummaries returns whether the report carries per-cell
// summaries.
func (o Options) ShouldIncludeCellSummaries() bool {
	return o.Mode != ModeLight
}
