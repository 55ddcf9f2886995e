package types

// ExtractConfig holds settings for one extraction run. Values come from
// flags, the PORTFOLIO_EXTRACT_* environment and the optional config file.
type ExtractConfig struct {
	// TemplatePath is a CSV file whose first row fixes the output column order.
	TemplatePath string `json:"template" yaml:"template"`

	// RequireTemplate makes a missing TemplatePath fatal instead of falling
	// back to the built-in schema.
	RequireTemplate bool `json:"require_template" yaml:"require_template"`

	// LayoutPath is an optional YAML file overriding section heading patterns
	// and per-class column layouts.
	LayoutPath string `json:"layout,omitempty" yaml:"layout,omitempty"`

	// ReportPath, when set, receives a YAML run report with per-table results.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`

	// LogLevel is one of debug, info, warn, error (default warn).
	LogLevel string `json:"log_level" yaml:"log_level"`

	// PrettyLog selects human-readable console logs instead of JSON lines.
	PrettyLog bool `json:"pretty_log" yaml:"pretty_log"`
}
