package report

// Format controls how results are displayed.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"

	// FormatTable outputs bordered tables.
	FormatTable Format = "table"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON Format = "json"
)

// ParseFormat converts a string to Format. Unknown values fall back to text.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}
