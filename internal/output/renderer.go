package output

import (
	"io"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render writes the match result to the writer
	Render(w io.Writer, result *types.MatchResult) error
}

// Format represents an output format
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCompact  Format = "compact"
	FormatMarkdown Format = "markdown"
)

// ValidFormats returns the names of all supported formats
func ValidFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatCompact),
		string(FormatMarkdown),
	}
}

// IsValidFormat reports whether format names a supported format
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// NewRenderer creates a renderer for the given format. The role decides
// whether restricted fields such as buy prices are shown.
func NewRenderer(format Format, colorEnabled bool, role access.Role) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{Role: role}
	case FormatCompact:
		return &CompactRenderer{}
	case FormatMarkdown:
		return &MarkdownRenderer{Role: role}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled, Role: role}
	}
}
