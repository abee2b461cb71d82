// Package render provides output renderers for pick's report patterns.
package render

import "github.com/dkoosis/pick/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
