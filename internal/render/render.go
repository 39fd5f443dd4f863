// Package render turns a finalized discovery report into colorized indented
// text or a JSON document.
package render

import (
	"io"

	"github.com/bnema/wayinfo/internal/discover"
	"github.com/bnema/wayinfo/internal/ui"
)

// Options selects the output format. Color is threaded through explicitly;
// the renderer never consults the terminal itself.
type Options struct {
	JSON  bool
	Full  bool
	Color bool
}

// Render writes the report to w in the configured format.
func Render(w io.Writer, report discover.Report, opts Options) error {
	if opts.JSON {
		return renderJSON(w, report, opts.Full)
	}
	return renderText(w, report, opts.Full, ui.NewPalette(opts.Color))
}
