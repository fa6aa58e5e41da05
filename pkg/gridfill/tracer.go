package gridfill

import (
	"fmt"
	"io"
)

// SearchPosition describes one tentative decision taken by the search
// engine: the slot being filled, the word being tried, and the depth
// of the partial assignment at that point.
type SearchPosition interface {
	Depth() int
	Variable() Variable
	Word() string
}

// Tracer is notified of every tentative decision during search.
type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "%*sguess %s = %q\n", p.Depth(), "", p.Variable(), p.Word())
}
