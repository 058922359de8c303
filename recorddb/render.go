package recorddb

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Renderer writes a single record to w.
type Renderer interface {
	Render(w io.Writer, r *Record) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer, r *Record) error

func (f RendererFunc) Render(w io.Writer, r *Record) error { return f(w, r) }

// TableRenderer writes fixed-width rows: brand in 30 columns, founder in 20
// and the founding year in 5, each right aligned between bars.
var TableRenderer Renderer = RendererFunc(func(w io.Writer, r *Record) error {
	_, err := fmt.Fprintf(w, "|%30s|%20s|%5d|\n", r.Brand, r.Founder, r.YearFounded)

	return err
})

// JSONRenderer writes one JSON object per line.
var JSONRenderer Renderer = RendererFunc(func(w io.Writer, r *Record) error {
	return json.NewEncoder(w).Encode(r)
})
