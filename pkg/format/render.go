package format

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Render writes fields as <select> elements, one tag per line. Names and
// labels are escaped; Separator is written as is.
func Render(fields []Field) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		for _, f := range fields {
			b.WriteString(f.Separator)
			b.WriteString(`<select name="`)
			b.WriteString(templ.EscapeString(f.Name))
			b.WriteString("\">\n")
			for _, o := range f.Options {
				b.WriteString(`<option value="`)
				b.WriteString(templ.EscapeString(o.Value))
				b.WriteString(`"`)
				if o.Selected {
					b.WriteString(` selected="selected"`)
				}
				b.WriteString(">")
				b.WriteString(templ.EscapeString(o.Label))
				b.WriteString("</option>\n")
			}
			b.WriteString("</select>\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}
