package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/ui"
)

// TextRenderer prints cards for a terminal.
type TextRenderer struct{}

var _ Renderer = TextRenderer{}

func (TextRenderer) List(w io.Writer, v Variant, resources []models.Resource) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "== %s ==\n", v)
	if len(resources) == 0 {
		fmt.Fprintln(bw, EmptyMessage)
		return bw.Flush()
	}

	for i, c := range Cards(v, resources) {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		writeTextCard(bw, c)
	}
	return bw.Flush()
}

func writeTextCard(w io.Writer, c Card) {
	fmt.Fprintf(w, "#%d %s\n", c.ID, ui.Sanitize(c.Title))
	fmt.Fprintf(w, "    %s\n", ui.Sanitize(c.Description))

	for i, row := range c.Rows {
		parts := make([]string, 0, len(row)+1)
		for _, cell := range row {
			parts = append(parts, ui.Sanitize(cell))
		}
		if i == len(c.Rows)-1 && c.Action != nil {
			parts = append(parts, fmt.Sprintf("[%s: %s]", c.Action.Label, c.Action.Command))
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(parts, " | "))
	}
}

func (TextRenderer) Detail(w io.Writer, r models.Resource) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#%d %s\n", r.ID, ui.Sanitize(r.Title))
	for _, f := range DetailFields(r) {
		fmt.Fprintf(bw, "  %-12s %s\n", f.Label+":", ui.Sanitize(f.Value))
	}
	return bw.Flush()
}
