package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var headers = [4]string{"Ticket", "Summary", "Status", "Interacted"}

// Render writes the full report: a blank line, the aligned table, a blank
// line and the summary sentence. Every field of a classified row gets the
// same color wrapping. Column widths are measured before coloring so escape
// sequences never skew the alignment.
func Render(w io.Writer, rows []Row, classifier *Classifier, user string, days int) error {
	widths := [4]int{}
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, cell := range r.cells() {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	underline := [4]string{}
	for i := range headers {
		underline[i] = strings.Repeat("-", widths[i])
	}

	var b strings.Builder
	b.WriteString("\n")
	writeLine(&b, widths, headers, ClassNone)
	writeLine(&b, widths, underline, ClassNone)
	for _, r := range rows {
		writeLine(&b, widths, r.cells(), classifier.Classify(r.Status))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "User %s worked on %d tickets in the last %d days.\n", user, len(rows), days)

	_, err := io.WriteString(w, b.String())
	return err
}

// cells returns the row fields in column order.
func (r Row) cells() [4]string {
	return [4]string{r.Ticket, r.Summary, r.Status, r.Interacted}
}

// writeLine pads each cell to its column width, colors it and joins the cells
// with two spaces. The last column is left unpadded to avoid trailing blanks.
func writeLine(b *strings.Builder, widths [4]int, cells [4]string, class Class) {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		padded := cell
		if i < len(cells)-1 {
			padded += strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		parts = append(parts, paint(class, padded))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")
}
