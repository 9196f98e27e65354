package report

import (
	"strings"

	"github.com/fatih/color"

	"github.com/codex-k8s/jiratrack/internal/config"
)

// Class is the color bucket a status falls into.
type Class int

const (
	ClassNone Class = iota
	ClassGreen
	ClassYellow
	ClassRed
)

var classColors = map[Class]*color.Color{
	ClassGreen:  color.New(color.FgGreen),
	ClassYellow: color.New(color.FgYellow),
	ClassRed:    color.New(color.FgRed),
}

// Classifier assigns rows a color class based on their status name.
type Classifier struct {
	classes map[string]Class
}

// NewClassifier indexes the style sets by lowercased status name. A status
// listed in more than one set gets an unspecified class among them.
func NewClassifier(styles config.Styles) *Classifier {
	classes := make(map[string]Class)
	for class, names := range map[Class][]string{
		ClassGreen:  styles.Green,
		ClassYellow: styles.Yellow,
		ClassRed:    styles.Red,
	} {
		for _, name := range names {
			classes[strings.ToLower(name)] = class
		}
	}
	return &Classifier{classes: classes}
}

// Classify maps a status name to its color class. Statuses outside every set
// map to ClassNone.
func (c *Classifier) Classify(status string) Class {
	return c.classes[strings.ToLower(status)]
}

// paint wraps text in the ANSI sequence for class, or returns it unchanged
// for ClassNone. Color output honors the global fatih/color switches, so
// piped output stays plain.
func paint(class Class, text string) string {
	cc, ok := classColors[class]
	if !ok {
		return text
	}
	return cc.Sprint(text)
}
