package commands

import (
	"fmt"

	"github.com/sviosdi/svldoc/internal/label"
)

// LabelCmd implements the 'label' command.
type LabelCmd struct {
	Shortcode bool `help:"Print the Hugo shortcode template" xor:"form"`
	React     bool `help:"Print the Docusaurus React component" xor:"form"`
}

func (l *LabelCmd) Run(g *Global, _ *CLI) error {
	var s string
	switch {
	case l.Shortcode:
		s = label.Shortcode()
	case l.React:
		s = label.ReactComponent()
	default:
		s = label.Dev() + "\n"
	}
	_, err := fmt.Fprint(g.out(), s)
	return err
}
