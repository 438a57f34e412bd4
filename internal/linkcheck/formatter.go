package linkcheck

import (
	"fmt"
	"io"
	"strings"

	"github.com/sviosdi/svldoc/internal/config"
)

// WriteText prints the issues of r grouped by source, followed by a summary line.
func WriteText(w io.Writer, r *Result) error {
	var last string
	for _, issue := range r.Issues {
		if issue.Source != last {
			if _, err := fmt.Fprintf(w, "%s\n", issue.Source); err != nil {
				return err
			}
			last = issue.Source
		}
		if _, err := fmt.Fprintf(w, "  [%s] %s: %s\n", strings.ToUpper(string(issue.Policy)), issue.Target, issue.Reason); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d link(s) checked, %d error(s), %d warning(s)\n",
		r.Checked, r.Count(config.BrokenLinkThrow), r.Count(config.BrokenLinkWarn))
	return err
}
