// Package output renders the results of a linking pass for the terminal.
//
// Link lines go to the standard writer, per-item problems to the error
// writer. Paths are shown relative to the project directory so the output
// reads like node_modules/.bin/mocha regardless of where binlink ran from.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/binlink/pkg/errors"
	"github.com/arthur-debert/binlink/pkg/resolver"
	"github.com/arthur-debert/binlink/pkg/types"
	"github.com/arthur-debert/binlink/pkg/ui/output/styles"
)

// Renderer writes items of a linking pass as they arrive
type Renderer struct {
	out        io.Writer
	errOut     io.Writer
	projectDir string
	started    bool
}

// NewRenderer creates a Renderer. projectDir is the base for displayed paths.
func NewRenderer(out, errOut io.Writer, projectDir string) *Renderer {
	return &Renderer{out: out, errOut: errOut, projectDir: projectDir}
}

// Start opens the run with a blank line. It is safe to call more than once.
func (r *Renderer) Start() {
	if r.started {
		return
	}
	r.started = true
	fmt.Fprintln(r.out)
}

// Item renders one resolver item. It has the signature of resolver.Options.Observer.
func (r *Renderer) Item(item resolver.Item) {
	r.Start()
	if item.Err != nil {
		fmt.Fprintf(r.errOut, MsgItemError, styles.Render("Error", MsgErrorLabel), errors.Describe(item.Err))
		return
	}
	r.link(*item.Link)
}

func (r *Renderer) link(res types.LinkResult) {
	target := styles.Render("Target", res.Target)
	link := styles.Render("LinkPath", r.display(res.LinkPath))

	switch res.Status {
	case types.LinkCreated:
		fmt.Fprintf(r.out, MsgLinked, target, link)
	case types.LinkReplaced:
		fmt.Fprintf(r.out, MsgReplaced, target, link, styles.Render("Muted", MsgReplacedNote))
	case types.LinkSkipped:
		fmt.Fprintf(r.out, MsgExists, link)
	case types.LinkPlanned:
		if res.Existed {
			fmt.Fprintf(r.out, MsgPlannedSwap, target, link, styles.Render("Muted", MsgReplacesNote))
			return
		}
		fmt.Fprintf(r.out, MsgPlanned, target, link)
	case types.LinkFailed:
		fmt.Fprintf(r.errOut, MsgLinkFailed, styles.Render("Error", MsgErrorLabel), errors.Describe(res.Err))
	}
}

// Done closes the run. With verbose set a one-line tally precedes "done.".
func (r *Renderer) Done(report *resolver.Report, verbose bool) {
	r.Start()
	fmt.Fprintln(r.out)
	if verbose && report != nil {
		fmt.Fprintf(r.out, MsgSummary, styles.Render("Muted", Tally(report.Summary())))
	}
	fmt.Fprint(r.out, MsgDone)
	fmt.Fprintln(r.out)
}

// Fatal renders an error that stopped the run before any link was touched
func Fatal(w io.Writer, err error) {
	fmt.Fprintf(w, MsgFatal, styles.Render("Error", MsgErrorLabel), errors.Describe(err))
}

// Tally formats the non-zero counts of a summary, e.g. "2 created, 1 skipped"
func Tally(s resolver.Summary) string {
	counts := []struct {
		n     int
		label string
	}{
		{s.Created, "created"},
		{s.Replaced, "replaced"},
		{s.Skipped, "skipped"},
		{s.Planned, "planned"},
		{s.Failed, "failed"},
		{s.Errors, "errors"},
	}
	var parts []string
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.label))
		}
	}
	if len(parts) == 0 {
		return "nothing to link"
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) display(path string) string {
	if r.projectDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.projectDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
