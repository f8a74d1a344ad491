package output

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/binlink/pkg/errors"
	"github.com/arthur-debert/binlink/pkg/resolver"
	"github.com/arthur-debert/binlink/pkg/types"
	"github.com/arthur-debert/binlink/pkg/ui/output/styles"
	"github.com/stretchr/testify/assert"
)

const project = "/work/app"

func newTestRenderer(t *testing.T) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	styles.ConfigureColor(&out, true)
	return NewRenderer(&out, &errOut, filepath.FromSlash(project)), &out, &errOut
}

func linkItem(name string, status types.LinkStatus, existed bool) resolver.Item {
	return resolver.Item{Link: &types.LinkResult{
		Declaration: types.Declaration{Name: name, Path: "cli.js"},
		LinkPath:    filepath.FromSlash(project + "/node_modules/.bin/" + name),
		Target:      "../" + name + "/cli.js",
		Existed:     existed,
		Status:      status,
	}}
}

func TestRendererLinkLines(t *testing.T) {
	tests := []struct {
		name   string
		item   resolver.Item
		stdout string
	}{
		{"created", linkItem("foo", types.LinkCreated, false), "  ../foo/cli.js => node_modules/.bin/foo\n"},
		{"replaced", linkItem("foo", types.LinkReplaced, true), "  ../foo/cli.js => node_modules/.bin/foo (replaced)\n"},
		{"skipped", linkItem("foo", types.LinkSkipped, true), "  node_modules/.bin/foo exists. Skipping.\n"},
		{"planned", linkItem("foo", types.LinkPlanned, false), "  would link ../foo/cli.js => node_modules/.bin/foo\n"},
		{"planned_over_existing", linkItem("foo", types.LinkPlanned, true), "  would link ../foo/cli.js => node_modules/.bin/foo (replaces existing)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, errOut := newTestRenderer(t)
			r.Item(tt.item)
			assert.Equal(t, "\n"+tt.stdout, out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestRendererErrorsGoToStderr(t *testing.T) {
	r, out, errOut := newTestRenderer(t)

	failed := linkItem("foo", types.LinkFailed, false)
	failed.Link.Err = errors.New(errors.ErrSymlinkCreate, "cannot link foo")
	r.Item(failed)
	r.Item(resolver.Item{Err: errors.Newf(errors.ErrBinInvalid, "invalid bin field in bad: expected a path string or an object of paths, got a number")})

	assert.Equal(t, "\n", out.String())
	assert.Equal(t,
		"  error: cannot link foo\n"+
			"  error: invalid bin field in bad: expected a path string or an object of paths, got a number\n",
		errOut.String())
}

func TestRendererDone(t *testing.T) {
	r, out, _ := newTestRenderer(t)
	r.Item(linkItem("foo", types.LinkCreated, false))
	r.Done(&resolver.Report{}, false)

	assert.Equal(t, "\n  ../foo/cli.js => node_modules/.bin/foo\n\n  done.\n\n", out.String())
}

func TestRendererDoneWithoutItems(t *testing.T) {
	r, out, _ := newTestRenderer(t)
	r.Done(&resolver.Report{}, false)
	assert.Equal(t, "\n\n  done.\n\n", out.String())
}

func TestRendererDoneVerbose(t *testing.T) {
	r, out, _ := newTestRenderer(t)
	report := &resolver.Report{Items: []resolver.Item{
		linkItem("a", types.LinkCreated, false),
		linkItem("b", types.LinkSkipped, true),
	}}
	r.Done(report, true)
	assert.Equal(t, "\n\n  1 created, 1 skipped\n  done.\n\n", out.String())
}

func TestFatal(t *testing.T) {
	var buf bytes.Buffer
	styles.ConfigureColor(&buf, true)
	Fatal(&buf, errors.New(errors.ErrDependencyRootMissing, "can't find node_modules"))
	assert.Equal(t, "error: can't find node_modules\n", buf.String())
}

func TestTally(t *testing.T) {
	assert.Equal(t, "nothing to link", Tally(resolver.Summary{}))
	assert.Equal(t, "2 created, 1 failed, 3 errors", Tally(resolver.Summary{Created: 2, Failed: 1, Errors: 3}))
}
