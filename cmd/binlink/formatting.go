package binlink

import (
	"fmt"
	"text/template"

	"github.com/arthur-debert/binlink/internal/version"
	"github.com/spf13/cobra"
)

// initTemplateFormatting adds custom functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"buildInfo": buildInfo,
	})
}

// buildInfo returns the commit and build date, only under --verbose
func buildInfo(cmd *cobra.Command) string {
	if n, _ := cmd.Flags().GetCount("verbose"); n == 0 {
		return ""
	}
	return fmt.Sprintf(MsgBuildInfo, version.Commit, version.Date)
}
