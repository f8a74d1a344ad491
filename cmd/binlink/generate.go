package binlink

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/binlink/internal/version"
	"github.com/spf13/cobra/doc"
)

// Shells lists the shells GenerateCompletion supports
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenerateManPage writes the binlink(1) man page
func GenerateManPage(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "BINLINK",
		Section: "1",
		Source:  "binlink " + version.Version,
		Manual:  "binlink manual",
	}
	return doc.GenMan(NewRootCmd(), header, w)
}

// GenerateCompletion writes the completion script for shell
func GenerateCompletion(w io.Writer, shell string) error {
	rootCmd := NewRootCmd()
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf(MsgErrUnknownShell, shell, strings.Join(Shells, ", "))
}
