package main

import (
	"os"

	"github.com/arthur-debert/binlink/cmd/binlink"
	"github.com/arthur-debert/binlink/pkg/ui/output"
)

func main() {
	rootCmd := binlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.Fatal(os.Stderr, err)
		os.Exit(1)
	}
}
