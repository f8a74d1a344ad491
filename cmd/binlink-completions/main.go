package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/binlink/cmd/binlink"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s>\n", os.Args[0], strings.Join(binlink.Shells, "|"))
		os.Exit(1)
	}

	if err := binlink.GenerateCompletion(os.Stdout, os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating completion: %v\n", err)
		os.Exit(1)
	}
}
