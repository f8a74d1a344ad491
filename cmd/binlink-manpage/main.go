package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/binlink/cmd/binlink"
)

func main() {
	if err := binlink.GenerateManPage(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
