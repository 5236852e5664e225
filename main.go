package main

import (
	"fmt"
	"os"

	"github.com/crillab/motr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "could not run motr: %v\n", err)
		os.Exit(1)
	}
}
