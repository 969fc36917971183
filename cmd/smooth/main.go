// main is the entry point for the smooth CLI.
package main

import (
	"fmt"
	"os"

	"github.com/go-smooth/smooth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
