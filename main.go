package main

import (
	"fmt"
	"os"

	"github.com/siddsp02/creation-vs-initialization/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
