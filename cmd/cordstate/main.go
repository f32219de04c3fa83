package main

import (
	"fmt"
	"os"

	"cordcore/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cordstate:", err)
		os.Exit(1)
	}
}
