package main

import (
	"fmt"
	"os"

	"seatbench/pkg/cli"
	"seatbench/pkg/ui"
)

func main() {
	if err := cli.New(ui.Launch).Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
