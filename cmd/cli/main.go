// Package main is the entry point for the dutyctl binary.
package main

import (
	"os"

	cli "dutyboard/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
