package main

import (
	"os"

	"github.com/dotcheck/dotcheck/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
