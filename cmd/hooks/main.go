package main

import (
	"os"

	"github.com/idilsaglam/hooks/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
