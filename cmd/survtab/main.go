package main

import (
	"os"

	"github.com/survtab/survtab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
