package main

import (
	"os"

	"github.com/bcdannyboy/bsm/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
