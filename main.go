package main

import (
	"os"

	"github.com/mizutori/kioku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
