package main

import (
	"os"

	"github.com/abhisek/leadvane/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
