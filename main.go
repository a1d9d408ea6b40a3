package main

import (
	"os"

	"github.com/abhisek/numberninja/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
