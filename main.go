package main

import (
	"os"

	"github.com/tmarchal/chamber/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
