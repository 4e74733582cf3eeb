package main

import (
	"os"

	"github.com/SpikyGames1/image-converter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
