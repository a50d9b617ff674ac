package main

import (
	"os"

	"github.com/kagimura/lorekeeper/cmd/lorekeeper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
