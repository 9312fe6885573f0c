package main

import (
	"os"

	"github.com/mhollis/metascrub/cmd/metascrub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
