package main

import (
	"os"

	"github.com/msto63/smallstring/cmd/sso/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
