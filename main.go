// Command patrol plans closed covering walks on grid mazes.
package main

import (
	"os"

	"github.com/katalvlaran/patrol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
