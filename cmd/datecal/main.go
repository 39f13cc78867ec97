package main

import (
	"os"

	"github.com/StuartShepherd/datetime-helper/cmd/datecal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
