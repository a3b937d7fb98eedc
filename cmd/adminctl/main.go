package main

import (
	"os"

	"github.com/huaxing/corpsite-api/internal/adminctl"
)

func main() {
	if err := adminctl.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
