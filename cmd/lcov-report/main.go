package main

import (
	"fmt"
	"os"

	"github.com/zjy-dev/lcov-report/cmd/lcov-report/app"
)

func main() {
	if err := app.NewLcovReportCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
