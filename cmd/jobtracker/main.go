package main

import (
	"fmt"
	"os"

	"github.com/mrg327/job-tracker/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "job-tracker:", err)
		os.Exit(1)
	}
}
