// ABOUTME: Entry point for workload-estimator CLI
// ABOUTME: Interactive form and scripted estimation against the sizing service

package main

import (
	"fmt"
	"os"

	"github.com/katyalpiyush/workload-estimator-poc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
