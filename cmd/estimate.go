// ABOUTME: Non-interactive estimate command
// ABOUTME: Runs one estimation from flags for scripts and CI/CD pipelines

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katyalpiyush/workload-estimator-poc/internal/client"
	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes
const (
	exitOK         = 0
	exitInvalid    = 1
	exitReqFailure = 2
	exitConfig     = 3
)

// estimateOptions holds the raw flag values for one estimation
type estimateOptions struct {
	documents    string
	documentSize string
	workload     string
	jsonOut      bool
}

var estimateOpts estimateOptions

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Get a recommendation without the interactive form",
	Long: `Send one estimation request built from flags and print the recommendation.

Exit codes:
  0 - Recommendation received
  1 - Invalid input (missing field, bad number, unknown workload)
  2 - Request failed (connectivity, service error, malformed response)
  3 - Configuration error (bad --api-url or environment, log setup)

Example:
  workload-estimator estimate --documents 1000000 --document-size 1024 --workload readwrite --json`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		opts := estimateOpts
		opts.jsonOut = IsJSONOutput()

		exitCode := estimateFromConfig(ctx, os.Stdout, os.Stderr, opts)
		if exitCode != exitOK {
			cancel()
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().StringVar(&estimateOpts.documents, "documents", "", "Number of documents in the dataset")
	estimateCmd.Flags().StringVar(&estimateOpts.documentSize, "document-size", "", "Average document size in bytes")
	estimateCmd.Flags().StringVar(&estimateOpts.workload, "workload", string(estimator.WorkloadRead), "Workload nature: read, write, or readwrite")
}

// estimateFromConfig resolves configuration and the logger, then runs one
// estimation against the configured service
func estimateFromConfig(ctx context.Context, stdout, stderr io.Writer, opts estimateOptions) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}

	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}
	defer closeLog()

	c := client.New(cfg.APIURL, client.WithLogger(logger))
	return runEstimate(ctx, c, stdout, logger, opts)
}

// runEstimate drives one controller submit and returns the exit code
func runEstimate(ctx context.Context, est estimator.Estimator, w io.Writer, logger *zap.Logger, opts estimateOptions) int {
	ctrl := estimator.NewController(est, logger)

	if err := ctrl.SetDocumentCount(opts.documents); err != nil {
		fmt.Fprintf(w, "Error: --documents %q: %v\n", opts.documents, err)
		return exitInvalid
	}
	if err := ctrl.SetDocumentSize(opts.documentSize); err != nil {
		fmt.Fprintf(w, "Error: --document-size %q: %v\n", opts.documentSize, err)
		return exitInvalid
	}
	nature, err := estimator.ParseWorkloadNature(opts.workload)
	if err != nil {
		fmt.Fprintf(w, "Error: --workload: %v\n", err)
		return exitInvalid
	}
	if err := ctrl.SetWorkloadNature(nature); err != nil {
		fmt.Fprintf(w, "Error: --workload: %v\n", err)
		return exitInvalid
	}

	done, status := ctrl.Submit(ctx)
	switch status {
	case estimator.SubmitInvalid:
		for _, msg := range ctrl.Snapshot().Errors.Messages() {
			fmt.Fprintf(w, "Error: %s\n", msg)
		}
		return exitInvalid
	case estimator.SubmitRejected:
		fmt.Fprintf(w, "Error: %v\n", ctrl.Snapshot().LastError)
		return exitInvalid
	case estimator.SubmitBusy:
		// A fresh controller is never busy
		fmt.Fprintln(w, "Error: an estimate is already in progress")
		return exitReqFailure
	}
	<-done

	snap := ctrl.Snapshot()
	if snap.State == estimator.StateFailed {
		fmt.Fprintf(w, "Error: %v\n", snap.LastError)
		return exitReqFailure
	}

	if opts.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap.Result); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return exitReqFailure
		}
		return exitOK
	}

	printRecommendation(w, snap.Input, snap.Result)
	return exitOK
}

// printRecommendation writes the human-readable recommendation
func printRecommendation(w io.Writer, input estimator.RawInput, result estimator.EstimationResult) {
	fmt.Fprintf(w, "Recommended Configuration\n")
	fmt.Fprintf(w, "=========================\n\n")
	fmt.Fprintf(w, "Dataset: %s documents x %s bytes, %s workload\n",
		input.DocumentCount, input.DocumentSize, input.WorkloadNature.Label())

	if s := result.Summary; s != nil {
		fmt.Fprintf(w, "\nSummary:\n")
		fmt.Fprintf(w, "  Cluster option: %s\n", s.ClusterOption)
		fmt.Fprintf(w, "  Nodes allocated: %d\n", s.NodesAllocated)
		fmt.Fprintf(w, "  Service groups: %d\n", s.ServiceGroupCount)
		fmt.Fprintf(w, "  Services: %s\n", strings.Join(s.Services, ", "))
		fmt.Fprintf(w, "  Workload type: %s\n", s.WorkloadType)
	}

	if result.IsEmpty() {
		fmt.Fprintf(w, "\nNo service groups recommended.\n")
		return
	}

	fmt.Fprintf(w, "\nService Groups:\n")
	for i, g := range result.ServiceGroups {
		fmt.Fprintf(w, "  %d. %s\n", i+1, strings.Join(g.Services, ", "))
		fmt.Fprintf(w, "     Nodes: %d\n", g.Nodes)
		fmt.Fprintf(w, "     RAM: %s GB  CPU: %s vCPU\n", g.EstimatedRAMGB.String(), g.EstimatedCPUVCPUs.String())
		fmt.Fprintf(w, "     Disk: %s GB %s  Disk I/O: %s\n", g.EstimatedDiskGB.String(), g.DiskType, g.EstimatedDiskIO.String())
	}
}
