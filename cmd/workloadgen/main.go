package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benchkit/ycsb-tools/internal/config"
	"github.com/benchkit/ycsb-tools/internal/logging"
	"github.com/benchkit/ycsb-tools/internal/store"
	"github.com/benchkit/ycsb-tools/internal/workload"
)

var cmd Cmd

// Cmd is the command line arguments.
type Cmd struct {
	RecordCount    int64
	OperationCount int64
	InsertCount    int64
	Hosts          string
	ThreadCount    int
	Template       string
	Output         string

	Dest    string
	Profile string
	Yes     bool

	LogFormat string
	LogLevel  string
}

var rootCmd = &cobra.Command{
	Use:   "workloadgen",
	Short: "Generate partitioned YCSB workload files from a template",
	Long: `workloadgen splits a record-insertion job across agent processes:
it computes how many workload files cover the record count at the given
per-agent insert count, then renders the template once per partition with
that partition's insertstart/insertcount substituted in.`,
}

func init() {
	rootCmd.Run = func(rawCmd *cobra.Command, _ []string) {
		if err := run(cmd); err != nil {
			if errors.Is(err, workload.ErrAborted) {
				fmt.Fprintln(os.Stderr, "aborted, no files written")
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}
	rootCmd.Flags().Int64VarP(&cmd.RecordCount, "recordcount", "r", 500000000, "Total number of records to load")
	rootCmd.Flags().Int64VarP(&cmd.OperationCount, "operationcount", "o", 10000000, "Number of operations per workload")
	rootCmd.Flags().Int64VarP(&cmd.InsertCount, "insertcount", "i", 25000000, "Records inserted by each agent")
	rootCmd.Flags().StringVarP(&cmd.Hosts, "hosts", "n", "queenbee", "Comma-separated database hosts")
	rootCmd.Flags().IntVarP(&cmd.ThreadCount, "threadcount", "c", 100, "Client threads per agent")
	rootCmd.Flags().StringVarP(&cmd.Template, "template", "t", "", "Path to the workload template file (required)")
	rootCmd.MarkFlagRequired("template")
	rootCmd.Flags().StringVarP(&cmd.Output, "output", "f", "workload", "Output filename prefix")
	rootCmd.Flags().StringVar(&cmd.Dest, "dest", ".", "Output directory or bucket URL (file://, s3://, gs://)")
	rootCmd.Flags().StringVar(&cmd.Profile, "profile", "", "Path to a YAML generation profile")
	rootCmd.Flags().BoolVarP(&cmd.Yes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().StringVar(&cmd.LogFormat, "log-format", "text", "Log format: text or json")
	rootCmd.Flags().StringVar(&cmd.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd Cmd) error {
	logging.Setup(logging.Config{Format: cmd.LogFormat, Level: cmd.LogLevel})
	log := logging.Component("workloadgen")

	hosts := strings.Split(cmd.Hosts, ",")
	threads := cmd.ThreadCount
	tuning := workload.DefaultTuning()

	// Flags beat the profile; the profile beats the environment.
	if cmd.Profile != "" {
		prof, err := config.Load(cmd.Profile)
		if err != nil {
			return err
		}
		tuning = prof.Tuning(tuning)
		if !rootCmd.Flags().Changed("hosts") && len(prof.Hosts) > 0 {
			hosts = prof.Hosts
		}
		if !rootCmd.Flags().Changed("threadcount") && prof.ThreadCount > 0 {
			threads = prof.ThreadCount
		}
	} else {
		if !rootCmd.Flags().Changed("hosts") {
			if h, ok := config.HostsFromEnv(); ok {
				hosts = h
			}
		}
		if !rootCmd.Flags().Changed("threadcount") {
			if n, ok := config.ThreadsFromEnv(); ok {
				threads = n
			}
		}
	}

	ctx := context.Background()

	st, err := store.New(ctx, cmd.Dest)
	if err != nil {
		return err
	}
	defer st.Close()

	confirm := promptConfirmer(os.Stdin, os.Stderr)
	if cmd.Yes {
		confirm = workload.AlwaysConfirm
	}

	gen := workload.NewGenerator(st, confirm, tuning, log)

	return gen.Run(ctx, workload.Request{
		RecordCount:    cmd.RecordCount,
		OperationCount: cmd.OperationCount,
		InsertCount:    cmd.InsertCount,
		Hosts:          hosts,
		ThreadCount:    threads,
		TemplatePath:   cmd.Template,
		OutputPrefix:   cmd.Output,
	})
}

// promptConfirmer asks the operator to approve the computed file count.
// Anything but an explicit yes declines.
func promptConfirmer(in io.Reader, out io.Writer) workload.Confirmer {
	reader := bufio.NewReader(in)
	return func(numFiles int64) (bool, error) {
		fmt.Fprintf(out, "there will be %d config files generated, continue? [y/N] ", numFiles)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
