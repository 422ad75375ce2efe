// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tdslot/cert-tree/src/config"
	"github.com/tdslot/cert-tree/src/display"
	x509certs "github.com/tdslot/cert-tree/src/internal/x509/certs"
	x509fetch "github.com/tdslot/cert-tree/src/internal/x509/fetch"
	x509inspect "github.com/tdslot/cert-tree/src/internal/x509/inspect"
	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
	"github.com/tdslot/cert-tree/src/logger"
	"github.com/tdslot/cert-tree/src/tui"
)

// ErrUnknownOutput indicates the --output flag named an unsupported mode.
var ErrUnknownOutput = errors.New("cli: unknown output mode (expected text, table, or json)")

// options collects the flag values for one invocation. Execute builds a fresh
// command each call, so repeated runs in tests never see stale flag state.
type options struct {
	inputFile   string
	targetURL   string
	password    string
	configPath  string
	output      string
	interactive bool
}

// Execute runs the root command and blocks until the inspection completes or
// ctx is cancelled.
//
// With no input flag the command prints its help text and returns nil, the
// way the inspector has always behaved when invoked bare. Errors from flag
// parsing, input loading, or rendering are returned for the caller to report.
//
// Parameters:
//   - ctx: Context governing network retrieval and cancellation
//   - version: Application version shown by --version and the TUI title
//   - log: Destination for rendered output and status messages
//
// Returns:
//   - error: The first failure encountered, or nil
func Execute(ctx context.Context, version string, log logger.Logger) error {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "cert-tree",
		Short:   "X.509 certificate chain inspector",
		Long:    "Inspect X.509 certificates from files or remote hosts and display their trust hierarchy as a tree, a table, JSON, or an interactive terminal UI.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.inputFile == "" && opts.targetURL == "" {
				return cmd.Help()
			}
			return run(cmd.Context(), opts, version, log)
		},
		// The caller reports returned errors, so cobra must not print them too.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&opts.inputFile, "file", "f", "", "certificate file (PEM, DER, PKCS7, or PKCS12)")
	rootCmd.Flags().StringVarP(&opts.targetURL, "url", "U", "", "retrieve the certificate chain from a remote host or bundle URL")
	rootCmd.Flags().StringVarP(&opts.password, "password", "p", "", "password for PKCS12 input")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output mode: text, table, or json")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the hierarchy in an interactive terminal UI")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "configuration file (JSON or YAML)")

	return rootCmd.ExecuteContext(ctx)
}

// run loads the certificates, builds the display hierarchy, and hands it to
// the selected renderer.
func run(ctx context.Context, opts *options, version string, log logger.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	records, err := loadRecords(ctx, opts, cfg, version)
	if err != nil {
		return err
	}

	warnWindow := time.Duration(cfg.Defaults.WarnDays) * 24 * time.Hour
	forest := x509tree.Build(records, x509tree.WithWarnWindow(warnWindow))
	rows := x509tree.Flatten(forest)

	if opts.interactive {
		textFallback, err := tui.Run(rows, version, cfg.Defaults.PageSize)
		if err != nil {
			return err
		}
		if textFallback {
			log.Printf("%s", display.Text(rows))
		}
		return nil
	}

	return render(opts.output, records, rows, log)
}

// loadRecords reads certificates from the configured source and summarizes
// them into display records in input order.
func loadRecords(ctx context.Context, opts *options, cfg *config.Config, version string) ([]x509inspect.Record, error) {
	certList, err := loadCertificates(ctx, opts, cfg, version)
	if err != nil {
		return nil, err
	}

	records := make([]x509inspect.Record, len(certList))
	for i, cert := range certList {
		records[i] = x509inspect.Summarize(cert)
	}
	return records, nil
}

func loadCertificates(ctx context.Context, opts *options, cfg *config.Config, version string) ([]*x509.Certificate, error) {
	if opts.inputFile != "" {
		data, err := os.ReadFile(opts.inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return x509certs.New().DecodeBundle(data, opts.password)
	}

	client := x509fetch.New(version)
	client.Timeout = time.Duration(cfg.Defaults.Timeout) * time.Second

	ctx, cancel := context.WithTimeout(ctx, client.Timeout)
	defer cancel()

	return client.Fetch(ctx, opts.targetURL)
}

// render writes the hierarchy in the requested static output mode. A single
// certificate in text mode gets the field-per-line verbose report instead of
// a one-line tree.
func render(mode string, records []x509inspect.Record, rows []x509tree.Row, log logger.Logger) error {
	switch mode {
	case "text":
		if len(records) == 1 {
			log.Printf("%s", display.Verbose(records[0]))
			return nil
		}
		log.Printf("%s", display.Text(rows))
		return nil
	case "table":
		log.Println(display.Table(rows))
		return nil
	case "json":
		data, err := display.JSON(rows)
		if err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		log.Println(string(data))
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, mode)
	}
}
