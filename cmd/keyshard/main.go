// Keyshard recovers secrets hidden with a t-out-of-N-threshold sharing
// scheme from JSON share files.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keyshard/keyshard/shamir"
	"github.com/keyshard/keyshard/utils/bignum"
	"github.com/keyshard/keyshard/utils/concurrency"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "keyshard: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	var (
		mode    string
		modulus string
		jobs    int
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "keyshard",
		Short:         "Threshold secret recovery from share files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per share details")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s, commit=%s\n", Version, Commit)
			return nil
		},
	}
	rootCmd.AddCommand(versionCmd)

	recoverCmd := &cobra.Command{
		Use:   "recover [share file]...",
		Short: "Reconstruct the secret of each share file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := shamir.NewParametersFromLiteral(parametersLiteral(mode, modulus))
			if err != nil {
				return err
			}
			return runRecover(cmd.OutOrStdout(), newLogger(verbose), args, params, jobs)
		},
	}
	recoverCmd.Flags().StringVar(&mode, "mode", "exact", "reconstruction arithmetic: exact or modular")
	recoverCmd.Flags().StringVar(&modulus, "modulus", "", "modulus for modular mode: bn254, bls12-381, mersenne521 or an integer (default mersenne521)")
	recoverCmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "number of share files processed in parallel")
	rootCmd.AddCommand(recoverCmd)

	inspectCmd := &cobra.Command{
		Use:   "inspect [share file]...",
		Short: "Decode share files and report their shape without reconstructing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), newLogger(verbose), args)
		},
	}
	rootCmd.AddCommand(inspectCmd)

	return rootCmd
}

// parametersLiteral fills in the command line defaults: modular mode
// without an explicit modulus falls back to mersenne521.
func parametersLiteral(mode, modulus string) shamir.ParametersLiteral {
	if modulus == "" && strings.EqualFold(strings.TrimSpace(mode), "modular") {
		modulus = "mersenne521"
	}
	return shamir.ParametersLiteral{Mode: mode, Modulus: modulus}
}

// newLogger builds the stderr logger. Warnings about dropped shares are
// always shown, per share details only with --verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// runRecover reconstructs every share file and prints one line per secret,
// in the input order. Files are processed concurrently, each of the up to
// jobs workers owning one combiner.
func runRecover(w io.Writer, logger *slog.Logger, paths []string, params shamir.Parameters, jobs int) error {

	if jobs < 1 {
		jobs = 1
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	combiners := make([]*shamir.Combiner, jobs)
	for i := range combiners {
		cmb, err := shamir.NewCombiner(params)
		if err != nil {
			return err
		}
		combiners[i] = cmb
	}

	pool := concurrency.NewPool(combiners)
	secrets := make([]*big.Int, len(paths))

	for i, path := range paths {
		pool.Run(func(cmb *shamir.Combiner) error {
			secret, dropped, err := reconstructFile(cmb, path)
			for _, d := range dropped {
				logger.Warn("dropped share", "file", path, "x", d.X, "base", d.Base, "err", d.Err)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("reconstructed", "file", path, "bits", secret.BitLen())
			secrets[i] = secret
			return nil
		})
	}

	err := pool.Wait()

	for i, path := range paths {
		if secrets[i] != nil {
			fmt.Fprintf(w, "Secret for %s: %s\n", path, secrets[i])
		}
	}

	return err
}

// reconstructFile loads one share file and runs the full pipeline on it.
func reconstructFile(cmb *shamir.Combiner, path string) (*big.Int, []shamir.DroppedShare, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var lit shamir.ShareSetLiteral
	if err := json.Unmarshal(data, &lit); err != nil {
		return nil, nil, err
	}

	return cmb.Reconstruct(&lit)
}

// runInspect decodes each share file and reports its threshold, share
// counts and the magnitude profile of the values that reconstruction
// would consume.
func runInspect(w io.Writer, logger *slog.Logger, paths []string) error {

	for _, path := range paths {

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var lit shamir.ShareSetLiteral
		if err := json.Unmarshal(data, &lit); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		set, dropped, err := shamir.NewShareSet(&lit)
		for _, d := range dropped {
			logger.Warn("dropped share", "file", path, "x", d.X, "base", d.Base, "err", d.Err)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		values := make([]*big.Int, len(set.Shares))
		for i, share := range set.Shares {
			values[i] = share.Y
			logger.Debug("decoded share", "file", path, "x", share.X, "bits", share.Y.BitLen())
		}

		mean, std := bignum.MagnitudeStats(values, 128)

		fmt.Fprintf(w, "%s: n=%d k=%d shares=%d dropped=%d log2(y) mean=%.2f std=%.2f\n",
			path, set.N, set.K, len(lit.Shares), len(dropped), mean, std)
	}

	return nil
}
