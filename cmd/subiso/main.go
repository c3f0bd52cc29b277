// Command subiso solves k-fold subgraph embedding instances.
//
// Usage:
//
//	subiso [input-file]
//
// The instance is read from the given file, or from stdin when no file is
// named. The chosen rendering is written to stdout and mirrored to
// out.txt. Exit status is 0 on success and 1 on any failure: malformed
// input, invalid dimensions, infeasible copy count, or no solution.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kubapoke/subgraph-isomorphisms/embed"
	"github.com/kubapoke/subgraph-isomorphisms/graphio"
)

// mirrorFile receives a copy of whatever rendering goes to stdout.
const mirrorFile = "out.txt"

var (
	useApprox bool
	rawOutput bool
	verify    bool
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "subiso [input-file]",
		Short:        "Embed k image-distinct copies of a pattern multigraph into a host, adding the fewest arcs",
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVarP(&useApprox, "approx", "a", false, "use the approximate solver (default exact)")
	rootCmd.Flags().BoolVarP(&rawOutput, "raw", "r", false, "raw output: order, matrix, cost")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "re-validate the solution before printing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	pr, err := graphio.ReadProblem(in)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"pattern": pr.Pattern.Order(),
		"host":    pr.Host.Order(),
		"copies":  pr.Copies,
	}).Debug("instance parsed")

	opts := embed.DefaultOptions()
	if useApprox {
		opts.Algo = embed.Approx
	}

	start := time.Now()
	sol, err := embed.Solve(pr.Pattern, pr.Host, pr.Copies, opts)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"algo":    opts.Algo,
		"cost":    sol.Cost,
		"elapsed": elapsed,
	}).Info("solved")

	if verify {
		if verr := embed.ValidateSolution(pr.Pattern, pr.Host, pr.Copies, sol); verr != nil {
			return verr
		}
		log.Debug("solution verified")
	}

	var buf bytes.Buffer
	if rawOutput {
		err = graphio.WriteRaw(&buf, sol)
	} else {
		err = graphio.WriteVerbose(&buf, pr, sol)
	}
	if err != nil {
		return err
	}

	if _, err = os.Stdout.Write(buf.Bytes()); err != nil {
		return err
	}
	if err = os.WriteFile(mirrorFile, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("mirror %s: %w", mirrorFile, err)
	}

	return nil
}
