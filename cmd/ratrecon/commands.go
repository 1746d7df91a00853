// Copyright (c) 2023 Colin McRae

package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/predrag3141/ratrecon/dyadicvec"
	"github.com/predrag3141/ratrecon/internal/problem"
	"github.com/predrag3141/ratrecon/ratrecon"
	"github.com/predrag3141/ratrecon/ring"
)

func (a *app) reconstructor() *ratrecon.Reconstructor[*big.Int] {
	return ratrecon.New[*big.Int](
		ring.BigInt{},
		ratrecon.WithLogger(a.logger),
		ratrecon.WithConcurrency(a.cfg.Concurrency),
	)
}

// bound parses flagValue, or the configured bound when flagValue is empty.
// It returns nil without error when neither is set.
func (a *app) bound(flagValue string) (*big.Int, error) {
	if flagValue == "" {
		if a.cfg.Bound == "" {
			return nil, nil
		}
		return a.cfg.ParseBound()
	}
	bound, ok := big.NewInt(0).SetString(flagValue, 10)
	if !ok || bound.Sign() <= 0 {
		return nil, fmt.Errorf("--bound %q is not a positive decimal integer", flagValue)
	}
	return bound, nil
}

func (a *app) newScalarCmd() *cobra.Command {
	var n, d, boundFlag string
	cmd := &cobra.Command{
		Use:   "scalar",
		Short: "Reconstruct a/b from n/d",
		Example: `  ratrecon scalar --n 13 --d 20 --bound 5
  2/3 guaranteed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nInt, ok := big.NewInt(0).SetString(n, 10)
			if !ok {
				return fmt.Errorf("--n %q is not a decimal integer", n)
			}
			dInt, ok := big.NewInt(0).SetString(d, 10)
			if !ok {
				return fmt.Errorf("--d %q is not a decimal integer", d)
			}
			bound, err := a.bound(boundFlag)
			if err != nil {
				return err
			}
			if bound == nil {
				return fmt.Errorf("no bound given by --bound or the configuration")
			}
			result, err := a.reconstructor().Reconstruct(nInt, dInt, bound)
			if err != nil {
				return err
			}
			a.logger.Debug("scalar reconstructed", zap.Stringer("confidence", result.Confidence))
			if result.Confidence == ratrecon.Failed {
				fmt.Fprintln(cmd.OutOrStdout(), result.Confidence)
				return errFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s %s\n", result.Numerator, result.Denominator, result.Confidence)
			return nil
		},
	}
	cmd.Flags().StringVar(&n, "n", "", "numerator of the approximation")
	cmd.Flags().StringVar(&d, "d", "", "denominator of the approximation")
	cmd.Flags().StringVar(&boundFlag, "bound", "", "bound on the denominator of the result")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("d")
	return cmd
}

func (a *app) newVectorCmd() *cobra.Command {
	var path, boundFlag string
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Reconstruct the vector of a problem file",
		Long: `Reconstruct the vector of the single problem in a YAML problem file.
Use batch for files with several problems.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := problem.Load(path)
			if err != nil {
				return err
			}
			if len(problems) != 1 {
				return fmt.Errorf("%s has %d problems; use batch", path, len(problems))
			}
			defaultBound, err := a.bound(boundFlag)
			if err != nil {
				return err
			}
			vp, err := problems[0].Resolve(a.cfg.Precision, defaultBound)
			if err != nil {
				return err
			}
			result, err := a.reconstructor().ReconstructVector(vp.Numerators, vp.Denominator, vp.Bound)
			if err != nil {
				return err
			}
			writeVectorResult(cmd.OutOrStdout(), "", result)
			if result.Confidence == ratrecon.Failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "YAML problem file")
	cmd.Flags().StringVar(&boundFlag, "bound", "", "bound used when the problem has none")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) newDecimalCmd() *cobra.Command {
	var boundFlag string
	cmd := &cobra.Command{
		Use:   "decimal X...",
		Short: "Reconstruct a vector from decimal approximations",
		Example: `  ratrecon decimal --bound 12 -- 0.5 -0.75
  [2, -3]/4 guaranteed`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := a.bound(boundFlag)
			if err != nil {
				return err
			}
			if bound == nil {
				return fmt.Errorf("no bound given by --bound or the configuration")
			}
			v, err := dyadicvec.NewFromDecimalStringArray(args, a.cfg.Precision)
			if err != nil {
				return err
			}
			numx, denx := v.CommonDenominator()
			a.logger.Debug("decimals converted", zap.Int("length", v.Len()), zap.Int("log2denominator", denx.BitLen()-1))
			result, err := a.reconstructor().ReconstructVector(numx, denx, bound)
			if err != nil {
				return err
			}
			writeVectorResult(cmd.OutOrStdout(), "", result)
			if result.Confidence == ratrecon.Failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&boundFlag, "bound", "", "bound on the common denominator")
	return cmd
}

func (a *app) newBatchCmd() *cobra.Command {
	var path, boundFlag string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Reconstruct every problem of a problem file concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := problem.Load(path)
			if err != nil {
				return err
			}
			defaultBound, err := a.bound(boundFlag)
			if err != nil {
				return err
			}
			vps := make([]ratrecon.VectorProblem[*big.Int], len(problems))
			for i, p := range problems {
				if vps[i], err = p.Resolve(a.cfg.Precision, defaultBound); err != nil {
					return fmt.Errorf("problem %d: %w", i, err)
				}
			}
			results, err := a.reconstructor().ReconstructBatch(cmd.Context(), vps)
			if err != nil {
				return err
			}
			numFailed := 0
			for i, result := range results {
				name := problems[i].Name
				if name == "" {
					name = fmt.Sprintf("problem %d", i)
				}
				writeVectorResult(cmd.OutOrStdout(), name+": ", result)
				if result.Confidence == ratrecon.Failed {
					numFailed++
				}
			}
			a.logger.Info("batch done", zap.Int("problems", len(results)), zap.Int("failed", numFailed))
			if numFailed > 0 {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "YAML problem file")
	cmd.Flags().StringVar(&boundFlag, "bound", "", "bound used by problems that have none")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func writeVectorResult(w io.Writer, prefix string, result ratrecon.VectorResult[*big.Int]) {
	if result.Confidence == ratrecon.Failed {
		fmt.Fprintf(w, "%s%s\n", prefix, result.Confidence)
		return
	}
	numerators := make([]string, len(result.Numerators))
	for i, num := range result.Numerators {
		numerators[i] = num.String()
	}
	fmt.Fprintf(w, "%s[%s]/%s %s\n", prefix, strings.Join(numerators, ", "), result.Denominator, result.Confidence)
}
