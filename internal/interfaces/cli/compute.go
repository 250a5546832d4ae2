package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pxuan19/CAST/internal/infrastructure/monitoring/logging"
	promcollector "github.com/pxuan19/CAST/internal/infrastructure/monitoring/prometheus"
	"github.com/pxuan19/CAST/pkg/errors"
	"github.com/pxuan19/CAST/pkg/frame"
	"github.com/pxuan19/CAST/pkg/uncertainty"
)

// computeOptions holds the flags of the compute subcommand.
type computeOptions struct {
	trainPath string
	queryPath string
	outPath   string
	features  []string
	weights   []string
	rescale   bool
	rangeOvr  float64
	workers   int
}

func newComputeCmd() *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Score query observations against a training CSV",
		Long: "compute reads a training feature table and a query feature table from CSV\n" +
			"and writes one normalized minimum-distance value per query row.  Feature\n" +
			"columns are matched by name; non-numeric columns are ignored.",
		Example: `  cast compute --train train.csv --query grid.csv --out uncertainty.csv
  cast compute --train train.csv --query grid.csv --features elev,slope --workers 8
  cast compute --train train.csv --query grid.csv --weights elev=2,slope=0.5 --rescale`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompute(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.trainPath, "train", "", "training table CSV path (required)")
	f.StringVar(&opts.queryPath, "query", "", "query table CSV path (required)")
	f.StringVar(&opts.outPath, "out", "-", "output CSV path, or - for stdout")
	f.StringSliceVar(&opts.features, "features", nil, "feature names to use (default: all training features)")
	f.StringSliceVar(&opts.weights, "weights", nil, "explicit feature weights as name=value pairs")
	f.BoolVar(&opts.rescale, "rescale", false, "min-max rescale the output onto [0,1]")
	f.Float64Var(&opts.rangeOvr, "range", 0, "override the auto-computed reference range")
	f.IntVar(&opts.workers, "workers", -1, "parallel workers over query rows (default: config / sequential)")
	_ = cmd.MarkFlagRequired("train")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func runCompute(cmd *cobra.Command, opts *computeOptions) error {
	cliCtx, err := getCLIContext(cmd)
	if err != nil {
		return err
	}
	log := cliCtx.Logger

	train, err := readTable(opts.trainPath)
	if err != nil {
		return err
	}
	query, err := readTable(opts.queryPath)
	if err != nil {
		return err
	}

	computeOpts := []uncertainty.Option{
		uncertainty.WithLogger(logging.KeyValues(log)),
	}
	if opts.features != nil {
		computeOpts = append(computeOpts, uncertainty.WithFeatures(opts.features...))
	}
	if opts.weights != nil {
		wm, perr := parseWeightPairs(opts.weights)
		if perr != nil {
			return perr
		}
		computeOpts = append(computeOpts, uncertainty.WithWeights(wm))
	}
	if opts.rescale || cliCtx.Config.Engine.Rescale {
		computeOpts = append(computeOpts, uncertainty.WithRescale())
	}
	if opts.rangeOvr != 0 {
		computeOpts = append(computeOpts, uncertainty.WithReferenceRange(opts.rangeOvr))
	}
	workers := opts.workers
	if workers < 0 {
		workers = cliCtx.Config.Engine.Workers
	}
	computeOpts = append(computeOpts, uncertainty.WithWorkers(workers))

	if cliCtx.Config.Metrics.Enabled {
		collector, merr := promcollector.NewCollector(nil)
		if merr != nil {
			log.Warn("prometheus collector unavailable, continuing without metrics", logging.Err(merr))
		} else {
			computeOpts = append(computeOpts, uncertainty.WithMetrics(collector))
		}
	}

	result, err := uncertainty.Compute(cmd.Context(), train, frame.Tabular{Table: query}, computeOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "reference range: %s\n",
		strconv.FormatFloat(result.ReferenceRange, 'g', -1, 64))
	for _, n := range result.Notices {
		fmt.Fprintf(cmd.ErrOrStderr(), "notice: %s\n", n)
	}

	return writeVector(cmd.OutOrStdout(), opts.outPath, result.Output.Vector)
}

// readTable reads a CSV feature table from a path.
func readTable(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeIO, "failed to open input file").WithDetail("path=" + path)
	}
	defer f.Close()
	return frame.ReadCSV(f)
}

// writeVector writes the result vector to the output path, or to stdout when
// the path is "-".
func writeVector(stdout io.Writer, path string, values []float64) error {
	if path == "-" {
		return frame.WriteVectorCSV(stdout, frame.ResultLayerName, values)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeIO, "failed to create output file").WithDetail("path=" + path)
	}
	defer f.Close()
	return frame.WriteVectorCSV(f, frame.ResultLayerName, values)
}

// parseWeightPairs parses name=value weight flags.
func parseWeightPairs(pairs []string) (map[string]float64, error) {
	weights := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		name, val, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, errors.InvalidParam("weight must be a name=value pair").WithDetail("got " + p)
		}
		x, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, errors.InvalidParam("weight value is not a number").WithDetail("got " + p)
		}
		weights[name] = x
	}
	return weights, nil
}
