package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrodata/agrokit/algorithms"
	"github.com/agrodata/agrokit/bst"
	"github.com/agrodata/agrokit/linkedlist"
	"github.com/agrodata/agrokit/numeric"
	"github.com/agrodata/agrokit/pqueue"
	"github.com/agrodata/agrokit/record"
	"github.com/agrodata/agrokit/stats"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List harvest alerts for plantings still in the field",
	Args:  cobra.NoArgs,
	RunE:  runAlerts,
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank plots (or crops, with --crops) by average yield",
	Args:  cobra.NoArgs,
	RunE:  runRank,
}

var searchCmd = &cobra.Command{
	Use:   "search [planting-id]",
	Short: "Find a planting by id with linear and binary search",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var treeCmd = &cobra.Command{
	Use:   "tree [yield]",
	Short: "Look up the crop whose yield is closest along the search path",
	Long: `Without arguments, prints crop yields in ascending order.
With a yield (kg/ha), reports the first crop within --tolerance of it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project production at future days since sowing",
	Args:  cobra.NoArgs,
	RunE:  runProject,
}

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Compute the break-even quantity from the snapshot costs",
	Args:  cobra.NoArgs,
	RunE:  runBreakEven,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise plot yields and the fertiliser/yield relation",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plantings, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runAlerts(cmd *cobra.Command, args []string) error {
	ds, err := loadData()
	if err != nil {
		return err
	}
	now, err := referenceTime()
	if err != nil {
		return err
	}
	opts := append(cfg.HarvestOptions(), pqueue.WithHarvests(ds.Harvests))
	q, err := pqueue.HarvestAlerts(ds.Plantings, now, opts...)
	if err != nil {
		return err
	}

	top, _ := cmd.Flags().GetInt("top")
	alerts := q.Snapshot()
	if top > 0 {
		alerts = q.Top(top)
	}
	logger.Info("Harvest alerts computed", zap.Int("alerts", q.Len()), zap.Time("now", now))

	out := cmd.OutOrStdout()
	if len(alerts) == 0 {
		fmt.Fprintln(out, "no harvest alerts")
		return nil
	}
	for _, a := range alerts {
		fmt.Fprintf(out, "[%d] %s (planting %d)\n", a.Priority, a.Message, a.PlantingID)
	}
	return nil
}

func runRank(cmd *cobra.Command, args []string) error {
	ds, err := loadData()
	if err != nil {
		return err
	}
	k, _ := cmd.Flags().GetInt("top")
	if k <= 0 {
		k = cfg.Search.TopK
	}
	out := cmd.OutOrStdout()

	if crops, _ := cmd.Flags().GetBool("crops"); crops {
		table, err := ds.CropYieldTable()
		if err != nil {
			return err
		}
		ranked := algorithms.RankCrops(table, k)
		logger.Info("Crops ranked", zap.Int("crops", len(table)), zap.Int("shown", len(ranked)))
		for i, c := range ranked {
			fmt.Fprintf(out, "%d. %s %.2f kg/ha\n", i+1, c.Crop, c.Yield)
		}
		return nil
	}

	table, err := ds.PlotYieldTable()
	if err != nil {
		return err
	}
	ranked := algorithms.RankPlots(table, k)
	logger.Info("Plots ranked", zap.Int("plots", len(table)), zap.Int("shown", len(ranked)))
	for i, p := range ranked {
		fmt.Fprintf(out, "%d. %s %.2f kg/ha (%d plantings)\n", i+1, p.Plot, p.Yield, p.Plantings)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid planting id %q: %w", args[0], err)
	}
	ds, err := loadData()
	if err != nil {
		return err
	}
	c := algorithms.CompareSearch(ds.Plantings, id, record.PlantingID)
	logger.Info("Search compared",
		zap.Int("id", id),
		zap.Bool("found", c.Binary.Found),
		zap.Int("comparisons", c.Binary.Comparisons),
		zap.Duration("linear", c.Linear.Elapsed),
		zap.Duration("binary", c.Binary.Elapsed))

	out := cmd.OutOrStdout()
	if !c.Linear.Found {
		fmt.Fprintf(out, "planting %d not found (%d binary comparisons)\n", id, c.Binary.Comparisons)
		return nil
	}
	p := ds.Plantings[c.Linear.Index]
	fmt.Fprintf(out, "planting %d: %s in %s, sown %s\n", p.ID, p.Crop, p.Plot, p.SownOn.Format("2006-01-02"))
	fmt.Fprintf(out, "linear: %v, binary: %v over %d comparisons, speedup %.2fx\n",
		c.Linear.Elapsed, c.Binary.Elapsed, c.Binary.Comparisons, c.Speedup)
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	ds, err := loadData()
	if err != nil {
		return err
	}
	crops, err := ds.CropYieldTable()
	if err != nil {
		return err
	}
	tree := bst.FromCropYields(crops)
	logger.Debug("Yield tree built", zap.Int("nodes", tree.Len()), zap.Int("height", tree.Height()))

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for crop, yield := range tree.InOrder() {
			fmt.Fprintf(out, "%s %.2f\n", crop, yield)
		}
		return nil
	}

	target, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid yield %q: %w", args[0], err)
	}
	tol, _ := cmd.Flags().GetFloat64("tolerance")
	if tol < 0 {
		tol = cfg.Search.YieldTolerance
	}
	e, err := tree.FindByScore(target, tol)
	if errors.Is(err, bst.ErrNotFound) {
		fmt.Fprintf(out, "no crop within %.2f kg/ha of %.2f\n", tol, target)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %.2f\n", e.Label, e.Score)
	return nil
}

func runProject(cmd *cobra.Command, args []string) error {
	ds, err := loadData()
	if err != nil {
		return err
	}
	horizons, _ := cmd.Flags().GetFloat64Slice("horizons")
	if len(horizons) == 0 {
		horizons = cfg.Projection.Horizons
	}
	proj, err := numeric.ProjectProduction(ds.Observations, horizons)
	if err != nil {
		return err
	}
	logger.Info("Production projected", zap.Int("observations", len(ds.Observations)), zap.Int("horizons", len(proj)))

	out := cmd.OutOrStdout()
	for _, p := range proj {
		fmt.Fprintf(out, "day %g: %.2f kg\n", p.Day, p.Kg)
	}
	return nil
}

func runBreakEven(cmd *cobra.Command, args []string) error {
	ds, err := loadData()
	if err != nil {
		return err
	}
	c := ds.Costs
	q, err := numeric.BreakEven(c.Fixed, c.Variable, c.Price, cfg.BisectionOptions()...)
	out := cmd.OutOrStdout()
	if errors.Is(err, numeric.ErrUnreachable) {
		logger.Warn("Break-even unreachable", zap.Error(err))
		fmt.Fprintf(out, "break-even not reachable within [%g, %g] kg\n", cfg.BreakEven.BracketLo, cfg.BreakEven.BracketHi)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("Break-even computed", zap.Float64("kg", q))
	fmt.Fprintf(out, "break-even: %.2f kg\n", q)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ds, err := loadData()
	if err != nil {
		return err
	}
	table, err := ds.PlotYieldTable()
	if err != nil {
		return err
	}
	yields := make([]float64, len(table))
	for i, p := range table {
		yields[i] = p.Yield
	}

	out := cmd.OutOrStdout()
	s, err := stats.Describe(yields)
	switch {
	case errors.Is(err, stats.ErrEmpty):
		fmt.Fprintln(out, "no plot yields")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "plots: %d mean %.2f median %.2f min %.2f max %.2f", s.Count, s.Mean, s.Median, s.Min, s.Max)
		if !math.IsNaN(s.StdDev) {
			fmt.Fprintf(out, " std %.2f", s.StdDev)
		}
		fmt.Fprintln(out)
	}

	fert, yield := ds.SampleSeries()
	reg, err := stats.Regress(fert, yield)
	if err != nil {
		logger.Debug("Regression skipped", zap.Int("samples", len(fert)), zap.Error(err))
		return nil
	}
	fmt.Fprintf(out, "yield = %.4f * fertiliser + %.2f (r² %.3f)\n", reg.Slope, reg.Intercept, reg.RSquared)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	ds, err := loadData()
	if err != nil {
		return err
	}

	plantings := ds.Plantings
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if from != "" || to != "" {
		lo, hi, err := dateRange(from, to)
		if err != nil {
			return err
		}
		plantings = algorithms.PlantingsSownBetween(plantings, lo, hi)
	}

	// Inserting oldest first leaves the newest at the head.
	l := linkedlist.New(record.PlantingID)
	for _, p := range algorithms.MergeSort(plantings, record.PlantingSown) {
		l.Insert(p)
	}
	if id, _ := cmd.Flags().GetInt("remove"); id != 0 && !l.Remove(id) {
		logger.Warn("Planting to remove not found", zap.Int("id", id))
	}
	logger.Info("Plantings listed", zap.Int("plantings", l.Len()))

	out := cmd.OutOrStdout()
	for p := range l.All() {
		fmt.Fprintf(out, "%d %s %s %s %.2f ha %s\n", p.ID, p.SownOn.Format("2006-01-02"), p.Crop, p.Plot, p.AreaHa, p.Status)
	}
	return nil
}

// dateRange parses the --from/--to bounds. A missing side is left open.
func dateRange(from, to string) (lo, hi time.Time, err error) {
	lo = time.Time{}
	hi = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	if from != "" {
		if lo, err = parseDate(from); err != nil {
			return lo, hi, err
		}
	}
	if to != "" {
		if hi, err = parseDate(to); err != nil {
			return lo, hi, err
		}
	}
	return lo, hi, nil
}
