// Command agrokit runs the farm analytics routines over a YAML snapshot.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agrodata/agrokit/internal/config"
	"github.com/agrodata/agrokit/internal/dataset"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dataPath   string
	nowFlag    string

	cfg    = config.DefaultConfig()
	runID  string
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "agrokit",
	Short: "agrokit - crop planning and yield analytics",
	Long: `agrokit ranks plots, raises harvest alerts, projects production and
computes break-even quantities from a farm snapshot.

The snapshot is a YAML file with plantings, harvests, plot and crop yields,
production observations and costs (see --data).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		built, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		runID = uuid.NewString()
		logger = built.With(zap.String("run_id", runID), zap.String("command", cmd.Name()))
		logger.Debug("Configuration loaded", zap.String("config", configPath), zap.String("data", dataPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "agrokit.yaml", "Config file (defaults apply when missing)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "farm.yaml", "Farm snapshot file")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "Reference date YYYY-MM-DD (default: today)")

	rankCmd.Flags().Int("top", 0, "Number of plots to show (default from config)")
	rankCmd.Flags().Bool("crops", false, "Rank crops instead of plots")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	alertsCmd.Flags().Int("top", 0, "Show only the k most urgent alerts (0 = all)")
	projectCmd.Flags().Float64Slice("horizons", nil, "Days since sowing to project (default from config)")
	treeCmd.Flags().Float64("tolerance", -1, "Yield tolerance in kg/ha (default from config)")
	listCmd.Flags().String("from", "", "Only plantings sown on or after YYYY-MM-DD")
	listCmd.Flags().String("to", "", "Only plantings sown on or before YYYY-MM-DD")
	listCmd.Flags().Int("remove", 0, "Drop the planting with this id before listing")

	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(breakevenCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func loadData() (*dataset.Dataset, error) {
	ds, err := dataset.Load(dataPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Dataset loaded",
		zap.Int("plantings", len(ds.Plantings)),
		zap.Int("harvests", len(ds.Harvests)),
		zap.Int("plot_yields", len(ds.PlotYields)))
	return ds, nil
}

func referenceTime() (time.Time, error) {
	if nowFlag == "" {
		return time.Now(), nil
	}
	return parseDate(nowFlag)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
