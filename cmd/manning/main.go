// Package main provides the CLI entry point for manning-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/manning-go/internal/config"
	"github.com/ukaji3/manning-go/internal/logging"
	"github.com/ukaji3/manning-go/internal/tui"
	"github.com/ukaji3/manning-go/pkg/manning"
	"github.com/ukaji3/manning-go/pkg/manning/output"
)

var (
	configPath string
	dateFlag   string
	verbose    bool
	filePath   string
	asJSON     bool
	pretty     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "manning",
		Short: "Show today's shift roster from a monthly schedule workbook",
		Long: `manning finds today's date in a monthly shift schedule (xlsx, xls or csv),
reads who works the early, day, late and night shifts, and shows them next to
a free-text plan for the day.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML settings file")
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "Date to show instead of today (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Workbook to load on start")

	showCmd := &cobra.Command{
		Use:   "show [schedule.xlsx]",
		Short: "Print the roster for today without opening the window",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	showCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(showCmd)

	return rootCmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, today, err := loadSettings()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath(), verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("session opened", zap.Time("today", today), zap.String("file", filePath))

	app := tui.NewApp(cfg,
		tui.WithLogger(logger),
		tui.WithToday(today),
		tui.WithInitialFile(filePath),
	)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, today, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := logging.NewConsole(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := manning.Load(inputPath, manning.Options{Today: today, Shifts: cfg.Shifts})
	if err != nil {
		logger.Debug("load failed", zap.String("path", inputPath), zap.Error(err))
		return errors.New(manning.StatusMessage(nil, err))
	}
	logger.Debug("roster loaded", zap.String("sheet", res.Sheet), zap.Int("staff", res.Assignments.Count()))

	view := output.NewRosterView(res, cfg.Shifts)
	if !asJSON {
		fmt.Fprint(cmd.OutOrStdout(), output.ToText(view, cfg.JoinSeparator()))
		return nil
	}

	jsonData, err := output.ToJSON(view, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

// loadSettings reads the config file and resolves the date to show.
func loadSettings() (*config.Config, time.Time, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, time.Time{}, err
	}
	if dateFlag == "" {
		return cfg, cfg.Now(), nil
	}
	today, err := time.ParseInLocation("2006-01-02", dateFlag, cfg.Location())
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid --date %q: %w", dateFlag, err)
	}
	return cfg, today, nil
}
