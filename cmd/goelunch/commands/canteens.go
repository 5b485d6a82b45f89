package commands

import (
	"context"
	"fmt"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/goelunch/internal/config"
	"github.com/jmylchreest/goelunch/internal/logger"
	"github.com/jmylchreest/goelunch/internal/output"
	"github.com/jmylchreest/goelunch/pkg/menu"
)

var canteensCmd = &cobra.Command{
	Use:   "canteens [today|tomorrow|YYYY-MM-DD]",
	Short: "List the canteens found in the day's speiseplan",
	RunE:  runCanteens,
}

func init() {
	rootCmd.AddCommand(canteensCmd)

	canteensCmd.Flags().String("format", "text", "output format: text, json, yaml")
	canteensCmd.Flags().String("lang", "", "language code of the document (overrides lang from config)")
}

func runCanteens(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Lang = lang
	}

	dateToken := ""
	if len(args) > 0 {
		dateToken = args[0]
	}
	day, err := menu.ParseDateToken(dateToken, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	catalog, err := fetchCatalog(ctx, cfg, day)
	if err != nil {
		return err
	}

	names := catalog.Names()
	sort.Strings(names)

	formatStr, _ := cmd.Flags().GetString("format")
	switch output.Format(formatStr) {
	case output.FormatText, "":
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No menus found in the fetched document (structure changed?).")
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", name)
		}
		return nil
	default:
		writer, err := output.NewWriter(cmd.OutOrStdout(), output.Format(formatStr))
		if err != nil {
			return err
		}
		return writer.Write(names)
	}
}
