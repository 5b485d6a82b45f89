package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/goelunch/internal/config"
	"github.com/jmylchreest/goelunch/internal/logger"
	"github.com/jmylchreest/goelunch/internal/output"
	"github.com/jmylchreest/goelunch/pkg/fetcher"
	"github.com/jmylchreest/goelunch/pkg/menu"
)

// newFetcher builds the document fetcher; tests swap it for a stub.
var newFetcher = func(cfg fetcher.Config) fetcher.Fetcher {
	return fetcher.NewStatic(cfg)
}

// resolvedMenu is the machine-output shape for a resolved canteen menu.
type resolvedMenu struct {
	Canteen string      `json:"canteen" yaml:"canteen"`
	Date    string      `json:"date" yaml:"date"`
	Items   []menu.Item `json:"items" yaml:"items"`
}

var menuCmd = &cobra.Command{
	Use:   "menu [today|tomorrow|YYYY-MM-DD] [canteen...]",
	Short: "Show a canteen's menu for a day",
	Long: `Show the menu of one canteen.

The first argument is taken as the date when it is "today", "tomorrow" or
an ISO date; everything else is the canteen query. With no canteen
argument the configured default_canteen is used.

Examples:
  goelunch menu
  goelunch menu tomorrow
  goelunch menu zentral
  goelunch menu 2026-09-02 "Mensa am Turm"`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)

	flags := menuCmd.Flags()
	flags.String("format", "text", "output format: text, json, yaml")
	flags.Int("max-items", 0, "max menu lines to render (overrides max_items from config)")
	flags.String("lang", "", "language code of the document (overrides lang from config)")
}

func runMenu(cmd *cobra.Command, args []string) error {
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
	if cmd.Flags().Changed("max-items") {
		cfg.MaxItems, _ = cmd.Flags().GetInt("max-items")
	}
	logger.Debug("configuration loaded",
		"lang", cfg.Lang,
		"default_canteen", cfg.DefaultCanteen,
		"max_items", cfg.MaxItems,
		"timeout", cfg.RequestTimeout)

	dateToken, canteenQuery, err := splitMenuArgs(args, cfg.DefaultCanteen)
	if err != nil {
		return err
	}

	day, err := menu.ParseDateToken(dateToken, time.Now())
	if err != nil {
		return err
	}
	isoDate := day.Format("2006-01-02")
	logger.Debug("request resolved", "date", isoDate, "canteen_query", canteenQuery)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	catalog, err := fetchCatalog(ctx, cfg, day)
	if err != nil {
		return err
	}

	formatStr, _ := cmd.Flags().GetString("format")
	return writeMenuReply(cmd.OutOrStdout(), output.Format(formatStr), catalog, canteenQuery, isoDate, cfg.MaxItems)
}

// splitMenuArgs applies the command grammar: a leading date token is
// consumed as the date, the rest is the canteen query, and an empty query
// falls back to the configured default canteen.
func splitMenuArgs(args []string, defaultCanteen string) (dateToken, canteenQuery string, err error) {
	rest := args
	if len(args) > 0 && menu.IsDateToken(args[0]) {
		dateToken = args[0]
		rest = args[1:]
	}

	canteenQuery = strings.TrimSpace(strings.Join(rest, " "))
	if canteenQuery == "" {
		canteenQuery = strings.TrimSpace(defaultCanteen)
	}
	if canteenQuery == "" {
		return "", "", errors.New("no canteen given and no default_canteen configured")
	}
	return dateToken, canteenQuery, nil
}

// fetchCatalog retrieves and parses the speiseplan document for a day.
func fetchCatalog(ctx context.Context, cfg config.Config, day time.Time) (menu.Catalog, error) {
	url := fetcher.MenuURL(cfg.Lang, day)
	f := newFetcher(fetcher.Config{Timeout: cfg.RequestTimeout})

	content, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("menu fetch failed: %w", err)
	}
	logger.Debug("document fetched",
		"url", url,
		"size", humanize.Bytes(uint64(len(content.Body))))

	return menu.Parse(content.Body), nil
}

// writeMenuReply resolves the canteen query against the catalog and writes
// the outcome. Text format mirrors the chat replies of the original bot;
// json/yaml emit the resolved menu or fail for the non-matched outcomes.
func writeMenuReply(w io.Writer, format output.Format, catalog menu.Catalog, canteenQuery, isoDate string, maxItems int) error {
	if len(catalog) == 0 {
		if format != output.FormatText && format != "" {
			return errors.New("no menus found in the fetched document (structure changed?)")
		}
		fmt.Fprintln(w, "No menus found in the fetched document (structure changed?).")
		return nil
	}

	available := catalog.Names()
	sort.Strings(available)

	res := menu.Resolve(canteenQuery, available)
	switch res.Kind {
	case menu.Matched:
		m := catalog[res.Name]
		switch format {
		case output.FormatText, "":
			fmt.Fprintln(w, menu.Render(res.Name, isoDate, m.Date, m.Items, maxItems))
			return nil
		default:
			writer, err := output.NewWriter(w, format)
			if err != nil {
				return err
			}
			return writer.Write(resolvedMenu{Canteen: res.Name, Date: m.Date, Items: m.Items})
		}

	case menu.Ambiguous:
		if format != output.FormatText && format != "" {
			return fmt.Errorf("canteen name %q is ambiguous: %s", canteenQuery, strings.Join(res.Candidates, ", "))
		}
		fmt.Fprintln(w, "Canteen name is ambiguous. Matches:")
		for _, c := range res.Candidates {
			fmt.Fprintf(w, "- %s\n", c)
		}
		return nil

	default: // menu.NotFound
		if format != output.FormatText && format != "" {
			return fmt.Errorf("canteen %q not found", canteenQuery)
		}
		fmt.Fprintln(w, "Canteen not found. Available:")
		for _, c := range available {
			fmt.Fprintf(w, "- %s\n", c)
		}
		return nil
	}
}
