package find

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tubepick/internal/app"
	"tubepick/internal/app/ui"
	"tubepick/internal/config"
	"tubepick/internal/logging"
)

var query string

func init() {
	Cmd.Flags().StringVarP(&query, "query", "q", "",
		"search query (alternative to positional arguments)")
}

// Cmd represents the find command
var Cmd = &cobra.Command{
	Use:   "find [query...]",
	Short: "Search YouTube and pick the best 4–20 minute video for a query",
	Long: `Search YouTube and pick the best 4–20 minute video for a query

- Searches recent (last 14 days) medium-length videos, relevance ordered
- Filters candidates to the 4–20 minute duration window
- Shows up to 5 filtered results, then asks Gemini for the top pick`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := query
		if q == "" {
			q = strings.Join(args, " ")
		}
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("enter a search query")
		}

		keys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}
		if err := config.RequireFindKeys(keys); err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := logging.NewLogger(verbose)
		defer func() { _ = logger.Sync() }()

		console := ui.NewConsole(true)

		ctx := cmd.Context()
		finder, err := app.InitializeFinder(ctx, keys, console, logger)
		if err != nil {
			return err
		}

		finder.Find(ctx, q)
		console.Wait()
		return nil
	},
}
