package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tubepick/cmd/tubepick/cmd/find"
	"tubepick/cmd/tubepick/cmd/listen"
	"tubepick/cmd/tubepick/cmd/serve"
	"tubepick/cmd/tubepick/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tubepick",
	Short: "Find the best recent YouTube video for a typed or spoken query",
	Long: `Find the best recent YouTube video for a typed or spoken query.
- Searches YouTube for relevance-ordered videos from the last 14 days
- Keeps only videos between 4 and 20 minutes
- Asks Gemini to pick the single best match`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(find.Cmd)
	rootCmd.AddCommand(listen.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
