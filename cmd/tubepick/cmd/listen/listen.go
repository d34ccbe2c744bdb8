package listen

import (
	"github.com/spf13/cobra"

	"tubepick/internal/app"
	"tubepick/internal/app/ui"
	"tubepick/internal/app/voice"
	"tubepick/internal/config"
	"tubepick/internal/logging"
)

// Cmd represents the listen command
var Cmd = &cobra.Command{
	Use:   "listen",
	Short: "Speak a query, then search YouTube and pick the best video",
	Long: `Speak a query, then search YouTube and pick the best video

- Records one phrase from the default microphone (10 second cap)
- Transcribes it with OpenAI Whisper
- Runs the same search → filter → best-pick workflow as 'find'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := logging.NewLogger(verbose)
		defer func() { _ = logger.Sync() }()

		console := ui.NewConsole(true)
		ctx := cmd.Context()

		// A missing transcription key disables voice input but is not a
		// hard failure, matching the other capture error modes.
		if err := config.RequireVoiceKey(keys); err != nil {
			console.Warn(voice.WarningFor(voice.ErrUnavailable))
			console.Wait()
			return nil
		}

		recorder := app.InitializeRecorder(keys, logger)

		console.Info("🎙 Speak now... (recording stops after the phrase limit)")
		stop := console.StartStep("🎧 Listening...")
		query, err := recorder.Record(ctx)
		stop()
		if err != nil {
			console.Warn("%s", voice.WarningFor(err))
		}
		if query == "" {
			console.Warn("No valid voice input detected.")
			console.Wait()
			return nil
		}
		console.Info("🗣️  You said: %q", query)

		if err := config.RequireFindKeys(keys); err != nil {
			return err
		}

		finder, err := app.InitializeFinder(ctx, keys, console, logger)
		if err != nil {
			return err
		}

		finder.Find(ctx, query)
		console.Wait()
		return nil
	},
}
