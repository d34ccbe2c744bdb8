//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"tubepick/internal/app/finder"
	"tubepick/internal/app/selector"
	"tubepick/internal/app/ui"
	"tubepick/internal/app/voice"
	"tubepick/internal/app/youtube"
	"tubepick/internal/config"
)

func provideYouTubeClient(ctx context.Context, keys *config.APIKeys, logger *zap.SugaredLogger) (*youtube.Client, error) {
	return youtube.NewClient(ctx, keys.YouTube, logger)
}

func provideGeminiCompleter(ctx context.Context, keys *config.APIKeys) (*selector.GeminiCompleter, error) {
	return selector.NewGeminiCompleter(ctx, keys.Gemini)
}

func provideWhisperTranscriber(keys *config.APIKeys) *voice.WhisperTranscriber {
	return voice.NewWhisperTranscriber(keys.OpenAI)
}

// InitializeFinder assembles the find workflow against the live YouTube
// and Gemini APIs.
func InitializeFinder(ctx context.Context, keys *config.APIKeys, notifier ui.Notifier, logger *zap.SugaredLogger) (*finder.Finder, error) {
	wire.Build(
		finder.New,
		selector.New,
		provideYouTubeClient,
		provideGeminiCompleter,
		wire.Bind(new(finder.Searcher), new(*youtube.Client)),
		wire.Bind(new(finder.Filterer), new(*youtube.Client)),
		wire.Bind(new(finder.BestPicker), new(*selector.Selector)),
		wire.Bind(new(selector.Completer), new(*selector.GeminiCompleter)),
	)
	return nil, nil
}

// InitializeRecorder assembles the voice input adapter with Whisper
// transcription.
func InitializeRecorder(keys *config.APIKeys, logger *zap.SugaredLogger) *voice.Recorder {
	wire.Build(
		voice.NewRecorder,
		provideWhisperTranscriber,
		wire.Bind(new(voice.Transcriber), new(*voice.WhisperTranscriber)),
	)
	return nil
}
