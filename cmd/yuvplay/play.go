package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/yuvrender/pkg/adapters/filesink"
	"github.com/user/yuvrender/pkg/adapters/ggsurface"
	"github.com/user/yuvrender/pkg/adapters/logger"
	"github.com/user/yuvrender/pkg/adapters/memhost"
	"github.com/user/yuvrender/pkg/adapters/nullsink"
	"github.com/user/yuvrender/pkg/adapters/osfilesystem"
	"github.com/user/yuvrender/pkg/adapters/yuvbuffer"
	"github.com/user/yuvrender/pkg/config"
	"github.com/user/yuvrender/pkg/player"
	"github.com/user/yuvrender/pkg/ports"
	"github.com/user/yuvrender/pkg/render"
	"github.com/user/yuvrender/pkg/summarizer"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     l10n.T("Play raw I420 files"),
		ArgsUsage: "[FILE...]",
		Description: l10n.T("Play each FILE in order. Files given on the command line use --size " +
			"and are appended to the streams from --config."),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Input")},
			&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: l10n.T("Frame size of FILE arguments (e.g., 640x360)"), Category: l10n.T("Input")},
			&cli.IntFlag{Name: "max-frames", Usage: l10n.T("Maximum frames per FILE argument (0 = all)"), Category: l10n.T("Input")},

			&cli.StringFlag{Name: "container", Usage: l10n.T("Container size (e.g., 640x360)"), Category: l10n.T("Surface")},
			&cli.IntFlag{Name: "tolerance", Usage: l10n.T("Resize tolerance in pixels"), Category: l10n.T("Surface")},
			&cli.StringFlag{Name: "background", Usage: l10n.T("Letterbox color (hex, e.g., #000000)"), Category: l10n.T("Surface")},
			&cli.StringFlag{Name: "scaler", Usage: l10n.T("Scaler (nearest, bilinear, approx-bilinear, catmullrom)"), Category: l10n.T("Surface")},

			&cli.StringFlag{Name: "snapshots", Usage: l10n.T("Directory for PNG snapshots"), Category: l10n.T("Output")},
			&cli.IntFlag{Name: "snapshot-every", Usage: l10n.T("Save a snapshot every N frames"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Output playback summary to file (Markdown format)"), Category: l10n.T("Output")},

			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		},
		Action: runPlay,
	}
}

func runPlay(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fs := osfilesystem.New()

	var sink ports.SnapshotSink = nullsink.New()
	if cfg.Snapshots.Enabled {
		sink = filesink.New(cfg.Snapshots.Dir, fs)
	}

	surfaces := ggsurface.New(
		ggsurface.WithBackground(config.ParseColor(cfg.Background)),
		ggsurface.WithScaler(ggsurface.ScalerByName(cfg.Scaler)),
	)
	renderer := render.New(
		memhost.NewDocument(),
		yuvbuffer.New(),
		surfaces,
		log,
		render.WithTolerance(cfg.Tolerance),
	)
	host := memhost.NewHost(0, 0)

	p := player.New(renderer, host, fs, sink, log)
	result, runErr := p.Run(ctx, cfg.ToPlayerConfig())
	interrupted := errors.Is(runErr, context.Canceled)

	if cfg.Summary != "" {
		summary := buildSummary(cfg, result, runErr, interrupted)
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := w.Write(cfg.Summary, summary); err != nil {
			log.Error("Failed to write summary: %s", err)
		} else {
			log.Info("Summary written to %s", cfg.Summary)
		}
	}

	if interrupted {
		return nil
	}
	return runErr
}

// buildConfig loads --config (or defaults) and applies CLI overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("container") {
		cfg.Container = c.String("container")
	}
	if c.IsSet("tolerance") {
		cfg.Tolerance = c.Int("tolerance")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("scaler") {
		cfg.Scaler = c.String("scaler")
	}
	if c.IsSet("snapshots") {
		cfg.Snapshots.Enabled = true
		cfg.Snapshots.Dir = c.String("snapshots")
	}
	if c.IsSet("snapshot-every") {
		cfg.Snapshots.Every = c.Int("snapshot-every")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if c.NArg() > 0 && !c.IsSet("size") {
		return cfg, errors.New(l10n.T("--size is required for FILE arguments"))
	}
	for _, path := range c.Args().Slice() {
		cfg.Streams = append(cfg.Streams, config.StreamConfig{
			Path:      path,
			Size:      c.String("size"),
			MaxFrames: c.Int("max-frames"),
		})
	}

	return cfg, nil
}

func buildSummary(cfg config.Config, result player.Result, runErr error, interrupted bool) *summarizer.Summary {
	pc := cfg.ToPlayerConfig()
	b := summarizer.NewBuilder()
	for _, s := range result.Streams {
		b.WithStream(s.Path, s.Width, s.Height, s.Frames)
	}

	info := summarizer.RenderInfo{
		Phase:          result.Phase.String(),
		SurfaceWidth:   result.Surface.Width,
		SurfaceHeight:  result.Surface.Height,
		FramesDrawn:    result.Stats.FramesDrawn,
		DrawFailures:   result.Stats.DrawFailures,
		Resizes:        result.Stats.Resizes,
		TargetsCreated: result.Stats.TargetsCreated,
		FormatChanges:  result.Stats.FormatChanges,
	}
	if result.LastError != nil {
		info.LastError = result.LastError.Error()
	}

	return b.
		WithRunID(result.RunID).
		WithPlayback(summarizer.PlaybackInfo{
			Frames:    result.Frames,
			Events:    result.Events,
			Snapshots: result.Snapshots,
		}).
		WithRender(info).
		WithSettings(summarizer.Settings{
			ContainerWidth:  pc.ContainerWidth,
			ContainerHeight: pc.ContainerHeight,
			Tolerance:       pc.Tolerance,
			Scaler:          cfg.Scaler,
			Background:      cfg.Background,
			SnapshotEvery:   pc.SnapshotEvery,
		}).
		WithError(runErr, interrupted).
		Build()
}
