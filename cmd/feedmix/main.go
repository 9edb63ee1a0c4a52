package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/feedmix/pkg/cache"
	"github.com/umputun/feedmix/pkg/config"
	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/feed"
	"github.com/umputun/feedmix/pkg/ingest"
	"github.com/umputun/feedmix/pkg/provider"
	"github.com/umputun/feedmix/pkg/repository"
	"github.com/umputun/feedmix/pkg/scheduler"
	"github.com/umputun/feedmix/pkg/service"
	"github.com/umputun/feedmix/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env" description:"dotenv file, ignored if missing"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// .env goes first so env-tagged flags and ${ENV} in config can use it
	_ = godotenv.Load(envFile(os.Args[1:]))

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)
	lgr.Printf("[INFO] starting feedmix version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()
	lgr.Printf("[INFO] shutdown complete")
}

// run loads configuration, wires components and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if secrets := cfg.Secrets(); len(secrets) > 0 {
		SetupLog(opts.Debug, secrets...)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] close database: %v", err)
		}
	}()

	registry := provider.NewDefaultRegistry(provider.Options{
		Timeout:   cfg.Providers.Timeout,
		UserAgent: cfg.Providers.UserAgent,
		VideoA: provider.VideoAOptions{
			BaseURL:    cfg.Providers.VideoA.BaseURL,
			APIKey:     cfg.Providers.VideoA.APIKey,
			MaxResults: cfg.Providers.VideoA.MaxResults,
		},
		VideoB: provider.VideoBOptions{BaseURL: cfg.Providers.VideoB.BaseURL, Token: cfg.Providers.VideoB.Token},
	})
	lgr.Printf("[DEBUG] providers: %v", registry.Types())

	orchestrator := ingest.NewOrchestrator(ingest.Config{
		Sources:      repos.Source,
		Content:      repos.Content,
		Adapters:     registry,
		MaxWorkers:   cfg.Schedule.MaxWorkers,
		RecentWindow: cfg.Ingest.RecentWindow,
		BacklogAfter: cfg.Ingest.BacklogAfter,
		FetchTimeout: cfg.Ingest.FetchTimeout,
		RetryFunc:    ingest.RateLimitRetry(cfg.Ingest.RateLimitRetries, cfg.Ingest.RateLimitBackoff),
	})

	feedCache, err := cache.New[[]domain.FeedItem](cfg.Feed.CacheSize, cfg.Feed.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to make feed cache: %w", err)
	}
	engine := feed.NewEngine(feed.Config{
		Candidates:     repos.Content,
		Interactions:   repos.Interaction,
		Keywords:       repos.Keyword,
		Preferences:    repos.Preferences,
		Cache:          feedCache,
		Limit:          cfg.Feed.Limit,
		CandidateLimit: cfg.Feed.CandidateLimit,
		RecencyWindow:  cfg.Feed.RecencyWindow,
		NotNowCooldown: cfg.Feed.NotNowCooldown,
	})

	svc := service.NewService(service.Config{
		Repos:    repos,
		Adapters: registry,
		Fetcher:  orchestrator,
		Feed:     engine,
	})
	defer svc.Wait()

	sched := scheduler.NewScheduler(scheduler.Params{
		Ingester:       orchestrator,
		UpdateInterval: time.Duration(cfg.Schedule.UpdateInterval) * time.Minute,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:    cfg,
		Service:   svc,
		Feed:      engine,
		Renderer:  feed.NewGenerator(cfg.Server.BaseURL),
		Scheduler: sched,
		Version:   revision,
		Debug:     opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// envFile picks --env-file value from raw args before flags are parsed
func envFile(args []string) string {
	for i, a := range args {
		if a == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(a, "--env-file="); ok {
			return v
		}
	}
	if v := os.Getenv("ENV_FILE"); v != "" {
		return v
	}
	return ".env"
}

// SetupLog configures lgr and the std logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
