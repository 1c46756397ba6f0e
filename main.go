/*
Headless math playground: loads a scene, simulates it and logs a report.
With -watch the scene is simulated again every time its file changes.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/spaghettifunk/anima-math/engine/assets"
	"github.com/spaghettifunk/anima-math/engine/config"
	"github.com/spaghettifunk/anima-math/engine/core"
	"github.com/spaghettifunk/anima-math/engine/playground"
)

// quiet period used to collapse the burst of writes produced by one save
const reloadDebounce = 100 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "path to a TOML scene (built-in scene when empty)")
	watch := flag.Bool("watch", false, "simulate again whenever the scene file changes")
	logLevel := flag.String("log-level", "", "override the scene log level (debug, info, warn, error, fatal)")
	flag.Parse()

	// capture sigterm and other system calls here
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if *watch && *configPath == "" {
		core.LogFatal("-watch needs -config")
	}

	if err := simulate(ctx, *configPath, *logLevel); err != nil && !errors.Is(err, context.Canceled) {
		if !*watch {
			core.LogFatal(err.Error())
		}
		core.LogError(err.Error())
	}
	if !*watch {
		return
	}

	watcher, err := assets.NewWatcher()
	if err != nil {
		core.LogFatal(err.Error())
	}
	defer watcher.Close()

	if err := watcher.Add(*configPath); err != nil {
		core.LogFatal(err.Error())
	}
	core.LogInfo("watching %s for changes, press Ctrl+C to stop", *configPath)

	for {
		info, err := watcher.Next(ctx, reloadDebounce)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, core.ErrWatcherClosed) {
				core.LogInfo("shutting down")
				return
			}
			core.LogFatal(err.Error())
		}
		core.LogInfo("%s changed, reloading", info.Path)
		if err := simulate(ctx, *configPath, *logLevel); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			// keep watching, the next save may fix the scene
			core.LogError(err.Error())
		}
	}
}

func simulate(ctx context.Context, path, logLevel string) error {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	level, err := core.ParseLogLevel(logLevel)
	if err != nil {
		return err
	}
	core.SetLogLevel(level)

	p, err := playground.New(cfg)
	if err != nil {
		return err
	}
	defer p.Shutdown()

	report, err := p.Run(ctx)
	if report != nil {
		report.Log()
	}
	return err
}
