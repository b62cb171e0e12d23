package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akuznet/geoconform/internal/config"
	"github.com/akuznet/geoconform/internal/report"
)

var (
	gitRevision = "unknown"
	gitBranch   = "unknown"
)

func main() {
	conf := flag.String("config", "geoconform.yml", "name of config file")
	debug := flag.Bool("debug", false, "debug")
	reportFile := flag.String("report", "", "write a YAML report to file")
	serve := flag.Bool("serve", false, "serve results over http after the run")
	flag.Parse()

	cfg := config.NewAppConfig()
	cfg.Load(*conf)

	if err := cfg.LoadEnv("GEOCONFORM_"); err != nil {
		fmt.Printf("error loading env: %s\n", err.Error())

		return
	}

	if *reportFile != "" {
		_ = cfg.Set("report", *reportFile)
	}

	var h slog.Handler
	if *debug {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	slog.SetDefault(slog.New(h))
	slog.Info(fmt.Sprintf("version %s:%s", gitBranch, gitRevision))

	app := NewApp(cfg)
	sum := app.RunSuite()

	if name := cfg.ReportFile(); name != "" {
		if err := writeReport(name, sum); err != nil {
			slog.Error("error writing report: " + err.Error())
			os.Exit(1)
		}

		slog.Info("report written to " + name)
	}

	if !*serve {
		os.Exit(sum.ExitCode())
	}

	go app.RunHTTP(cfg.ServeAddr())

	if cfg.Watch() {
		go app.WatchConfig(*conf)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c

	slog.Info("exiting...")
}

func writeReport(name string, sum *report.Summary) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	defer f.Close()

	return sum.WriteYAML(f)
}
