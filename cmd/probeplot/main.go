// Command probeplot summarizes fiber probe event logs and plots their size
// and chord duration distributions.
package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/vdobler/probeplot"
	"github.com/vdobler/probeplot/internal/config"
	"github.com/vdobler/probeplot/internal/metrics"
)

var (
	app = kingpin.New("probeplot", "Summarize and plot fiber probe bubble event logs.")

	configPath  = app.Flag("config", "Set a custom config file path").Short('c').String()
	verbose     = app.Flag("verbose", "Enable verbose log output.").Short('v').Bool()
	force       = app.Flag("force", "Overwrite figures of an earlier run.").Bool()
	outputDir   = app.Flag("output", "Directory receiving the figures.").Short('o').String()
	metricsFile = app.Flag("metrics-file", "Write Prometheus metrics to this textfile.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log.SetHandler(cli.Default)

	if err := run(); err != nil {
		log.WithError(err).Error("probeplot failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *force {
		cfg.Overwrite = true
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if *verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	rc, err := cfg.RunConfig()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"conditions": len(rc.Conditions),
		"output":     rc.OutputDir,
		"min_size":   rc.MinSize,
	}).Debug("configuration loaded")

	p := &probeplot.Pipeline{
		Config: rc,
		Log:    log.Log,
		Report: os.Stdout,
	}
	var m *metrics.Manager
	if cfg.MetricsFile != "" {
		m = metrics.NewManager()
		p.Metrics = m
	}

	res, runErr := p.Run()
	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}
	if res != nil {
		log.WithFields(log.Fields{
			"run":       res.RunID,
			"succeeded": len(res.Conditions),
			"failed":    res.Failed,
			"artifacts": len(res.Artifacts),
		}).Info("run finished")
	}
	return runErr
}
