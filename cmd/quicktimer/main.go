package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/getsentry/raven-go"

	"quicktimer"
	"quicktimer/internal/log"
	"quicktimer/internal/meta"
	"quicktimer/internal/metrics"
)

func main() {
	configPath := flag.String(
		"config",
		os.Getenv("QUICKTIMER_CONFIG"),
		"path to the configuration file on disk",
	)
	version := flag.Bool(
		"version",
		false,
		"print the compiled quicktimer version SHA",
	)
	verbosity := flag.String(
		"verbosity",
		"error",
		"desired logging verbosity: one of error, warn, info, debug",
	)
	tag := flag.String(
		"tag",
		"",
		"display tag attached to the timing report",
	)
	report := flag.Bool(
		"report",
		false,
		"print the standard timing report line for the command",
	)
	flag.Parse()

	// Report the compiled version and exit
	if *version {
		fmt.Printf("quicktimer/%s\n", meta.VersionSHA)
		return
	}

	// Logging configuration; default to log.Error verbosity
	level, _ := log.ParseLevel(*verbosity)
	logger := log.NewConsoleLogger(level)
	logger.Debug("main: initialized logger: level=%v", level)

	total := metrics.StartTimer()

	// Parse application configuration; a config file is entirely optional
	var config *meta.Config
	if *configPath != "" {
		logger.Debug("main: reading and parsing config: path=%s", *configPath)
		var err error
		if config, err = meta.ParseConfig(*configPath); err != nil {
			panic(err)
		}
	}

	// Configure error reporting
	if config != nil && config.Application != nil && config.Application.SentryDSN != "" {
		raven.SetDSN(config.Application.SentryDSN)
		raven.SetRelease(meta.VersionSHA)
	}

	// Configure metrics reporting
	hook := metrics.NewNoopTimingHook()

	if config != nil && config.Metrics != nil && config.Metrics.Statsd != nil {
		logger.Info(
			"main: configuring statsd metrics reporting: addr=%s sample_rate=%f",
			config.Metrics.Statsd.Address,
			config.Metrics.Statsd.SampleRate,
		)

		var err error
		if hook, err = metrics.NewStatsdTimingHook(
			config.Metrics.Statsd.Address,
			float32(config.Metrics.Statsd.SampleRate),
		); err != nil {
			panic(err)
		}
	} else {
		logger.Warn("main: no metrics output engine specified; disabling metrics")
	}

	args := flag.Args()
	if len(args) == 0 {
		logger.Error("main: no command specified")
		os.Exit(1)
	}

	// A tag passed on the command line takes precedence over the config file.
	if *tag == "" && config != nil && config.Reporting != nil {
		*tag = config.Reporting.Tag
	}
	if *tag == "" {
		*tag = quicktimer.DefaultTag
	}

	if *report {
		quicktimer.SetReporting(true)
	}

	logger.Info("main: executing command: tag=%s argv=%v", *tag, args)

	// The silent variant supplies the duration for logging and metrics; the
	// reporting variant inside prints the report line when enabled.
	err, elapsed := quicktimer.TimeSilent(func() error {
		return quicktimer.TimeTag(*tag, func() error {
			child := exec.Command(args[0], args[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr

			return child.Run()
		})
	})

	if err != nil {
		logger.Error("main: command failed: tag=%s err=%v", *tag, err)
		hook.EmitError()
		raven.CaptureErrorAndWait(err, map[string]string{
			"tag": *tag,
		})

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}

	hook.EmitTiming(*tag, elapsed)

	logger.Info("main: command completed: tag=%s elapsed=%v", *tag, elapsed)
	logger.Debug("main: exiting: total_elapsed=%v", total.Elapsed())
}
