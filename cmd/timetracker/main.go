// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/timetracker/clock"
	"github.com/xmidt-org/timetracker/logging"
	"github.com/xmidt-org/timetracker/timetracker"
	"github.com/xmidt-org/timetracker/xmetrics"
	"github.com/xmidt-org/timetracker/xviper"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	applicationName = "timetracker"

	EnabledFlag = "enabled"
	ClockFlag   = "clock"
	SleepFlag   = "sleep"
	ListenFlag  = "listen"

	shutdownTimeout = 5 * time.Second
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the configuration file to use instead of searching the standard paths")
	fs.Bool(EnabledFlag, true, "whether timers are recorded")
	fs.String(ClockFlag, clock.SourceMonotonic, "the clock source, either monotonic or wall")
	fs.Duration(SleepFlag, 2*time.Second, "the simulated work measured under the load_user tag")
	fs.String(ListenFlag, "", "the address on which /metrics is served after the run; empty disables the server")
	return fs
}

// trackerOptions reads the timetracker subtree, letting explicitly set flags win
func trackerOptions(fs *pflag.FlagSet, v *viper.Viper, configured *timetracker.Options) *timetracker.Options {
	if fs.Changed(EnabledFlag) {
		configured.Enabled = v.GetBool(EnabledFlag)
	}

	if fs.Changed(ClockFlag) {
		configured.Clock = v.GetString(ClockFlag)
	}

	return configured
}

// newRouter exposes the gatherer's metrics
func newRouter(r xmetrics.Registry) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(r, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return router
}

// writeReport renders durations as a table ordered by tag
func writeReport(output io.Writer, durations map[string]time.Duration) error {
	tags := maps.Keys(durations)
	slices.Sort(tags)

	table := tablewriter.NewWriter(output)
	table.Header("Tag", "Duration")
	for _, tag := range tags {
		if err := table.Append([]string{tag, fmt.Sprintf("%dms", durations[tag].Milliseconds())}); err != nil {
			return fmt.Errorf("report row %q: %w", tag, err)
		}
	}

	return table.Render()
}

func serve(logger *zap.Logger, address string, r xmetrics.Registry) error {
	server := &http.Server{
		Addr:              address,
		Handler:           newRouter(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	logger.Info("serving metrics", zap.String("address", address))
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-errs:
		return err

	case s := <-signals:
		logger.Info("exiting due to signal", zap.String("signal", s.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func timetrackerMain(arguments []string, output io.Writer) int {
	fs := newFlagSet()
	if err := fs.Parse(arguments); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse command line: %s\n", err)
		return 1
	}

	v, err := xviper.New(
		xviper.ApplyDefaults(xviper.Defaults{
			logging.LoggingKey + ".level": "debug",
		}),
		xviper.StdOptions(applicationName, fs),
	)

	if err == nil {
		err = xviper.ReadInConfig(v)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read configuration: %s\n", err)
		return 1
	}

	logOptions, err := logging.FromViper(logging.Sub(v))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read logging configuration: %s\n", err)
		return 1
	}

	logger := logging.New(logOptions)
	defer logger.Sync()

	configured, err := timetracker.FromViper(timetracker.Sub(v))
	if err != nil {
		logger.Error("Unable to read timetracker configuration", zap.Error(err))
		return 1
	}

	options := trackerOptions(fs, v, configured)
	metricsOptions, err := xmetrics.FromViper(xmetrics.Sub(v))
	if err != nil {
		logger.Error("Unable to read metrics configuration", zap.Error(err))
		return 1
	}

	registry := xmetrics.NewRegistry(metricsOptions)
	recorder, err := xmetrics.NewRecorder(registry)
	if err != nil {
		logger.Error("Unable to create metrics recorder", zap.Error(err))
		return 1
	}

	tracker, err := options.NewTracker(
		timetracker.WithSink(logging.NewZapSink(logger)),
		timetracker.WithRecorder(recorder),
	)

	if err != nil {
		logger.Error("Unable to create tracker", zap.Error(err))
		return 1
	}

	tracker.Start("load_user")
	tracker.Clock().Sleep(v.GetDuration(SleepFlag))
	tracker.Stop("load_user")

	settings := timetracker.Measure(tracker, "fetch_config", v.AllSettings)
	logger.Debug("configuration", zap.Int("keys", len(settings)))

	tracker.PrintAllDurations()
	if err := writeReport(output, tracker.Durations()); err != nil {
		logger.Error("Unable to write report", zap.Error(err))
		return 1
	}

	if address := v.GetString(ListenFlag); len(address) > 0 {
		if err := serve(logger, address, registry); err != nil {
			logger.Error("Metrics server failed", zap.Error(err))
			return 2
		}
	}

	return 0
}

func main() {
	os.Exit(timetrackerMain(os.Args[1:], os.Stdout))
}
