// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package timetracker records start and stop times for named operations and reports
the elapsed durations.

A Tracker maps caller-chosen tags to the time Start was last called and to the
duration measured by the most recent successful Stop.  Nothing is ever reported as
an error: a Stop without a matching Start, or any call while the Tracker is
disabled, is at most reported as an informational message to the configured
logging.Sink.

	tracker := timetracker.New(timetracker.WithSink(logging.NewZapSink(logger)))
	tracker.Start("load_user")
	loadUser()
	tracker.Stop("load_user")
	d, ok := tracker.Duration("load_user")

	config := timetracker.Measure(tracker, "fetch_config", fetchRemoteConfig)

A process-wide Tracker is available through Default and the package-level functions.
*/
package timetracker
