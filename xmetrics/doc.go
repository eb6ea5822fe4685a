// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics exposes timer outcomes as Prometheus metrics.  The go-kit metrics
interfaces are used to record values, while the Registry remains a plain Prometheus
Gatherer so it can be served with promhttp.
*/
package xmetrics
