// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows and the application services into a single
// process lifecycle: restore or open a session, run the dashboard, start
// over after a logout.
package client
