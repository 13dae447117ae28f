// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the card API.
//
// Every command is a single call of [adapter.CardAPI]; results are printed as
// JSON on the configured output.
package client
