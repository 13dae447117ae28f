// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned by NewServer when SERVER_ADDRESS is empty or
// no HTTP handler was built. The Lambda binary never creates a server.
var errNoHTTPServer = errors.New("no HTTP server to run: SERVER_ADDRESS is empty or the HTTP handler is missing")
