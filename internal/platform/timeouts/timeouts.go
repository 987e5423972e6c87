// Package timeouts defines shared timeout constants used by the lmfdb processes.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long a server waits for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// StoreQuery caps a single record store round trip made on behalf of a request.
const StoreQuery = 3 * time.Second
