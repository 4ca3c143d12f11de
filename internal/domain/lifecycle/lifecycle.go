// Package lifecycle holds shared values for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook (pings, migrations, shutdown).
const DefaultTimeout = 10 * time.Second
