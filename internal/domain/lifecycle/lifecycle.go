// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart pings and OnStop shutdowns.
const DefaultTimeout = 10 * time.Second
