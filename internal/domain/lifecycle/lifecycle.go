// Package lifecycle holds shared timeouts for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single start or stop hook may block.
const DefaultTimeout = 15 * time.Second
