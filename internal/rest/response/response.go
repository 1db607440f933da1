package response

import "time"

// DateTimeFormat is the wire format for timestamps; the frontend parses
// RFC3339 directly.
const DateTimeFormat = time.RFC3339
