package handlers

import "time"

// timeNow is stubbed in tests that validate date ordering.
var timeNow = time.Now
