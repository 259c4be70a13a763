package gcc

import "log"

// traceEnabled gates the package's debug trace. Off by default; enabled
// with SetTrace for diagnosing a stuck Hall-interval sweep without
// instrumenting call sites.
var traceEnabled = false

// SetTrace turns the package's debug trace on or off.
func SetTrace(on bool) { traceEnabled = on }

func tracef(format string, args ...interface{}) {
	if !traceEnabled {
		return
	}
	log.Printf("[gcc] "+format, args...)
}
