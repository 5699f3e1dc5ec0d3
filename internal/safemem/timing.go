package safemem

import "time"

// SleepRemaining sleeps so that at least minExecutionTimeMs milliseconds
// have passed since start. If minExecutionTimeMs is zero or negative, it
// returns immediately without sleeping. Use this to add execution-time
// padding so that response time does not leak information about how much
// work was done.
//
// Call at the end of a sensitive operation:
//
//	start := time.Now()
//	// ... do work ...
//	SleepRemaining(start, 50)
func SleepRemaining(start time.Time, minExecutionTimeMs int) {
	if minExecutionTimeMs <= 0 {
		return
	}
	minDur := time.Duration(minExecutionTimeMs) * time.Millisecond
	elapsed := time.Since(start)
	if elapsed < minDur {
		time.Sleep(minDur - elapsed)
	}
}
