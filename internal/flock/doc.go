// Package flock provides cross-platform advisory file locks.
//
// bidclock takes an exclusive, non-blocking lock on a sidecar file while it
// rewrites a configuration file, so that two processes saving at once fail
// fast instead of interleaving their writes.
//
//	release, err := flock.Acquire(path + ".lock")
//	if err != nil {
//	    // another process holds the lock
//	}
//	defer release()
package flock
