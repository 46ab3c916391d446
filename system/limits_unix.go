//go:build !windows
// +build !windows

package system

import "syscall"

// RaiseFileLimit raises the current process' open file descriptor soft limit to the given threshold, capped at
// whatever the hard limit allows.
func RaiseFileLimit(threshold uint64) error {
	var limit syscall.Rlimit

	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &limit); err != nil {
		return err
	}

	if limit.Cur >= threshold {
		return nil
	}

	if threshold > limit.Max {
		threshold = limit.Max
	}

	limit.Cur = threshold

	return syscall.Setrlimit(syscall.RLIMIT_NOFILE, &limit)
}
