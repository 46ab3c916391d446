//go:build linux
// +build linux

package system

import (
	"runtime"
)

// getMaxProcsRespectingLimit returns GOMAXPROCS clamped to any CPU usage limit imposed by a cgroup (e.g. a Kubernetes
// pod's CPU limit), falling back to the raw GOMAXPROCS value if no limit is found.
func getMaxProcsRespectingLimit() float64 {
	maxProcs := float64(runtime.GOMAXPROCS(0))

	limit, err := getCGroupCPULimit()
	if err != nil {
		return maxProcs
	}

	if limit > 0 && limit < maxProcs {
		return limit
	}

	return maxProcs
}
