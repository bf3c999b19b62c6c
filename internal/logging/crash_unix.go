//go:build linux || darwin

package logging

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// coreDumpDiagnostics reports the process's core-dump resource limits so a
// post-mortem crash log records whether the OS was even configured to leave
// a core file behind.
func coreDumpDiagnostics() map[string]string {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		return map[string]string{"rlimit_core": "unknown"}
	}
	return map[string]string{
		"rlimit_core_soft": formatRlimitCore(limit.Cur),
		"rlimit_core_hard": formatRlimitCore(limit.Max),
	}
}

func formatRlimitCore(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}
