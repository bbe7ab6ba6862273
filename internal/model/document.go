package model

import "strings"

// Role is the inferred log-stream kind of a cluster log file.
// It drives the base weight of every chunk cut from that file.
type Role string

const (
	RoleStderr   Role = "stderr"
	RoleStdout   Role = "stdout"
	RoleLog4j    Role = "log4j"
	RoleDriver   Role = "driver"
	RoleExecutor Role = "executor"
	RoleUnknown  Role = "unknown"

	// RoleCompressed is only ever produced by storage listings, for .gz
	// objects that match none of the name rules. The analyzer never sees
	// it: fetch decompresses and the inner name re-classifies.
	RoleCompressed Role = "compressed"
)

// RoleFromFileName infers a Role from a log file name. Matching is
// case-insensitive substring, first match wins, in the fixed order
// stderr, stdout, log4j, driver, executor.
func RoleFromFileName(name string) Role {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "stderr"):
		return RoleStderr
	case strings.Contains(name, "stdout"):
		return RoleStdout
	case strings.Contains(name, "log4j"):
		return RoleLog4j
	case strings.Contains(name, "driver"):
		return RoleDriver
	case strings.Contains(name, "executor"):
		return RoleExecutor
	default:
		return RoleUnknown
	}
}
