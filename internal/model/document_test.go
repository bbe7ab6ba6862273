package model

import "testing"

func TestRoleFromFileName(t *testing.T) {
	tests := []struct {
		fileName string
		want     Role
	}{
		{"stderr", RoleStderr},
		{"STDERR--2026-01-12", RoleStderr},
		{"stdout", RoleStdout},
		{"log4j-active.log", RoleLog4j},
		{"driver.log", RoleDriver},
		{"executor-3.log", RoleExecutor},
		{"eventlog", RoleUnknown},
		{"", RoleUnknown},
		// stderr substring wins over driver substring.
		{"driver-stderr", RoleStderr},
	}
	for _, tt := range tests {
		if got := RoleFromFileName(tt.fileName); got != tt.want {
			t.Errorf("RoleFromFileName(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}
