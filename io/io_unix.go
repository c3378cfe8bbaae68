//go:build !windows

package grammario

// ANSI is native on unix terminals.
func enableVirtualTerminal() bool { return true }
func vtEnabled() bool             { return true }
