//go:build windows

package grammario

import (
	"golang.org/x/sys/windows"
)

func stdoutConsoleMode() (windows.Handle, uint32, bool) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil || h == windows.InvalidHandle {
		return 0, 0, false
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return 0, 0, false
	}
	return h, mode, true
}

func enableVirtualTerminal() bool {
	h, mode, ok := stdoutConsoleMode()
	if !ok {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}

func vtEnabled() bool {
	_, mode, ok := stdoutConsoleMode()
	return ok && mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0
}
