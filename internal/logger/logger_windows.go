//go:build windows
// +build windows

package logger

import (
	"os"
	"syscall"
	"unsafe"
)

const SupportsColorEscapes = true

var kernel32 = syscall.NewLazyDLL("kernel32.dll")
var getConsoleMode = kernel32.NewProc("GetConsoleMode")
var getConsoleScreenBufferInfo = kernel32.NewProc("GetConsoleScreenBufferInfo")

type consoleScreenBufferInfo struct {
	dwSizeX              int16
	dwSizeY              int16
	dwCursorPositionX    int16
	dwCursorPositionY    int16
	wAttributes          uint16
	srWindowLeft         int16
	srWindowTop          int16
	srWindowRight        int16
	srWindowBottom       int16
	dwMaximumWindowSizeX int16
	dwMaximumWindowSizeY int16
}

func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := file.Fd()

	// Is this file descriptor a terminal?
	var unused uint32
	isTTY, _, _ := syscall.Syscall(getConsoleMode.Addr(), 2, fd, uintptr(unsafe.Pointer(&unused)), 0)
	if isTTY != 0 {
		info.IsTTY = true

		// The Windows console uses attributes instead of escape codes, so color
		// output is handled by printing plain text here. Escape codes are only
		// used when the console advertises support, which modern terminals do.
		info.UseColorEscapes = !hasNoColorEnvironmentVariable()

		var bufferInfo consoleScreenBufferInfo
		if ret, _, _ := syscall.Syscall(getConsoleScreenBufferInfo.Addr(), 2, fd,
			uintptr(unsafe.Pointer(&bufferInfo)), 0); ret != 0 {
			info.Width = int(bufferInfo.dwSizeX)
			info.Height = int(bufferInfo.dwSizeY)
		}
	}

	return
}

func writeStringWithColor(file *os.File, text string) {
	file.WriteString(text)
}
