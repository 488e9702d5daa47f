//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

const reservedRunes = `<>":/\|?*;`

var deviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// reservedName reports device names, extension does not matter: "con.png"
// is still console.
func reservedName(name string) bool {
	base, _, _ := strings.Cut(name, ".")
	_, ok := deviceNames[strings.ToUpper(strings.TrimSpace(base))]
	return ok
}

// EnableColorOutput turns on VT100 sequence processing when stream is a
// console. Consoles before Windows 10 refuse the mode and stay colorless.
func EnableColorOutput(stream *os.File) bool {
	fd := stream.Fd()
	if !term.IsTerminal(int(fd)) {
		return false
	}
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(fd), &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(windows.Handle(fd), mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
