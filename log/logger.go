// Copyright (C) 2025 citadelgo developers
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
)

var LogLevel uint8 = 1

var Stdout io.Writer = os.Stdout
var Stderr io.Writer = os.Stderr

var Reset = "\033[0m"
var Red = "\033[31m"
var Green = "\033[32m"
var Yellow = "\033[33m"
var Purple = "\033[35m"
var Cyan = "\033[36m"

func getLogPrefix(skip int) string {
	_, file, line, _ := runtime.Caller(skip)
	fileSpl := strings.Split(file, "/")
	debugInfos := strings.Split(fileSpl[len(fileSpl)-1], ".")[0] + ":" + strconv.FormatInt(int64(line), 10)
	for len(debugInfos) < 18 {
		debugInfos = debugInfos + " "
	}

	return debugInfos
}

func Info(a ...any) {
	Stdout.Write([]byte(getLogPrefix(2) + "[INFO]  " + fmt.Sprintln(a...) + Reset))
}
func Infof(format string, a ...any) {
	Stdout.Write([]byte(getLogPrefix(2) + fmt.Sprintf("[INFO]  "+format+"\n", a...) + Reset))
}

func Warn(a ...any) {
	Stdout.Write([]byte(getLogPrefix(2) + Yellow + "[WARN]  " + fmt.Sprintln(a...) + Reset))
}
func Warnf(format string, a ...any) {
	Stdout.Write([]byte(getLogPrefix(2) + Yellow + fmt.Sprintf("[WARN]  "+format+"\n", a...) + Reset))
}

func Err(a ...any) {
	Stderr.Write([]byte(getLogPrefix(2) + Red + "[ERR]   " + fmt.Sprintln(a...) + Reset))
}
func Errf(format string, a ...any) {
	Stderr.Write([]byte(getLogPrefix(2) + Red + fmt.Sprintf("[ERR]   "+format+"\n", a...) + Reset))
}

func Debug(a ...any) {
	if LogLevel < 1 {
		return
	}

	Stdout.Write([]byte(getLogPrefix(2) + Cyan + "[DEBUG] " + fmt.Sprintln(a...) + Reset))
}
func Debugf(format string, a ...any) {
	if LogLevel < 1 {
		return
	}

	Stdout.Write([]byte(getLogPrefix(2) + Cyan + fmt.Sprintf("[DEBUG] "+format+"\n", a...) + Reset))
}

func Net(a ...any) {
	if LogLevel < 2 {
		return
	}
	Stdout.Write([]byte(getLogPrefix(2) + Green + "[NET]   " + fmt.Sprintln(a...) + Reset))
}
func Netf(format string, a ...any) {
	if LogLevel < 2 {
		return
	}

	Stdout.Write([]byte(getLogPrefix(2) + Green + fmt.Sprintf("[NET]   "+format+"\n", a...) + Reset))
}

// Mutex skips one extra frame so the prefix points at the caller of mut,
// not at the wrapper itself.
func Mutex(a ...any) {
	if LogLevel < 3 {
		return
	}

	Stdout.Write([]byte(getLogPrefix(3) + Purple + "[MUTEX] " + fmt.Sprintln(a...) + Reset))
}

func Fatal(err any) {
	Stderr.Write([]byte(getLogPrefix(2) + Red + fmt.Sprintln("[FATAL]", err) + Reset))
	panic(err)
}
