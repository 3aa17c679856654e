// Package log is the diagnostic logger. It writes colored, leveled lines to
// stderr so they never mix with the progress report on stdout.
package log

import (
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
)

var (
	Output io.Writer = os.Stderr
	Flags            = log.Ltime

	PrefixError  = "Error: "
	PrefixInfo   = "Info:  "
	PrefixDebug  = "Debug: "
	DebugGreyLvl = uint8(11)

	EnableDebug = false
	EnableColor = true
)

var (
	logError *log.Logger
	logInfo  *log.Logger
	logDebug *log.Logger
)

func init() {
	ResetLoggers()
}

func newLogger(prefix aurora.Value) *log.Logger {
	return log.New(Output, prefix.Bold().String(), Flags)
}

// ResetLoggers rebuilds the loggers. Call it after changing Output, Flags or
// EnableColor.
func ResetLoggers() {
	au := aurora.NewAurora(EnableColor)
	logError = newLogger(au.Red(PrefixError))
	logInfo = newLogger(au.Blue(PrefixInfo))
	logDebug = newLogger(au.Gray(DebugGreyLvl, PrefixDebug))
}

func Infof(f string, v ...interface{}) {
	logInfo.Printf(f, v...)
}

func Debugf(f string, v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Printf(f, v...)
}

func Errorln(v ...interface{}) {
	logError.Println(v...)
}
