package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/saverctl/saverctl/pkg/types"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + colorReset
}

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorGreen, "✓ "+msg))
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorRed, "✗ "+msg))
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorYellow, "⚠ "+msg))
}

func printStatus(label string, format string, args ...any) {
	val := fmt.Sprintf(format, args...)
	l := colorize(colorBold, label+":")
	fmt.Fprintf(os.Stderr, "  %s %s\n", l, val)
}

// finish renders one operation result. With --json the normalized result is
// printed to stdout regardless of outcome; otherwise onSuccess prints the
// plain payload and failures bubble up to main's error path.
func finish(r types.Result, err error, onSuccess func()) error {
	if jsonOut {
		data, merr := json.Marshal(r)
		if merr != nil {
			return merr
		}
		fmt.Println(string(data))
		return err
	}

	if err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}
