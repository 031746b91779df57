package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)
)

// colorEnabled reports whether w is a terminal that should get colors.
// fatih/color only inspects stdout, but diagnostics go to stderr, which
// often stays a terminal while stdout is captured by an editor.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// fprintf writes with clr when w supports it, plain text otherwise.
func fprintf(w io.Writer, clr *color.Color, format string, a ...any) {
	if colorEnabled(w) {
		clr.EnableColor()
		_, _ = clr.Fprintf(w, format, a...)
		return
	}
	_, _ = fmt.Fprintf(w, format, a...)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(w io.Writer, msg string) {
	fprintf(w, successColor, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(w io.Writer, msg string) {
	fprintf(w, warningColor, "⚠ %s\n", msg)
}

// PrintError prints an error message with a cross
func PrintError(w io.Writer, msg string) {
	fprintf(w, errorColor, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(w io.Writer, msg string) {
	fprintf(w, infoColor, "%s\n", msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(w io.Writer, label, value string) {
	fprintf(w, labelColor, "%s: ", label)
	fprintf(w, valueColor, "%s\n", value)
}

// PrintCandidate prints one candidate line, marking existing and selected paths.
func PrintCandidate(w io.Writer, path, pattern string, exists, selected bool) {
	switch {
	case selected:
		fprintf(w, successColor, "→ %s", path)
	case exists:
		fprintf(w, infoColor, "  %s", path)
	default:
		fprintf(w, dimColor, "  %s", path)
	}
	fprintf(w, dimColor, "  (%s)\n", pattern)
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(w io.Writer, msg string) {
	fprintf(w, dimColor, "  %s\n", msg)
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
