package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrz1836/bidclock/internal/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output provides methods for structured output to a terminal.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// JSON outputs a value as JSON.
	JSON(v any) error
}

// TTYOutput provides styled output for terminal displays.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a new TTYOutput. It respects NO_COLOR.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()
	return &TTYOutput{w: w, styles: NewOutputStyles()}
}

// Success prints a success message.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error prints an error message followed by the suggested fix, if any.
func (o *TTYOutput) Error(err error) {
	_, action := errors.Actionable(err)
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
	if action != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+action))
	}
}

// Warning prints a warning message.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints an informational message.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// JSON outputs a value as indented JSON.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v, true)
}

// JSONOutput writes one JSON document per line for machine consumers.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// Success outputs {"type":"success","message":...}.
func (o *JSONOutput) Success(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "success", Message: msg}, false)
}

// Error outputs {"type":"error","message":...,"action":...}.
func (o *JSONOutput) Error(err error) {
	_, action := errors.Actionable(err)
	_ = encodeJSON(o.w, jsonMessage{Type: "error", Message: err.Error(), Action: action}, false)
}

// Warning outputs {"type":"warning","message":...}.
func (o *JSONOutput) Warning(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "warning", Message: msg}, false)
}

// Info outputs {"type":"info","message":...}.
func (o *JSONOutput) Info(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "info", Message: msg}, false)
}

// JSON outputs a value as a single JSON line.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v, false)
}

func encodeJSON(w io.Writer, v any, indent bool) error {
	encoder := json.NewEncoder(w)
	if indent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// NewOutput creates the appropriate output based on format.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
