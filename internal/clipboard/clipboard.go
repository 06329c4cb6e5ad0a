// Package clipboard provides cross-platform clipboard access via shell commands.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when clipboard access is not available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Error reports a clipboard tool that was found but failed.
// It matches ErrClipboardUnavailable under errors.Is.
type Error struct {
	Op  string // read or write
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrClipboardUnavailable
}

// IsUnavailable returns true if err means the OS clipboard could not be used.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrClipboardUnavailable)
}

// Writer replaces clipboard content.
type Writer interface {
	Write(text string) error
}

// Reader returns the current clipboard text, or "" if there is none.
type Reader interface {
	Read() (string, error)
}

// Clipboard reads and writes the clipboard.
type Clipboard interface {
	Writer
	Reader
}

type mode int

const (
	modeWrite mode = iota
	modeRead
)

// tool is a clipboard command line: binary plus arguments.
type tool []string

// Windows pipes go through the OEM code page unless PowerShell is told
// to use UTF-8 on both ends.
const (
	psWrite = "[Console]::InputEncoding = [Text.Encoding]::UTF8; Set-Clipboard -Value ([Console]::In.ReadToEnd())"
	psRead  = "[Console]::OutputEncoding = [Text.Encoding]::UTF8; Get-Clipboard -Raw"
)

// Candidate tools, first installed wins. Linux tools are grouped by the
// display server they talk to.
var (
	writeTools = map[string][]tool{
		"darwin":  {{"pbcopy"}},
		"wayland": {{"wl-copy"}},
		"x11":     {{"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}},
		"windows": {{"powershell", "-NoProfile", "-Command", psWrite}},
	}
	readTools = map[string][]tool{
		"darwin":  {{"pbpaste"}},
		"wayland": {{"wl-paste", "--no-newline"}},
		"x11":     {{"xclip", "-selection", "clipboard", "-o"}, {"xsel", "--clipboard", "--output"}},
		"windows": {{"powershell", "-NoProfile", "-Command", psRead}},
	}
)

// emptyMessages are what paste tools print to stderr, with a non-zero exit,
// when the clipboard is empty or holds no text.
var emptyMessages = []string{
	"Nothing is copied",                // wl-paste
	"No selection",                     // wl-paste, primary selection
	"No suitable type of content",      // wl-paste, non-text content
	"target STRING not available",      // xclip
	"target UTF8_STRING not available", // xclip
}

// System is the OS clipboard.
type System struct {
	goos     string
	lookPath func(string) (string, error)
	getenv   func(string) string
}

// NewSystem returns the clipboard of the running OS.
func NewSystem() *System {
	return &System{goos: runtime.GOOS, lookPath: exec.LookPath, getenv: os.Getenv}
}

// platforms returns the tool groups usable in this session, in preference
// order. On linux that depends on which display server is reachable; with
// neither WAYLAND_DISPLAY nor DISPLAY set there is no clipboard.
func (s *System) platforms() []string {
	if s.goos != "linux" {
		return []string{s.goos}
	}
	var out []string
	if s.getenv("WAYLAND_DISPLAY") != "" {
		out = append(out, "wayland")
	}
	if s.getenv("DISPLAY") != "" {
		out = append(out, "x11")
	}
	return out
}

// IsAvailable checks if clipboard functionality is available on this system.
func (s *System) IsAvailable() bool {
	_, err := s.getClipboardCommand(modeWrite)
	return err == nil
}

// getClipboardCommand picks the first installed tool for the mode.
func (s *System) getClipboardCommand(m mode) (*exec.Cmd, error) {
	tools := writeTools
	if m == modeRead {
		tools = readTools
	}

	for _, platform := range s.platforms() {
		for _, t := range tools[platform] {
			path, err := s.lookPath(t[0])
			if err == nil {
				return exec.Command(path, t[1:]...), nil
			}
		}
	}
	return nil, ErrClipboardUnavailable
}

// Write copies the given text to the system clipboard.
// Returns ErrClipboardUnavailable if no clipboard tool is usable in this session.
func (s *System) Write(text string) error {
	cmd, err := s.getClipboardCommand(modeWrite)
	if err != nil {
		return err
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return &Error{Op: "write", Err: err}
	}
	return nil
}

// Read returns the clipboard text, or "" if the clipboard is empty or
// holds no text. Any other tool failure is an *Error.
func (s *System) Read() (string, error) {
	cmd, err := s.getClipboardCommand(modeRead)
	if err != nil {
		return "", err
	}

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && reportsEmpty(stderr.String()) {
			return "", nil
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", &Error{Op: "read", Err: err}
	}

	text := out.String()
	if s.goos == "windows" {
		// Get-Clipboard terminates its output with a newline.
		text = strings.TrimSuffix(text, "\r\n")
	}
	return text, nil
}

// reportsEmpty returns true if a paste tool's stderr says there was nothing
// to paste.
func reportsEmpty(stderr string) bool {
	for _, msg := range emptyMessages {
		if strings.Contains(stderr, msg) {
			return true
		}
	}
	return false
}

// Memory is an in-process clipboard. The zero value is empty and usable.
type Memory struct {
	Text string

	// Set to make the next calls fail.
	ReadErr  error
	WriteErr error

	// Writes records every successful Write in order.
	Writes []string
}

// Write stores text unless WriteErr is set.
func (m *Memory) Write(text string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Text = text
	m.Writes = append(m.Writes, text)
	return nil
}

// Read returns the stored text unless ReadErr is set.
func (m *Memory) Read() (string, error) {
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Text, nil
}
