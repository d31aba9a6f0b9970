package game

import (
	"fmt"
	"strings"
	"time"
)

// Category controls the color of a line in the terminal log.
type Category uint8

const (
	CatPlain   Category = iota // dim white
	CatSystem                  // cyan
	CatError                   // red
	CatSensors                 // lime
	CatEngines                 // amber
	CatDefense                 // magenta
	CatNav                     // blue
	CatEcho                    // white, echoed commands
	CatReport                  // cyan, report headers
	CatAlert                   // red, alert level changes
)

var categoryPrefixes = []struct {
	prefix string
	cat    Category
}{
	{"SYSTEM:", CatSystem},
	{"ERROR:", CatError},
	{"SENSORS:", CatSensors},
	{"ENGINES:", CatEngines},
	{"DEFENSE:", CatDefense},
	{"NAV:", CatNav},
	{"ALERT:", CatAlert},
	{">", CatEcho},
	{"---", CatReport},
}

// LogLine is a single timestamped entry in the terminal log.
type LogLine struct {
	Time string // HH:MM:SS
	Text string
}

// Category derives the display category from the line's prefix.
func (l LogLine) Category() Category {
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(l.Text, p.prefix) {
			return p.cat
		}
	}
	return CatPlain
}

func (l LogLine) String() string { return l.Time + " " + l.Text }

// TerminalLog is a bounded FIFO of log lines. Lines added since the last
// TakeNew are also kept aside so the Sim can emit them once per step.
type TerminalLog struct {
	lines   []LogLine
	fresh   []LogLine
	maxSize int
	now     func() time.Time
}

// NewTerminalLog creates a log that keeps the most recent maxSize lines.
// now stamps each line; nil uses the wall clock.
func NewTerminalLog(maxSize int, now func() time.Time) *TerminalLog {
	if now == nil {
		now = time.Now
	}
	return &TerminalLog{
		lines:   make([]LogLine, 0, maxSize),
		maxSize: maxSize,
		now:     now,
	}
}

// Add appends a line, evicting the oldest if full.
func (l *TerminalLog) Add(text string) {
	line := LogLine{Time: l.now().Format("15:04:05"), Text: text}
	if len(l.lines) >= l.maxSize {
		copy(l.lines, l.lines[1:])
		l.lines[len(l.lines)-1] = line
	} else {
		l.lines = append(l.lines, line)
	}
	l.fresh = append(l.fresh, line)
}

// Addf appends a formatted line.
func (l *TerminalLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Clear wipes every line. Lines already pending for TakeNew stay pending.
func (l *TerminalLog) Clear() {
	l.lines = l.lines[:0]
}

// Len returns the number of stored lines.
func (l *TerminalLog) Len() int { return len(l.lines) }

// Cap returns the maximum number of stored lines.
func (l *TerminalLog) Cap() int { return l.maxSize }

// Lines returns the stored lines, oldest first. The slice must not be modified.
func (l *TerminalLog) Lines() []LogLine { return l.lines }

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *TerminalLog) Recent(n int) []LogLine {
	if n > len(l.lines) {
		n = len(l.lines)
	}
	return l.lines[len(l.lines)-n:]
}

// Last returns the newest line.
func (l *TerminalLog) Last() (LogLine, bool) {
	if len(l.lines) == 0 {
		return LogLine{}, false
	}
	return l.lines[len(l.lines)-1], true
}

// TakeNew returns the lines added since the previous call.
func (l *TerminalLog) TakeNew() []LogLine {
	out := l.fresh
	l.fresh = nil
	return out
}
