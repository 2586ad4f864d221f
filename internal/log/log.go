// Package log configures apex/log for the solid binaries.
package log

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "error"

// Init installs a Handler writing to w and sets the level. An empty or invalid
// level falls back to DefaultLevel.
func Init(level string, w io.Writer) {
	log.SetHandler(NewHandler(w))
	if err := setLevel(level); err != nil {
		_ = setLevel(DefaultLevel)
		log.Warnf("invalid log level %q, using %s", level, DefaultLevel)
	}
}

func setLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// Handler writes one line per entry: "<time> <L> <message> k=v ...".
type Handler struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, now: time.Now}
}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	timestamp := h.now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)

	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}
