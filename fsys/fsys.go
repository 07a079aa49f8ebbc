// Package fsys serves a read-only 9P2000 view of a widget tree so
// external tools can inspect a running application. The served files
// describe an immutable snapshot published from the UI goroutine;
// serving a connection never touches live widgets.
//
// The tree is
//
//	ctl      file server version, snapshot generation, widget count
//	index    one line per widget: id, geometry, kind, label
//	log      recent snapshot and application events
//	N/geom   widget N's screen rectangle
//	N/label  widget N's label
//	N/flags  widget N's state flags
package fsys

import (
	"fmt"
	"image"
	"net"
	"sort"
	"strings"
	"sync"

	"github.com/feltk/felt"
	"github.com/feltk/felt/internal/logger"
)

// Entry is one widget in a published snapshot.
type Entry struct {
	ID     int
	Parent int // ID of the parent entry, 0 for the root
	Kind   string
	Label  string
	R      image.Rectangle // screen coordinates
	Flags  felt.Flags
}

// FS is the state served over 9P: the current snapshot and a bounded
// event log. One FS serves any number of connections. The zero value
// is not ready; use New.
type FS struct {
	mu   sync.Mutex
	snap *snapshot
	log  []string
	gen  uint32
	addr net.Addr
}

// New returns an FS holding an empty snapshot.
func New() *FS {
	return &FS{snap: &snapshot{}}
}

// snapshot is what one Publish call froze. Served reads only ever see
// a single snapshot value, so they need no locking beyond fetching
// the current pointer.
type snapshot struct {
	gen     uint32
	entries []Entry // ascending ID
	byID    map[int]*Entry
}

// Publish replaces the served snapshot. Call it from the UI
// goroutine, typically after Window.Update; the entries are copied.
func (fs *FS) Publish(entries []Entry) {
	s := &snapshot{
		entries: make([]Entry, len(entries)),
		byID:    make(map[int]*Entry, len(entries)),
	}
	copy(s.entries, entries)
	sort.Slice(s.entries, func(i, j int) bool { return s.entries[i].ID < s.entries[j].ID })
	for i := range s.entries {
		s.byID[s.entries[i].ID] = &s.entries[i]
	}

	fs.mu.Lock()
	fs.gen++
	s.gen = fs.gen
	fs.snap = s
	fs.logLocked(fmt.Sprintf("snapshot %d %d widgets", s.gen, len(s.entries)))
	fs.mu.Unlock()
	logger.Log().Debug().Uint32("gen", s.gen).Int("widgets", len(s.entries)).Msg("fsys publish")
}

// Addr reports the listen address chosen by Post, nil before Post is
// called.
func (fs *FS) Addr() net.Addr {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.addr
}

func (fs *FS) setAddr(a net.Addr) {
	fs.mu.Lock()
	fs.addr = a
	fs.mu.Unlock()
}

func (fs *FS) snapshot() *snapshot {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.snap
}

// logDepth bounds the event log; older lines fall off.
const logDepth = 128

// Logf appends a line to the event log read from the log file.
// Publish records snapshot events itself; applications may add their
// own, such as layout or draw traces.
func (fs *FS) Logf(format string, args ...interface{}) {
	fs.mu.Lock()
	fs.logLocked(fmt.Sprintf(format, args...))
	fs.mu.Unlock()
}

func (fs *FS) logLocked(line string) {
	fs.log = append(fs.log, line)
	if len(fs.log) > logDepth {
		fs.log = fs.log[len(fs.log)-logDepth:]
	}
}

func (fs *FS) logText() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if len(fs.log) == 0 {
		return ""
	}
	return strings.Join(fs.log, "\n") + "\n"
}

func (s *snapshot) entry(id int) *Entry {
	return s.byID[id]
}

func (s *snapshot) ids() []int {
	ids := make([]int, len(s.entries))
	for i := range s.entries {
		ids[i] = s.entries[i].ID
	}
	return ids
}

// fsysVersion names the file layout; bump it when file contents
// change incompatibly.
const fsysVersion = 1

func (s *snapshot) ctlText() string {
	return fmt.Sprintf("%11d %11d %11d \n", fsysVersion, s.gen, len(s.entries))
}

func (s *snapshot) indexText() string {
	var b strings.Builder
	for i := range s.entries {
		b.WriteString(s.entries[i].indexLine())
	}
	return b.String()
}

func (e *Entry) indexLine() string {
	r := e.R
	return fmt.Sprintf("%11d %11d %11d %11d %11d %s %s\n",
		e.ID, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), e.Kind, e.Label)
}

func (e *Entry) geomText() string {
	r := e.R
	return fmt.Sprintf("%11d %11d %11d %11d \n", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (e *Entry) labelText() string {
	return e.Label + "\n"
}

func (e *Entry) flagsText() string {
	return fmt.Sprintf("%#x %v\n", uint32(e.Flags), e.Flags)
}

// Scan walks the widget tree rooted at w and builds snapshot entries
// in draw order. IDs are assigned depth first starting at 1. Scan
// reads live widget state, so call it from the UI goroutine and hand
// the result to Publish.
func Scan(w felt.Widget) []Entry {
	var entries []Entry
	id := 0
	var walk func(n felt.Widget, parent int)
	walk = func(n felt.Widget, parent int) {
		id++
		e := Entry{
			ID:     id,
			Parent: parent,
			Kind:   n.Kind(),
			Label:  n.Label(),
			R:      felt.ScreenRect(n),
			Flags:  n.Flags(),
		}
		entries = append(entries, e)
		if c, ok := n.(felt.Container); ok {
			for _, child := range c.Children() {
				walk(child, e.ID)
			}
		}
	}
	walk(w, 0)
	return entries
}
