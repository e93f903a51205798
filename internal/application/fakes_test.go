package application

import (
	"time"

	"aliashist/internal/domain"
	"aliashist/internal/ports"
)

// fakeTimer records stop/fire state for a scheduled callback.
type fakeTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler collects timers so tests can elapse time by hand.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) After(d time.Duration, fn func()) ports.Timer {
	timer := &fakeTimer{fn: fn}
	s.timers = append(s.timers, timer)
	return timer
}

// fire runs every armed timer that has not been stopped, simulating the
// debounce duration elapsing.
func (s *fakeScheduler) fire() {
	for _, timer := range s.timers {
		if timer.stopped || timer.fired {
			continue
		}
		timer.fired = true
		timer.fn()
	}
}

// fakeVault resolves from a fixed path set.
type fakeVault struct {
	files map[string]bool
}

func newFakeVault(paths ...string) *fakeVault {
	v := &fakeVault{files: make(map[string]bool)}
	for _, p := range paths {
		v.files[p] = true
	}
	return v
}

func (v *fakeVault) Resolve(path string) *ports.File {
	if !v.files[path] {
		return nil
	}
	return &ports.File{
		Path:      path,
		Basename:  domain.Basename(path),
		Extension: "md",
	}
}

// fakeMeta is a map-free Metadata view over a single alias list.
type fakeMeta struct {
	list    []string
	has     bool
	changed bool
}

func (m *fakeMeta) HasList(key string) bool {
	return m.has
}

func (m *fakeMeta) StringList(key string) ([]string, bool) {
	if !m.has {
		return nil, false
	}
	return m.list, true
}

func (m *fakeMeta) SetStringList(key string, values []string) {
	m.list = values
	m.has = true
	m.changed = true
}

// fakeEditor implements ports.MetadataEditor over in-memory alias lists and
// counts committed writes.
type fakeEditor struct {
	lists  map[string][]string
	exists map[string]bool
	writes int
}

func newFakeEditor() *fakeEditor {
	return &fakeEditor{
		lists:  make(map[string][]string),
		exists: make(map[string]bool),
	}
}

func (e *fakeEditor) setList(path string, aliases ...string) {
	e.lists[path] = aliases
	e.exists[path] = true
}

func (e *fakeEditor) Update(path string, mutate func(meta ports.Metadata) bool) error {
	meta := &fakeMeta{
		list: append([]string(nil), e.lists[path]...),
		has:  e.exists[path],
	}
	if mutate(meta) && meta.changed {
		e.lists[path] = meta.list
		e.exists[path] = true
		e.writes++
	}
	return nil
}

func (e *fakeEditor) Read(path string, view func(meta ports.Metadata)) error {
	view(&fakeMeta{
		list: append([]string(nil), e.lists[path]...),
		has:  e.exists[path],
	})
	return nil
}
