// Package memory provides an in-memory reference host used by tests and
// the CLI harness. It mirrors scroll and cursor between bound views the way
// a real editor's scroll-binding would.
package memory

import (
	"fmt"
	"sync"

	"github.com/viant/repline/internal/idgen"
	"github.com/viant/repline/service/host"
)

// View is an in-memory pane.
type View struct {
	id       string
	filetype string
	lines    []string
	top      int
	offset   int
	line     int
	column   int
	width    int
	options  map[string]interface{}
	service  *Service

	// OnSetLines, when set, runs synchronously after content replacement;
	// tests use it to simulate focus-change side effects of rendering.
	OnSetLines func(view *View)
}

func (v *View) ID() string                 { return v.id }
func (v *View) Filetype() string           { return v.filetype }
func (v *View) SetFiletype(filetype string) { v.filetype = filetype }

func (v *View) Lines() []string { return append([]string(nil), v.lines...) }

func (v *View) SetLines(lines []string) {
	v.lines = append([]string(nil), lines...)
	if v.OnSetLines != nil {
		v.OnSetLines(v)
	}
}

func (v *View) Scroll() (int, int) { return v.top, v.offset }

func (v *View) SetScroll(top int) {
	v.top = top
	v.service.mirror(v, func(peer *View) { peer.top = top })
}

func (v *View) Cursor() (int, int) { return v.line, v.column }

func (v *View) SetCursor(line, column int) {
	v.line, v.column = line, column
	v.service.mirror(v, func(peer *View) { peer.line, peer.column = line, column })
}

func (v *View) Width() int         { return v.width }
func (v *View) SetWidth(width int) { v.width = width }

func (v *View) Option(name string) (interface{}, bool) {
	value, ok := v.options[name]
	return value, ok
}

func (v *View) SetOption(name string, value interface{}) {
	v.options[name] = value
}

// Service is the in-memory host.
type Service struct {
	mux      sync.RWMutex
	views    map[string]*View
	bindings map[string]string // sourceID -> companionID, both directions
}

// New creates an empty in-memory host.
func New() *Service {
	return &Service{
		views:    make(map[string]*View),
		bindings: make(map[string]string),
	}
}

// NewView allocates a source pane with the supplied content.
func (s *Service) NewView(filetype string, width int, lines ...string) *View {
	view := &View{
		id:       idgen.New(),
		filetype: filetype,
		lines:    append([]string(nil), lines...),
		width:    width,
		line:     1,
		options:  make(map[string]interface{}),
		service:  s,
	}
	s.mux.Lock()
	s.views[view.id] = view
	s.mux.Unlock()
	return view
}

func (s *Service) View(id string) (host.View, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	view, ok := s.views[id]
	if !ok {
		return nil, false
	}
	return view, true
}

func (s *Service) CreateCompanion(source host.View, companion host.Companion) (host.View, error) {
	if source == nil {
		return nil, fmt.Errorf("source view is required")
	}
	view := s.NewView(source.Filetype(), companion.Width)
	return view, nil
}

func (s *Service) CloseView(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.views, id)
	if peer, ok := s.bindings[id]; ok {
		delete(s.bindings, id)
		delete(s.bindings, peer)
	}
	return nil
}

func (s *Service) Bind(sourceID, companionID string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.views[sourceID]; !ok {
		return fmt.Errorf("unknown view %v", sourceID)
	}
	if _, ok := s.views[companionID]; !ok {
		return fmt.Errorf("unknown view %v", companionID)
	}
	s.bindings[sourceID] = companionID
	s.bindings[companionID] = sourceID
	return nil
}

func (s *Service) Unbind(sourceID, companionID string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.bindings, sourceID)
	delete(s.bindings, companionID)
	return nil
}

// mirror applies fn to the view bound to origin, if any.
func (s *Service) mirror(origin *View, fn func(peer *View)) {
	if s == nil {
		return
	}
	s.mux.RLock()
	peerID, ok := s.bindings[origin.id]
	peer := s.views[peerID]
	s.mux.RUnlock()
	if !ok || peer == nil {
		return
	}
	fn(peer)
}

var _ host.Host = (*Service)(nil)
