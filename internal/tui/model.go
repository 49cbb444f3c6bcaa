// Copyright LIMIT Lab, 2026. All rights reserved.

// Package tui is a terminal browser for the publication list. Facets are
// cycled with the arrow keys; the list is re-evaluated on every change.
// When the mouse rests, a small animation plays at the pointer.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/limitlab/labsite/internal/idle"
	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/internal/theme"
	"github.com/limitlab/labsite/pkg/types"
)

const frameInterval = 150 * time.Millisecond

var sparkFrames = []string{"·", "✦", "✧", "✦"}

type idleMsg idle.Point

type frameMsg struct{}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the initial display preference and the terminal's
// background for System.
func WithTheme(mode theme.Mode, systemDark bool) Option {
	return func(m *Model) {
		m.mode = mode
		m.systemDark = systemDark
	}
}

// WithFilter sets the initial facet selection.
func WithFilter(f publication.Filter) Option {
	return func(m *Model) { m.filter = f.Normalize() }
}

// WithIdle configures the pointer quiescence detector.
func WithIdle(window time.Duration, opts ...idle.Option) Option {
	return func(m *Model) {
		m.idleWindow = window
		m.idleOpts = opts
	}
}

// Model is one browsing session. It owns its filter state.
type Model struct {
	store *publication.Store
	site  types.SiteInfo

	filter  publication.Filter
	focus   int
	cursor  int
	visible []types.Publication

	mode       theme.Mode
	systemDark bool
	styles     styles

	idleWindow time.Duration
	idleOpts   []idle.Option
	detector   *idle.Detector
	idleCh     chan idle.Point
	done       chan struct{}
	resting    bool
	frame      int

	width, height int
}

// New creates a browsing session over store.
func New(store *publication.Store, site types.SiteInfo, opts ...Option) *Model {
	m := &Model{
		store:      store,
		site:       site,
		filter:     publication.NewFilter(),
		mode:       theme.System,
		idleWindow: idle.DefaultWindow,
		idleCh:     make(chan idle.Point, 1),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.styles = newStyles(m.Dark())
	m.detector = idle.New(m.idleWindow, m.notifyIdle, m.idleOpts...)
	m.refresh()
	return m
}

func (m *Model) notifyIdle(p idle.Point) {
	select {
	case m.idleCh <- p:
	default:
	}
}

func (m *Model) waitForIdle() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-m.idleCh:
			return idleMsg(p)
		case <-m.done:
			return nil
		}
	}
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// Filter returns the current facet selection.
func (m *Model) Filter() publication.Filter { return m.filter }

// Visible returns the publications that pass the current filter.
func (m *Model) Visible() []types.Publication { return m.visible }

// Focus returns the facet that arrow keys change.
func (m *Model) Focus() publication.Facet { return publication.FacetOrder[m.focus] }

// Dark reports the resolved display mode.
func (m *Model) Dark() bool { return m.mode.Resolve(m.systemDark) }

// Resting reports whether the idle animation is showing.
func (m *Model) Resting() bool { return m.resting }

func (m *Model) refresh() {
	m.visible = m.store.Evaluate(m.filter)
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// Init starts listening for idle transitions.
func (m *Model) Init() tea.Cmd {
	return m.waitForIdle()
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.MouseMsg:
		m.detector.Move(msg.X, msg.Y)
		m.resting = false
		return m, nil

	case idleMsg:
		m.resting = true
		m.frame = 0
		return m, tea.Batch(nextFrame(), m.waitForIdle())

	case frameMsg:
		if !m.resting {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(sparkFrames)
		return m, nextFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quit()
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % len(publication.FacetOrder)
	case "shift+tab":
		m.focus = (m.focus + len(publication.FacetOrder) - 1) % len(publication.FacetOrder)
	case "right", "l":
		m.step(1)
	case "left", "h":
		m.step(-1)
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "r":
		m.filter = publication.NewFilter()
		m.cursor = 0
		m.refresh()
	case "t":
		m.mode = m.mode.Next()
		m.styles = newStyles(m.Dark())
	}
	return m, nil
}

func (m *Model) step(dir int) {
	facet := m.Focus()
	values := m.store.Facets().Values(facet)
	m.filter = m.filter.With(facet, publication.Cycle(values, m.filter.Value(facet), dir))
	m.cursor = 0
	m.refresh()
}

func (m *Model) quit() {
	select {
	case <-m.done:
	default:
		close(m.done)
	}
	m.detector.Stop()
}

// View renders the session.
func (m *Model) View() string {
	var b strings.Builder
	s := m.styles

	b.WriteString(s.title.Render(m.site.Name+" · Publications") + "\n")
	if m.site.Tagline != "" {
		b.WriteString(s.tagline.Render(m.site.Tagline) + "\n")
	}
	b.WriteString("\n")

	boxes := make([]string, 0, len(publication.FacetOrder))
	for i, facet := range publication.FacetOrder {
		label := facet.Label() + ": " + displayValue(m.filter.Value(facet))
		if i == m.focus {
			boxes = append(boxes, s.facetActive.Render("◂ "+label+" ▸"))
		} else {
			boxes = append(boxes, s.facet.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...) + "\n")
	b.WriteString(s.help.Render(fmt.Sprintf("%d of %d publications", len(m.visible), m.store.Len())) + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString(s.empty.Render("No publications match the selected filters.") + "\n")
	}
	for i, p := range m.visible {
		line := "[" + strconv.Itoa(p.ID) + "] " + p.Title
		meta := p.Authors + " · " + p.Conference + " " + strconv.Itoa(p.Year) + " · " + p.Field
		if i == m.cursor {
			b.WriteString(s.itemCursor.Render(line) + "\n")
		} else {
			b.WriteString(s.item.Render(line) + "\n")
		}
		b.WriteString(s.meta.Render(meta) + "\n")
	}

	b.WriteString("\n" + s.help.Render("tab facet · ←/→ value · ↑/↓ move · r reset · t theme ("+string(m.mode)+") · q quit"))
	if m.resting {
		b.WriteString("  " + s.spark.Render(sparkFrames[m.frame]))
	}
	return b.String()
}

func displayValue(v string) string {
	if v == publication.All {
		return "All"
	}
	return v
}

// Run starts the interactive browser and blocks until the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	m.quit()
	if err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
