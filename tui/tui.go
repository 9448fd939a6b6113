// tui/tui.go
// Package tui provides the interactive fragment browser for the sidenav
// application: a full-screen view over the sidebar fragments of a
// documentation tree, for authors inspecting what a rebuild produced.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/sidenav/internal/appconfig"
	"github.com/mwiater/sidenav/internal/doctree"
	"github.com/mwiater/sidenav/internal/sidebar"
	"github.com/mwiater/sidenav/internal/util"
)

// Config represents the shared application configuration for the browser.
type Config = appconfig.Config

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewLoading is the state while fragments are being scanned.
	viewLoading viewState = iota
	// viewPagePicker is the state where the user selects a page.
	viewPagePicker
	// viewEntryPicker is the state where the user selects a symbol.
	viewEntryPicker
	// viewDetail is the state showing one symbol's full description.
	viewDetail
)

// page couples a page path with its parsed fragment.
type page struct {
	path string
	idx  *sidebar.Index
}

// model is the main application model for the Bubble Tea UI.
type model struct {
	ctx           context.Context
	config        *Config
	target        string
	state         viewState
	isLoading     bool
	err           error
	pages         []page
	selectedPage  page
	selectedRef   doctree.SymbolRef
	pageList      list.Model
	entryList     list.Model
	viewport      viewport.Model
	spinner       spinner.Model
	width, height int
	loadStart     time.Time
}

// initialModel creates and initializes a new model with default values.
func initialModel(ctx context.Context, cfg *Config, target string) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	pageList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	pageList.Title = "Select a Page"

	return &model{
		ctx:       ctx,
		config:    cfg,
		target:    target,
		state:     viewLoading,
		isLoading: true,
		loadStart: time.Now(),
		spinner:   s,
		pageList:  pageList,
		entryList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		viewport:  viewport.New(100, 5),
	}
}

// item represents a selectable item in a Bubble Tea list.
type item struct {
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

// pagesReadyMsg is a message sent when every fragment has been scanned and
// parsed.
type pagesReadyMsg struct {
	pages []page
}

// pagesLoadErr is a message sent when scanning the target fails.
type pagesLoadErr struct{ error }

// loadPagesCmd creates a Bubble Tea command that loads the target: a single
// fragment file becomes a one-page listing, a directory is scanned for every
// fragment beneath it.
func loadPagesCmd(ctx context.Context, cfg *Config, target string) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(target)
		if err != nil {
			return pagesLoadErr{error: err}
		}

		if !info.IsDir() {
			data, err := os.ReadFile(target)
			if err != nil {
				return pagesLoadErr{error: err}
			}
			idx, err := sidebar.Parse(data)
			if err != nil {
				return pagesLoadErr{error: err}
			}
			return pagesReadyMsg{pages: []page{{path: target, idx: idx}}}
		}

		workers := 0
		if cfg != nil {
			workers = cfg.ScanWorkers()
		}
		tree, err := doctree.Scan(ctx, os.DirFS(filepath.Dir(target)), filepath.Base(target), doctree.Options{Workers: workers})
		if err != nil {
			return pagesLoadErr{error: err}
		}
		pages := make([]page, 0, len(tree.Pages()))
		for _, p := range tree.Pages() {
			pages = append(pages, page{path: p, idx: tree.Fragment(p)})
		}
		if len(pages) == 0 {
			return pagesLoadErr{error: fmt.Errorf("no sidebar fragments under %q", target)}
		}
		return pagesReadyMsg{pages: pages}
	}
}

// Init initializes the Bubble Tea model and starts the scan and the spinner.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadPagesCmd(m.ctx, m.config, m.target))
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			switch m.state {
			case viewDetail:
				m.state = viewEntryPicker
				return m, nil
			case viewEntryPicker:
				if len(m.pages) > 1 {
					m.state = viewPagePicker
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.pageList.SetSize(msg.Width-2, msg.Height-4)
		m.entryList.SetSize(msg.Width-2, msg.Height-4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case pagesReadyMsg:
		m.isLoading = false
		m.pages = msg.pages
		if len(m.pages) == 1 {
			m.selectPage(m.pages[0])
			return m, nil
		}
		items := make([]list.Item, len(m.pages))
		for i, p := range m.pages {
			items[i] = item{title: p.path, desc: fmt.Sprintf("%d entries", p.idx.Len())}
		}
		m.pageList.SetItems(items)
		m.state = viewPagePicker
		return m, nil

	case pagesLoadErr:
		m.isLoading = false
		m.err = msg.error
		return m, nil
	}

	switch m.state {
	case viewPagePicker:
		m.pageList, cmd = m.pageList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if _, ok := m.pageList.SelectedItem().(item); ok {
				m.selectPage(m.pages[m.pageList.Index()])
			}
		}

	case viewEntryPicker:
		m.entryList, cmd = m.entryList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selected, ok := m.entryList.SelectedItem().(item); ok {
				if cat, e, found := m.selectedPage.idx.Lookup(selected.Title()); found {
					m.selectedRef = doctree.SymbolRef{Page: m.selectedPage.path, Category: cat, Entry: e}
					m.viewport.SetContent(m.detailContent())
					m.viewport.GotoTop()
					m.state = viewDetail
				}
			}
		}

	case viewDetail:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// selectPage populates the entry list for a page and switches to it.
func (m *model) selectPage(p page) {
	m.selectedPage = p
	items := make([]list.Item, 0, p.idx.Len())
	for _, s := range p.idx.Sections() {
		for _, e := range s.Entries {
			items = append(items, item{
				title: e.Name,
				desc:  fmt.Sprintf("%s — %s", s.Category, util.TruncateRunes(e.PlainDescription(), 60)),
			})
		}
	}
	m.entryList.SetItems(items)
	m.entryList.Title = fmt.Sprintf("%s (%d entries)", p.path, p.idx.Len())
	m.state = viewEntryPicker
}

// detailContent renders the selected symbol for the detail viewport.
func (m *model) detailContent() string {
	ref := m.selectedRef
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", ref.Category, ref.Entry.Name)
	width := util.Max(m.viewport.Width, 20)
	b.WriteString(util.WrapToWidth(ref.Entry.PlainDescription(), width))
	if refs := ref.Entry.CrossRefs(); len(refs) > 0 {
		b.WriteString("\n\nSee also:\n")
		for _, r := range refs {
			fmt.Fprintf(&b, "  %s\n", r)
		}
	}
	return b.String()
}

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.isLoading {
		timer := fmt.Sprintf("%.1f", time.Since(m.loadStart).Seconds())
		return fmt.Sprintf("\n  %s Scanning fragments... %ss\n", m.spinner.View(), timer)
	}

	switch m.state {
	case viewPagePicker:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.pageList.View())
	case viewEntryPicker:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.entryList.View())
	case viewDetail:
		header := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1).
			Render(fmt.Sprintf("Page: %s", m.selectedRef.Page))
		footer := lipgloss.NewStyle().Faint(true).Render("esc: back  q: quit")
		return fmt.Sprintf("%s\n\n%s\n\n%s", header, m.viewport.View(), footer)
	default:
		return "Unknown state"
	}
}

// Run starts the fragment browser over the given target, which may be a
// single fragment file or a documentation root.
func Run(ctx context.Context, cfg *Config, target string) error {
	m := initialModel(ctx, cfg, target)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
