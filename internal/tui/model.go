package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"mosaic/internal/compose"
	"mosaic/internal/config"
	"mosaic/internal/dispatch"
	"mosaic/internal/event"
	"mosaic/internal/logging"
	"mosaic/internal/region"
)

// Model is the demo shell's bubbletea model. It owns the region
// substrate and drives the composition coordinator from key presses, so
// every coordinator operation can be exercised interactively.
type Model struct {
	shell  *region.Shell
	coord  *compose.Coordinator
	logger *logging.Logger
	th     theme

	// noteRegion hosts notes and their attached workers; poolRegion
	// hosts standalone workers.
	noteRegion string
	poolRegion string

	notes    []*noteVM
	selected int
	made     int

	width  int
	height int
	status string
}

// NewModel wires the shell, registry, bus, and coordinator for the
// demo. The dispatcher is injected so the app can run the coordinator
// on its UI loop while tests use a direct dispatcher.
func NewModel(cfg *config.Config, logger *logging.Logger, d dispatch.Dispatcher) (Model, error) {
	if len(cfg.Shell.Regions) == 0 {
		return Model{}, fmt.Errorf("tui: at least one region is required")
	}
	shell := region.NewShell(cfg.Shell.Regions...)

	reg, err := newRegistry()
	if err != nil {
		return Model{}, err
	}

	bus := event.NewBus()
	log := logger.WithComponent("tui")
	bus.SubscribeAll(func(e event.Event) {
		log.Debug("composition event", "type", e.EventType())
	})

	coord, err := compose.New(compose.Config{
		Regions:    shell,
		Views:      shell,
		Resolver:   reg,
		Dispatcher: d,
	}, compose.WithLogger(logger), compose.WithBus(bus))
	if err != nil {
		return Model{}, err
	}

	m := Model{
		shell:      shell,
		coord:      coord,
		logger:     log,
		th:         themeByName(cfg.Shell.Theme),
		noteRegion: cfg.Shell.Regions[0],
		poolRegion: cfg.Shell.Regions[len(cfg.Shell.Regions)-1],
		width:      cfg.Shell.Width,
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+n":
			return m.addNote()
		case "ctrl+w":
			return m.addWorker()
		case "ctrl+b":
			return m.addPoolWorker()
		case "ctrl+d":
			return m.deactivateSelected()
		case "ctrl+r":
			return m.reactivateSelected()
		case "ctrl+x":
			return m.closeSelected()
		case "tab":
			return m.cycleSelection(1)
		case "shift+tab":
			return m.cycleSelection(-1)
		}
	}

	return m, m.forward(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.th.titleStyle().Render("mosaic"))
	b.WriteString("\n\n")

	width := m.width
	if width <= 0 {
		width = 80
	}
	b.WriteString(m.shell.Render(width))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.th.statusStyle().Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.th.helpStyle().Render(
		"^n note  ^w worker  ^b pool worker  ^d deactivate  ^r reactivate  ^x close  tab select  esc quit"))
	return b.String()
}

func (m Model) addNote() (Model, tea.Cmd) {
	m.made++
	vm := newNoteVM(fmt.Sprintf("note %d", m.made))
	if err := m.coord.Activate(vm, m.noteRegion); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.notes = append(m.notes, vm)
	m.selected = len(m.notes) - 1
	m.status = fmt.Sprintf("added %s", vm.title)

	cmds := []tea.Cmd{m.refocus()}
	if b, ok := m.coord.Binding(vm); ok {
		cmds = append(cmds, b.View.Init())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) addWorker() (Model, tea.Cmd) {
	parent, ok := m.selectedNote()
	if !ok {
		m.status = "no note selected"
		return m, nil
	}

	vm := newWorkerVM(fmt.Sprintf("worker for %s", parent.title))
	if err := m.coord.ActivateWithParent(vm, parent, m.noteRegion); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("attached worker to %s", parent.title)

	if b, ok := m.coord.Binding(vm); ok {
		return m, b.View.Init()
	}
	return m, nil
}

func (m Model) addPoolWorker() (Model, tea.Cmd) {
	m.made++
	vm := newWorkerVM(fmt.Sprintf("job %d", m.made))
	if err := m.coord.ActivateInRegion(vm, m.poolRegion); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("started %s", vm.label)

	if b, ok := m.coord.Binding(vm); ok {
		return m, b.View.Init()
	}
	return m, nil
}

func (m Model) deactivateSelected() (Model, tea.Cmd) {
	vm, ok := m.selectedNote()
	if !ok {
		return m, nil
	}
	if err := m.coord.Deactivate(vm); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("deactivated %s", vm.title)
	return m, nil
}

func (m Model) reactivateSelected() (Model, tea.Cmd) {
	vm, ok := m.selectedNote()
	if !ok {
		return m, nil
	}
	if err := m.coord.Reactivate(vm); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("reactivated %s", vm.title)
	return m, nil
}

func (m Model) closeSelected() (Model, tea.Cmd) {
	vm, ok := m.selectedNote()
	if !ok {
		return m, nil
	}

	// Close the note's workers first, then the note. The coordinator
	// removes each one's view through its close notification.
	for _, child := range vm.Children() {
		if w, isWorker := child.(*workerVM); isWorker {
			w.Close()
		}
	}
	vm.Close()

	m.notes = append(m.notes[:m.selected], m.notes[m.selected+1:]...)
	if m.selected >= len(m.notes) {
		m.selected = len(m.notes) - 1
	}
	m.status = fmt.Sprintf("closed %s", vm.title)
	return m, m.refocus()
}

func (m Model) cycleSelection(delta int) (Model, tea.Cmd) {
	if len(m.notes) == 0 {
		return m, nil
	}
	m.selected = (m.selected + delta + len(m.notes)) % len(m.notes)
	m.status = fmt.Sprintf("selected %s", m.notes[m.selected].title)
	return m, m.refocus()
}

func (m Model) selectedNote() (*noteVM, bool) {
	if m.selected < 0 || m.selected >= len(m.notes) {
		return nil, false
	}
	return m.notes[m.selected], true
}

// refocus moves textinput focus to the selected note's view.
func (m Model) refocus() tea.Cmd {
	var cmd tea.Cmd
	for i, vm := range m.notes {
		b, ok := m.coord.Binding(vm)
		if !ok {
			continue
		}
		nv, isNote := b.View.(*noteView)
		if !isNote {
			continue
		}
		if i == m.selected {
			cmd = nv.focus()
		} else {
			nv.blur()
		}
	}
	return cmd
}

// forward delivers msg to every member view so spinners tick and the
// focused input receives keystrokes.
func (m Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, name := range m.shell.RegionNames() {
		r, ok := m.shell.Region(name)
		if !ok {
			continue
		}
		for _, v := range r.Views() {
			if _, cmd := v.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}
