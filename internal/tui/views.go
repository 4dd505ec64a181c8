package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mosaic/internal/view"
	"mosaic/internal/viewmodel"
)

// noteVM is the demo's primary view-model: an editable note placed in
// the first region.
type noteVM struct {
	*viewmodel.Base
	viewmodel.Relations
	title string
}

func newNoteVM(title string) *noteVM {
	return &noteVM{Base: viewmodel.NewBase(), title: title}
}

// workerVM is a child view-model representing background work attached
// to a note.
type workerVM struct {
	*viewmodel.Base
	viewmodel.Relations
	label string
}

func newWorkerVM(label string) *workerVM {
	return &workerVM{Base: viewmodel.NewBase(), label: label}
}

// noteView renders a note with a textinput editor.
type noteView struct {
	vm    *noteVM
	input textinput.Model
}

func newNoteView(vm *noteVM) *noteView {
	in := textinput.New()
	in.Placeholder = "type a note"
	in.CharLimit = 120
	in.Width = 24
	return &noteView{vm: vm, input: in}
}

func (v *noteView) Init() tea.Cmd { return textinput.Blink }

func (v *noteView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *noteView) View() string {
	return fmt.Sprintf("%s\n%s", v.vm.title, v.input.View())
}

func (v *noteView) ViewModel() viewmodel.ViewModel { return v.vm }

func (v *noteView) focus() tea.Cmd { return v.input.Focus() }
func (v *noteView) blur()          { v.input.Blur() }

// workerView renders a worker with a spinner.
type workerView struct {
	vm   *workerVM
	spin spinner.Model
}

func newWorkerView(vm *workerVM) *workerView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &workerView{vm: vm, spin: s}
}

func (v *workerView) Init() tea.Cmd { return v.spin.Tick }

func (v *workerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	v.spin, cmd = v.spin.Update(msg)
	return v, cmd
}

func (v *workerView) View() string {
	return fmt.Sprintf("%s %s", v.spin.View(), v.vm.label)
}

func (v *workerView) ViewModel() viewmodel.ViewModel { return v.vm }

// newRegistry builds the demo's view registry.
func newRegistry() (*view.Registry, error) {
	reg := view.NewRegistry()
	if err := reg.Register(&noteVM{}, func(vm viewmodel.ViewModel) view.View {
		return newNoteView(vm.(*noteVM))
	}); err != nil {
		return nil, err
	}
	if err := reg.Register(&workerVM{}, func(vm viewmodel.ViewModel) view.View {
		return newWorkerView(vm.(*workerVM))
	}); err != nil {
		return nil, err
	}
	return reg, nil
}
