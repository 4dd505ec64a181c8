package region

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"mosaic/internal/util"
	"mosaic/internal/view"
	"mosaic/internal/viewmodel"
)

var (
	regionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	regionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyRegionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true)
)

// Shell is an in-memory region substrate. It implements [Manager] and
// [ViewQuery] and renders its regions side by side with lipgloss.
// Safe for concurrent use.
type Shell struct {
	mu      sync.RWMutex
	order   []string
	regions map[string]*shellRegion
}

// NewShell creates a shell with one region per name, in the given order.
func NewShell(names ...string) *Shell {
	s := &Shell{regions: make(map[string]*shellRegion)}
	for _, name := range names {
		s.AddRegion(name)
	}
	return s
}

// AddRegion creates and registers an empty region. Adding a name that
// already exists returns the existing region.
func (s *Shell) AddRegion(name string) Region {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.regions[name]; ok {
		return r
	}
	r := &shellRegion{name: name}
	s.regions[name] = r
	s.order = append(s.order, name)
	return r
}

// Region implements [Manager].
func (s *Shell) Region(name string) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.regions[name]
	return r, ok
}

// RegionNames returns the region names in registration order.
func (s *Shell) RegionNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ViewsOf implements [ViewQuery] by scanning every region for views
// bound to vm.
func (s *Shell) ViewsOf(vm viewmodel.ViewModel) []Placed {
	if vm == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var placed []Placed
	for _, name := range s.order {
		r := s.regions[name]
		for _, v := range r.Views() {
			bound := v.ViewModel()
			if bound != nil && bound.ViewModelID() == vm.ViewModelID() {
				placed = append(placed, Placed{View: v, RegionName: name, Region: r})
			}
		}
	}
	return placed
}

// Render draws every region as a bordered box, joined horizontally.
// Each box shows the region title and the rendered output of its active
// views.
func (s *Shell) Render(width int) string {
	s.mu.RLock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	s.mu.RUnlock()

	if len(names) == 0 {
		return ""
	}

	boxWidth := width/len(names) - 2
	if boxWidth < 10 {
		boxWidth = 10
	}

	boxes := make([]string, 0, len(names))
	for _, name := range names {
		r, ok := s.Region(name)
		if !ok {
			continue
		}

		// Border and padding eat four columns of the box width.
		contentWidth := boxWidth - 4

		var b strings.Builder
		b.WriteString(util.TruncateANSI(regionTitleStyle.Render(name), contentWidth))
		b.WriteString("\n")

		active := r.ActiveViews()
		if len(active) == 0 {
			b.WriteString(emptyRegionStyle.Render("(empty)"))
		} else {
			for i, v := range active {
				if i > 0 {
					b.WriteString("\n")
				}
				for j, line := range strings.Split(v.View(), "\n") {
					if j > 0 {
						b.WriteString("\n")
					}
					b.WriteString(util.TruncateANSI(line, contentWidth))
				}
			}
		}

		boxes = append(boxes, regionBoxStyle.Width(boxWidth).Render(b.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// shellRegion is the in-memory Region implementation backing a Shell.
type shellRegion struct {
	mu     sync.RWMutex
	name   string
	views  []view.View
	active []view.View
}

func (r *shellRegion) Name() string { return r.name }

func (r *shellRegion) Views() []view.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]view.View, len(r.views))
	copy(out, r.views)
	return out
}

func (r *shellRegion) ActiveViews() []view.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]view.View, len(r.active))
	copy(out, r.active)
	return out
}

func (r *shellRegion) Add(v view.View) {
	if v == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if Contains(r.views, v) {
		return
	}
	r.views = append(r.views, v)
}

func (r *shellRegion) Activate(v view.View) {
	if v == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !Contains(r.views, v) || Contains(r.active, v) {
		return
	}
	r.active = append(r.active, v)
}

func (r *shellRegion) Deactivate(v view.View) {
	if v == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = removeView(r.active, v)
}

func (r *shellRegion) Remove(v view.View) {
	if v == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = removeView(r.active, v)
	r.views = removeView(r.views, v)
}

// removeView drops the view bound to the same view-model as target.
func removeView(vs []view.View, target view.View) []view.View {
	for i, v := range vs {
		if view.Same(v, target) {
			return append(vs[:i], vs[i+1:]...)
		}
	}
	return vs
}
