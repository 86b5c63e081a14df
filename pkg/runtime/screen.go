package runtime

import (
	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/theme"
)

// Layer represents a layer in the modal stack.
// Each layer has its own widget tree and focus scope.
type Layer struct {
	Root       Widget
	FocusScope *FocusScope
	Modal      bool // If true, blocks input to layers below
}

// Screen manages the widget tree, modal stack, and the cell grid the
// tree renders into.
type Screen struct {
	width, height int
	layers        []*Layer
	buffer        *grid.Buffer
	theme         *theme.Theme
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.DefaultTheme()
	}
	w, h = max(w, 0), max(h, 0)

	// Dimensions are clamped non-negative, so this cannot fail.
	buffer, _ := grid.NewBuffer(w, h)

	return &Screen{
		width:  w,
		height: h,
		buffer: buffer,
		theme:  th,
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions.
func (s *Screen) Resize(w, h int) {
	s.width, s.height = max(w, 0), max(h, 0)
	s.buffer.Resize(s.width, s.height)

	// Re-layout all layers
	bounds := grid.Rect{X: 0, Y: 0, Width: s.width, Height: s.height}
	for _, layer := range s.layers {
		if layer.Root != nil {
			layer.Root.Layout(bounds)
		}
	}
}

// Buffer returns the cell grid layers render into.
func (s *Screen) Buffer() *grid.Buffer {
	return s.buffer
}

// Theme returns the current theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// SetTheme changes the theme.
func (s *Screen) SetTheme(th *theme.Theme) {
	if th != nil {
		s.theme = th
	}
}

// SetRoot sets the root widget of the base layer.
// Creates the base layer if it doesn't exist.
func (s *Screen) SetRoot(root Widget) {
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{
			Root:       root,
			FocusScope: NewFocusScope(),
			Modal:      false,
		})
	} else {
		s.layers[0].Root = root
	}

	if root != nil {
		root.Layout(grid.Rect{X: 0, Y: 0, Width: s.width, Height: s.height})
	}
}

// Root returns the base layer's root widget.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer adds a new layer on top of the stack.
// If modal is true, input won't pass to layers below.
func (s *Screen) PushLayer(root Widget, modal bool) {
	layer := &Layer{
		Root:       root,
		FocusScope: NewFocusScope(),
		Modal:      modal,
	}
	s.layers = append(s.layers, layer)

	if root != nil {
		root.Layout(grid.Rect{X: 0, Y: 0, Width: s.width, Height: s.height})
	}
}

// PopLayer removes the top layer from the stack.
// Returns false if only the base layer remains (can't pop it).
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}

	top := s.layers[len(s.layers)-1]
	top.FocusScope.ClearFocus()

	s.layers = s.layers[:len(s.layers)-1]
	return true
}

// TopLayer returns the topmost layer.
func (s *Screen) TopLayer() *Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

// FocusScope returns the focus scope of the top layer.
func (s *Screen) FocusScope() *FocusScope {
	if top := s.TopLayer(); top != nil {
		return top.FocusScope
	}
	return nil
}

// Render draws all layers into the buffer, bottom to top. The buffer
// holds the complete desired frame afterwards; diffing against what
// the terminal currently shows is the compositor's job, not ours.
func (s *Screen) Render() {
	s.buffer.Clear()

	ctx := RenderContext{
		Buffer:  s.buffer,
		Theme:   s.theme,
		Style:   s.theme.Background,
		Focused: false,
		Bounds:  grid.Rect{X: 0, Y: 0, Width: s.width, Height: s.height},
	}

	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}

		// Only the top layer contains focus.
		ctx.Focused = i == len(s.layers)-1

		layer.Root.Render(ctx)
	}
}

// HandleMessage dispatches a message to the appropriate layer.
// Messages go to the top layer. If not handled and not modal,
// they bubble down to lower layers.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if layer.Root == nil {
			continue
		}

		result := layer.Root.HandleMessage(msg)

		for _, cmd := range result.Commands {
			s.handleCommand(cmd)
		}

		if result.Handled {
			return result
		}

		// If modal, don't pass to lower layers
		if layer.Modal {
			break
		}
	}

	return Unhandled()
}

// handleCommand processes the commands a screen can satisfy on its
// own. Everything else bubbles up to the App.
func (s *Screen) handleCommand(cmd Command) {
	switch c := cmd.(type) {
	case FocusNext:
		if scope := s.FocusScope(); scope != nil {
			scope.FocusNext()
		}
	case FocusPrev:
		if scope := s.FocusScope(); scope != nil {
			scope.FocusPrev()
		}
	case PopOverlay:
		s.PopLayer()
	case PushOverlay:
		s.PushLayer(c.Widget, c.Modal)
	}
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *grid.Buffer
	Theme   *theme.Theme
	Style   grid.Style // Style inherited from the parent widget
	Focused bool       // Is the containing layer focused?
	Bounds  grid.Rect  // Widget's allocated bounds
}

// Sub creates a new context for a child widget with adjusted bounds.
// The inherited style carries through unchanged.
func (ctx RenderContext) Sub(bounds grid.Rect) RenderContext {
	sub := ctx
	sub.Bounds = bounds
	return sub
}

// WithStyle replaces the inherited style for child widgets.
func (ctx RenderContext) WithStyle(style grid.Style) RenderContext {
	ctx.Style = style
	return ctx
}

// SubBuffer returns a buffer view clipped to the context bounds.
func (ctx RenderContext) SubBuffer() *grid.SubBuffer {
	return ctx.Buffer.Sub(ctx.Bounds)
}
