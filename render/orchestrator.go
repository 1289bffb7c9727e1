// Package render draws engine snapshots onto a tcell screen
package render

import "github.com/gdamore/tcell/v2"

// Renderer draws one layer of a frame
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	view      Viewport
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(w, h),
		view:      NewViewport(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the full game layer stack
func NewDefaultOrchestrator(screen tcell.Screen, showStats bool) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(&StarfieldRenderer{}, PriorityBackground)
	o.Register(&BorderRenderer{}, PriorityBorder)
	o.Register(&ExplosionRenderer{}, PriorityEffects)
	o.Register(&EntityRenderer{}, PriorityEntities)
	o.Register(&BossRenderer{}, PriorityEntities)
	o.Register(&PlayerRenderer{}, PriorityPlayer)
	o.Register(&HUDRenderer{}, PriorityUI)
	o.Register(&StatsRenderer{Enabled: showStats}, PriorityUI)
	o.Register(&GameOverRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer and viewport, then syncs the screen
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.view = NewViewport(width, height)
	o.screen.Sync()
}

// Viewport returns the current playfield mapping
func (o *Orchestrator) Viewport() Viewport {
	return o.view
}

// Buffer exposes the composed frame
func (o *Orchestrator) Buffer() *Buffer {
	return o.buffer
}

// Compose runs every visible renderer into the buffer without touching the screen
func (o *Orchestrator) Compose(ctx Context) {
	ctx.View = o.view
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}
}

// RenderFrame composes the frame and flushes it to the screen
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.Compose(ctx)
	o.buffer.Flush(o.screen)
}
