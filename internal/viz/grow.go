package viz

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/growlab/internal/anim"
	"github.com/san-kum/growlab/internal/config"
	"github.com/san-kum/growlab/internal/plot"
)

const (
	defaultCanvasW = 80
	defaultCanvasH = 24
	statsPanelW    = 46
)

// TickMsg is one animation frame. It carries the handle of the animation
// it belongs to, so ticks from a superseded animation are recognised and
// dropped instead of driving the new one.
type TickMsg struct {
	Handle *anim.Handle
}

// GrowModel animates a plot growing batch by batch.
type GrowModel struct {
	cfg   *config.Config
	title string

	res     *plot.Result
	lengths []float64
	status  string // non-empty when the run failed

	canvas  *Canvas
	surface *CanvasSurface
	sched   *anim.Scheduler
	handle  *anim.Handle

	paused bool
	done   bool
	sized  bool

	recording bool
	gifPath   string
	frames    []*image.Paletted
	showHelp  bool
}

// NewGrow runs the pipeline for cfg and prepares the animation. A failed
// run is not fatal: the model shows the error as its status and stays
// interactive. Pass zero width/height to start with the default canvas
// until the first window size message arrives.
func NewGrow(cfg *config.Config, title string, width, height int) GrowModel {
	if cfg.Theme != "" {
		SetTheme(cfg.Theme)
	}

	m := GrowModel{cfg: cfg, title: title, gifPath: "growth.gif"}
	cw, ch := defaultCanvasW, defaultCanvasH
	if width > 0 && height > 0 {
		cw, ch = canvasDims(width, height)
		m.sized = true
	}
	m.canvas = NewCanvas(cw, ch)

	res, err := plot.Run(cfg.PlotConfig())
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.res = res

	if lengths, err := plot.Growth(cfg.PlotConfig()); err == nil {
		m.lengths = make([]float64, len(lengths))
		for i, l := range lengths {
			m.lengths[i] = float64(l)
		}
	}

	m.surface = NewSurface(m.canvas, res.Segments)
	m.sched = anim.NewScheduler(m.surface)
	m.handle = m.sched.Start(res.Segments, cfg.AnimOptions())
	return m
}

func canvasDims(termW, termH int) (int, int) {
	cw := termW - statsPanelW - 6
	ch := termH - 4
	if cw < 20 {
		cw = 20
	}
	if ch < 8 {
		ch = 8
	}
	return cw, ch
}

func (m GrowModel) tick(h *anim.Handle) tea.Cmd {
	interval := m.cfg.AnimOptions().TickInterval(m.cfg.FrameInterval())
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Handle: h}
	})
}

func (m GrowModel) Init() tea.Cmd {
	if m.handle == nil {
		return nil
	}
	return m.tick(m.handle)
}

// Update handles input, frame ticks and window resizes.
func (m GrowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m GrowModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		// Toggling never arms a tick: the one chain stays alive through
		// handleTick while paused, so resume cannot stack a second chain.
		if m.res == nil || m.done {
			return m, nil
		}
		m.paused = !m.paused

	case "r":
		if m.res == nil {
			return m, nil
		}
		m.handle = m.sched.Start(m.res.Segments, m.cfg.AnimOptions())
		m.paused = false
		m.done = false
		return m, m.tick(m.handle)

	case "d":
		if m.res == nil || m.done {
			return m, nil
		}
		m.sched.DrawAll(m.res.Segments)
		m.handle = nil
		m.done = true

	case "t":
		NextTheme()

	case "g":
		if m.recording {
			if err := SaveGIF(m.gifPath, m.frames); err != nil {
				m.status = "gif save failed: " + err.Error()
			}
			m.recording = false
			m.frames = nil
		} else {
			m.recording = true
			m.frames = make([]*image.Paletted, 0)
		}

	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m GrowModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cw, ch := canvasDims(msg.Width, msg.Height)
	first := !m.sized
	m.sized = true

	if m.res == nil {
		m.canvas = NewCanvas(cw, ch)
		return m, nil
	}

	// The old viewport is stale: cancel before any further drawing.
	m.sched.Cancel()
	m.canvas = NewCanvas(cw, ch)
	m.surface = NewSurface(m.canvas, m.res.Segments)
	m.sched = anim.NewScheduler(m.surface)

	if first {
		// Initial layout, not a user resize: restart the growth from the top.
		m.handle = m.sched.Start(m.res.Segments, m.cfg.AnimOptions())
		m.paused = false
		m.done = false
		return m, m.tick(m.handle)
	}

	// A real resize does a full direct redraw instead of resuming.
	m.handle = nil
	m.done = true
	m.sched.DrawAll(m.res.Segments)
	return m, nil
}

func (m GrowModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Handle != m.handle || msg.Handle.Cancelled() {
		return m, nil // stale tick from a superseded animation
	}
	if m.paused {
		// Skip the draw but keep the chain ticking; it is the only one.
		return m, m.tick(m.handle)
	}

	more := m.sched.Step()
	if m.recording {
		m.frames = append(m.frames, CaptureFrame(m.canvas))
	}
	if more {
		return m, m.tick(m.handle)
	}

	m.handle = nil
	m.done = true
	return m, nil
}

// View renders the canvas next to the stats panel.
func (m GrowModel) View() string {
	stroke := lipgloss.NewStyle().Foreground(CurrentTheme.Primary)
	canvasView := canvasStyle.Render(stroke.Render(m.canvas.String()))
	statsView := statsStyle.Render(m.statsPanel())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return m.helpOverlay() + "\n" + main
	}
	return main
}

func (m GrowModel) statsPanel() string {
	var s strings.Builder
	s.WriteString(headerStyle.Foreground(CurrentTheme.Accent).Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if m.res != nil {
		drawn, total := m.progress()
		s.WriteString(progressBar(drawn, total, 24) + "\n\n")
		s.WriteString(labelStyle.Render("Segments") +
			valueStyle.Render(fmt.Sprintf("%d / %d", drawn, total)) + "\n")
		s.WriteString(labelStyle.Render("Expanded") +
			valueStyle.Render(fmt.Sprintf("%d symbols", m.res.ExpandedLen)) + "\n")
		s.WriteString(labelStyle.Render("Depth") +
			valueStyle.Render(fmt.Sprintf("%d", m.res.Depth)) + "\n")
	}
	s.WriteString(labelStyle.Render("Angle") +
		valueStyle.Render(fmt.Sprintf("%.1f°", m.cfg.Angle)) + "\n")
	s.WriteString(labelStyle.Render("Iterations") +
		valueStyle.Render(fmt.Sprintf("%d", m.cfg.Iterations)) + "\n")
	s.WriteString(labelStyle.Render("Batch") +
		valueStyle.Render(fmt.Sprintf("%d/tick", m.cfg.Batch)) + "\n")
	s.WriteString(labelStyle.Render("Theme") +
		valueStyle.Render(CurrentTheme.Name) + "\n")

	if len(m.lengths) > 1 {
		chart := asciigraph.Plot(m.lengths,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("expansion growth"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart D:Finish\nT:Theme  G:Record  ?:Help  Q:Quit"))
	return s.String()
}

func (m GrowModel) statusLine() string {
	theme := CurrentTheme
	switch {
	case m.status != "":
		return lipgloss.NewStyle().Foreground(theme.Error).Render("ERROR: " + m.status)
	case m.res == nil:
		return "NO PLOT"
	case m.done:
		return lipgloss.NewStyle().Foreground(theme.Primary).Render("DONE")
	case m.paused:
		return lipgloss.NewStyle().Foreground(theme.Warning).Render("PAUSED")
	case m.recording:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("GROWING ●REC")
	default:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("GROWING")
	}
}

func (m GrowModel) progress() (drawn, total int) {
	if m.done {
		return m.res.SegmentCount, m.res.SegmentCount
	}
	return m.sched.Progress()
}

func (m GrowModel) helpOverlay() string {
	return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume growth      ║
║  R        - Restart the animation    ║
║  D        - Finish instantly         ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
}
