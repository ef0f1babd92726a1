package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/penev-ff/dynarr"
	"github.com/penev-ff/dynarr/internal/workload"
)

const (
	historyCapacity = 600
	barWidth        = 48
	graphWidth      = 48
	graphHeight     = 6
)

type TickMsg time.Time

// flatOp is one expanded workload instruction.
type flatOp struct {
	op       workload.OpKind
	capacity int
}

// Model replays a workload against a live array, one operation per tick.
type Model struct {
	w       workload.Workload
	arr     *dynarr.Array[float64]
	rng     *rand.Rand
	ops     []flatOp
	pos     int
	running bool
	done    bool

	opsPerTick int
	lenHist    []float64
	capHist    []float64
	lastOp     workload.OpKind
}

// NewModel expands the workload script and prepares the initial array.
func NewModel(w workload.Workload) Model {
	ops := make([]flatOp, 0)
	for _, step := range w.Steps {
		count := step.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			ops = append(ops, flatOp{op: step.Op, capacity: step.Capacity})
		}
	}

	m := Model{
		w:          w,
		ops:        ops,
		running:    true,
		opsPerTick: 1,
		lenHist:    make([]float64, 0, historyCapacity),
		capHist:    make([]float64, 0, historyCapacity),
	}
	m.resetArray()
	return m
}

func (m *Model) resetArray() {
	if m.w.Capacity > 0 {
		arr, err := dynarr.WithCapacity[float64](m.w.Capacity)
		if err != nil {
			arr = dynarr.New[float64]()
		}
		m.arr = arr
	} else {
		m.arr = dynarr.New[float64]()
	}
	m.rng = rand.New(rand.NewSource(m.w.Seed))
	m.pos = 0
	m.done = false
	m.lastOp = ""
	m.lenHist = m.lenHist[:0]
	m.capHist = m.capHist[:0]
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the replay.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.resetArray()
			m.running = true
		case "+", "=":
			if m.opsPerTick < 64 {
				m.opsPerTick *= 2
			}
		case "-", "_":
			if m.opsPerTick > 1 {
				m.opsPerTick /= 2
			}
		}
	case TickMsg:
		if m.running && !m.done {
			for i := 0; i < m.opsPerTick && !m.done; i++ {
				m.step()
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step applies the next scripted operation to the array.
func (m *Model) step() {
	if m.pos >= len(m.ops) {
		m.done = true
		return
	}

	op := m.ops[m.pos]
	m.pos++

	switch op.op {
	case workload.OpPush:
		m.arr.Push(m.rng.Float64())
	case workload.OpPop:
		_, _ = m.arr.Pop()
	case workload.OpClear:
		m.arr.Clear()
	case workload.OpReset:
		m.arr.Reset()
	case workload.OpReserve:
		m.arr.Reserve(op.capacity)
	}
	m.lastOp = op.op

	m.lenHist = append(m.lenHist, float64(m.arr.Len()))
	if len(m.lenHist) > historyCapacity {
		m.lenHist = m.lenHist[1:]
	}
	m.capHist = append(m.capHist, float64(m.arr.Cap()))
	if len(m.capHist) > historyCapacity {
		m.capHist = m.capHist[1:]
	}

	if m.pos >= len(m.ops) {
		m.done = true
	}
}

// View renders the live replay.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(strings.ToUpper(m.w.Name)) + "\n")

	status := statusRunning.Render("RUNNING")
	if m.done {
		status = statusDone.Render("DONE")
	} else if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	s.WriteString(status + valueStyle.Render(fmt.Sprintf("  op %d/%d", m.pos, len(m.ops))) + "\n\n")

	s.WriteString(OccupancyBar(m.arr.Len(), m.arr.Cap(), barWidth) + "\n")

	if len(m.capHist) > 1 {
		chart := asciigraph.Plot(m.capHist,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("capacity"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	st := m.arr.Stats()
	var panel strings.Builder
	panel.WriteString(labelStyle.Render("last op") + valueStyle.Render(string(m.lastOp)) + "\n")
	panel.WriteString(labelStyle.Render("len") + valueStyle.Render(fmt.Sprintf("%d", st.Len)) + "\n")
	panel.WriteString(labelStyle.Render("cap") + valueStyle.Render(fmt.Sprintf("%d", st.Cap)) + "\n")
	panel.WriteString(labelStyle.Render("grows") + valueStyle.Render(fmt.Sprintf("%d", st.Grows)) + "\n")
	panel.WriteString(labelStyle.Render("copied") + valueStyle.Render(fmt.Sprintf("%d", st.Copied)) + "\n")
	panel.WriteString(labelStyle.Render("load") + valueStyle.Render(fmt.Sprintf("%.2f", st.LoadFactor())) + "\n")
	panel.WriteString(labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%d op/frame", m.opsPerTick)))

	s.WriteString(panelStyle.Render(panel.String()))
	s.WriteString(helpStyle.Render("SP:Pause R:Restart +/-:Speed Q:Quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}

// RunLive starts the live replay TUI and blocks until it exits.
func RunLive(w workload.Workload) error {
	p := tea.NewProgram(NewModel(w))
	_, err := p.Run()
	return err
}
