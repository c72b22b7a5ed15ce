package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"motorcalc.klederson.com/internal/motor"
	"motorcalc.klederson.com/internal/ui"
)

type phase int

const (
	phaseEntry phase = iota
	phaseVoltageMode
	phaseResults
	phaseFailed
)

// Model is the root Bubble Tea model: an input wizard feeding the motor
// analysis, a results screen, and an Enter-to-restart loop.
type Model struct {
	width  int
	height int

	phase  phase
	cur    fieldID
	input  textinput.Model
	errMsg string

	useCells bool
	entered  map[fieldID]float64
	skipped  map[fieldID]bool
	done     []fieldID // Accepted fields in entry order

	peak        motor.PeakFunc
	strategy    string
	curvePoints int

	report motor.Report
	warn   *motor.ClampWarning
	curve  []motor.OperatingPoint
	fatal  error
}

// New creates a fresh wizard model. strategy names the peak search for the
// title bar.
func New(peak motor.PeakFunc, strategy string, curvePoints int) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()

	return Model{
		phase:       phaseEntry,
		cur:         fieldKV,
		input:       ti,
		entered:     map[fieldID]float64{},
		skipped:     map[fieldID]bool{},
		peak:        peak,
		strategy:    strategy,
		curvePoints: curvePoints,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	switch m.phase {
	case phaseVoltageMode:
		switch msg.String() {
		case "y", "Y", "enter":
			m.useCells = false
			m.phase = phaseEntry
			m.cur = fieldVoltage
		case "n", "N":
			m.useCells = true
			m.phase = phaseEntry
			m.cur = fieldCells
		}
		return m, nil

	case phaseResults, phaseFailed:
		switch msg.String() {
		case "enter":
			next := New(m.peak, m.strategy, m.curvePoints)
			next.width = m.width
			next.height = m.height
			return next, textinput.Blink
		case "q", "Q":
			return m, tea.Quit
		}
		return m, nil
	}

	if msg.String() == "enter" {
		return m.accept(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// accept validates the typed value, records it, and advances the wizard.
func (m Model) accept() Model {
	f := fields[m.cur]

	val, skip, err := parseEntry(f, m.input.Value())
	if err != nil {
		if err != errEmptyEntry {
			m.errMsg = err.Error()
			m.input.SetValue("")
		}
		return m
	}

	m.errMsg = ""
	m.input.SetValue("")
	if skip {
		m.skipped[m.cur] = true
	} else {
		m.entered[m.cur] = val
	}
	m.done = append(m.done, m.cur)

	return m.advance()
}

func (m Model) advance() Model {
	switch m.cur {
	case fieldKV:
		m.phase = phaseVoltageMode
	case fieldVoltage, fieldCells:
		m.cur = fieldNoLoad
	case fieldNoLoad:
		m.cur = fieldMaxCurrent
	case fieldMaxCurrent:
		m.cur = fieldResistance
	case fieldResistance:
		m.cur = fieldCapacity
	case fieldCapacity:
		return m.runAnalysis()
	}
	return m
}

func (m Model) runAnalysis() Model {
	rep, warn, err := motor.Analyze(m.parameters(), m.peak)
	if err != nil {
		m.phase = phaseFailed
		m.fatal = err
		return m
	}

	m.report = rep
	m.warn = warn
	m.curve = motor.Curve(rep.Params, m.curvePoints)
	m.phase = phaseResults
	return m
}

func (m Model) parameters() motor.Parameters {
	voltage := m.entered[fieldVoltage]
	if m.useCells {
		voltage = cellsToVolts(m.entered[fieldCells])
	}

	return motor.Parameters{
		KV:                 m.entered[fieldKV],
		Voltage:            voltage,
		NoLoadCurrent:      m.entered[fieldNoLoad],
		MaxCurrent:         m.entered[fieldMaxCurrent],
		ArmatureResistance: m.entered[fieldResistance],
	}
}

func (m Model) capacityMAh() float64 {
	return m.entered[fieldCapacity]
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing MotorCalc..."
	}

	titleBar := ui.RenderTitleBar(m.width, m.strategy)

	var body string
	switch m.phase {
	case phaseResults:
		body = m.viewResults()
	case phaseFailed:
		body = m.viewFailed()
	default:
		body = m.viewEntry()
	}

	bodyH := m.height - 2
	if bodyH < 3 {
		bodyH = 3
	}
	body = lipgloss.NewStyle().Height(bodyH).Render(body)

	statusBar := ui.RenderStatusBar(m.width, m.hints()...)

	return titleBar + "\n" + body + "\n" + statusBar
}

func (m Model) viewEntry() string {
	lines := []string{""}

	for _, id := range m.done {
		f := fields[id]
		if m.skipped[id] {
			lines = append(lines, ui.RenderSkippedRow(f.label()))
			continue
		}
		lines = append(lines, ui.RenderDoneRow(f.label(), formatValue(m.entered[id]), f.unit))
	}

	lines = append(lines, "")
	if m.phase == phaseVoltageMode {
		lines = append(lines, ui.RenderQuestionRow("Enter voltage directly, instead of a cell count?"))
	} else {
		lines = append(lines, ui.RenderPromptRow(fields[m.cur].prompt(), m.input.View()))
		if m.errMsg != "" {
			lines = append(lines, ui.RenderInputError(m.errMsg))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewResults() string {
	var sections []string

	if m.warn != nil {
		sections = append(sections, "", ui.RenderWarningBanner(
			"At maximum current, the motor would be an open circuit (Vdrop > Vin). "+
				"Maximum current has been reduced to "+strconv.FormatFloat(m.warn.NewMaxCurrent, 'f', 2, 64)+" A.",
			m.width))
	}

	sections = append(sections,
		ui.RenderReport(m.report, m.capacityMAh(), m.width),
		ui.RenderCurveTable(m.curve, m.width),
	)

	return strings.Join(sections, "\n")
}

func (m Model) viewFailed() string {
	return "\n" + ui.RenderErrorBanner(m.fatal.Error(), m.width)
}

func (m Model) hints() []ui.Hint {
	switch m.phase {
	case phaseVoltageMode:
		return []ui.Hint{{Key: "Y", Label: "voltage"}, {Key: "N", Label: "cell count"}, {Key: "Esc", Label: "quit"}}
	case phaseResults, phaseFailed:
		return []ui.Hint{{Key: "Enter", Label: "restart"}, {Key: "Esc", Label: "quit"}}
	default:
		return []ui.Hint{{Key: "Enter", Label: "accept"}, {Key: "Esc", Label: "quit"}}
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
