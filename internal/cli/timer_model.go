package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
)

type timerPhase int

const (
	phaseWork timerPhase = iota
	phaseBreak
	phaseDone
)

type timerKeyMap struct {
	Pause  key.Binding
	Skip   key.Binding
	Finish key.Binding
	Quit   key.Binding
}

var timerKeys = timerKeyMap{
	Pause:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
	Skip:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip interval")),
	Finish: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish task")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// timerModel runs pomodoro work/break cycles for one study task.
type timerModel struct {
	task     domain.StudyTask
	workDur  time.Duration
	breakDur time.Duration

	timer   timer.Model
	phase   timerPhase
	cycle   int
	started time.Time

	// workedMin accumulates completed work intervals; a partly elapsed
	// interval is counted when the task is finished early.
	workedMin int
	finished  bool
}

func newTimerModel(task domain.StudyTask, workMin, breakMin int) timerModel {
	work := time.Duration(workMin) * time.Minute
	return timerModel{
		task:     task,
		workDur:  work,
		breakDur: time.Duration(breakMin) * time.Minute,
		timer:    timer.NewWithInterval(work, time.Second),
		phase:    phaseWork,
		cycle:    1,
		started:  time.Now(),
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		return m.advance()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timerKeys.Pause):
			return m, m.timer.Toggle()
		case key.Matches(msg, timerKeys.Skip):
			return m.advance()
		case key.Matches(msg, timerKeys.Finish):
			m.creditPartialWork()
			m.finished = true
			m.phase = phaseDone
			return m, tea.Quit
		case key.Matches(msg, timerKeys.Quit):
			m.creditPartialWork()
			return m, tea.Quit
		}
	}
	return m, nil
}

// advance moves to the next interval: work → break → next work, until all
// pomodoros are done.
func (m timerModel) advance() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseWork:
		m.workedMin += int(m.workDur.Minutes())
		if m.cycle >= m.task.PomodoroCount {
			m.finished = true
			m.phase = phaseDone
			return m, tea.Quit
		}
		m.phase = phaseBreak
		m.timer = timer.NewWithInterval(m.breakDur, time.Second)
	case phaseBreak:
		m.cycle++
		m.phase = phaseWork
		m.timer = timer.NewWithInterval(m.workDur, time.Second)
	default:
		return m, tea.Quit
	}
	return m, m.timer.Init()
}

// creditPartialWork counts the elapsed portion of an in-flight work
// interval toward the actual minutes.
func (m *timerModel) creditPartialWork() {
	if m.phase != phaseWork {
		return
	}
	elapsed := m.workDur - m.timer.Timeout
	m.workedMin += int(elapsed.Minutes())
}

func (m timerModel) View() string {
	info := domain.LookupSubject(m.task.SubjectID)

	var label string
	switch m.phase {
	case phaseBreak:
		label = formatter.StyleGreen.Render("BREAK")
	case phaseDone:
		label = formatter.StyleGreen.Render("DONE")
	default:
		label = formatter.StyleHeader.Render("WORK")
	}

	total := m.workDur
	if m.phase == phaseBreak {
		total = m.breakDur
	}
	elapsed := total - m.timer.Timeout
	bar := formatter.RenderCountdown(elapsed.Seconds(), total.Seconds(), 30)

	remaining := m.timer.Timeout.Round(time.Second)
	status := fmt.Sprintf("%s  %s  %s  %s",
		label,
		formatter.Bold(fmt.Sprintf("%02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)),
		bar,
		formatter.Dim(fmt.Sprintf("pomodoro %d/%d", m.cycle, m.task.PomodoroCount)))

	header := fmt.Sprintf("%s  %s", formatter.Bold(info.Name), formatter.Dim(m.task.Content))
	help := formatter.Dim("space pause · s skip · f finish · q quit")

	return fmt.Sprintf("\n  %s\n\n  %s\n\n  %s\n", header, status, help)
}
