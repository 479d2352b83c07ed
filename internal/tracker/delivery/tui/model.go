// Package tui is the terminal widget: a live clock, the day's timeline,
// the task picker, the finished table and the reservation queue.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-tracker/internal/model"
	"task-tracker/internal/timeline"
	"task-tracker/internal/tracker"
)

type focus int

const (
	focusTasks focus = iota
	focusReservations
)

type mode int

const (
	modeBrowse mode = iota
	modeReserve
	modeConfirmClear
)

const defaultWidth = 80

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	ctx   context.Context
	uc    tracker.UseCase
	kinds []model.TaskKind

	cursor     int
	resvCursor int
	focus      focus
	mode       mode
	input      textinput.Model
	status     string
	width      int

	state tracker.StateOutput
	proj  timeline.Projection
}

func New(ctx context.Context, uc tracker.UseCase) Model {
	ti := textinput.New()
	ti.Placeholder = "HHMM"
	ti.CharLimit = 4
	ti.Width = 6

	m := Model{
		ctx:    ctx,
		uc:     uc,
		kinds:  model.TaskKinds(),
		input:  ti,
		width:  defaultWidth,
		status: "enter: 開始  r: 予約  p: 予約を今すぐ開始  tab: 予約一覧  c: 履歴クリア  q: 終了",
	}
	m.refresh()
	return m
}

// Run blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, uc tracker.UseCase) error {
	program := tea.NewProgram(New(ctx, uc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.refresh()
	case tickMsg:
		m.refresh()
		return m, tickCmd()
	case tea.KeyMsg:
		switch m.mode {
		case modeReserve:
			return m.updateReserveMode(msg)
		case modeConfirmClear:
			return m.updateConfirmClear(msg.String())
		default:
			return m.updateBrowseMode(msg.String())
		}
	}
	return m, nil
}

func (m Model) updateBrowseMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.focus == focusTasks && len(m.state.Reserving) > 0 {
			m.focus = focusReservations
		} else {
			m.focus = focusTasks
		}
	case "down", "j":
		if m.focus == focusTasks {
			m.cursor = clamp(m.cursor+1, len(m.kinds))
		} else {
			m.resvCursor = clamp(m.resvCursor+1, len(m.state.Reserving))
		}
	case "up", "k":
		if m.focus == focusTasks {
			m.cursor = clamp(m.cursor-1, len(m.kinds))
		} else {
			m.resvCursor = clamp(m.resvCursor-1, len(m.state.Reserving))
		}
	case "enter":
		if m.focus != focusTasks {
			return m, nil
		}
		k := m.kinds[m.cursor]
		_, err := m.uc.StartNextTask(m.ctx, tracker.StartNextTaskInput{Category: k.Category, Title: k.Title})
		m.setResult(err, fmt.Sprintf("%s＞%s を開始", k.Category, k.Title))
	case "r":
		if m.focus != focusTasks {
			return m, nil
		}
		m.mode = modeReserve
		m.input.SetValue("")
		m.input.Focus()
		k := m.kinds[m.cursor]
		m.status = fmt.Sprintf("%s＞%s を予約: 時刻を HHMM で入力 (esc で取消)", k.Category, k.Title)
	case "p":
		_, err := m.uc.StartNextReservingTask(m.ctx)
		m.setResult(err, "予約を開始しました")
	case "d", "delete":
		if m.focus != focusReservations || len(m.state.Reserving) == 0 {
			return m, nil
		}
		_, err := m.uc.RemoveReservingTask(m.ctx, m.resvCursor)
		m.setResult(err, "予約を取り消しました")
	case "c":
		m.mode = modeConfirmClear
		m.status = "終了したタスクをすべて消去しますか? y/n"
	}
	return m, nil
}

func (m Model) updateReserveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.status = "予約を中止しました"
		return m, nil
	case "enter":
		k := m.kinds[m.cursor]
		raw := strings.TrimSpace(m.input.Value())
		_, err := m.uc.ReserveAt(m.ctx, tracker.ReserveAtInput{HHMM: raw, Category: k.Category, Title: k.Title})
		m.mode = modeBrowse
		m.input.Blur()
		m.setResult(err, fmt.Sprintf("%s に %s＞%s を予約", raw, k.Category, k.Title))
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateConfirmClear(key string) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	if key != "y" {
		m.status = "クリアを中止しました"
		return m, nil
	}
	_, err := m.uc.ClearAllTasks(m.ctx)
	m.setResult(err, "履歴をクリアしました")
	return m, nil
}

// setResult refreshes the view after a mutation and reports err or ok.
func (m *Model) setResult(err error, ok string) {
	m.refresh()
	if err != nil {
		m.status = "エラー: " + err.Error()
		return
	}
	m.status = ok
}

func (m *Model) refresh() {
	m.state = m.uc.State(m.ctx)
	m.proj = m.uc.Timeline(m.ctx, float64(m.timelineWidth()))
	m.resvCursor = clamp(m.resvCursor, len(m.state.Reserving))
	if len(m.state.Reserving) == 0 {
		m.focus = focusTasks
	}
}

func (m Model) timelineWidth() int {
	if w := m.width - 2; w > 10 {
		return w
	}
	return defaultWidth - 2
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
