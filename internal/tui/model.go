// Package tui is the terminal timeline viewer. The bubbletea model keeps a
// viewstate.Timeline and runs its effects as commands.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/lifelog-timeline/internal/client"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	core "github.com/heartmarshall/lifelog-timeline/internal/timeline"
	"github.com/heartmarshall/lifelog-timeline/internal/viewstate"
)

type entriesAPI interface {
	GetEntries(ctx context.Context, q client.EntryQuery) ([]domain.Entry, error)
}

// fetchedMsg carries the outcome of a FetchEntries effect.
type fetchedMsg viewstate.FetchResult

// Model is the root bubbletea model.
type Model struct {
	api     entriesAPI
	ctx     context.Context
	state   viewstate.Timeline
	filters []core.Filter
	now     func() time.Time

	keys     KeyMap
	styles   Styles
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	notice   string

	width, height int
}

// New creates a viewer showing days in loc, grouped with gap.
func New(ctx context.Context, api entriesAPI, loc *time.Location, gap time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		api:      api,
		ctx:      ctx,
		state:    viewstate.NewTimeline(loc, gap),
		filters:  core.Filters(),
		now:      time.Now,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		spinner:  sp,
		viewport: viewport.New(80, 20),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.selectDateCmd(m.today()))
}

// selectDateCmd selects a day from Init, which cannot change the model.
func (m Model) selectDateCmd(date string) tea.Cmd {
	return func() tea.Msg { return selectDateMsg(date) }
}

type selectDateMsg string

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-m.chromeHeight(), 1)
		m.refreshContent()
		return m, nil

	case selectDateMsg:
		return m.selectDate(string(msg))

	case fetchedMsg:
		m.state = m.state.EntriesLoaded(viewstate.FetchResult(msg))
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.viewport.Height = max(m.height-m.chromeHeight(), 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevDay):
		return m.selectDate(m.shiftDate(-1))
	case key.Matches(msg, m.keys.NextDay):
		return m.selectDate(m.shiftDate(1))
	case key.Matches(msg, m.keys.Today):
		return m.selectDate(m.today())
	case key.Matches(msg, m.keys.Refresh):
		var eff viewstate.Effect
		m.state, eff = m.state.Refresh()
		return m, m.run(eff)
	case key.Matches(msg, m.keys.Clear):
		m.state = m.state.ClearFilters()
		m.refreshContent()
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		n, _ := strconv.Atoi(msg.String())
		if n < 1 || n > len(m.filters) {
			return m, nil
		}
		state, err := m.state.ToggleFilter(m.filters[n-1].Name)
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.state = state
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) selectDate(date string) (tea.Model, tea.Cmd) {
	var eff viewstate.Effect
	m.state, eff = m.state.SelectDate(date)
	m.refreshContent()
	return m, m.run(eff)
}

// run turns an effect into a command.
func (m Model) run(eff viewstate.Effect) tea.Cmd {
	fetch, ok := eff.(viewstate.FetchEntries)
	if !ok {
		return nil
	}
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		entries, err := api.GetEntries(ctx, client.EntryQuery{Date: fetch.Date})
		return fetchedMsg{Date: fetch.Date, Seq: fetch.Seq, Entries: entries, Err: err}
	}
}

func (m Model) today() string {
	return m.now().In(m.state.Location).Format(time.DateOnly)
}

func (m Model) shiftDate(days int) string {
	d, err := time.ParseInLocation(time.DateOnly, m.state.Date, m.state.Location)
	if err != nil {
		return m.today()
	}
	return d.AddDate(0, 0, days).Format(time.DateOnly)
}

func (m *Model) refreshContent() {
	switch m.state.Status {
	case viewstate.StatusSuccess:
		m.viewport.SetContent(RenderDay(m.state.Day(), m.state.Location, m.styles))
	case viewstate.StatusFailure:
		m.viewport.SetContent(m.styles.Error.Render("could not load entries: " + m.state.Err.Error()))
	default:
		m.viewport.SetContent("")
	}
	m.viewport.GotoTop()
}

func (m Model) chromeHeight() int {
	return lipgloss.Height(m.header()) + lipgloss.Height(m.help.View(m.keys)) + 1
}

func (m Model) header() string {
	title := m.styles.Title.Render("Timeline · " + m.state.Date)

	var status string
	switch m.state.Status {
	case viewstate.StatusPending:
		status = m.spinner.View() + " loading"
	case viewstate.StatusSuccess:
		day := m.state.Day()
		status = fmt.Sprintf("%d of %d entries", day.Shown, day.Total)
	case viewstate.StatusFailure:
		status = m.styles.Error.Render("failed")
	}

	chips := make([]string, 0, len(m.filters))
	enabled := make(map[string]bool, len(m.state.EnabledFilters))
	for _, name := range m.state.EnabledFilters {
		enabled[name] = true
	}
	for i, f := range m.filters {
		if i >= 9 {
			break
		}
		label := fmt.Sprintf("%d %s", i+1, f.Name)
		if enabled[f.Name] {
			chips = append(chips, m.styles.FilterOn.Render(label))
		} else {
			chips = append(chips, m.styles.FilterOff.Render(label))
		}
	}

	lines := []string{
		title + "  " + m.styles.Status.Render(status),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	}
	if m.notice != "" {
		lines = append(lines, m.styles.Error.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

// View implements tea.Model.
func (m Model) View() string {
	return m.styles.App.Render(strings.Join([]string{
		m.header(),
		m.viewport.View(),
		m.help.View(m.keys),
	}, "\n"))
}

// Run starts the viewer on the terminal.
func Run(ctx context.Context, api entriesAPI, loc *time.Location, gap time.Duration) error {
	p := tea.NewProgram(New(ctx, api, loc, gap), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
