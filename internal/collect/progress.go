package collect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"yt-comment-archiver/internal/model"
)

var (
	dashTitleStyle  = lipgloss.NewStyle().Bold(true)
	dashCountStyle  = lipgloss.NewStyle().Faint(true)
	dashFailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dashWorkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type channelListedMsg struct {
	channelID string
	videos    int
}

type channelFailedMsg struct {
	channelID string
}

type itemStartedMsg struct {
	workerID int
	videoID  string
}

type itemFinishedMsg struct {
	workerID int
	kind     string
	videoID  string
}

type runDoneMsg struct{}

// Dashboard is the live fetch view. It implements Events by forwarding
// everything into a bubbletea program; input is disabled since the view
// is display-only.
type Dashboard struct {
	prog *tea.Program
	done chan struct{}
}

func NewDashboard(workers int) *Dashboard {
	d := &Dashboard{
		prog: tea.NewProgram(newDashboardModel(workers), tea.WithInput(nil)),
		done: make(chan struct{}),
	}
	go func() {
		_, _ = d.prog.Run()
		close(d.done)
	}()
	return d
}

func (d *Dashboard) ChannelListed(channelID string, videos int) {
	d.prog.Send(channelListedMsg{channelID: channelID, videos: videos})
}

func (d *Dashboard) ChannelFailed(channelID string, err error) {
	d.prog.Send(channelFailedMsg{channelID: channelID})
}

func (d *Dashboard) ItemStarted(workerID int, item model.WorkItem) {
	d.prog.Send(itemStartedMsg{workerID: workerID, videoID: item.VideoID})
}

func (d *Dashboard) ItemFinished(workerID int, outcome model.Outcome) {
	d.prog.Send(itemFinishedMsg{workerID: workerID, kind: outcome.Kind, videoID: outcome.Item.VideoID})
}

func (d *Dashboard) Done(Summary) {
	d.prog.Send(runDoneMsg{})
	<-d.done
}

type dashboardModel struct {
	bar     progress.Model
	width   int
	workers int
	active  map[int]string

	total          int
	fetched        int
	skipped        int
	failed         int
	channelsListed int
	channelsFailed int
}

func newDashboardModel(workers int) dashboardModel {
	return dashboardModel{
		bar:     progress.New(progress.WithDefaultGradient()),
		workers: workers,
		active:  make(map[int]string),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-4, 60)
	case channelListedMsg:
		m.channelsListed++
		m.total += msg.videos
	case channelFailedMsg:
		m.channelsFailed++
	case itemStartedMsg:
		m.active[msg.workerID] = msg.videoID
	case itemFinishedMsg:
		delete(m.active, msg.workerID)
		switch msg.kind {
		case model.OutcomeFetched:
			m.fetched++
		case model.OutcomeSkipped:
			m.skipped++
		case model.OutcomeFailed:
			m.failed++
		}
	case runDoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(dashTitleStyle.Render("fetching comments"))
	b.WriteString("\n")

	done := m.fetched + m.skipped + m.failed
	frac := 0.0
	if m.total > 0 {
		frac = float64(done) / float64(m.total)
	}
	b.WriteString(m.bar.ViewAs(frac))
	b.WriteString("\n")

	counts := fmt.Sprintf("channels %d  videos %d/%d  fetched %d  skipped %d",
		m.channelsListed, done, m.total, m.fetched, m.skipped)
	b.WriteString(dashCountStyle.Render(counts))
	if m.failed > 0 || m.channelsFailed > 0 {
		b.WriteString("  ")
		b.WriteString(dashFailStyle.Render(fmt.Sprintf("failed %d (channels %d)", m.failed, m.channelsFailed)))
	}
	b.WriteString("\n")

	ids := make([]int, 0, len(m.active))
	for id := range m.active {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		b.WriteString(dashWorkerStyle.Render(fmt.Sprintf("  w%d %s", id, m.active[id])))
		b.WriteString("\n")
	}
	return b.String()
}
