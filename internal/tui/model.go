// internal/tui/model.go
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/scorecard/internal/appconfig"
	"github.com/mwiater/scorecard/internal/catalog"
	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/grid"
)

// viewState represents the current screen of the dashboard.
type viewState int

const (
	// viewLoading is shown until the export document arrives.
	viewLoading viewState = iota
	// viewTable is the run grid.
	viewTable
	// viewCompare is the multi-chart comparison screen.
	viewCompare
	// viewHeatmap is the per-file score matrix.
	viewHeatmap
)

// datasetReadyMsg is sent when the export document has loaded.
type datasetReadyMsg struct{ export *dataset.Export }

// datasetErrMsg is sent when the export load fails. The table keeps showing
// its loading/empty state; only the log records the cause.
type datasetErrMsg struct{ error }

// fileScoresMsg delivers per-file scores for a resolved row set. seq ties the
// response to the fetch that requested it so a stale response is dropped.
type fileScoresMsg struct {
	seq    int
	scores map[string][]dataset.FileResult
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx   context.Context
	cfg   *appconfig.Config
	store *dataset.Store

	state viewState
	theme Theme
	err   error

	runs       []dataset.Run
	index      catalog.Index
	exportedAt string

	view      *grid.State
	result    grid.Result
	pageRows  []dataset.Run
	tbl       table.Model
	filter    textinput.Model
	filtering bool
	spin      spinner.Model

	// activeCol indexes view.Columns() for keyboard sort/filter cycling.
	activeCol int

	// fileScores is populated asynchronously once a comparison or heatmap
	// view needs it; scoresSeq is the latest issued fetch.
	fileScores map[string][]dataset.FileResult
	scoresSeq  int

	width, height int
}

// NewModel creates the dashboard model in its loading state.
func NewModel(ctx context.Context, cfg *appconfig.Config, store *dataset.Store) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "Filter runs..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return &Model{
		ctx:    ctx,
		cfg:    cfg,
		store:  store,
		state:  viewLoading,
		theme:  ThemeForName(cfg.ThemeOrDefault()),
		spin:   s,
		filter: ti,
	}
}

// loadDatasetCmd fetches the export document through the memoized store.
func loadDatasetCmd(ctx context.Context, store *dataset.Store) tea.Cmd {
	return func() tea.Msg {
		export, err := store.Load(ctx)
		if err != nil {
			return datasetErrMsg{error: err}
		}
		return datasetReadyMsg{export: export}
	}
}

// fetchFileScoresCmd fetches per-file scores for the resolved run ids. The
// store has the whole document cached, so this resolves quickly after first
// load, but it stays an asynchronous boundary with its own sequence number.
func fetchFileScoresCmd(ctx context.Context, store *dataset.Store, ids []string, seq int) tea.Cmd {
	return func() tea.Msg {
		all, err := store.FileScores(ctx)
		if err != nil {
			// Non-critical fetch: the heatmap simply stays absent.
			return fileScoresMsg{seq: seq, scores: nil}
		}
		subset := make(map[string][]dataset.FileResult, len(ids))
		for _, id := range ids {
			if results, ok := all[id]; ok {
				subset[id] = results
			}
		}
		return fileScoresMsg{seq: seq, scores: subset}
	}
}

// Init starts the spinner and kicks off the initial dataset load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadDatasetCmd(m.ctx, m.store))
}
