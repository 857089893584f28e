// Package tui renders the posts screen in the terminal. Model owns the
// screen's state.State and is the only place it is replaced; network calls
// run as tea.Cmd and report back through messages.
package tui

import (
	"errors"
	"net/http"

	"postmanager/domain/entities"
	"postmanager/domain/services"
	"postmanager/pkg/logger"
	"postmanager/ui/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusTitle = iota
	focusBody
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header and help line around the list
	chromeHeight = 3
)

type Model struct {
	source services.PostSource
	state  state.State
	keys   keyMap

	title textinput.Model
	body  textarea.Model
	focus int

	list viewport.Model
	help help.Model
	// rows holds the first content line of every post in list.
	rows []int

	width  int
	height int
}

func New(source services.PostSource) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""

	body := textarea.New()
	body.Placeholder = "Body"
	body.ShowLineNumbers = false
	// Bodies of any length must round-trip through an edit.
	body.CharLimit = 0
	body.MaxHeight = 0

	m := Model{
		source: source,
		state:  state.New(),
		keys:   defaultKeyMap(),
		title:  title,
		body:   body,
		list:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		help:   help.New(),
	}
	m.resize(defaultWidth, defaultHeight)
	m.refreshList()
	return m
}

// Init fetches the posts once.
func (m Model) Init() tea.Cmd {
	return loadPosts(m.source)
}

func (m Model) State() state.State {
	return m.state
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case postsLoadedMsg:
		logger.Info("posts loaded", "count", len(msg.posts))
		m.state = state.Loaded(m.state, msg.posts)

	case postsLoadFailedMsg:
		logger.Error("Error fetching posts", "error", msg.err)
		m.state = state.LoadFailed(m.state)

	case postCreatedMsg:
		logger.Info("post created", "id", msg.post.Id, "title", msg.post.Title)
		m.state = state.Created(m.state, msg.cycle, msg.post)

	case postUpdatedMsg:
		logger.Info("post updated", "id", msg.id, "title", msg.post.Title)
		m.state = state.Updated(m.state, msg.cycle, msg.id, msg.post)

	case submitFailedMsg:
		logger.Error("Error saving post", "cycle", msg.cycle, "error", msg.err)
		m.state = state.SubmitFailed(m.state, msg.cycle)

	case postDeletedMsg:
		logger.Info("post deleted", "id", msg.id)
		m.state = state.Deleted(m.state, msg.id)

	case deleteFailedMsg:
		if isNotFound(msg.err) {
			logger.Warn("post already gone", "id", msg.id, "error", msg.err)
			break
		}
		logger.Error("Error deleting post", "id", msg.id, "error", msg.err)

	case tea.KeyMsg:
		if m.state.Form.Visible {
			cmd = m.updateForm(msg)
		} else {
			cmd = m.updateList(msg)
		}

	default:
		if m.state.Form.Visible {
			cmd = m.updateInputs(msg)
		}
	}

	if !m.state.Form.Visible {
		m.title.Blur()
		m.body.Blur()
	}
	m.refreshList()
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.state = state.MoveCursor(m.state, -1)
	case key.Matches(msg, m.keys.Down):
		m.state = state.MoveCursor(m.state, 1)
	case key.Matches(msg, m.keys.Add):
		m.state = state.OpenCreate(m.state)
		return m.openForm()
	case key.Matches(msg, m.keys.Edit):
		if post, ok := state.Selected(m.state); ok {
			m.state = state.OpenEdit(m.state, post)
			return m.openForm()
		}
	case key.Matches(msg, m.keys.Delete):
		if post, ok := state.Selected(m.state); ok {
			logger.Debug("deleting post", "id", post.Id)
			return deletePost(m.source, post.Id)
		}
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.state = state.Cancel(m.state)
		return nil
	case key.Matches(msg, m.keys.Submit):
		var req state.Request
		m.state, req = state.Submit(m.state, m.draft())
		if req == nil {
			return nil
		}
		return sendRequest(m.source, req)
	case key.Matches(msg, m.keys.NextField):
		return m.toggleFocus()
	case msg.Type == tea.KeyEnter && m.focus == focusTitle:
		return m.toggleFocus()
	}
	return m.updateInputs(msg)
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return cmd
}

func (m *Model) draft() entities.Draft {
	return entities.Draft{
		Title: m.title.Value(),
		Body:  m.body.Value(),
	}
}

// openForm loads the form's draft into the inputs, which are reused
// between openings.
func (m *Model) openForm() tea.Cmd {
	m.title.SetValue(m.state.Form.Draft.Title)
	m.title.CursorEnd()
	m.body.SetValue(m.state.Form.Draft.Body)
	m.focus = focusTitle
	m.body.Blur()
	return m.title.Focus()
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusTitle {
		m.focus = focusBody
		m.title.Blur()
		return m.body.Focus()
	}
	m.focus = focusTitle
	m.body.Blur()
	return m.title.Focus()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.list.Width = width
	m.list.Height = max(height-chromeHeight, 1)
	m.help.Width = width

	fieldWidth := min(max(width-12, 10), 72)
	m.title.Width = fieldWidth
	m.body.SetWidth(fieldWidth)
	m.body.SetHeight(6)
}

// refreshList re-renders the rows and scrolls the cursor row into view.
func (m *Model) refreshList() {
	content, rows := renderRows(m.state.Posts, m.state.Cursor, m.state.Loading)
	m.rows = rows
	m.list.SetContent(content)

	if len(rows) == 0 {
		m.list.GotoTop()
		return
	}
	start := rows[m.state.Cursor]
	end := m.list.TotalLineCount()
	if m.state.Cursor+1 < len(rows) {
		end = rows[m.state.Cursor+1]
	}
	switch {
	case start < m.list.YOffset:
		m.list.SetYOffset(start)
	case end > m.list.YOffset+m.list.Height:
		m.list.SetYOffset(end - m.list.Height)
	}
}

func isNotFound(err error) bool {
	var status *services.StatusError
	return errors.As(err, &status) && status.StatusCode == http.StatusNotFound
}
