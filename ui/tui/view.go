package tui

import (
	"strings"

	"postmanager/domain/entities"
	"postmanager/ui/state"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	bodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	actionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	deleteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
)

const (
	emptyListText = "No posts."
	loadingText   = "Loading posts…"
	savingText    = "Saving…"
)

func (m Model) View() string {
	if m.state.Form.Visible {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.formView())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.list.View(),
		m.help.View(m.keys.listHelp()),
	)
}

func (m Model) headerView() string {
	header := headerStyle.Render("Posts") + "  " + actionStyle.Render("[a] Add Post")
	if m.state.Loading {
		header += "  " + hintStyle.Render(loadingText)
	}
	return header + "\n"
}

// renderRows lays the posts out one row each and returns, with the
// content, the first line of every row.
func renderRows(posts []entities.Post, cursor int, loading bool) (string, []int) {
	if len(posts) == 0 {
		if loading {
			return "", nil
		}
		return hintStyle.Render(emptyListText), nil
	}

	var (
		b     strings.Builder
		rows  = make([]int, 0, len(posts))
		lines int
	)
	for i, post := range posts {
		rows = append(rows, lines)

		marker, style := "  ", titleStyle
		if i == cursor {
			marker, style = "> ", selectedStyle
		}
		b.WriteString(marker + style.Render(post.Title) + "  " +
			actionStyle.Render("[e] Edit") + " " + deleteStyle.Render("[d] Delete") + "\n")
		lines++

		for _, line := range strings.Split(post.Body, "\n") {
			b.WriteString("    " + bodyStyle.Render(line) + "\n")
			lines++
		}
		b.WriteString("\n")
		lines++
	}

	return strings.TrimSuffix(b.String(), "\n"), rows
}

func (m Model) formView() string {
	form := m.state.Form

	sections := []string{
		headerStyle.Render(state.Title(form.Mode)),
		"",
		"Title",
		m.title.View(),
	}
	if msg := form.Errors[entities.FieldTitle]; msg != "" {
		sections = append(sections, errorStyle.Render(msg))
	}
	sections = append(sections, "", "Body", m.body.View())
	if msg := form.Errors[entities.FieldBody]; msg != "" {
		sections = append(sections, errorStyle.Render(msg))
	}

	footer := m.help.View(m.keys.formHelp())
	if form.Submitting {
		footer = hintStyle.Render(savingText) + "  " + footer
	}
	sections = append(sections, "", footer)

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
