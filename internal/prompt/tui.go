package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// TUI is the terminal Prompter: a filterable list for project
// selection and a confirm dialog for yes/no questions.
type TUI struct {
	// MaxVisible caps the picker height, 0 means a sensible default.
	MaxVisible int
	// ShowPaths renders the project path under each entry.
	ShowPaths bool
}

// PickProject shows the candidate list and returns the chosen entry.
// The user cancelling the picker yields ErrCancelled.
func (t *TUI) PickProject(ctx context.Context, title string, candidates []Candidate) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, fmt.Errorf("prompt: no candidates to pick from")
	}
	model := newPickerModel(title, candidates, t.showPaths(), t.maxVisible())
	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return Candidate{}, ErrCancelled
		}
		return Candidate{}, fmt.Errorf("prompt: picker failed: %w", err)
	}
	picker, ok := final.(pickerModel)
	if !ok || picker.cancelled || picker.choice == nil {
		return Candidate{}, ErrCancelled
	}
	return *picker.choice, nil
}

// Confirm asks a yes/no question. Aborting the dialog yields
// ErrCancelled, which is distinct from answering no.
func (t *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	var yes bool
	confirm := huh.NewConfirm().
		Title(question).
		Affirmative("Yes please").
		Negative("Nope").
		Value(&yes)
	form := huh.NewForm(huh.NewGroup(confirm))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("prompt: confirm failed: %w", err)
	}
	return yes, nil
}

func (t *TUI) maxVisible() int {
	if t == nil || t.MaxVisible <= 0 {
		return 15
	}
	return t.MaxVisible
}

func (t *TUI) showPaths() bool {
	return t == nil || t.ShowPaths
}

type pickerModel struct {
	list      list.Model
	choice    *Candidate
	cancelled bool
	maxRows   int
}

func newPickerModel(title string, candidates []Candidate, showPaths bool, maxRows int) pickerModel {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = showPaths
	if !showPaths {
		delegate.SetHeight(1)
	}
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(accent).
		BorderLeftForeground(accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(accentDim).
		BorderLeftForeground(accent)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(textDim)

	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = item{candidate: c, showPath: showPaths}
	}
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("project", "projects")
	return pickerModel{list: l, maxRows: maxRows}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height
		if m.maxRows > 0 && height > m.maxRows {
			height = m.maxRows
		}
		m.list.SetSize(msg.Width, height)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				choice := it.candidate
				m.choice = &choice
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string { return m.list.View() }
