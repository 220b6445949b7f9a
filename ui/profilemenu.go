package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/profile"
)

// ProfileMenu lets the player pick or create a profile before playing.
type ProfileMenu struct {
	form     *tview.Form
	flex     *tview.Flex
	store    *profile.Store
	onStart  func(profileName string)
	onScores func()
	onQuit   func()

	selected string
	newName  string
}

// NewProfileMenu creates the profile selection screen.
func NewProfileMenu(store *profile.Store, onStart func(string), onScores func(), onQuit func()) *ProfileMenu {
	menu := &ProfileMenu{
		store:    store,
		onStart:  onStart,
		onScores: onScores,
		onQuit:   onQuit,
	}
	menu.form = tview.NewForm()
	menu.form.SetBorder(true)
	menu.form.SetTitle(" Who is playing? ")
	menu.form.SetTitleAlign(tview.AlignCenter)
	menu.form.SetButtonBackgroundColor(tcell.ColorDarkCyan)
	menu.form.SetButtonTextColor(tcell.ColorWhite)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	menu.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(menu.form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	menu.Refresh()
	return menu
}

// Refresh rebuilds the form from the current profile list. Call after
// profiles change.
func (m *ProfileMenu) Refresh() {
	m.form.Clear(true)

	profiles := m.store.List()
	options := make([]string, len(profiles))
	initial := 0
	active, hasActive := m.store.Active()
	for i, p := range profiles {
		options[i] = fmt.Sprintf("%s (best: %d)", p.Name, p.BestScore)
		if hasActive && p.Name == active.Name {
			initial = i
		}
	}
	if len(profiles) > 0 {
		m.selected = profiles[initial].Name
		m.form.AddDropDown("Profile", options, initial, func(option string, index int) {
			if index >= 0 && index < len(profiles) {
				m.selected = profiles[index].Name
			}
		})
	} else {
		m.selected = ""
	}

	m.form.AddInputField("New profile", "", 20, nil, func(text string) {
		m.newName = text
	})

	m.form.AddButton("Play", func() {
		name := m.selected
		if m.newName != "" {
			created, err := m.store.Create(m.newName)
			if err != nil {
				return
			}
			name = created.Name
			m.newName = ""
		}
		if name == "" {
			return
		}
		m.store.SetActive(name)
		m.onStart(name)
	})

	m.form.AddButton("High Scores", func() {
		if m.onScores != nil {
			m.onScores()
		}
	})

	m.form.AddButton("Quit", func() {
		m.onQuit()
	})
}

// Form returns the flex container with the form and help text.
func (m *ProfileMenu) Form() *tview.Flex {
	return m.flex
}

// SetInputCapture sets the input capture function for the form.
func (m *ProfileMenu) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	m.form.SetInputCapture(capture)
}
