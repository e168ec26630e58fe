// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/treeline"
)

const (
	// Cache rendered detail pages for 30 minutes
	detailCacheExpiration = 30 * time.Minute
	detailCacheCleanup    = 5 * time.Minute
)

// clipboardWrite is swapped out in tests
var clipboardWrite = clipboard.WriteAll

// Styles holds all the styling for the browser
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// valueItem represents one tree element in the list
type valueItem struct {
	value string
}

func (i valueItem) FilterValue() string { return i.value }
func (i valueItem) Title() string       { return i.value }
func (i valueItem) Description() string { return "" }

// BrowseModel is the Bubble Tea state for the in-order browser
type BrowseModel struct {
	ready bool

	searchInput textinput.Model
	valuesList  list.Model
	detailView  viewport.Model

	tree        *treeline.Tree[string]
	cursor      treeline.Iterator[string]
	detailCache *cache.Cache
	config      *Config
	styles      *Styles

	focusIndex int // 0: search input, 1: values list
	status     string
	statusErr  bool

	width  int
	height int
}

// NewBrowseModel creates the initial model over an already loaded tree
func NewBrowseModel(tree *treeline.Tree[string]) BrowseModel {
	config := LoadConfig()

	ti := textinput.New()
	ti.Placeholder = "Type text to find (first match in order)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	valuesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	valuesList.SetShowTitle(false)
	valuesList.SetShowHelp(false)

	detailView := viewport.New(0, 0)
	detailView.SetContent("Select a value to see details...")

	m := BrowseModel{
		searchInput: ti,
		valuesList:  valuesList,
		detailView:  detailView,
		tree:        tree,
		cursor:      tree.Begin(),
		detailCache: cache.New(detailCacheExpiration, detailCacheCleanup),
		config:      config,
		styles:      NewStyles(),
	}
	m.refreshList()
	return m
}

// Init is called when the program starts
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// refreshList rebuilds the list from the in-order sequence and moves
// the selection to the cursor's position.
func (m *BrowseModel) refreshList() {
	items := make([]list.Item, 0, m.tree.Len())
	selected := 0
	cursorValue, err := m.cursor.Value()
	index := 0
	m.tree.Ascend(func(v string) bool {
		if err == nil && v == cursorValue {
			selected = index
		}
		items = append(items, valueItem{value: v})
		index++
		return true
	})
	m.valuesList.SetItems(items)
	if len(items) > 0 {
		m.valuesList.Select(selected)
	}
	m.updateDetail()
}

// updateDetail renders the detail page for the cursor position,
// memoized until the next structural change flushes the cache.
func (m *BrowseModel) updateDetail() {
	value, err := m.cursor.Value()
	if err != nil {
		m.detailView.SetContent("At the end of the sequence.")
		return
	}

	key := fmt.Sprintf("%d:%s", m.valuesList.Index(), value)
	if cached, ok := m.detailCache.Get(key); ok {
		m.detailView.SetContent(cached.(string))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Value:    %s\n", value)
	fmt.Fprintf(&b, "Position: %d of %d\n", m.valuesList.Index()+1, m.tree.Len())
	fmt.Fprintf(&b, "Height:   %d\n", m.tree.Height())
	fmt.Fprintf(&b, "\nKeys: ←/→ step  enter find  ctrl+x delete  ctrl+y copy  tab focus  esc quit")
	content := b.String()

	m.detailCache.Set(key, content, detailCacheExpiration)
	m.detailView.SetContent(content)
}

func (m *BrowseModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// findCursor moves the cursor to the first in-order element containing
// the query text.
func (m *BrowseModel) findCursor(query string) {
	if query == "" {
		return
	}
	match := func(v string) bool {
		if m.config.Browse.CaseInsensitive {
			return strings.Contains(strings.ToLower(v), strings.ToLower(query))
		}
		return strings.Contains(v, query)
	}
	it := m.tree.Find(match)
	if it.AtEnd() {
		m.setStatus(fmt.Sprintf("no element contains %q", query), true)
		return
	}
	m.cursor = it
	value, _ := it.Value()
	m.setStatus(fmt.Sprintf("found %q", value), false)
	m.refreshList()
}

// stepCursor moves the cursor one position forward or backward.
func (m *BrowseModel) stepCursor(forward bool) {
	var next treeline.Iterator[string]
	var err error
	if forward {
		next, err = m.cursor.Next()
	} else {
		next, err = m.cursor.Prev()
	}
	switch {
	case err == nil:
		m.cursor = next
		m.setStatus("", false)
		m.refreshList()
	case errors.Is(err, treeline.ErrIllegalOperation):
		if forward {
			m.setStatus("already past the last element", true)
		} else {
			m.setStatus("already at the first element", true)
		}
	default:
		m.setStatus(err.Error(), true)
	}
}

// yankCursor copies the element at the cursor to the system clipboard.
func (m *BrowseModel) yankCursor() {
	value, err := m.cursor.Value()
	if err != nil {
		m.setStatus("nothing selected to copy", true)
		return
	}
	if err := clipboardWrite(value); err != nil {
		m.setStatus(fmt.Sprintf("clipboard copy failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 copied %q to clipboard", value), false)
}

// deleteCursor removes the element at the cursor; the cursor advances
// to the in-order successor.
func (m *BrowseModel) deleteCursor() {
	value, err := m.cursor.Value()
	if err != nil {
		m.setStatus("nothing selected to delete", true)
		return
	}
	next, err := m.tree.Remove(m.cursor)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.cursor = next
	m.detailCache.Flush()
	m.setStatus(fmt.Sprintf("deleted %q", value), false)
	m.refreshList()
}

// Update handles all the I/O
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focusIndex == 0 {
				m.focusIndex = 1
				m.searchInput.Blur()
			} else {
				m.focusIndex = 0
				m.searchInput.Focus()
			}
			return m, nil
		case "enter":
			if m.focusIndex == 0 {
				m.findCursor(m.searchInput.Value())
				return m, nil
			}
		case "left":
			m.stepCursor(false)
			return m, nil
		case "right":
			m.stepCursor(true)
			return m, nil
		case "ctrl+x":
			m.deleteCursor()
			return m, nil
		case "ctrl+y":
			m.yankCursor()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		listWidth := m.width / 2
		detailWidth := m.width - listWidth - 6
		contentHeight := m.height - 10

		m.valuesList.SetSize(listWidth, contentHeight)
		m.detailView.Width = detailWidth
		m.detailView.Height = contentHeight
		m.updateDetail()
	}

	if m.focusIndex == 0 {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var cmd tea.Cmd
		m.valuesList, cmd = m.valuesList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the browser
func (m BrowseModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("treeline browser — %d elements", m.tree.Len()))

	inputBox := m.styles.BorderBlurred.Render(m.searchInput.View())
	listBox := m.styles.BorderBlurred.Render(m.valuesList.View())
	if m.focusIndex == 0 {
		inputBox = m.styles.BorderFocused.Render(m.searchInput.View())
	} else {
		listBox = m.styles.BorderFocused.Render(m.valuesList.View())
	}
	detailBox := m.styles.BorderBlurred.Render(m.detailView.View())

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.StatusError.Render(m.status)
		} else {
			status = m.styles.StatusInfo.Render(m.status)
		}
	}

	help := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.HelpKey.Render("←/→"), m.styles.HelpDesc.Render(" step  "),
		m.styles.HelpKey.Render("enter"), m.styles.HelpDesc.Render(" find  "),
		m.styles.HelpKey.Render("ctrl+x"), m.styles.HelpDesc.Render(" delete  "),
		m.styles.HelpKey.Render("ctrl+y"), m.styles.HelpDesc.Render(" copy  "),
		m.styles.HelpKey.Render("tab"), m.styles.HelpDesc.Render(" focus  "),
		m.styles.HelpKey.Render("esc"), m.styles.HelpDesc.Render(" quit"),
	)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, listBox, detailBox)
	return lipgloss.JoinVertical(lipgloss.Left, title, inputBox, columns, status, help)
}

func runBrowse(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	lines, err := readLines(file)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s holds no values to browse", path)
	}

	tree := treeline.NewOrdered[string]()
	for _, line := range lines {
		tree.Insert(line)
	}

	p := tea.NewProgram(NewBrowseModel(tree), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
