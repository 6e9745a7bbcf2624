// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/led-badge/lbadge/pkg/badge"
	"github.com/led-badge/lbadge/pkg/bitmap"
)

// panelWidth is the LED column count of the common 44x11 badge panel.
const panelWidth = 44

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Animate the configured slot in the terminal",
	Long: `Preview renders the configured slot on a simulated 44x11 LED panel so
the message can be checked without hardware. The left, right, up and down
effects animate at the configured speed; the remaining effects are shown
as a static panel. Blink and frame are simulated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("preview needs an interactive terminal")
		}
		b, err := buildBadge(cmd)
		if err != nil {
			return err
		}
		slot := b.Slot(slotIndex)
		if slot.Bitmap.Empty() {
			return badge.ErrNoContent
		}

		model := newPreviewModel(slot)
		_, err = tea.NewProgram(model).Run()
		return err
	},
}

func init() {
	addMessageFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

//////////////////////////////////////////////////////////////
// Bubble Tea model
//////////////////////////////////////////////////////////////

type previewKeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Quit}}
}

var previewKeys = previewKeyMap{
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	litStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	unlitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder())
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type previewTickMsg time.Time

type previewModel struct {
	slot *badge.Slot
	keys previewKeyMap
	help help.Model

	offset     int  // scroll phase
	blinkPhase bool // true while a blinking message is blanked
	tick       int
	paused     bool
}

func newPreviewModel(slot *badge.Slot) *previewModel {
	return &previewModel{
		slot: slot,
		keys: previewKeys,
		help: help.New(),
	}
}

// tickInterval maps badge speed 1..8 to an animation period, faster
// speeds ticking more often. Unset speed previews at the slowest rate.
func (m *previewModel) tickInterval() time.Duration {
	speed := m.slot.Speed
	if speed == 0 {
		speed = badge.SpeedMin
	}
	return time.Duration(9-speed) * 30 * time.Millisecond
}

func (m *previewModel) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m *previewModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.tickInterval(), func(t time.Time) tea.Msg {
		return previewTickMsg(t)
	})
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		}
		return m, nil

	case previewTickMsg:
		if !m.paused {
			m.advance()
		}
		return m, m.scheduleTick()
	}
	return m, nil
}

// advance moves the animation one step. Scroll effects cycle through the
// full strip; blink toggles visibility every eight ticks.
func (m *previewModel) advance() {
	m.tick++
	if m.slot.Blink && m.tick%8 == 0 {
		m.blinkPhase = !m.blinkPhase
	}

	switch m.slot.Effect {
	case badge.EffectLeft, badge.EffectRight:
		m.offset = (m.offset + 1) % (m.slot.Bitmap.Width() + panelWidth)
	case badge.EffectUp, badge.EffectDown:
		m.offset = (m.offset + 1) % (2 * bitmap.Height)
	default:
		m.offset = 0
	}
}

// pixelAt maps a panel coordinate to the slot bitmap under the current
// animation phase.
func (m *previewModel) pixelAt(x, y int) bool {
	if m.slot.Blink && m.blinkPhase {
		return false
	}
	bm := m.slot.Bitmap
	switch m.slot.Effect {
	case badge.EffectLeft:
		return bm.PixelAt(x+m.offset-panelWidth, y)
	case badge.EffectRight:
		return bm.PixelAt(x-m.offset+bm.Width(), y)
	case badge.EffectUp:
		return bm.PixelAt(x, y+m.offset-bitmap.Height)
	case badge.EffectDown:
		return bm.PixelAt(x, y-m.offset+bitmap.Height)
	default:
		return bm.PixelAt(x, y)
	}
}

func (m *previewModel) View() string {
	var rows []string
	for y := 0; y < bitmap.Height; y++ {
		var row strings.Builder
		for x := 0; x < panelWidth; x++ {
			if m.pixelAt(x, y) {
				row.WriteString(litStyle.Render("█"))
			} else {
				row.WriteString(unlitStyle.Render("·"))
			}
		}
		rows = append(rows, row.String())
	}
	panel := strings.Join(rows, "\n")
	if m.slot.Frame {
		panel = frameStyle.Render(panel)
	} else {
		panel = panelStyle.Render(panel)
	}

	status := fmt.Sprintf("effect %s  speed %d", m.slot.Effect, m.slot.Speed)
	if m.paused {
		status += "  (paused)"
	}

	return panel + "\n" + statusStyle.Render(status) + "\n" + m.help.View(m.keys) + "\n"
}
