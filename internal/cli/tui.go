package cli

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/voxview/pkg/view"
	"github.com/matzehuels/voxview/pkg/viewer"
)

// statusRows is the number of terminal rows reserved below the framebuffer.
const statusRows = 2

// viewerModel is the bubbletea front end for a viewer session. The terminal
// is treated as a framebuffer of half-block cells: each character cell shows
// two vertically stacked pixels via the upper-half-block glyph, so a WxH
// terminal displays a Wx2H pixel frame.
type viewerModel struct {
	session *viewer.Session

	termW, termH int

	// entering is true while the window text input is open.
	entering bool
	input    string
}

func newViewerModel(s *viewer.Session) viewerModel {
	return viewerModel{session: s}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		rows := msg.Height - statusRows
		if rows < 1 {
			rows = 1
		}
		m.session.Resize(msg.Width, rows*2)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case tea.KeyMsg:
		if m.entering {
			return m.updateInput(msg), nil
		}
		return m.updateKey(msg)
	}
	return m, nil
}

// updateMouse forwards left-button events, mapping the cell position onto
// the pixel grid (one cell is one pixel wide and two tall).
func (m viewerModel) updateMouse(msg tea.MouseMsg) viewerModel {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return m
	}
	x := float64(msg.X)
	y := float64(msg.Y * 2)

	switch msg.Action {
	case tea.MouseActionPress:
		m.session.PointerPress(x, y)
	case tea.MouseActionMotion:
		m.session.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.session.PointerRelease(x, y)
	}
	return m
}

// updateInput handles keystrokes while the window text input is open.
// Enter commits, escape cancels, and an unparsable value silently keeps the
// previous window.
func (m viewerModel) updateInput(msg tea.KeyMsg) viewerModel {
	switch msg.Type {
	case tea.KeyEnter:
		m.session.CommitWindowText(m.session.ActiveView(), m.input)
		m.entering = false
		m.input = ""
	case tea.KeyEscape:
		m.entering = false
		m.input = ""
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m
}

func (m viewerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "w":
		m.entering = true
		m.input = ""
		return m, nil
	}
	m.session.HandleKey(keyFor(msg.String()))
	return m, nil
}

// keyFor maps a terminal key name onto a session action.
func keyFor(name string) viewer.Key {
	switch name {
	case "left", "down":
		return viewer.KeySliceBack
	case "right", "up":
		return viewer.KeySliceForward
	case "+", "=":
		return viewer.KeyZoomIn
	case "-":
		return viewer.KeyZoomOut
	case "1":
		return viewer.KeyPlaneXY
	case "2":
		return viewer.KeyPlaneXZ
	case "3":
		return viewer.KeyPlaneYZ
	case "]":
		return viewer.KeyWindowWiden
	case "[":
		return viewer.KeyWindowNarrow
	case "}":
		return viewer.KeyLevelUp
	case "{":
		return viewer.KeyLevelDown
	case "z":
		return viewer.KeyToggleZoomMode
	case "d":
		return viewer.KeyToggleDragMode
	case "a":
		return viewer.KeyAutoWindow
	case "s":
		return viewer.KeyToggleSync
	case "tab":
		return viewer.KeyNextView
	case "r":
		return viewer.KeyReset
	}
	return viewer.KeyNone
}

func (m viewerModel) View() string {
	if m.termW == 0 {
		return ""
	}

	frame := m.session.Render()
	var b strings.Builder
	b.Grow(m.termW * m.termH * 24)
	writeHalfBlocks(&b, frame, m.termW, m.termH-statusRows)
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

// writeHalfBlocks encodes the framebuffer as upper-half-block glyphs with
// truecolor escapes: the foreground carries the top pixel of each row pair,
// the background the bottom one. Escape sequences are only emitted when a
// color changes along the row.
func writeHalfBlocks(b *strings.Builder, frame *image.RGBA, cols, rows int) {
	bounds := frame.Bounds()
	for row := 0; row < rows; row++ {
		var prevTop, prevBot [3]uint8
		first := true
		for col := 0; col < cols; col++ {
			top := pixelAt(frame, bounds, col, row*2)
			bot := pixelAt(frame, bounds, col, row*2+1)
			if first || top != prevTop {
				fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm", top[0], top[1], top[2])
			}
			if first || bot != prevBot {
				fmt.Fprintf(b, "\x1b[48;2;%d;%d;%dm", bot[0], bot[1], bot[2])
			}
			b.WriteString("▀")
			prevTop, prevBot = top, bot
			first = false
		}
		b.WriteString("\x1b[0m\n")
	}
}

func pixelAt(frame *image.RGBA, bounds image.Rectangle, x, y int) [3]uint8 {
	if x >= bounds.Max.X || y >= bounds.Max.Y {
		return [3]uint8{}
	}
	off := frame.PixOffset(x, y)
	return [3]uint8{frame.Pix[off], frame.Pix[off+1], frame.Pix[off+2]}
}

// statusLine summarizes the active view, or shows the window input prompt.
func (m viewerModel) statusLine() string {
	if m.entering {
		return StyleHighlight.Render("window> ") + StyleValue.Render(m.input+"▎")
	}

	idx := m.session.ActiveView()
	v := m.session.View(idx)
	min, max := v.Volume.Window()

	parts := []string{
		StyleTitle.Render(v.Volume.Name()),
		fmt.Sprintf("%s %d/%d", v.Plane, v.Slice, v.SliceExtent()-1),
		fmt.Sprintf("zoom %.2f", v.Transform.Zoom),
		fmt.Sprintf("window [%.4g, %.4g]", min, max),
	}
	if v.ZoomMode {
		parts = append(parts, StyleHighlight.Render("ZOOM"))
	}
	if v.DragMode {
		parts = append(parts, StyleHighlight.Render("DRAG"))
	}
	if m.session.SyncColormap() {
		parts = append(parts, StyleHighlight.Render("SYNC"))
	}
	if m.session.Interaction().Mode == view.ModeBoxZoom {
		parts = append(parts, StyleWarning.Render("box-zoom"))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func (m viewerModel) helpLine() string {
	return StyleDim.Render("←/→ slice  +/- zoom  1/2/3 plane  z/d mode  [/]/{/} window  w enter  a auto  s sync  tab view  r reset  q quit")
}
