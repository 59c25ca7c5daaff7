package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketch3d/pkg/scene"
	"github.com/matzehuels/sketch3d/pkg/sceneio"
)

// objectsCommand creates the objects command for listing scene contents.
func (c *CLI) objectsCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "objects [scene.toml]",
		Short: "List the objects in a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := sceneio.Load(args[0])
			if err != nil {
				return err
			}
			objs := f.Scene().Objects()
			if len(objs) == 0 {
				printWarning("Scene is empty")
				return nil
			}
			if interactive {
				return browseObjects(objs)
			}
			fmt.Println(objectTable(objs, -1, 0, len(objs)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse objects interactively")

	return cmd
}

// objectKind names an object's concrete type for display.
func objectKind(o scene.Object) string {
	switch o.(type) {
	case *scene.MarkObject:
		return "mark"
	case *scene.EdgeObject:
		return "line"
	case *scene.FaceObject:
		return "face"
	case *scene.AxisObject:
		return "axis"
	}
	return "object"
}

// objectTable renders the object list as a table. cursor is the
// highlighted row index, or -1 for the static listing.
func objectTable(objs []scene.Object, cursor, offset, height int) string {
	end := offset + height
	if end > len(objs) {
		end = len(objs)
	}

	rows := [][]string{}
	for i := offset; i < end; i++ {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{marker, fmt.Sprintf("%d", i), objectKind(objs[i]), objs[i].Label()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Kind", "Object").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if offset+row == cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// =============================================================================
// ObjectListModel - Interactive object browsing
// =============================================================================

// ObjectListModel is the bubbletea model for browsing scene objects.
type ObjectListModel struct {
	Objects []scene.Object
	Cursor  int
	Height  int
	Offset  int
}

// NewObjectListModel creates a new object list model.
func NewObjectListModel(objs []scene.Object) ObjectListModel {
	return ObjectListModel{
		Objects: objs,
		Height:  15,
	}
}

func (m ObjectListModel) Init() tea.Cmd {
	return nil
}

func (m ObjectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Objects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ObjectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Scene Objects"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	b.WriteString(objectTable(m.Objects, m.Cursor, m.Offset, m.Height))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Objects))))

	return b.String()
}

// browseObjects runs the interactive object browser.
func browseObjects(objs []scene.Object) error {
	p := tea.NewProgram(NewObjectListModel(objs))
	_, err := p.Run()
	return err
}
