package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/diagram"
	"github.com/matzehuels/sankeyflow/pkg/pipeline"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/scene"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

// Rows taken by the title line and the two status lines.
const exploreChromeRows = 3

// Screen units moved per arrow key press.
const panStep = 25.0

// Samples per link when rasterizing connectors onto the cell grid.
const linkSamples = 96

// explore styles
var (
	exploreDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	exploreStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// exploreCommand creates the explore command: an interactive terminal view of
// a diagram with drag, pan, zoom and hover.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		in inputFlags
		df diagramFlags
	)

	cmd := &cobra.Command{
		Use:   "explore [dataset]",
		Short: "Browse a diagram interactively in the terminal",
		Long: `Browse a diagram interactively in the terminal.

Drag a node vertically to move it (the diagram re-lays out on release), drag
empty space to pan and use the mouse wheel to zoom. Hovering shows node and
link details in the status bar.

Keys: +/- zoom, 0 reset view, arrows pan, tab node table, e export SVG, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, source, err := in.load(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts := c.baseOptions()
			df.apply(cmd, &opts)
			opts.Dataset = ds
			opts.Source = source
			opts.Formats = []string{pipeline.DefaultFormat}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			d, err := pipeline.NewDiagram(cmd.Context(), opts)
			if err != nil {
				return err
			}
			m := newExploreModel(cmd.Context(), d, opts)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(exploreModel); ok && fm.exported != "" {
				printSuccess("Exported")
				printFile(fm.exported)
			}
			return nil
		},
	}

	in.bind(cmd)
	df.bind(cmd)

	return cmd
}

// =============================================================================
// exploreModel - Interactive diagram view
// =============================================================================

// exportedMsg reports the result of an SVG export.
type exportedMsg struct {
	path string
	err  error
}

// exploreModel is the bubbletea model of the explore command. Terminal cells
// map onto the diagram frame, so the whole frame fits the window at the
// identity view.
type exploreModel struct {
	ctx  context.Context
	d    *diagram.Diagram
	opts pipeline.Options

	cols, rows int // canvas size in cells
	tooltip    string
	message    string
	exported   string
	showTable  bool
}

func newExploreModel(ctx context.Context, d *diagram.Diagram, opts pipeline.Options) exploreModel {
	return exploreModel{
		ctx:  ctx,
		d:    d,
		opts: opts,
		cols: 80,
		rows: 24 - exploreChromeRows,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctrl := m.d.Controller()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 10)
		m.rows = max(msg.Height-exploreChromeRows, 5)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			ctrl.Cancel()
		case "+", "=":
			ctrl.Zoom(1.2)
		case "-", "_":
			ctrl.Zoom(0.8)
		case "0":
			ctrl.Reset()
		case "up":
			m.pan(0, panStep)
		case "down":
			m.pan(0, -panStep)
		case "left":
			m.pan(panStep, 0)
		case "right":
			m.pan(-panStep, 0)
		case "tab":
			m.showTable = !m.showTable
		case "e":
			m.message = "exporting..."
			return m, m.export()
		}

	case tea.MouseMsg:
		x, y, inside := m.screenPoint(msg.X, msg.Y)
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			ctrl.Wheel(-1)
		case msg.Button == tea.MouseButtonWheelDown:
			ctrl.Wheel(1)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
			ctrl.PointerDown(x, y)
		case msg.Action == tea.MouseActionMotion:
			ctrl.PointerMove(x, y)
			m.hover(x, y, inside)
		case msg.Action == tea.MouseActionRelease:
			ctrl.PointerUp()
		}

	case exportedMsg:
		if msg.err != nil {
			m.message = "export failed: " + msg.err.Error()
		} else {
			m.exported = msg.path
			m.message = "exported " + msg.path
		}
	}
	return m, nil
}

// pan shifts the view by a screen-space delta.
func (m exploreModel) pan(dx, dy float64) {
	v := m.d.View()
	v.Pan(dx, dy)
	m.d.SetView(v)
}

// hover updates the tooltip from the item under the pointer.
func (m *exploreModel) hover(x, y float64, inside bool) {
	if !inside {
		m.d.ClearHover()
		m.tooltip = ""
		return
	}
	for _, ev := range m.d.Hover(x, y) {
		switch ev.Type {
		case scene.Enter:
			m.tooltip = strings.ReplaceAll(ev.Tooltip(), "\n", " · ")
		case scene.Leave:
			m.tooltip = ""
		}
	}
}

// export renders the current view to <dataset>.svg. The diagram is only
// touched from Update, so the SVG is rendered here and the returned command
// just writes the bytes.
func (m exploreModel) export() tea.Cmd {
	opts := m.opts
	opts.Formats = []string{pipeline.DefaultFormat}
	artifacts, err := pipeline.RenderDiagram(m.ctx, m.d, opts)
	if err != nil {
		return func() tea.Msg { return exportedMsg{err: err} }
	}
	data := artifacts[pipeline.DefaultFormat]
	path := outputBase(opts.Source) + "." + pipeline.DefaultFormat
	return func() tea.Msg {
		if err := writeFile(path, data); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

// =============================================================================
// Coordinate Mapping
// =============================================================================

// cellSize returns the frame size of one cell in screen units.
func (m exploreModel) cellSize() (w, h float64) {
	lo := m.d.Config().Layout.WithDefaults()
	return lo.Width / float64(m.cols), lo.Height / float64(m.rows)
}

// screenPoint maps a terminal position to the screen-space centre of its
// cell. inside is false for the title and status rows.
func (m exploreModel) screenPoint(col, row int) (x, y float64, inside bool) {
	cw, ch := m.cellSize()
	row--
	inside = row >= 0 && row < m.rows && col >= 0 && col < m.cols
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch, inside
}

// cellOf maps a layout point through the view onto a canvas cell.
func (m exploreModel) cellOf(p layout.Point) (col, row int) {
	cw, ch := m.cellSize()
	s := m.d.View().Apply(p)
	return int(math.Floor(s.X / cw)), int(math.Floor(s.Y / ch))
}

// =============================================================================
// Rendering
// =============================================================================

type cell struct {
	ch    rune
	color string
}

// canvas rasterizes the scene: links as sampled curves, nodes as filled
// cells and labels to the right of each node.
func (m exploreModel) canvas() [][]cell {
	grid := make([][]cell, m.rows)
	for r := range grid {
		grid[r] = make([]cell, m.cols)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' '}
		}
	}
	set := func(c, r int, v cell) {
		if r >= 0 && r < m.rows && c >= 0 && c < m.cols {
			grid[r][c] = v
		}
	}

	sc := m.d.Scene()
	if sc == nil {
		return grid
	}
	for _, st := range sc.Strokes {
		for i := 0; i <= linkSamples; i++ {
			t := float64(i) / linkSamples
			c, r := m.cellOf(st.Curve.At(t))
			set(c, r, cell{ch: '░', color: styles.Blend(st.FromColor, st.ToColor, t)})
		}
	}
	for _, sh := range sc.Shapes {
		c0, r0 := m.cellOf(layout.Point{X: sh.Rect.X0, Y: sh.Rect.Y0})
		c1, r1 := m.cellOf(layout.Point{X: sh.Rect.X1, Y: sh.Rect.Y1})
		for r := r0; r <= max(r0, r1-1); r++ {
			for c := c0; c <= max(c0, c1-1); c++ {
				set(c, r, cell{ch: '█', color: sh.Color})
			}
		}
	}
	for _, sh := range sc.Shapes {
		c, _ := m.cellOf(layout.Point{X: sh.Rect.X1, Y: sh.Rect.CenterY()})
		_, r := m.cellOf(layout.Point{X: sh.Rect.X0, Y: sh.Rect.CenterY()})
		for i, ch := range []rune(sh.Name) {
			set(c+1+i, r, cell{ch: ch})
		}
	}
	return grid
}

func (m exploreModel) View() string {
	var b strings.Builder

	ctrl := m.d.Controller()
	b.WriteString(StyleTitle.Render(m.opts.Source))
	b.WriteString(exploreDimStyle.Render(fmt.Sprintf("  %s  %s", m.d.View(), ctrl.State())))
	b.WriteString("\n")

	if m.showTable {
		b.WriteString(m.nodeTable())
	} else {
		for _, row := range m.canvas() {
			b.WriteString(renderRow(row))
			b.WriteString("\n")
		}
	}

	status := m.tooltip
	if status == "" {
		status = m.message
	}
	b.WriteString(exploreStatusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("drag move/pan  wheel zoom  +/- zoom  0 reset  tab table  e export  q quit"))

	return b.String()
}

// renderRow styles runs of equally coloured cells.
func renderRow(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].color == row[i].color {
			run.WriteRune(row[j].ch)
			j++
		}
		if row[i].color == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(row[i].color)).Render(run.String()))
		}
		i = j
	}
	return b.String()
}

// nodeTable lists every node with its flow balance.
func (m exploreModel) nodeTable() string {
	sc := m.d.Scene()
	if sc == nil {
		return ""
	}
	rows := make([][]string, 0, len(sc.Shapes))
	for i, sh := range sc.Shapes {
		info := sc.NodeInfo(i)
		rows = append(rows, []string{
			"■", sh.Name, strconv.Itoa(sh.Layer),
			formatFlow(info.ValueIn), formatFlow(info.ValueOut), formatFlow(info.Balance),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Layer", "In", "Out", "Balance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 && row >= 0 && row < len(sc.Shapes) {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(sc.Shapes[row].Color))
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	return t.Render() + "\n"
}
