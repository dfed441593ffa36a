package gridworld

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"
)

// arrows are the symbols used to print each action
var arrows = [NumActions]string{"←", "→", "↑", "↓"}

// Render renders the GridWorld to a PNG file, with each cell cellSize
// pixels wide. Goals are drawn in green and the agent in blue. If
// greedy is not nil, the action it returns for each cell is drawn as
// an arrow.
func (g *GridWorld) Render(filename string, cellSize int,
	greedy func(obs mat.Vector) int) error {
	size := float64(cellSize)
	width, height := g.cols*cellSize, g.rows*cellSize

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for x := 0; x < g.cols; x++ {
		for y := 0; y < g.rows; y++ {
			// Row 0 of the image is the top row of the grid
			left, top := float64(x)*size, float64(g.rows-1-y)*size

			if goal, ok := g.Task.(*Goal); ok && goal.isGoal(x, y) {
				dc.SetRGB(0.3, 0.8, 0.3)
				dc.DrawRectangle(left, top, size, size)
				dc.Fill()
			}

			dc.SetRGB(0.6, 0.6, 0.6)
			dc.SetLineWidth(1)
			dc.DrawRectangle(left, top, size, size)
			dc.Stroke()

			if greedy != nil {
				obs := mat.NewVecDense(2, []float64{float64(x), float64(y)})
				drawArrow(dc, left+size/2, top+size/2, size/3, greedy(obs))
			}
		}
	}

	// Agent
	dc.SetRGB(0.2, 0.3, 0.9)
	dc.DrawCircle((float64(g.x)+0.5)*size, (float64(g.rows-1-g.y)+0.5)*size,
		size/4)
	dc.Fill()

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("render: %v", err)
	}
	return nil
}

// drawArrow draws an arrow of length l centred at (cx, cy) pointing in
// the direction of action
func drawArrow(dc *gg.Context, cx, cy, l float64, action int) {
	dx, dy := 0.0, 0.0
	switch action {
	case Left:
		dx = -l
	case Right:
		dx = l
	case Up:
		dy = -l
	case Down:
		dy = l
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawLine(cx-dx/2, cy-dy/2, cx+dx/2, cy+dy/2)
	dc.Stroke()
	dc.DrawCircle(cx+dx/2, cy+dy/2, l/8)
	dc.Fill()
}

// PolicyString returns the action greedy takes in each cell, with the
// top row of the grid printed first. Goals are printed as G. If
// colours is true, goals are printed in green and the agent's current
// cell in blue.
func (g *GridWorld) PolicyString(greedy func(obs mat.Vector) int,
	colours bool) string {
	au := aurora.NewAurora(colours)
	goal, _ := g.Task.(*Goal)

	var b strings.Builder
	for y := g.rows - 1; y >= 0; y-- {
		for x := 0; x < g.cols; x++ {
			var cell aurora.Value
			switch {
			case goal != nil && goal.isGoal(x, y):
				cell = au.Green("G")

			default:
				obs := mat.NewVecDense(2, []float64{float64(x), float64(y)})
				symbol := arrows[greedy(obs)]
				if x == g.x && y == g.y {
					cell = au.Blue(symbol)
				} else {
					cell = au.White(symbol)
				}
			}
			fmt.Fprintf(&b, " %v", cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}
