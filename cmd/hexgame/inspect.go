package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgame/internal/config"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print hex grid geometry",
	Long: `Print the geometry of the window layout from the effective settings.
The camera is at rest, so pixels are window pixels before any scrolling.

Flags go before the coordinates. Once the first coordinate is read the rest
are taken as values, so a later one may be negative. Put -- in front when
the first coordinate is negative.`,
}

var inspectHexCmd = &cobra.Command{
	Use:   "hex <q> <r>",
	Short: "Show the corners, sides and neighbours of a cell",
	Example: `  hexgame inspect hex 0 0
  hexgame inspect hex 2 -1
  hexgame inspect hex -- -3 1`,
	Args: cobra.ExactArgs(2),
	Run:  runInspectHex,
}

var inspectPixelCmd = &cobra.Command{
	Use:     "pixel <x> <y>",
	Short:   "Show the cell under a window pixel",
	Example: `  hexgame inspect pixel 480 360
  hexgame inspect pixel -- -20 100`,
	Args:    cobra.ExactArgs(2),
	Run:     runInspectPixel,
}

func init() {
	// Stop at the first coordinate so "-1" is not read as a shorthand flag.
	inspectHexCmd.Flags().SetInterspersed(false)
	inspectPixelCmd.Flags().SetInterspersed(false)

	inspectCmd.AddCommand(inspectHexCmd)
	inspectCmd.AddCommand(inspectPixelCmd)
}

// inspectGrid loads the window layout and the map bounds.
func inspectGrid() (hexgrid.Layout, *hexgrid.Map) {
	settings, err := loadSettings(nil)
	if err != nil {
		fail("%v", err)
	}
	l, err := settings.LayoutFor(config.FrontendWindow, float64(settings.Window.Width), float64(settings.Window.Height))
	if err != nil {
		fail("%v", err)
	}
	m, err := hexgrid.NewMap(settings.Map.Radius)
	if err != nil {
		fail("%v", err)
	}
	return l, m
}

func runInspectHex(cmd *cobra.Command, args []string) {
	q, err := strconv.Atoi(args[0])
	if err != nil {
		fail("invalid q %q", args[0])
	}
	r, err := strconv.Atoi(args[1])
	if err != nil {
		fail("invalid r %q", args[1])
	}
	l, m := inspectGrid()
	printHex(cmd.OutOrStdout(), l, m, hexgrid.At(q, r))
}

func runInspectPixel(cmd *cobra.Command, args []string) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fail("invalid x %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fail("invalid y %q", args[1])
	}
	l, m := inspectGrid()
	printPixel(cmd.OutOrStdout(), l, m, hexgrid.Pt(x, y))
}

func fmtPoint(p hexgrid.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

func onMap(m *hexgrid.Map, h hexgrid.Hex) string {
	if m.Contains(h) {
		return "yes"
	}
	return "no"
}

func printHex(w io.Writer, l hexgrid.Layout, m *hexgrid.Map, h hexgrid.Hex) {
	fmt.Fprintf(w, "Hex %v\n", h)
	fmt.Fprintf(w, "  cube:   q=%d r=%d s=%d\n", h.Q(), h.R(), h.S())
	fmt.Fprintf(w, "  length: %d\n", h.Length())
	fmt.Fprintf(w, "  on map: %s\n", onMap(m, h))
	fmt.Fprintf(w, "  center: %s\n", fmtPoint(l.CenterPixel(h)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Vertices:")
	for i, v := range l.Vertices(h) {
		fmt.Fprintf(w, "  %d  %s\n", i, fmtPoint(v))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sides:")
	fmt.Fprintf(w, "  %-3s %-20s %-20s %s\n", "Dir", "From", "To", "Neighbour")
	for _, d := range hexgrid.Directions {
		seg := l.Side(h, d)
		fmt.Fprintf(w, "  %-3s %-20s %-20s %v\n", d, fmtPoint(seg.A), fmtPoint(seg.B), h.Neighbour(d))
	}
}

func printPixel(w io.Writer, l hexgrid.Layout, m *hexgrid.Map, p hexgrid.Point) {
	h := l.PixelToHex(p)
	fmt.Fprintf(w, "Pixel %s\n", fmtPoint(p))
	fmt.Fprintf(w, "  hex:    %v\n", h)
	fmt.Fprintf(w, "  on map: %s\n", onMap(m, h))
	fmt.Fprintf(w, "  center: %s\n", fmtPoint(l.CenterPixel(h)))
}
