package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/schem"
	"github.com/gogpu/schem/elements"

	_ "github.com/gogpu/schem/backend/raster"
	_ "github.com/gogpu/schem/backend/svg"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <circuit>",
	Short: "Render a demo circuit",
	Long: `Render one of the built-in demo circuits to a file. The output
format is chosen from the file extension (.svg or .png).

Available circuits: ` + strings.Join(circuitNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "circuit.svg", "output file (.svg or .png)")
}

func runRender(cmd *cobra.Command, args []string) error {
	build, ok := circuits[args[0]]
	if !ok {
		return fmt.Errorf("unknown circuit %q (available: %s)", args[0], strings.Join(circuitNames(), ", "))
	}
	d := schem.NewDrawing()
	if err := build(d); err != nil {
		return fmt.Errorf("building circuit %q: %w", args[0], err)
	}
	if err := d.Save(renderOutput); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", renderOutput)
	return nil
}

var circuits = map[string]func(*schem.Drawing) error{
	"rc":      buildRC,
	"divider": buildDivider,
	"opamp":   buildOpamp,
}

func circuitNames() []string {
	names := make([]string, 0, len(circuits))
	for n := range circuits {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// buildRC is a source driving a series RC to ground.
func buildRC(d *schem.Drawing) error {
	src, err := d.Add(elements.SourceV(), schem.Up(), schem.WithLabel("5V"))
	if err != nil {
		return err
	}
	if _, err := d.Add(elements.Resistor(), schem.Right(), schem.WithLabel("10kΩ")); err != nil {
		return err
	}
	if _, err := d.Add(elements.Capacitor(), schem.Down(), schem.WithLabel("100nF")); err != nil {
		return err
	}
	if _, err := d.Add(elements.Wire(), schem.Left(), schem.Tox(src.Start.X)); err != nil {
		return err
	}
	if _, err := d.Add(elements.Ground()); err != nil {
		return err
	}
	return nil
}

// buildDivider is a two-resistor voltage divider with a tapped output.
func buildDivider(d *schem.Drawing) error {
	if _, err := d.Add(elements.SourceV(), schem.Up(), schem.WithLabel("Vin")); err != nil {
		return err
	}
	if _, err := d.Add(elements.Resistor(), schem.Right(), schem.WithLabel("R1")); err != nil {
		return err
	}
	tap, err := d.Add(elements.Dot())
	if err != nil {
		return err
	}
	if _, err := d.Add(elements.Resistor(), schem.Down(), schem.WithLabel("R2")); err != nil {
		return err
	}
	if _, err := d.Add(elements.Ground()); err != nil {
		return err
	}
	if _, err := d.Add(elements.Wire(), schem.Right(), schem.L(1.5), schem.At(tap.End)); err != nil {
		return err
	}
	if _, err := d.Add(elements.OpenDot()); err != nil {
		return err
	}
	if _, err := d.Add(elements.TextLabel("Vout")); err != nil {
		return err
	}
	return nil
}

// buildOpamp is an inverting amplifier with a feedback resistor.
func buildOpamp(d *schem.Drawing) error {
	op, err := d.Add(elements.Opamp(), schem.Right())
	if err != nil {
		return err
	}
	out, err := op.Anchor("out")
	if err != nil {
		return err
	}
	if _, err := d.Add(elements.Resistor(), schem.Left(), schem.AtAnchor(op, "in1"), schem.WithLabel("Rin")); err != nil {
		return err
	}
	if _, err := d.Add(elements.OpenDot()); err != nil {
		return err
	}
	if _, err := d.Add(elements.Wire(), schem.Up(), schem.L(1.5), schem.AtAnchor(op, "in1")); err != nil {
		return err
	}
	if _, err := d.Add(elements.Resistor(), schem.Right(), schem.Tox(out.X), schem.WithLabel("Rf")); err != nil {
		return err
	}
	if _, err := d.Add(elements.Wire(), schem.Down(), schem.Toy(out.Y)); err != nil {
		return err
	}
	if _, err := d.Add(elements.Dot(), schem.At(out)); err != nil {
		return err
	}
	if _, err := d.Add(elements.Wire(), schem.Right(), schem.L(1), schem.At(out)); err != nil {
		return err
	}
	if _, err := d.Add(elements.Wire(), schem.Left(), schem.L(0.75), schem.AtAnchor(op, "in2")); err != nil {
		return err
	}
	if _, err := d.Add(elements.Ground()); err != nil {
		return err
	}
	return nil
}
