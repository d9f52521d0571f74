package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/schem"
	"github.com/gogpu/schem/elements"
)

var previewDir string

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the element catalog",
	Long: `List every element in the catalog. With --preview, render each
element on its own into the given directory, one SVG per element.`,
	Args: cobra.NoArgs,
	RunE: runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)
	elementsCmd.Flags().StringVar(&previewDir, "preview", "", "render one SVG per element into this directory")
}

func runElements(cmd *cobra.Command, args []string) error {
	names := elements.Names()
	if previewDir == "" {
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}

	if err := os.MkdirAll(previewDir, 0o755); err != nil {
		return err
	}
	for _, n := range names {
		factory, _ := elements.Lookup(n)
		d := schem.NewDrawing()
		if _, err := d.Add(factory(), schem.Right()); err != nil {
			return fmt.Errorf("placing %s: %w", n, err)
		}
		path := filepath.Join(previewDir, n+".svg")
		if err := d.Save(path); err != nil {
			return fmt.Errorf("rendering %s: %w", n, err)
		}
	}
	fmt.Printf("Rendered %d elements into %s\n", len(names), previewDir)
	return nil
}
