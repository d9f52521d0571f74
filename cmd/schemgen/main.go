// Command schemgen renders schematic diagrams from the built-in
// element catalog and demo circuits.
package main

import "github.com/gogpu/schem/cmd/schemgen/cmd"

func main() {
	cmd.Execute()
}
