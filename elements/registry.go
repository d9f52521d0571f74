package elements

import (
	"sort"

	"github.com/gogpu/schem"
)

// Factory constructs a fresh element instance.
type Factory func() *schem.Element

var catalog = map[string]Factory{
	"antenna":           Antenna,
	"arrowhead":         Arrowhead,
	"arrow_wire":        ArrowWire,
	"battery":           Battery,
	"battery_cell":      BatteryCell,
	"bjt_npn":           BjtNpn,
	"bjt_pnp":           BjtPnp,
	"button":            Button,
	"capacitor":         Capacitor,
	"capacitor_curved":  CapacitorCurved,
	"diode":             Diode,
	"diode_filled":      DiodeFilled,
	"dot":               Dot,
	"dot_open":          OpenDot,
	"fuse":              Fuse,
	"ground":            Ground,
	"ground_signal":     GroundSignal,
	"inductor":          Inductor,
	"lamp":              Lamp,
	"led":               LED,
	"loop_current":      LoopCurrent,
	"meter_a":           MeterA,
	"meter_v":           MeterV,
	"mic":               Mic,
	"motor":             Motor,
	"nfet":              NFet,
	"opamp":             Opamp,
	"pfet":              PFet,
	"resistor":          Resistor,
	"resistor_box":      ResistorBox,
	"source":            Source,
	"source_controlled": SourceControlled,
	"source_i":          SourceI,
	"source_sin":        SourceSin,
	"source_v":          SourceV,
	"speaker":           Speaker,
	"switch":            Switch,
	"switch_closed":     SwitchClosed,
	"vdd":               Vdd,
	"vss":               Vss,
	"wire":              Wire,
	"wire_dot":          WireDot,
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := catalog[name]
	return f, ok
}

// Names returns the registered element names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
