package elements

import "github.com/gogpu/schem"

// Bipolar transistor proportions. The base lead enters from the left;
// collector exits top right, emitter bottom right.
const (
	bjtLead = 0.4  // base lead length
	bjtBar  = 0.3  // bar half height
	bjtDiag = 0.45 // diagonal run
	bjtV    = 0.25 // vertical run after the diagonal
)

// bjt builds the shared NPN/PNP skeleton; the caller adds the emitter
// arrow.
func bjt(name string) *schem.Element {
	e := schem.NewElement(name)
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(bjtLead, 0)),
		schem.Line(schem.Pt(bjtLead, bjtBar), schem.Pt(bjtLead, -bjtBar)),
		schem.Line(
			schem.Pt(bjtLead, bjtBar/2),
			schem.Pt(bjtLead+bjtDiag, bjtBar/2+bjtDiag*0.75),
			schem.Pt(bjtLead+bjtDiag, bjtBar/2+bjtDiag*0.75+bjtV),
		),
	)
	e.SetAnchor("base", schem.Pt(0, 0))
	e.SetAnchor("collector", schem.Pt(bjtLead+bjtDiag, bjtBar/2+bjtDiag*0.75+bjtV))
	e.SetAnchor("emitter", schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75-bjtV))
	e.SetDrop(schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75-bjtV))
	return e
}

// BjtNpn is an NPN bipolar transistor: the emitter arrow points away
// from the base bar.
//
// Anchors: base, collector, emitter.
func BjtNpn() *schem.Element {
	e := bjt("bjt_npn")
	e.Add(
		schem.Arrow(schem.Pt(bjtLead, -bjtBar/2), schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75)).WithHead(0.15, 0.18),
		schem.Line(
			schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75),
			schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75-bjtV),
		),
	)
	return e
}

// BjtPnp is a PNP bipolar transistor: the emitter arrow points into
// the base bar.
//
// Anchors: base, collector, emitter.
func BjtPnp() *schem.Element {
	e := bjt("bjt_pnp")
	e.Add(
		schem.Arrow(schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75), schem.Pt(bjtLead, -bjtBar/2)).WithHead(0.15, 0.18),
		schem.Line(
			schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75),
			schem.Pt(bjtLead+bjtDiag, -bjtBar/2-bjtDiag*0.75-bjtV),
		),
	)
	return e
}

// FET proportions.
const (
	fetGateLead = 0.35
	fetGateBar  = 0.3
	fetChan     = 0.25 // gate-to-channel spacing
	fetStub     = 0.5  // source/drain vertical runs
)

// fet builds the shared N/P channel skeleton.
func fet(name string) *schem.Element {
	e := schem.NewElement(name)
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(fetGateLead, 0)),
		schem.Line(schem.Pt(fetGateLead, fetGateBar), schem.Pt(fetGateLead, -fetGateBar)),
		schem.Line(schem.Pt(fetGateLead+fetChan, fetGateBar), schem.Pt(fetGateLead+fetChan, -fetGateBar)),
		schem.Line(
			schem.Pt(fetGateLead+fetChan, fetGateBar/2),
			schem.Pt(fetGateLead+fetChan+fetStub, fetGateBar/2),
			schem.Pt(fetGateLead+fetChan+fetStub, fetGateBar/2+fetStub),
		),
		schem.Line(
			schem.Pt(fetGateLead+fetChan, -fetGateBar/2),
			schem.Pt(fetGateLead+fetChan+fetStub, -fetGateBar/2),
			schem.Pt(fetGateLead+fetChan+fetStub, -fetGateBar/2-fetStub),
		),
	)
	e.SetAnchor("gate", schem.Pt(0, 0))
	e.SetAnchor("drain", schem.Pt(fetGateLead+fetChan+fetStub, fetGateBar/2+fetStub))
	e.SetAnchor("source", schem.Pt(fetGateLead+fetChan+fetStub, -fetGateBar/2-fetStub))
	e.SetDrop(schem.Pt(fetGateLead+fetChan+fetStub, -fetGateBar/2-fetStub))
	return e
}

// NFet is an N-channel field-effect transistor.
//
// Anchors: gate, drain, source.
func NFet() *schem.Element {
	e := fet("nfet")
	e.Add(schem.Arrow(schem.Pt(fetGateLead+fetChan+fetStub*0.6, -fetGateBar/2), schem.Pt(fetGateLead+fetChan, -fetGateBar/2)).WithHead(0.12, 0.15))
	return e
}

// PFet is a P-channel field-effect transistor.
//
// Anchors: gate, drain, source.
func PFet() *schem.Element {
	e := fet("pfet")
	e.Add(schem.Arrow(schem.Pt(fetGateLead+fetChan, fetGateBar/2), schem.Pt(fetGateLead+fetChan+fetStub*0.6, fetGateBar/2)).WithHead(0.12, 0.15))
	return e
}
