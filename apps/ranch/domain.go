package ranch

import (
	"fmt"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

// Domain is one element of the chain RANCH models. It is either a linker
// sequence or a structured model, never both.
//
// A structured model with several chains needs a Chain selector saying
// which of its chains belongs to the chain being built; the partner chains
// are embedded so RANCH sees a single chain. Fixed marks a domain that is
// already modeled and must be kept rigid, chains and all.
type Domain struct {
	// Linker is a one letter amino acid sequence without structure.
	Linker string

	// Model is a structured domain, written out as a RANCH input PDB.
	Model *pdb.Model

	// Chain selects the chain of Model that is part of the chain being
	// modeled. It is required when Model has several chains and is neither
	// Fixed nor the symmetry template.
	Chain byte

	// Fixed marks an already modeled domain that RANCH must not move.
	Fixed bool
}

// NewLinker creates a linker Domain from a one letter sequence.
func NewLinker(seq string) Domain {
	return Domain{Linker: seq}
}

// NewDomain creates a structured Domain from a model.
func NewDomain(m *pdb.Model) Domain {
	return Domain{Model: m}
}

// NewChainDomain creates a structured Domain whose chain with the given
// identifier is part of the chain being modeled.
func NewChainDomain(m *pdb.Model, chain byte) Domain {
	return Domain{Model: m, Chain: chain}
}

// setup is everything derived from the domain list before RANCH runs: the
// concatenated sequence, the models written as input PDBs with their
// per-input fixed/multichain flags, the embedded chains with their
// sequence offsets, and the symmetric unit sequence when there is one.
type setup struct {
	sequence string
	models   []*pdb.Model
	fixed    []bool
	multich  []bool
	embedded []Embedded
	symseq   string
}

// buildSetup walks the domain list and builds the RANCH input, embedding
// partner chains where needed. It mirrors the order of the domain list
// exactly: sequence text, input models and flag lists all follow it.
func (conf Config) buildSetup(domains []Domain) (*setup, error) {
	if err := conf.validate(domains); err != nil {
		return nil, err
	}

	symunit := conf.SymUnit
	if conf.SymTemplate != nil && symunit == nil {
		// A single chain symmetric unit: take it from the template.
		symunit = conf.SymTemplate.TakeChains(0)
	}

	s := &setup{}
	for _, d := range domains {
		if len(d.Linker) > 0 {
			s.sequence += d.Linker
			continue
		}
		m := d.Model

		switch {
		case m == conf.SymTemplate:
			// The template already carries the full symmetric arrangement.
			// Only the symmetric unit contributes sequence; RANCH multiplies
			// it according to the symmetry group.
			s.sequence += symunit.Sequence()
			s.add(m, d.Fixed, true)

		case m.NumChains() == 1 || d.Fixed:
			// A single chain domain, or a domain that is already modeled
			// and treated as one rigid body.
			s.sequence += m.Sequence()
			s.add(m, d.Fixed, false)

		default:
			// A multi-chain domain of which one chain is being modeled.
			// Embed the partner chains into the selected chain and record
			// where they went, so they can be pulled back out of the
			// resulting models.
			ci := m.ChainIndex(d.Chain)
			if ci < 0 {
				return nil, fmt.Errorf("Model '%s' has no chain '%c'.",
					m.Path, d.Chain)
			}
			sel := m.TakeChains(ci)
			rest, err := ExtractFixed(sel, m)
			if err != nil {
				return nil, err
			}
			emb := Embed(sel, rest)

			s.embedded = append(s.embedded,
				Embedded{Model: rest, Offset: len(s.sequence) + 2})
			s.sequence += emb.Sequence()
			s.add(emb, false, false)
		}
	}

	// Symseq is the sequence that is multiplied in the symmetric structure.
	if conf.SymTemplate != nil {
		s.symseq = s.sequence
	}
	return s, nil
}

func (s *setup) add(m *pdb.Model, fixed, multich bool) {
	s.models = append(s.models, m)
	s.fixed = append(s.fixed, fixed)
	s.multich = append(s.multich, multich)
}

func (conf Config) validate(domains []Domain) error {
	if conf.Symmetry != "p1" && conf.SymTemplate == nil {
		return fmt.Errorf("Symmetry '%s' requires a symmetry template.",
			conf.Symmetry)
	}
	if conf.SymTemplate != nil {
		found := false
		for _, d := range domains {
			if d.Model == conf.SymTemplate {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("The symmetry template must be one of the " +
				"domains.")
		}
	}
	if _, ok := overallSymmetry[conf.OverallSym]; !ok {
		return fmt.Errorf("Unknown overall symmetry '%s'.", conf.OverallSym)
	}
	for i, d := range domains {
		switch {
		case len(d.Linker) > 0 && d.Model != nil:
			return fmt.Errorf("Domain %d is both a linker and a model.", i)
		case len(d.Linker) == 0 && d.Model == nil:
			return fmt.Errorf("Domain %d is neither a linker nor a model.", i)
		case d.Model != nil && d.Model.NumChains() > 1 && !d.Fixed &&
			d.Model != conf.SymTemplate && d.Chain == 0:

			return fmt.Errorf("Domain %d has %d chains; pick the modeled "+
				"chain with a chain selector, or mark the domain as fixed.",
				i, d.Model.NumChains())
		}
	}
	return nil
}
