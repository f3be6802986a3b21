package pdb

import (
	"fmt"
	"strings"
)

// Model represents an in-memory protein structure: an ordered list of
// chains, each an ordered list of residues with their ATOM records.
//
// Models are the unit of work in this package. They are produced by
// reading PDB coordinate files, edited with the surgery operations in
// this package, and written back out as RANCH/PULCHRA input.
type Model struct {
	Path   string
	Chains []*Chain
}

// Chain represents a protein chain or subunit of a model.
type Chain struct {
	Ident    byte
	Residues []*Residue
}

// Residue is a single amino acid residue: its three letter name, the
// residue sequence number from the ATOM records, and its atoms.
type Residue struct {
	Name   string
	SeqNum int
	Atoms  []Atom
}

// Atom contains information about an ATOM record, including the serial
// number, the atom name and the three dimensional coordinates.
type Atom struct {
	Serial     int
	Name       string
	Coords     Coords
	Occupancy  float64
	TempFactor float64
	Element    string
}

// Coords is a triple where the first element is X, the second is Y and
// the third is Z.
type Coords [3]float64

func (c Coords) String() string {
	return fmt.Sprintf("%0.3f %0.3f %0.3f", c[0], c[1], c[2])
}

// Chain looks for the chain with identifier ident and returns it. 'nil' is
// returned if the chain could not be found.
func (m *Model) Chain(ident byte) *Chain {
	for _, chain := range m.Chains {
		if chain.Ident == ident {
			return chain
		}
	}
	return nil
}

// ChainIndex returns the index of the chain with identifier ident, or -1
// if there is no such chain.
func (m *Model) ChainIndex(ident byte) int {
	for i, chain := range m.Chains {
		if chain.Ident == ident {
			return i
		}
	}
	return -1
}

// OneChain returns a single chain in the model. If there is more than one
// chain, OneChain will panic. This is convenient when you expect a model to
// have only a single chain, but don't know the name.
func (m *Model) OneChain() *Chain {
	if len(m.Chains) != 1 {
		panic(fmt.Sprintf("OneChain can only be called on models with ONE "+
			"chain. But the '%s' model has %d chains.", m.Path, len(m.Chains)))
	}
	return m.Chains[0]
}

// NumChains returns the number of chains in the model.
func (m *Model) NumChains() int {
	return len(m.Chains)
}

// NumResidues returns the total number of residues over all chains.
func (m *Model) NumResidues() int {
	n := 0
	for _, chain := range m.Chains {
		n += len(chain.Residues)
	}
	return n
}

// NumAtoms returns the total number of atoms over all chains.
func (m *Model) NumAtoms() int {
	n := 0
	for _, chain := range m.Chains {
		for _, res := range chain.Residues {
			n += len(res.Atoms)
		}
	}
	return n
}

// Sequence returns the one letter amino acid sequence of all chains
// concatenated in order. Residues without a single letter code map to 'X'.
func (m *Model) Sequence() string {
	seq := make([]byte, 0, m.NumResidues())
	for _, chain := range m.Chains {
		seq = append(seq, chain.Sequence()...)
	}
	return string(seq)
}

// Sequence returns the one letter amino acid sequence of the chain.
func (c *Chain) Sequence() string {
	seq := make([]byte, len(c.Residues))
	for i, res := range c.Residues {
		seq[i] = res.Short()
	}
	return string(seq)
}

// Short returns the single letter code of the residue, or 'X' when the
// residue name is not a standard amino acid.
func (r *Residue) Short() byte {
	if single, ok := AminoThreeToOne[r.Name]; ok {
		return single
	}
	return 'X'
}

// Ca returns the alpha-carbon atom in this residue.
// If one does not exist, nil is returned.
func (r *Residue) Ca() *Atom {
	for i := range r.Atoms {
		if r.Atoms[i].Name == "CA" {
			return &r.Atoms[i]
		}
	}
	return nil
}

// CaCoords returns the coordinates of all alpha-carbon atoms in the model,
// in chain and residue order. Residues without an alpha-carbon are skipped.
func (m *Model) CaCoords() []Coords {
	cas := make([]Coords, 0, m.NumResidues())
	for _, chain := range m.Chains {
		for _, res := range chain.Residues {
			if ca := res.Ca(); ca != nil {
				cas = append(cas, ca.Coords)
			}
		}
	}
	return cas
}

// String returns a FASTA-like listing of all chains, their residue counts
// and amino acid sequences.
func (m *Model) String() string {
	lines := make([]string, len(m.Chains))
	for i, chain := range m.Chains {
		lines[i] = chain.String()
	}
	return strings.Join(lines, "\n")
}

// String returns a FASTA-like formatted string of this chain and all of its
// related information.
func (c *Chain) String() string {
	return fmt.Sprintf("> Chain %c :: length %d\n%s",
		c.Ident, len(c.Residues), c.Sequence())
}
