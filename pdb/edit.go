package pdb

import (
	"fmt"
)

// The operations in this file are the model surgery primitives used to
// prepare RANCH input and to pick its output apart again: taking subsets
// of chains or residues, concatenating models, merging chains and
// renumbering. Operations that reshape a model always return a deep copy,
// so the input models are never aliased by the result. Renumbering
// operations mutate the receiver.

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	clone := &Model{Path: m.Path, Chains: make([]*Chain, len(m.Chains))}
	for i, chain := range m.Chains {
		clone.Chains[i] = chain.copy()
	}
	return clone
}

// TakeChains returns a new model containing copies of the chains at the
// given indices, in the order given. It panics when an index is out of
// range.
func (m *Model) TakeChains(indices ...int) *Model {
	taken := &Model{Path: m.Path, Chains: make([]*Chain, len(indices))}
	for i, ci := range indices {
		if ci < 0 || ci >= len(m.Chains) {
			panic(fmt.Sprintf("Chain index %d is out of range in a model "+
				"with %d chains.", ci, len(m.Chains)))
		}
		taken.Chains[i] = m.Chains[ci].copy()
	}
	return taken
}

// TakeResidues returns a new model with copies of the residues in the
// flattened residue index range [start, end). The flattened index counts
// residues over all chains in order. Residues from different source chains
// end up in different chains of the result.
func (m *Model) TakeResidues(start, end int) *Model {
	taken := &Model{Path: m.Path}

	var cur *Chain
	i := 0
	for _, chain := range m.Chains {
		cur = nil
		for _, res := range chain.Residues {
			if i >= start && i < end {
				if cur == nil {
					cur = &Chain{Ident: chain.Ident}
					taken.Chains = append(taken.Chains, cur)
				}
				cur.Residues = append(cur.Residues, res.copy())
			}
			i++
		}
	}
	return taken
}

// RemoveResidues returns a new model without the residues in the flattened
// residue index range [start, end). Chains left without residues are
// dropped.
func (m *Model) RemoveResidues(start, end int) *Model {
	kept := &Model{Path: m.Path}

	i := 0
	for _, chain := range m.Chains {
		var cur *Chain
		for _, res := range chain.Residues {
			if i < start || i >= end {
				if cur == nil {
					cur = &Chain{Ident: chain.Ident}
					kept.Chains = append(kept.Chains, cur)
				}
				cur.Residues = append(cur.Residues, res.copy())
			}
			i++
		}
	}
	return kept
}

// Concat returns a new model with copies of the chains of m followed by
// copies of the chains of every model in others, in order.
func (m *Model) Concat(others ...*Model) *Model {
	cat := m.Clone()
	for _, other := range others {
		for _, chain := range other.Chains {
			cat.Chains = append(cat.Chains, chain.copy())
		}
	}
	return cat
}

// MergeChains returns a new single chain model with the residues of all
// chains concatenated in order. The chain identifier of the first chain is
// kept. Merging an empty model returns an empty model.
func (m *Model) MergeChains() *Model {
	if len(m.Chains) == 0 {
		return &Model{Path: m.Path}
	}
	merged := &Chain{Ident: m.Chains[0].Ident}
	for _, chain := range m.Chains {
		for _, res := range chain.Residues {
			merged.Residues = append(merged.Residues, res.copy())
		}
	}
	return &Model{Path: m.Path, Chains: []*Chain{merged}}
}

// RenumberResidues renumbers the residues of every chain starting at 1.
func (m *Model) RenumberResidues() {
	for _, chain := range m.Chains {
		for i, res := range chain.Residues {
			res.SeqNum = i + 1
		}
	}
}

// RenumberSerials renumbers all atom serial numbers consecutively over the
// whole model, starting at 1.
func (m *Model) RenumberSerials() {
	serial := 1
	for _, chain := range m.Chains {
		for _, res := range chain.Residues {
			for i := range res.Atoms {
				res.Atoms[i].Serial = serial
				serial++
			}
		}
	}
}

// AssignChainIdents renames the chains with consecutive letters starting
// at 'A'.
func (m *Model) AssignChainIdents() {
	for i, chain := range m.Chains {
		chain.Ident = byte('A' + i)
	}
}

func (c *Chain) copy() *Chain {
	cp := &Chain{Ident: c.Ident, Residues: make([]*Residue, len(c.Residues))}
	for i, res := range c.Residues {
		cp.Residues[i] = res.copy()
	}
	return cp
}

func (r *Residue) copy() *Residue {
	cp := &Residue{Name: r.Name, SeqNum: r.SeqNum, Atoms: make([]Atom, len(r.Atoms))}
	copy(cp.Atoms, r.Atoms)
	return cp
}
