package ranch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

// Embedded records chains hidden inside a carrier chain: the model holding
// them, and the residue index of the run inside the full sequence given to
// RANCH. Embed places an embedded model after the second residue of its
// carrier, so offsets recorded during setup are the sequence length at the
// time plus two.
type Embedded struct {
	Model  *pdb.Model
	Offset int
}

// Embed hides the chains of emb inside the single chain model dom, so that
// RANCH treats the whole as one single chain domain. The result is one
// chain: the first two residues of dom, then every residue of emb, then
// the rest of dom.
func Embed(dom, emb *pdb.Model) *pdb.Model {
	first := dom.TakeResidues(0, 2)
	rest := dom.TakeResidues(2, dom.NumResidues())

	m := first.Concat(emb, rest).MergeChains()
	m.RenumberResidues()
	m.RenumberSerials()
	return m
}

// ExtractFixed returns full without the chains of dom. Each chain of dom
// is located inside full by its sequence (the first ten residues are used
// as a probe) together with the atom coordinates of its first residue, and
// the matching chain of full is dropped.
//
// An error is returned when a chain of dom cannot be located in full.
func ExtractFixed(dom, full *pdb.Model) (*pdb.Model, error) {
	keep := make(map[int]bool, full.NumChains())
	for i := 0; i < full.NumChains(); i++ {
		keep[i] = true
	}

	fullSeq := full.Sequence()
	for _, c := range dom.Chains {
		probe := c.Sequence()
		if len(probe) > 10 {
			probe = probe[:10]
		}

		located := false
		for at := indexFrom(fullSeq, probe, 0); at >= 0 && !located; at = indexFrom(fullSeq, probe, at+1) {
			res, ci := residueAt(full, at)
			if keep[ci] && sameResidue(c.Residues[0], res) {
				keep[ci] = false
				located = true
			}
		}
		if !located {
			return nil, fmt.Errorf("Could not locate chain '%c' of model "+
				"'%s' inside model '%s'.", c.Ident, dom.Path, full.Path)
		}
	}

	take := make([]int, 0, full.NumChains())
	for i := 0; i < full.NumChains(); i++ {
		if keep[i] {
			take = append(take, i)
		}
	}
	return full.TakeChains(take...), nil
}

// ExtractEmbedded undoes Embed on a model produced by RANCH: every
// embedded run is cut out of the carrier and appended at the end as
// independent chains, restoring the chain boundaries of the embedded
// model. The remaining carrier chains are merged into one, residues are
// renumbered, chains are renamed with consecutive letters and atom serial
// numbers are renumbered from one.
//
// The sequence at each recorded offset must match the embedded model's
// sequence; a mismatch is an error.
func ExtractEmbedded(full *pdb.Model, embedded []Embedded) (*pdb.Model, error) {
	fullSeq := full.Sequence()

	type span struct{ start, end int }
	spans := make([]span, 0, len(embedded))
	extracted := make([]*pdb.Model, 0, len(embedded))

	for _, e := range embedded {
		seq := e.Model.Sequence()
		end := e.Offset + len(seq)
		if e.Offset < 0 || end > len(fullSeq) || fullSeq[e.Offset:end] != seq {
			return nil, fmt.Errorf("The embedded sequence and offset %d do "+
				"not match model '%s'.", e.Offset, full.Path)
		}
		region := full.TakeResidues(e.Offset, end)
		extracted = append(extracted, splitLike(region, e.Model))
		spans = append(spans, span{e.Offset, end})
	}

	// Remove the runs from highest offset down, so the earlier spans keep
	// their indices while cutting.
	sort.Slice(spans, func(i, j int) bool { return spans[i].start > spans[j].start })
	for _, s := range spans {
		full = full.RemoveResidues(s.start, s.end)
	}

	full = full.MergeChains()
	result := full.Concat(extracted...)
	result.RenumberResidues()
	result.AssignChainIdents()
	result.RenumberSerials()
	return result, nil
}

// ExtractSymmetric undoes Embed on a model with a symmetric structure:
// every occurrence of the symmetric unit sequence is taken apart with
// ExtractEmbedded (the offsets are relative to the unit), and the units
// are concatenated with fresh chain letters and serial numbers.
func ExtractSymmetric(full *pdb.Model, symseq string, embedded []Embedded) (*pdb.Model, error) {
	if len(symseq) == 0 {
		return nil, fmt.Errorf("The symmetric unit sequence is empty.")
	}

	fullSeq := full.Sequence()
	units := make([]*pdb.Model, 0, 2)
	for at := strings.Index(fullSeq, symseq); at >= 0; {
		unit, err := ExtractEmbedded(full.TakeResidues(at, at+len(symseq)), embedded)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)

		next := strings.Index(fullSeq[at+len(symseq):], symseq)
		if next < 0 {
			break
		}
		at += len(symseq) + next
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("The symmetric unit sequence does not occur "+
			"in model '%s'.", full.Path)
	}

	result := units[0].Concat(units[1:]...)
	result.AssignChainIdents()
	result.RenumberSerials()
	return result, nil
}

// splitLike reshapes the single run of residues in region into the chain
// layout of the embedded model: same chain count, sizes and identifiers.
func splitLike(region, like *pdb.Model) *pdb.Model {
	flat := region.MergeChains()
	var residues []*pdb.Residue
	if len(flat.Chains) > 0 {
		residues = flat.Chains[0].Residues
	}

	out := &pdb.Model{Path: region.Path}
	pos := 0
	for _, lc := range like.Chains {
		n := len(lc.Residues)
		out.Chains = append(out.Chains, &pdb.Chain{
			Ident:    lc.Ident,
			Residues: residues[pos : pos+n],
		})
		pos += n
	}
	return out
}

// residueAt returns the residue at the flattened residue index i, along
// with the index of the chain holding it.
func residueAt(m *pdb.Model, i int) (*pdb.Residue, int) {
	for ci, chain := range m.Chains {
		if i < len(chain.Residues) {
			return chain.Residues[i], ci
		}
		i -= len(chain.Residues)
	}
	panic(fmt.Sprintf("Residue index %d is out of range in a model with "+
		"%d residues.", i, m.NumResidues()))
}

// sameResidue reports whether two residues have identical atoms in
// identical positions. RANCH copies fixed coordinates verbatim, so exact
// comparison is the intent.
func sameResidue(a, b *pdb.Residue) bool {
	if a.Name != b.Name || len(a.Atoms) != len(b.Atoms) {
		return false
	}
	for i := range a.Atoms {
		if a.Atoms[i].Coords != b.Atoms[i].Coords {
			return false
		}
	}
	return true
}

func indexFrom(s, probe string, from int) int {
	if from >= len(s) {
		return -1
	}
	at := strings.Index(s[from:], probe)
	if at < 0 {
		return -1
	}
	return from + at
}
