package pulchra

import (
	"os/exec"
	"testing"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

// caTrace builds a model with only alpha-carbons, spaced 3.8 angstroms
// apart like a real backbone, which is the reduced representation that
// PULCHRA rebuilds from.
func caTrace(seq string) *pdb.Model {
	chain := &pdb.Chain{Ident: 'A'}
	for i := 0; i < len(seq); i++ {
		chain.Residues = append(chain.Residues, &pdb.Residue{
			Name:   pdb.AminoOneToThree[seq[i]],
			SeqNum: i + 1,
			Atoms: []pdb.Atom{{
				Serial: i + 1,
				Name:   "CA",
				Coords: pdb.Coords{float64(i) * 3.8, 0, 0},
			}},
		})
	}
	return &pdb.Model{Chains: []*pdb.Chain{chain}}
}

// TestRun exercises the real PULCHRA binary when it is available.
func TestRun(t *testing.T) {
	if _, err := exec.LookPath(DefaultConfig.Exec); err != nil {
		t.Skipf("Skipping: could not find '%s' in PATH.", DefaultConfig.Exec)
	}

	m := caTrace("MKVLEAGHIWYFDEGGG")
	rebuilt, err := DefaultConfig.Run(m)
	if err != nil {
		t.Fatalf("%s", err)
	}

	if rebuilt.NumResidues() != m.NumResidues() {
		t.Fatalf("Expected %d residues but got %d.",
			m.NumResidues(), rebuilt.NumResidues())
	}
	if rebuilt.Sequence() != m.Sequence() {
		t.Fatalf("The rebuilt model changed the sequence to '%s'.",
			rebuilt.Sequence())
	}
	// All-atom reconstruction adds backbone and side chain atoms.
	if rebuilt.NumAtoms() <= m.NumAtoms() {
		t.Fatalf("Expected more than %d atoms but got %d.",
			m.NumAtoms(), rebuilt.NumAtoms())
	}
	for i, res := range rebuilt.Chains[0].Residues {
		if res.SeqNum != i+1 {
			t.Fatalf("Residue %d is numbered %d.", i, res.SeqNum)
		}
	}
}
