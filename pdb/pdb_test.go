package pdb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// A hand written two chain fragment. Chain A is an alanine and a glycine,
// chain B a single serine. The water HETATM and the 'B' alternate location
// must be ignored.
var testModel = strings.Join([]string{
	"HEADER    TEST PROTEIN                            01-JAN-10   1XXX",
	"ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N",
	"ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.00  0.00           C",
	"ATOM      3  CA BALA A   1      99.000  99.000  99.000  0.50  0.00           C",
	"ATOM      4  C   ALA A   1      10.747   5.127  -4.308  1.00  0.00           C",
	"ATOM      5  CA  GLY A   2      10.801   5.672  -3.104  1.00  0.00           C",
	"TER       6      GLY A   2",
	"ATOM      7  CA  SER B   1       2.389   1.072   0.518  1.00  0.00           C",
	"HETATM    8  O   HOH B 101       0.000   0.000   0.000  1.00  0.00           O",
	"END",
}, "\n")

func writeTestModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pdb")
	if err := os.WriteFile(path, []byte(testModel), 0644); err != nil {
		t.Fatalf("%s", err)
	}
	return path
}

func TestReadModel(t *testing.T) {
	m, err := ReadModel(writeTestModel(t))
	if err != nil {
		t.Fatalf("%s", err)
	}

	if len(m.Chains) != 2 {
		t.Fatalf("Expected 2 chains but got %d.", len(m.Chains))
	}
	if m.Chains[0].Ident != 'A' || m.Chains[1].Ident != 'B' {
		t.Fatalf("Expected chains A and B but got %c and %c.",
			m.Chains[0].Ident, m.Chains[1].Ident)
	}
	if seq := m.Sequence(); seq != "AGS" {
		t.Fatalf("Expected sequence 'AGS' but got '%s'.", seq)
	}

	ala := m.Chains[0].Residues[0]
	if len(ala.Atoms) != 3 {
		t.Fatalf("Expected 3 atoms in the alanine (the alternate location "+
			"must be dropped) but got %d.", len(ala.Atoms))
	}
	ca := ala.Ca()
	if ca == nil {
		t.Fatalf("The alanine has no alpha-carbon.")
	}
	if ca.Coords != (Coords{11.639, 6.071, -5.147}) {
		t.Fatalf("Wrong alpha-carbon coordinates: %s.", ca.Coords)
	}
	if ca.Serial != 2 || ca.Element != "C" {
		t.Fatalf("Wrong serial/element: %d, '%s'.", ca.Serial, ca.Element)
	}

	if n := len(m.Chains[1].Residues); n != 1 {
		t.Fatalf("Expected 1 residue in chain B (the water must be "+
			"dropped) but got %d.", n)
	}
}

func TestReadModelTerSplitsChains(t *testing.T) {
	lines := []string{
		"ATOM      1  CA  ALA A   1       1.000   0.000   0.000  1.00  0.00           C",
		"TER       2      ALA A   1",
		"ATOM      3  CA  GLY A   2       2.000   0.000   0.000  1.00  0.00           C",
	}
	path := filepath.Join(t.TempDir(), "ter.pdb")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatalf("%s", err)
	}

	m, err := ReadModel(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(m.Chains) != 2 {
		t.Fatalf("A TER record must split the chain: expected 2 chains "+
			"but got %d.", len(m.Chains))
	}
}

func TestReadModelEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdb")
	if err := os.WriteFile(path, []byte("END\n"), 0644); err != nil {
		t.Fatalf("%s", err)
	}
	if _, err := ReadModel(path); err == nil {
		t.Fatalf("Reading a file without ATOM records must fail.")
	}
}

func TestWriteRead(t *testing.T) {
	m, err := ReadModel(writeTestModel(t))
	if err != nil {
		t.Fatalf("%s", err)
	}

	out := filepath.Join(t.TempDir(), "out.pdb")
	if err := m.WriteFile(out); err != nil {
		t.Fatalf("%s", err)
	}
	back, err := ReadModel(out)
	if err != nil {
		t.Fatalf("%s", err)
	}

	if back.Sequence() != m.Sequence() {
		t.Fatalf("Sequence changed across write/read: '%s' != '%s'.",
			back.Sequence(), m.Sequence())
	}
	if back.NumChains() != m.NumChains() || back.NumAtoms() != m.NumAtoms() {
		t.Fatalf("Shape changed across write/read: %d/%d chains, %d/%d atoms.",
			back.NumChains(), m.NumChains(), back.NumAtoms(), m.NumAtoms())
	}
	want := m.Chains[0].Residues[0].Ca().Coords
	got := back.Chains[0].Residues[0].Ca().Coords
	if want != got {
		t.Fatalf("Coordinates changed across write/read: %s != %s.", got, want)
	}
}
