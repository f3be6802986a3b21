package rmsd

import (
	"fmt"
	"math"
	"testing"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

func ExampleRMSD() {
	xs := []pdb.Coords{
		atom(-2.803, -15.373, 24.556),
		atom(0.893, -16.062, 25.147),
		atom(1.368, -12.371, 25.885),
		atom(-1.651, -12.153, 28.177),
		atom(-0.440, -15.218, 30.068),
		atom(2.551, -13.273, 31.372),
		atom(0.105, -11.330, 33.567),
	}
	ys := []pdb.Coords{
		atom(-14.739, -18.673, 15.040),
		atom(-12.473, -15.810, 16.074),
		atom(-14.802, -13.307, 14.408),
		atom(-17.782, -14.852, 16.171),
		atom(-16.124, -14.617, 19.584),
		atom(-15.029, -11.037, 18.902),
		atom(-18.577, -10.001, 17.996),
	}

	rms, err := RMSD(xs, ys)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("RMSD: %f\n", rms)
	// Output:
	// RMSD: 0.719106
}

func TestIdentical(t *testing.T) {
	xs := []pdb.Coords{
		atom(1, 0, 0),
		atom(0, 1, 0),
		atom(0, 0, 1),
		atom(2, 3, 5),
	}
	rms, err := RMSD(xs, xs)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if rms > 1e-6 {
		t.Fatalf("The RMSD of a structure with itself is %f.", rms)
	}
}

func TestTranslated(t *testing.T) {
	xs := []pdb.Coords{
		atom(1, 0, 0),
		atom(0, 1, 0),
		atom(0, 0, 1),
		atom(2, 3, 5),
	}
	ys := make([]pdb.Coords, len(xs))
	for i, c := range xs {
		ys[i] = atom(c[0]+10, c[1]-7, c[2]+42)
	}

	// Superposition removes translation entirely.
	rms, err := RMSD(xs, ys)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if rms > 1e-6 {
		t.Fatalf("The RMSD of a translated structure is %f.", rms)
	}
}

func TestRotated(t *testing.T) {
	xs := []pdb.Coords{
		atom(1, 0, 0),
		atom(0, 1, 0),
		atom(0, 0, 1),
		atom(2, 3, 5),
	}
	// Rotate 90 degrees around the Z axis.
	ys := make([]pdb.Coords, len(xs))
	for i, c := range xs {
		ys[i] = atom(-c[1], c[0], c[2])
	}

	rms, err := RMSD(xs, ys)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if rms > 1e-6 {
		t.Fatalf("The RMSD of a rotated structure is %f.", rms)
	}
}

func TestLengthMismatch(t *testing.T) {
	xs := []pdb.Coords{atom(1, 0, 0), atom(0, 1, 0)}
	ys := []pdb.Coords{atom(1, 0, 0)}
	if _, err := RMSD(xs, ys); err == nil {
		t.Fatalf("Structures of different lengths must be an error.")
	}
	if _, err := RMSD(nil, nil); err == nil {
		t.Fatalf("Empty structures must be an error.")
	}
}

func TestCaRMSD(t *testing.T) {
	m1 := caModel(atom(0, 0, 0), atom(3.8, 0, 0), atom(7.6, 0, 0))
	m2 := caModel(atom(5, 5, 5), atom(8.8, 5, 5), atom(12.6, 5, 5))

	rms, err := CaRMSD(m1, m2)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if rms > 1e-6 {
		t.Fatalf("The RMSD of two translated traces is %f.", rms)
	}
}

func TestCentroid(t *testing.T) {
	c := centroid([]pdb.Coords{atom(0, 0, 0), atom(2, 4, 6)})
	want := pdb.Coords{1, 2, 3}
	for r := 0; r < 3; r++ {
		if math.Abs(c[r]-want[r]) > 1e-12 {
			t.Fatalf("Expected centroid %v but got %v.", want, c)
		}
	}
}

func caModel(coords ...pdb.Coords) *pdb.Model {
	chain := &pdb.Chain{Ident: 'A'}
	for i, c := range coords {
		chain.Residues = append(chain.Residues, &pdb.Residue{
			Name:   "GLY",
			SeqNum: i + 1,
			Atoms:  []pdb.Atom{{Serial: i + 1, Name: "CA", Coords: c}},
		})
	}
	return &pdb.Model{Chains: []*pdb.Chain{chain}}
}

func atom(x, y, z float64) pdb.Coords {
	return pdb.Coords{x, y, z}
}
