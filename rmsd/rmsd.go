// Package rmsd computes the RMSD between two equally sized sets of atom
// coordinates after optimal superposition, using the Kabsch algorithm.
// It is used to quantify the spread of a RANCH ensemble.
package rmsd

import (
	"fmt"
	"math"

	matrix "github.com/skelterjohn/go.matrix"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

// RMSD superposes xs onto ys with the Kabsch algorithm and returns the
// root mean square deviation of the superposed coordinates.
//
// A brief, high-level overview:
//
// Build the 3xN matrices X and Y containing, for the sets xs and ys
// respectively, the coordinates for each of the N atoms after centering
// the atoms by subtracting the centroids.
//
// Compute the covariance matrix C=X(Y^T)
//
// Compute the SVD (Singular Value Decomposition) of C=USV^T
//
// Compute d=sign(det(C))
//
// Compute the optimal rotation R as R = V([1 0 0] [0 1 0] [0 0 d])(U^T)
//
// An error is returned when the two sets are empty or differ in length.
func RMSD(xs, ys []pdb.Coords) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("Computing the RMSD of two structures requires "+
			"that they have equal length. But the lengths of the two "+
			"structures provided are %d and %d.", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("Cannot compute the RMSD of empty structures.")
	}

	// In order to "center" the coordinates, we subtract the centroid for
	// each set of atom coordinates.
	cx := centroid(xs)
	cy := centroid(ys)

	cols := len(xs)
	X := make([]float64, 3*cols)
	Y := make([]float64, 3*cols)
	for i := 0; i < cols; i++ {
		for r := 0; r < 3; r++ {
			X[r*cols+i] = xs[i][r] - cx[r]
			Y[r*cols+i] = ys[i][r] - cy[r]
		}
	}
	mX := matrix.MakeDenseMatrix(X, 3, cols)
	mY := matrix.MakeDenseMatrix(Y, 3, cols)

	// Compute the covariance matrix C = X(Y^T)
	C, err := mX.TimesDense(mY.Transpose())
	if err != nil {
		return 0, err
	}

	// Compute the Singular Value Decomposition of C = USV^T
	U, _, V, err := C.SVD()
	if err != nil {
		return 0, err
	}

	// If the determinant of C is negative, then the rotation would be an
	// "improper rotation" (a reflection). To correct for it, the last
	// column of V is flipped by multiplying with ( [1 0 0] [0 1 0] [0 0 -1] ).
	d := 1.0
	if C.Det() < 0 {
		d = -1.0
	}
	adjust := matrix.MakeDenseMatrix([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, d,
	}, 3, 3)

	Vd, err := V.TimesDense(adjust)
	if err != nil {
		return 0, err
	}
	R, err := Vd.TimesDense(U.Transpose())
	if err != nil {
		return 0, err
	}

	// Apply the rotation R to X to get the best possible alignment with Y.
	Xbest, err := R.TimesDense(mX)
	if err != nil {
		return 0, err
	}

	var sum, dist float64
	for r := 0; r < 3; r++ {
		for c := 0; c < cols; c++ {
			dist = Xbest.Get(r, c) - mY.Get(r, c)
			sum += dist * dist
		}
	}
	return math.Sqrt(sum / float64(cols)), nil
}

// CaRMSD computes the RMSD over the alpha-carbon traces of two models.
// The models must have the same number of alpha-carbons.
func CaRMSD(m1, m2 *pdb.Model) (float64, error) {
	return RMSD(m1.CaCoords(), m2.CaCoords())
}

// centroid calculates the average position of a set of atoms.
func centroid(atoms []pdb.Coords) pdb.Coords {
	var c pdb.Coords
	for _, atom := range atoms {
		for r := 0; r < 3; r++ {
			c[r] += atom[r]
		}
	}
	n := float64(len(atoms))
	for r := 0; r < 3; r++ {
		c[r] /= n
	}
	return c
}
