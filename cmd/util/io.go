package util

import (
	"os"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

// ReadModel reads a PDB model or dies.
func ReadModel(path string) *pdb.Model {
	m, err := pdb.ReadModel(path)
	Assert(err, "Could not read PDB file '%s'", path)
	return m
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}
