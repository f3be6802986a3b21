package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/StruBE-KAUST/multiprot/cmd/util"
	"github.com/StruBE-KAUST/multiprot/pdb"
	"github.com/StruBE-KAUST/multiprot/rmsd"
)

func init() {
	util.FlagUse("verbose")
	util.FlagParse("model-dir | pdb-file pdb-file ...",
		"Computes the pairwise Ca RMSD over an ensemble of models, and a\n"+
			"summary of its spread. A single directory argument reads every\n"+
			"'*.pdb' file in it.")
	util.AssertLeastNArg(1)
}

func main() {
	paths := ensemblePaths()

	// Unreadable members are skipped with a warning, so one bad file does
	// not tear down the whole comparison.
	models := make([]*pdb.Model, 0, len(paths))
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		m, err := pdb.ReadModel(path)
		if util.Warning(err, "Skipping '%s'", path) {
			continue
		}
		models = append(models, m)
		kept = append(kept, path)
	}
	if len(models) < 2 {
		util.Fatalf("An ensemble needs at least two readable models; got %d.",
			len(models))
	}

	var sum, max float64
	pairs := 0
	for i := 0; i < len(models); i++ {
		for j := i + 1; j < len(models); j++ {
			r, err := rmsd.CaRMSD(models[i], models[j])
			util.Assert(err, "Could not superpose '%s' and '%s'",
				kept[i], kept[j])

			fmt.Printf("%s\t%s\t%0.4f\n", name(kept[i]), name(kept[j]), r)
			sum += r
			if r > max {
				max = r
			}
			pairs++
		}
	}
	fmt.Printf("mean\t%0.4f\nmax\t%0.4f\n", sum/float64(pairs), max)
}

// ensemblePaths expands a single directory argument into the PDB files
// inside it; any other argument list is taken as is.
func ensemblePaths() []string {
	if util.NArg() == 1 {
		info, err := os.Stat(util.Arg(0))
		if err == nil && info.IsDir() {
			paths, err := filepath.Glob(filepath.Join(util.Arg(0), "*.pdb"))
			util.Assert(err)
			return paths
		}
	}

	paths := make([]string, util.NArg())
	for i := 0; i < util.NArg(); i++ {
		paths[i] = util.Arg(i)
	}
	return paths
}

func name(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".pdb")
}
