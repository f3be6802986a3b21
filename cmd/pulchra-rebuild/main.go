package main

import (
	"strings"

	"github.com/StruBE-KAUST/multiprot/cmd/util"
)

func init() {
	util.FlagUse("pulchra-exec", "verbose")
	util.FlagParse("in-pdb-file [out-pdb-file]",
		"Rebuilds all-atom detail for a reduced model. When no output file\n"+
			"is given, 'model.pdb' becomes 'model.rebuilt.pdb'.")
	if util.NArg() != 1 && util.NArg() != 2 {
		util.Usage()
	}
}

func main() {
	inp := util.Arg(0)
	out := rebuiltPath(inp)
	if util.NArg() == 2 {
		out = util.Arg(1)
	}

	rebuilt, err := util.PulchraConfig().Run(util.ReadModel(inp))
	util.Assert(err, "PULCHRA failed on '%s'", inp)

	util.Assert(rebuilt.WriteFile(out), "Could not write '%s'", out)
	util.Verbosef("Wrote %s\n", out)
}

func rebuiltPath(inp string) string {
	return strings.TrimSuffix(inp, ".pdb") + ".rebuilt.pdb"
}
