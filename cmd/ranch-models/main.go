package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/StruBE-KAUST/multiprot/apps/ranch"
	"github.com/StruBE-KAUST/multiprot/cmd/util"
)

var (
	flagOut         = "models"
	flagSymTemplate = -1
)

func init() {
	flag.StringVar(&flagOut, "out", flagOut,
		"The directory where the generated models are written.")
	flag.IntVar(&flagSymTemplate, "symtemplate", flagSymTemplate,
		"The position (starting at 0) of the domain that is the symmetry\n"+
			"template. Required for a symmetry other than p1.")

	util.FlagUse("ranch-exec", "models", "symmetry", "overall-sym", "verbose")
	util.FlagParse("domain-spec [domain-spec ...]",
		"Each domain-spec is either 'seq:RESIDUES' for a linker, or a PDB\n"+
			"file 'path[:chain][:fixed]'. The chain picks the modeled chain\n"+
			"of a multi-chain domain; 'fixed' keeps a domain rigid.")
	util.AssertLeastNArg(1)
}

func main() {
	conf := util.RanchConfig()

	domains := make([]ranch.Domain, util.NArg())
	for i := 0; i < util.NArg(); i++ {
		domains[i] = parseDomain(util.Arg(i))
	}
	if flagSymTemplate >= 0 {
		if flagSymTemplate >= len(domains) ||
			domains[flagSymTemplate].Model == nil {

			util.Fatalf("-symtemplate %d does not name a structured domain.",
				flagSymTemplate)
		}
		conf.SymTemplate = domains[flagSymTemplate].Model
	}

	res, err := conf.Run(domains...)
	util.Assert(err, "RANCH failed")
	defer res.CleanDir()

	util.MkDir(flagOut)
	for i, m := range res.Models {
		out := filepath.Join(flagOut, fmt.Sprintf("model-%03d.pdb", i+1))
		util.Assert(m.WriteFile(out), "Could not write model '%s'", out)
		util.Verbosef("\rWrote %d of %d models", i+1, len(res.Models))
	}
	util.Verbosef("\n")
}

// parseDomain turns a command line domain spec into a ranch.Domain.
// 'seq:GGGGS' is a linker; 'dimer.pdb:A:fixed' is the A chain of dimer.pdb
// with the domain kept rigid.
func parseDomain(spec string) ranch.Domain {
	if strings.HasPrefix(spec, "seq:") {
		return ranch.NewLinker(spec[len("seq:"):])
	}

	parts := strings.Split(spec, ":")
	d := ranch.NewDomain(util.ReadModel(parts[0]))
	for _, part := range parts[1:] {
		switch {
		case part == "fixed":
			d.Fixed = true
		case len(part) == 1:
			d.Chain = part[0]
		default:
			util.Fatalf("Could not make sense of '%s' in domain spec '%s'.",
				part, spec)
		}
	}
	return d
}
