package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/TuftsBCB/io/fasta"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

var (
	flagChain          = ""
	flagSeparateChains = false
)

func main() {
	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
	}

	model, err := pdb.ReadModel(flag.Arg(0))
	if err != nil {
		fatalf("Could not read PDB file '%s': %s", flag.Arg(0), err)
	}

	var fasOut io.Writer
	if flag.NArg() == 1 {
		fasOut = os.Stdout
	} else {
		fasOut, err = os.Create(flag.Arg(1))
		if err != nil {
			fatalf("Could not create FASTA file '%s': %s", flag.Arg(1), err)
		}
	}

	name := path.Base(flag.Arg(0))
	fasEntries := make([]fasta.Entry, 0, 5)
	if !flagSeparateChains {
		seq := make([]byte, 0, 100)
		for _, chain := range model.Chains {
			if isChainUsable(chain) {
				seq = append(seq, chain.Sequence()...)
			}
		}
		if len(seq) == 0 {
			fatalf("Could not find any amino acids.")
		}
		fasEntries = append(fasEntries, fasta.Entry{
			Header:   name,
			Sequence: seq,
		})
	} else {
		for _, chain := range model.Chains {
			if !isChainUsable(chain) {
				continue
			}
			fasEntries = append(fasEntries, fasta.Entry{
				Header:   fmt.Sprintf("%s:%c", name, chain.Ident),
				Sequence: []byte(chain.Sequence()),
			})
		}
	}

	if len(fasEntries) == 0 {
		fatalf("Could not find any chains with amino acids.")
	}
	if err := fasta.NewWriter(fasOut).WriteAll(fasEntries); err != nil {
		fatalf("Could not write FASTA: %s", err)
	}
}

func isChainUsable(chain *pdb.Chain) bool {
	if len(flagChain) == 0 {
		return true
	}
	for i := 0; i < len(flagChain); i++ {
		if chain.Ident == flagChain[i] {
			return true
		}
	}
	return false
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	fmt.Fprintln(os.Stderr, "")
	os.Exit(1)
}

func init() {
	flag.BoolVar(&flagSeparateChains, "separate-chains", flagSeparateChains,
		"When set, each chain will get its own FASTA entry.")
	flag.StringVar(&flagChain, "chain", flagChain,
		"This may be set to one or more chain identifiers. Only amino acids "+
			"belonging to a chain specified will be included.")
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [flags] in-pdb-file [out-fasta-file]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}
