package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/StruBE-KAUST/multiprot/apps/pulchra"
	"github.com/StruBE-KAUST/multiprot/apps/ranch"
)

var (
	FlagCpu = runtime.NumCPU()

	FlagRanchExec   = "ranch"
	FlagPulchraExec = "pulchra"

	FlagModels     = 10
	FlagSymmetry   = "p1"
	FlagOverallSym = "mixed"

	FlagVerbose = false
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"cpu": {
		set: func() {
			flag.IntVar(&FlagCpu, "cpu", FlagCpu,
				"The max number of CPUs to use.")
		},
		init: func() {
			runtime.GOMAXPROCS(FlagCpu)
		},
	},
	"ranch-exec": {
		set: func() {
			flag.StringVar(&FlagRanchExec, "ranch-exec", FlagRanchExec,
				"The path to the 'ranch' executable.")
		},
	},
	"pulchra-exec": {
		set: func() {
			flag.StringVar(&FlagPulchraExec, "pulchra-exec", FlagPulchraExec,
				"The path to the 'pulchra' executable.")
		},
	},
	"models": {
		set: func() {
			flag.IntVar(&FlagModels, "models", FlagModels,
				"The number of models RANCH generates.")
		},
	},
	"symmetry": {
		set: func() {
			flag.StringVar(&FlagSymmetry, "symmetry", FlagSymmetry,
				"The symmetry group of the models (p1, p2, ...).")
		},
	},
	"overall-sym": {
		set: func() {
			flag.StringVar(&FlagOverallSym, "overall-sym", FlagOverallSym,
				"The overall symmetry of the models: "+
					"mixed, symmetry or asymmetry.")
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, progress and commands are printed to stderr.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// RanchConfig builds a RANCH configuration from the common flags.
func RanchConfig() ranch.Config {
	conf := ranch.DefaultConfig
	conf.Exec = FlagRanchExec
	conf.NumModels = FlagModels
	conf.Symmetry = FlagSymmetry
	conf.OverallSym = FlagOverallSym
	conf.Verbose = FlagVerbose
	return conf
}

// PulchraConfig builds a PULCHRA configuration from the common flags.
func PulchraConfig() pulchra.Config {
	conf := pulchra.DefaultConfig
	conf.Exec = FlagPulchraExec
	conf.Verbose = FlagVerbose
	return conf
}

func Verbosef(format string, v ...interface{}) {
	if FlagVerbose {
		fmt.Fprintf(os.Stderr, format, v...)
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

// Arg just calls `flag.Arg`.
func Arg(i int) string {
	return flag.Arg(i)
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
