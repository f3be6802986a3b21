// Package pulchra provides a blackbox for running PULCHRA, the all-atom
// reconstruction tool: it rebuilds full atomic detail from reduced models,
// like the Ca-trace linkers RANCH leaves between domains.
package pulchra

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/cmd"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

// DefaultConfig provides some sane defaults to run PULCHRA with.
// For example:
//
//	rebuilt, err := pulchra.DefaultConfig.Run(model)
var DefaultConfig = Config{
	Exec:    "pulchra",
	Verbose: false,
	Vomit:   false,
}

// Config is used to specify the location of the PULCHRA binary. It also
// controls the level of vomit echoed to stderr.
type Config struct {
	// Exec points to the 'pulchra' executable. If 'pulchra' is in your
	// PATH, it is sufficient to leave this as 'pulchra'.
	Exec string

	// Verbose controls whether all commands executed are printed to stderr.
	Verbose bool

	// When Vomit is true, all output from commands executed will also be
	// printed to stderr.
	Vomit bool
}

// Run will execute PULCHRA on the given model and return the rebuilt
// model with its residues renumbered. The model is written to a temporary
// directory, which is removed again before Run returns.
//
// PULCHRA writes its result next to its input: rebuilding 'model.pdb'
// produces 'model.rebuilt.pdb'. A run that leaves no rebuilt file behind
// is a failure even when the process exits cleanly.
func (conf Config) Run(m *pdb.Model) (*pdb.Model, error) {
	dir, err := os.MkdirTemp("", "pulchra")
	if err != nil { // something very bad has happened
		panic(err)
	}
	defer os.RemoveAll(dir)

	pdbPath := filepath.Join(dir, "model.pdb")
	rebuiltPath := filepath.Join(dir, "model.rebuilt.pdb")
	if err := m.WriteFile(pdbPath); err != nil {
		return nil, err
	}

	c := cmd.New(conf.Exec, pdbPath)
	out := new(bytes.Buffer)
	c.Cmd.Stdout = out
	c.Cmd.Stderr = out
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
	}
	err = c.Run()
	if conf.Vomit {
		fmt.Fprintf(os.Stderr, "%s\n", out.String())
	}
	if err != nil {
		return nil, fmt.Errorf("%s\n%s", out.String(), err)
	}

	rebuilt, err := pdb.ReadModel(rebuiltPath)
	if err != nil {
		return nil, fmt.Errorf("Could not read the rebuilt model '%s' "+
			"because: %s\n%s", rebuiltPath, err, out.String())
	}
	rebuilt.Path = ""
	rebuilt.RenumberResidues()
	return rebuilt, nil
}
