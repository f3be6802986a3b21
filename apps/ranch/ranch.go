package ranch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/BurntSushi/cmd"

	"github.com/StruBE-KAUST/multiprot/pdb"
)

// overallSymmetry maps the spelled out overall symmetry of the models to
// the letter RANCH takes for its '-y' flag.
var overallSymmetry = map[string]string{
	"mixed":     "m",
	"symmetry":  "s",
	"asymmetry": "a",
}

// DefaultConfig provides some sane defaults to run RANCH with. For example:
//
//	res, err := ranch.DefaultConfig.Run(dom1, ranch.NewLinker("GGGGG"), dom2)
var DefaultConfig = Config{
	Exec:       "ranch",
	NumModels:  10,
	Symmetry:   "p1",
	OverallSym: "mixed",
	Verbose:    false,
	Vomit:      false,
}

// Config is used to specify the location of the RANCH binary in addition
// to the parameters that shape the generated ensemble. It also controls
// the level of vomit echoed to stderr.
type Config struct {
	// Exec points to the 'ranch' executable. If 'ranch' is in your PATH,
	// it is sufficient to leave this as 'ranch'.
	Exec string

	// NumModels is the size of the generated ensemble. (RANCH's '-q'.)
	NumModels int

	// Symmetry is the symmetry group of the models, like "p1" or "p2".
	// Any value other than "p1" requires a SymTemplate.
	Symmetry string

	// SymTemplate is the domain whose chains define the symmetric
	// arrangement. It must be one of the domains passed to Run.
	SymTemplate *pdb.Model

	// SymUnit is the symmetric unit of SymTemplate. When nil, the first
	// chain of SymTemplate is used.
	SymUnit *pdb.Model

	// OverallSym is the overall symmetry of the generated models:
	// "mixed", "symmetry" or "asymmetry".
	OverallSym string

	// Verbose controls whether all commands executed are printed to stderr.
	Verbose bool

	// When Vomit is true, all output from commands executed will also be
	// printed to stderr.
	Vomit bool
}

// Results corresponds to one RANCH run: the directory holding the raw
// RANCH files, and the parsed models with their embedded and symmetric
// chains already extracted back into independent chains.
type Results struct {
	// Dir is the temporary directory with the RANCH input files and the
	// raw models. Remove it with CleanDir when the raw files are not
	// needed.
	Dir string

	// Models is the generated ensemble.
	Models []*pdb.Model
}

// CleanDir removes the directory containing the RANCH input and output
// files. The parsed models remain usable. Errors, if they occur, are
// suppressed.
func (res Results) CleanDir() {
	if len(res.Dir) > 0 {
		os.RemoveAll(res.Dir)
	}
}

// Run will execute RANCH with the given list of domains. It handles
// creation of a temporary directory where the input PDB files and the
// sequence file are written and where RANCH writes its models.
//
// After RANCH finishes, every model is read back and the embedded chains
// (and symmetric units, when a symmetry template is set) are extracted
// into independent chains. The raw files stay in Results.Dir until
// CleanDir is called, which is safe to do immediately after Run.
//
// A RANCH invocation that exits cleanly but reports "Problems" in its
// output is treated as a failure.
func (conf Config) Run(domains ...Domain) (Results, error) {
	s, err := conf.buildSetup(domains)
	if err != nil {
		return Results{}, err
	}

	dir, err := os.MkdirTemp("", "ranch")
	if err != nil { // something very bad has happened
		panic(err)
	}
	modelsDir := filepath.Join(dir, "models")
	if err := os.Mkdir(modelsDir, 0755); err != nil {
		return Results{}, err
	}

	res := Results{Dir: dir}
	if err := conf.run(s, dir, modelsDir); err != nil {
		res.CleanDir()
		return Results{}, err
	}

	res.Models, err = conf.finish(s, modelsDir)
	if err != nil {
		res.CleanDir()
		return Results{}, err
	}
	return res, nil
}

// run writes the RANCH input files into dir and executes RANCH.
func (conf Config) run(s *setup, dir, modelsDir string) error {
	pdbsIn := make([]string, len(s.models))
	for i, m := range s.models {
		pdbsIn[i] = filepath.Join(dir, inputFileName(i, m))
		if err := m.WriteFile(pdbsIn[i]); err != nil {
			return err
		}
	}

	seqFile := filepath.Join(dir, "sequence.seq")
	if err := os.WriteFile(seqFile, []byte(s.sequence+"\n"), 0644); err != nil {
		return err
	}

	args := []string{
		seqFile,
		fmt.Sprintf("-q=%d", conf.NumModels),
		"-i",
		"-s=" + conf.Symmetry,
		"-y=" + overallSymmetry[conf.OverallSym],
	}
	for _, p := range pdbsIn {
		args = append(args, "-x="+p)
	}
	for _, fixed := range s.fixed {
		args = append(args, "-f="+yesNo(fixed))
	}
	for _, multich := range s.multich {
		args = append(args, "-o="+yesNo(multich))
	}
	args = append(args, "-w="+modelsDir)

	c := cmd.New(conf.Exec, args...)
	out := new(bytes.Buffer)
	c.Cmd.Stdout = out
	c.Cmd.Stderr = out
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
	}
	err := c.Run()
	if conf.Vomit {
		fmt.Fprintf(os.Stderr, "%s\n", out.String())
	}

	// RANCH likes to exit cleanly after printing its complaints, so the
	// output is inspected regardless of the exit status.
	if err != nil || bytes.Contains(out.Bytes(), []byte("Problems")) {
		if err == nil {
			err = fmt.Errorf("RANCH reported problems")
		}
		return fmt.Errorf("%s\n%s", out.String(), err)
	}
	return nil
}

// finish reads every model RANCH wrote and extracts the embedded and
// symmetric chains back into independent chains.
func (conf Config) finish(s *setup, modelsDir string) ([]*pdb.Model, error) {
	entries, err := os.ReadDir(modelsDir)
	if err != nil {
		return nil, err
	}

	models := make([]*pdb.Model, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m, err := pdb.ReadModel(filepath.Join(modelsDir, entry.Name()))
		if err != nil {
			return nil, err
		}

		if conf.SymTemplate != nil {
			m, err = ExtractSymmetric(m, s.symseq, s.embedded)
		} else {
			m, err = ExtractEmbedded(m, s.embedded)
		}
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("RANCH did not produce any models in '%s'.",
			modelsDir)
	}
	return models, nil
}

// RunAll will execute RANCH in parallel over all domain lists given. The
// order of execution is unspecified, but the order and length of BOTH of
// the return values []Results and []error is precisely equivalent to the
// order and length of the input [][]Domain.
//
// Since this is meant to batch a lot of calls to RANCH, the temporary
// directory of each invocation is cleaned up as soon as its models are
// parsed.
//
// If any particular invocation of RANCH fails, it is added to the returned
// error slice, but does not stop the overall execution. To determine
// whether invocation 'i' of RANCH failed, simply check if the element at
// index 'i' in the returned error slice is 'nil' or not.
func (conf Config) RunAll(domainLists [][]Domain) ([]Results, []error) {
	jobs := make(chan int, 100)
	results := make([]Results, len(domainLists))
	errors := make([]error, len(domainLists))
	wg := new(sync.WaitGroup)
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for job := range jobs {
				res, err := conf.Run(domainLists[job]...)
				res.CleanDir()
				if err != nil {
					errors[job] = err
				} else {
					results[job] = res
				}
			}
		}()
	}
	for i := 0; i < len(domainLists); i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results, errors
}

// inputFileName names the i'th RANCH input PDB, keeping the original file
// name visible when the model has one.
func inputFileName(i int, m *pdb.Model) string {
	if len(m.Path) == 0 {
		return fmt.Sprintf("%d.pdb", i)
	}
	return fmt.Sprintf("%d_%s", i, filepath.Base(m.Path))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
