package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write writes the model as PDB formatted ATOM records, with a TER record
// after every chain and an END trailer. The output is accepted by RANCH
// and PULCHRA as input.
func (m *Model) Write(w io.Writer) error {
	buf := bufio.NewWriter(w)

	serial := 0
	for _, chain := range m.Chains {
		var last *Residue
		for _, res := range chain.Residues {
			last = res
			for _, atom := range res.Atoms {
				serial = atom.Serial
				_, err := fmt.Fprintf(buf,
					"ATOM  %5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
					atom.Serial, atomNameField(atom.Name), res.Name,
					chain.Ident, res.SeqNum,
					atom.Coords[0], atom.Coords[1], atom.Coords[2],
					atom.Occupancy, atom.TempFactor, atom.element())
				if err != nil {
					return err
				}
			}
		}
		if last != nil {
			serial++
			_, err := fmt.Fprintf(buf, "TER   %5d      %3s %c%4d\n",
				serial, last.Name, chain.Ident, last.SeqNum)
			if err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(buf, "END"); err != nil {
		return err
	}
	return buf.Flush()
}

// WriteFile writes the model to a new PDB file at the given path.
func (m *Model) WriteFile(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// atomNameField positions an atom name within the four column name field.
// Names shorter than four characters start in the second column, so that
// "CA" comes out as " CA " while four character names fill the field.
func atomNameField(name string) string {
	if len(name) >= 4 {
		return name
	}
	return fmt.Sprintf(" %-3s", name)
}

// element falls back to the first letter of the atom name when the ATOM
// record carried no element symbol.
func (a Atom) element() string {
	if len(a.Element) > 0 {
		return a.Element
	}
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] < '0' || a.Name[i] > '9' {
			return a.Name[i : i+1]
		}
	}
	return ""
}
