package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this packages 'init' function.
var AminoOneToThree = map[byte]string{}

func init() {
	// Create a reverse map of AminoThreeToOne.
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// ReadModel creates a new Model from a PDB coordinate file. If the file
// cannot be read, or no amino acid ATOM records could be found, an error
// is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
//
// Only ATOM records corresponding to amino acid residues are kept. A new
// chain is started whenever the chain identifier changes or a TER record
// is seen. Alternate locations other than ' ' and 'A' are discarded.
func ReadModel(fileName string) (*Model, error) {
	var reader io.Reader
	var err error

	reader, err = os.Open(fileName)
	if err != nil {
		return nil, err
	}

	// If the file is gzipped, use the gzip decompressor.
	if path.Ext(fileName) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}

	m, err := Read(reader)
	if err != nil {
		return nil, err
	}
	if len(m.Chains) == 0 {
		return nil, fmt.Errorf("The file '%s' does not appear to contain "+
			"any amino acid ATOM records.", fileName)
	}
	m.Path = fileName
	return m, nil
}

// Read reads a model from PDB formatted input. In contrast to ReadModel,
// a model without any chains is not an error.
func Read(reader io.Reader) (*Model, error) {
	m := &Model{Chains: make([]*Chain, 0, 1)}

	var chain *Chain
	var residue *Residue

	breader := bufio.NewReaderSize(reader, 1000)
	for {
		// We ignore 'isPrefix' here, since we never care about lines longer
		// than 1000 characters, which is the size of our buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(line) < 6 {
			continue
		}

		switch strings.TrimSpace(string(line[0:6])) {
		case "TER":
			// A TER record ends the current chain, even if subsequent ATOM
			// records carry the same chain identifier.
			chain, residue = nil, nil
		case "ATOM":
			atom, ident, resName, resSeq, ok := parseAtom(line)
			if !ok {
				continue
			}
			if chain == nil || chain.Ident != ident {
				chain = &Chain{Ident: ident}
				m.Chains = append(m.Chains, chain)
				residue = nil
			}
			if residue == nil || residue.SeqNum != resSeq {
				residue = &Residue{Name: resName, SeqNum: resSeq}
				chain.Residues = append(chain.Residues, residue)
			}
			residue.Atoms = append(residue.Atoms, atom)
		}
	}
	return m, nil
}

// parseAtom pulls apart a single ATOM record. The boolean is false when the
// record should be skipped (a non-amino residue or an alternate location).
//
// Columns follow the PDB format description: serial number in columns 6-10,
// atom name in 12-15, alternate location in 16, residue name in 17-19,
// chain identifier in 21, residue sequence number in 22-25, coordinates in
// 30-53, occupancy in 54-59, temperature factor in 60-65 and the element
// symbol in 76-77.
func parseAtom(line []byte) (atom Atom, ident byte, resName string, resSeq int, ok bool) {
	if len(line) < 54 {
		return atom, 0, "", 0, false
	}

	resName = strings.TrimSpace(string(line[17:20]))
	if _, isAmino := AminoThreeToOne[resName]; !isAmino {
		return atom, 0, "", 0, false
	}
	if alt := line[16]; alt != ' ' && alt != 'A' {
		return atom, 0, "", 0, false
	}

	ident = line[21]
	if ident == ' ' {
		ident = '_'
	}

	// Numeric fields are parsed tolerantly: a field that cannot be parsed
	// is left at zero rather than failing the whole file.
	if num, err := strconv.ParseInt(
		strings.TrimSpace(string(line[22:26])), 10, 32); err == nil {

		resSeq = int(num)
	}
	if num, err := strconv.ParseInt(
		strings.TrimSpace(string(line[6:11])), 10, 32); err == nil {

		atom.Serial = int(num)
	}

	atom.Name = strings.TrimSpace(string(line[12:16]))
	for i, cols := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
		s := strings.TrimSpace(string(line[cols[0]:cols[1]]))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			atom.Coords[i] = f
		}
	}

	atom.Occupancy = 1.0
	if len(line) >= 60 {
		s := strings.TrimSpace(string(line[54:60]))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			atom.Occupancy = f
		}
	}
	if len(line) >= 66 {
		s := strings.TrimSpace(string(line[60:66]))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			atom.TempFactor = f
		}
	}
	if len(line) >= 78 {
		atom.Element = strings.TrimSpace(string(line[76:78]))
	}
	return atom, ident, resName, resSeq, true
}
