/*
 * atomicdata.go, part of gosire.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gosire is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package mol

import (
	"strings"
	"unicode"
)

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4,  //0.31 in the paper. H only has one bond, so a longer radius is harmless.
	"C":  0.76, //sp3
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  //hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.20,
	"I":  1.39,
}

//Maximum number of bonds. 0 means it is not checked.
var symbolMaxBonds = map[string]int{
	"H":  1,
	"C":  4,
	"O":  2,
	"F":  1,
	"Br": 1,
	"I":  1,
}

//NormalizeSymbol returns symbol with the first letter in upper case and the rest in lower case,
//so "FE", "fe" and " Fe" all give "Fe".
func NormalizeSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

//Mass returns the mass of the element, in atomic mass units.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[NormalizeSymbol(symbol)]
	return m, ok
}

//CovalentRadius returns the covalent radius of the element, in A.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[NormalizeSymbol(symbol)]
	return r, ok
}

//MaxBonds returns the maximum number of covalent bonds an element can form, or 0 if there is no limit.
func MaxBonds(symbol string) int {
	return symbolMaxBonds[NormalizeSymbol(symbol)]
}

//GuessElement guesses the element symbol from a PDB atom name. It only knows
//about the common bio-elements. Returns a Missing error if it can't tell.
func GuessElement(name AtomName) (string, error) {
	n := strings.ToUpper(strings.TrimLeftFunc(string(name), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsDigit(r)
	}))
	n = strings.TrimSpace(n)
	symbol := ""
	switch {
	case n == "":
	case len(n) == 4 || n[0] == 'H': //only Hs have 4-char names in amber.
		symbol = "H"
	case n == "CU", n == "CO", n == "CL":
		symbol = NormalizeSymbol(n)
	case n[0] == 'C':
		symbol = "C"
	case n == "NA":
		symbol = "Na"
	case n[0] == 'N':
		symbol = "N"
	case n[0] == 'O':
		symbol = "O"
	case n[0] == 'P':
		symbol = "P"
	case n == "SE":
		symbol = "Se"
	case n[0] == 'S':
		symbol = "S"
	case strings.HasPrefix(n, "ZN"):
		symbol = "Zn"
	case strings.HasPrefix(n, "FE"):
		symbol = "Fe"
	case strings.HasPrefix(n, "MG"):
		symbol = "Mg"
	}
	if symbol == "" {
		return "", missingErr("element", "GuessElement", "can't guess the element of atom %q", string(name))
	}
	return symbol, nil
}
