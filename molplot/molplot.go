/*
 * molplot.go, part of gosire.
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

//Package molplot draws per-residue profiles of molecular properties, such as
//B-factors or positional fluctuations along a trajectory.
package molplot

import (
	"fmt"
	"io"
	"math"

	"github.com/rmera/gosire"
	"github.com/rmera/gosire/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Profile is a value per residue.
type Profile struct {
	Name     string
	Residues []mol.ResIdx
	Labels   []string //"NAME:number"
	Values   []float64
}

//profile averages atomic values over each residue that has atoms.
func profile(name string, info *mol.MoleculeInfo, vals []float64) *Profile {
	p := &Profile{Name: name}
	for r := 0; r < info.NResidues(); r++ {
		ri := mol.ResIdx(r)
		atoms := info.AtomsInResidue(ri)
		if len(atoms) == 0 {
			continue
		}
		sel := make([]float64, len(atoms))
		for k, a := range atoms {
			sel[k] = vals[a]
		}
		p.Residues = append(p.Residues, ri)
		p.Labels = append(p.Labels, fmt.Sprintf("%s:%d", info.ResName(ri), info.ResNum(ri)))
		p.Values = append(p.Values, floats.Sum(sel)/float64(len(sel)))
	}
	return p
}

//ResidueProfile returns the per-residue average of the per-atom float property key.
func ResidueProfile(d *mol.MoleculeData, key string) (*Profile, error) {
	vals, err := mol.AtomPropertyOf[float64](d, key)
	if err != nil {
		return nil, err
	}
	return profile(key, d.Info(), vals.Values()), nil
}

//FluctuationProfile returns the per-residue average of the root mean square fluctuation
//of each atom around its mean position, over the current coordinates and all the frames
//of the trajectory property.
func FluctuationProfile(d *mol.MoleculeData, pm mol.ParameterMap) (*Profile, error) {
	c, err := d.Coordinates(pm)
	if err != nil {
		return nil, err
	}
	frames := []*v3.Matrix{c}
	p, err := d.Property(pm.Source(mol.TrajectoryKey))
	if err != nil {
		return nil, err
	}
	traj, ok := p.(mol.Trajectory)
	if !ok {
		return nil, fmt.Errorf("molplot: property %q holds a %T, not a trajectory: %w", pm.Source(mol.TrajectoryKey), p, mol.ErrIncompatible)
	}
	for i := 0; i < traj.Len(); i++ {
		f, err := traj.Frame(i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	n := c.NVecs()
	rmsf := make([]float64, n)
	for a := 0; a < n; a++ {
		var mean [3]float64
		for _, f := range frames {
			v := f.Vec(a)
			floats.Add(mean[:], v[:])
		}
		floats.Scale(1/float64(len(frames)), mean[:])
		sq := 0.0
		for _, f := range frames {
			v := f.Vec(a)
			floats.Sub(v[:], mean[:])
			sq += floats.Dot(v[:], v[:])
		}
		rmsf[a] = math.Sqrt(sq / float64(len(frames)))
	}
	return profile("RMSF", d.Info(), rmsf), nil
}

//Mean returns the average of the profile values, or NaN if the profile is empty.
func (p *Profile) Mean() float64 {
	if len(p.Values) == 0 {
		return math.NaN()
	}
	return floats.Sum(p.Values) / float64(len(p.Values))
}

//Max returns the residue with the largest value, and the value.
func (p *Profile) Max() (mol.ResIdx, float64) {
	if len(p.Values) == 0 {
		return -1, math.NaN()
	}
	i := floats.MaxIdx(p.Values)
	return p.Residues[i], p.Values[i]
}

//ticks labels at most maxticks residues.
func (p *Profile) ticks(maxticks int) plot.ConstantTicks {
	step := len(p.Labels)/maxticks + 1
	ticks := make(plot.ConstantTicks, 0, maxticks)
	for i := 0; i < len(p.Labels); i += step {
		ticks = append(ticks, plot.Tick{Value: float64(i + 1), Label: p.Labels[i]})
	}
	return ticks
}

//Plot returns a line plot of the profile, with the residues in the X axis.
func (p *Profile) Plot(title string) (*plot.Plot, error) {
	if len(p.Values) == 0 {
		return nil, fmt.Errorf("molplot: empty profile: %w", mol.ErrMissing)
	}
	pts := make(plotter.XYs, len(p.Values))
	for i, v := range p.Values {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	pl := plot.New()
	pl.Title.Text = title
	pl.Title.Padding = 3 * vg.Millimeter
	pl.X.Label.Text = "Residue"
	pl.Y.Label.Text = p.Name
	pl.X.Tick.Marker = p.ticks(10)
	pl.Add(plotter.NewGrid())
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	pl.Add(l, s)
	return pl, nil
}

//WriteTo writes the plot of the profile to w. format is any of the formats gonum/plot
//supports ("png", "svg", "pdf"...).
func (p *Profile) WriteTo(w io.Writer, title, format string) error {
	pl, err := p.Plot(title)
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

//Save saves the plot of the profile to filename. The format is taken from the extension.
func (p *Profile) Save(filename, title string) error {
	pl, err := p.Plot(title)
	if err != nil {
		return err
	}
	return pl.Save(6*vg.Inch, 4*vg.Inch, filename)
}
