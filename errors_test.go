/*
 * errors_test.go, part of gosire.
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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(Te *testing.T) {
	d := testMolecule(Te)
	_, err := d.Molecule().Atom(AtomName("CA"))
	require.Error(Te, err)
	var e *CError
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, KindDuplicate, e.Kind())
	assert.Equal(Te, "atom", e.Entity())
	assert.True(Te, e.Critical())
	assert.Contains(Te, e.Decorate(""), "unique")
	assert.Contains(Te, e.Decorate(""), "NewAtom")
	assert.Contains(Te, err.Error(), "duplicate entity (atom)")

	wrapped := fmt.Errorf("loading: %w", err)
	assert.True(Te, errors.Is(wrapped, ErrDuplicate))
	assert.False(Te, errors.Is(wrapped, ErrMissing))
	assert.Equal(Te, KindDuplicate, KindOf(wrapped))
	assert.Equal(Te, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(Te, "missing property", KindMissingProperty.String())

	assert.Panics(Te, func() { bug("TestErrors", "broken") })
}

func TestProperties(Te *testing.T) {
	var p Properties
	assert.Equal(Te, 0, p.Len())
	q := p.With("b", 1).With("a", "x")
	assert.Equal(Te, 0, p.Len())
	assert.Equal(Te, []string{"a", "b"}, q.Keys())
	assert.False(Te, q.Without("a").HasProperty("a"))
	assert.True(Te, q.HasProperty("a"))
	_, err := q.Property("c")
	requireKind(Te, err, KindMissingProperty)

	vals := NewAtomValues([]float64{1, 2, 3})
	v2, err := vals.With(-1, 9)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 2, 3}, vals.Values())
	assert.Equal(Te, 9.0, v2.Get(2))
	_, err = vals.With(3, 0)
	requireKind(Te, err, KindInvalidIndex)

	var pm ParameterMap
	assert.Equal(Te, CoordinatesKey, pm.Source(CoordinatesKey))
	pm2 := pm.With(CoordinatesKey, "minimized")
	assert.Equal(Te, "minimized", pm2.Source(CoordinatesKey))
	assert.Nil(Te, pm)
}
