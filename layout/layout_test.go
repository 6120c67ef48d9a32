// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"image"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rsc.io/qr/coding"
)

// Alignment pattern row/column coordinates for versions 2 to 40.
var alignTable = [...][]int{
	{6, 18}, {6, 22}, {6, 26},
	{6, 30}, {6, 34}, {6, 22, 38}, {6, 24, 42},
	{6, 26, 46}, {6, 28, 50}, {6, 30, 54}, {6, 32, 58},
	{6, 34, 62}, {6, 26, 46, 66}, {6, 26, 48, 70}, {6, 26, 50, 74},
	{6, 30, 54, 78}, {6, 30, 56, 82}, {6, 30, 58, 86}, {6, 34, 62, 90},
	{6, 28, 50, 72, 94}, {6, 26, 50, 74, 98}, {6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106}, {6, 32, 58, 84, 110}, {6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118}, {6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126}, {6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134}, {6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142}, {6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150}, {6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158}, {6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166}, {6, 30, 58, 86, 114, 142, 170},
}

func TestAlignCoords(t *testing.T) {
	assert.Empty(t, alignCoords(1))
	for i, want := range alignTable {
		v := i + 2
		assert.Equal(t, want, alignCoords(v), "version %d", v)
	}
}

func TestAlignmentCenters(t *testing.T) {
	assert.Empty(t, AlignmentCenters(1))
	assert.Equal(t, []image.Point{{18, 18}}, AlignmentCenters(2))
	assert.Equal(t, []image.Point{
		{22, 6},
		{6, 22}, {22, 22}, {38, 22},
		{22, 38}, {38, 38},
	}, AlignmentCenters(7))
	for v := 2; v <= MaxVersion; v++ {
		n := len(alignCoords(v))
		centers := AlignmentCenters(v)
		assert.Len(t, centers, n*n-3, "version %d", v)
		for _, c := range centers {
			assert.NotEqual(t, Finder, Classify(c.X, c.Y, Size(v), nil),
				"version %d centre %v", v, c)
		}
	}
}

func TestNew(t *testing.T) {
	for _, v := range []int{0, -1, MaxVersion + 1} {
		_, err := New(v)
		assert.ErrorIs(t, err, ErrVersion, "version %d", v)
	}
	l, err := New(2)
	require.NoError(t, err)
	assert.Equal(t, 25, l.Size)
	assert.Equal(t, []image.Point{{18, 18}}, l.Align)
}

func TestClassify(t *testing.T) {
	l, err := New(2)
	require.NoError(t, err)
	tests := []struct {
		x, y int
		want Region
	}{
		{0, 0, Finder},
		{7, 7, Finder},
		{24, 0, Finder},
		{0, 24, Finder},
		{17, 7, Finder},
		{6, 12, Timing},
		{12, 6, Timing},
		{8, 0, Format},
		{8, 8, Format},
		{0, 8, Format},
		{24, 8, Format},
		{8, 24, Format},
		{8, 17, Format},
		{0, 14, VersionInfo},
		{5, 16, VersionInfo},
		{14, 0, VersionInfo},
		{16, 5, VersionInfo},
		{18, 18, Alignment},
		{16, 20, Alignment},
		{24, 24, LengthHeader},
		{23, 19, LengthHeader},
		{24, 18, Writable},
		{22, 24, Writable},
		{9, 9, Writable},
		{12, 12, Writable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Classify(tt.x, tt.y),
			"(%d,%d)", tt.x, tt.y)
	}
	assert.False(t, l.Writable(-1, 9))
	assert.False(t, l.Writable(9, l.Size))
	assert.True(t, l.Writable(9, 9))
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "writable", Writable.String())
	assert.Equal(t, "header", LengthHeader.String())
	assert.Equal(t, "region(42)", Region(42).String())
	assert.Equal(t, 'A', Alignment.Rune())
	assert.Equal(t, '?', Region(-1).Rune())
}

func TestZigzag(t *testing.T) {
	l, err := New(1)
	require.NoError(t, err)
	z := l.Zigzag()
	assert.Len(t, z, 160)
	assert.Equal(t, 160, l.Capacity())
	assert.Equal(t, []image.Point{
		{20, 14}, {19, 14}, {20, 13}, {19, 13},
	}, z[:4])
	assert.Equal(t, []image.Point{{1, 9}, {0, 9}}, z[len(z)-2:])

	l, err = New(2)
	require.NoError(t, err)
	z = l.Zigzag()
	assert.Equal(t, image.Pt(24, 18), z[0])
	assert.Len(t, z, 311)
}

func TestZigzagWritable(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		l, err := New(v)
		require.NoError(t, err)
		z := l.Zigzag()
		seen := make(map[image.Point]bool, len(z))
		for _, p := range z {
			require.True(t, l.Writable(p.X, p.Y), "version %d %v", v, p)
			require.False(t, seen[p], "version %d %v repeated", v, p)
			seen[p] = true
		}
		require.Equal(t, l.Capacity(), len(z), "version %d", v)
	}
}

// Every free module must hold a data, check or remainder bit in a
// symbol built by the generator.
func TestWritableIsCodeword(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		p, err := coding.NewPlan(coding.Version(v), coding.H, 0)
		require.NoError(t, err)
		l, err := New(v)
		require.NoError(t, err)
		for _, pt := range l.Zigzag() {
			role := p.Pixel[pt.Y][pt.X].Role()
			switch role {
			case coding.Data, coding.Check, coding.Extra:
			default:
				t.Fatalf("version %d %v: role %v", v, pt, role)
			}
		}
	}
}

func TestHeaderCells(t *testing.T) {
	l, err := New(1)
	require.NoError(t, err)
	cells := l.HeaderCells()
	assert.Equal(t, [LengthBits]image.Point{
		{20, 18}, {19, 18}, {20, 17}, {19, 17},
		{20, 16}, {19, 16}, {20, 15}, {19, 15},
	}, cells)
	for _, c := range cells {
		assert.Equal(t, LengthHeader, l.Classify(c.X, c.Y))
	}
}

func TestMap(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"))
	for _, v := range []int{1, 7} {
		l, err := New(v)
		require.NoError(t, err)
		g.Assert(t, fmt.Sprintf("map-v%d", v), []byte(l.Map()))
	}
}
