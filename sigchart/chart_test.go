package sigchart_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mutsig/catalog"
	"github.com/katalvlaran/mutsig/sigchart"
	"github.com/katalvlaran/mutsig/sigtype"
)

// uniform96 returns the full canonical table with equal proportions.
func uniform96(p float64) catalog.Table {
	t := make(catalog.Table, 0, sigtype.NumTypes)
	for _, label := range sigtype.Canonical() {
		t = append(t, catalog.Entry{Type: label, Proportion: p})
	}
	return t
}

// TestBuild_YAxisFloor: an all-zero table must still get the [0, 0.2]
// axis so the chart stays legible.
func TestBuild_YAxisFloor(t *testing.T) {
	spec, err := sigchart.Build(uniform96(0), nil)
	require.NoError(t, err)
	assert.Equal(t, sigchart.YAxis{Min: 0, Max: 0.2}, spec.YAxis)
}

// TestBuild_YAxisTracksData: once any proportion exceeds the floor, the
// axis follows the data exactly.
func TestBuild_YAxisTracksData(t *testing.T) {
	tbl, err := catalog.New(
		catalog.Entry{Type: "A[C>A]A", Proportion: 0.35},
		catalog.Entry{Type: "T[T>G]T", Proportion: 0.05},
	)
	require.NoError(t, err)

	spec, err := sigchart.Build(tbl, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.35, spec.YAxis.Max)
	assert.Equal(t, 0.0, spec.YAxis.Min)
}

// TestBuild_Uniform96 is the end-to-end scenario: the full template at
// 1/96 each yields 6 panels of 16 equal bars, floor axis, palette
// colors, and every decoration switched off.
func TestBuild_Uniform96(t *testing.T) {
	const p = 1.0 / 96

	spec, err := sigchart.Build(uniform96(p), nil)
	require.NoError(t, err)

	assert.Equal(t, sigchart.DefaultTitle, spec.Title)
	assert.Equal(t, sigchart.YAxis{Min: 0, Max: sigchart.MinYAxisMax}, spec.YAxis)
	assert.False(t, spec.XAxis.ShowLabels)
	assert.False(t, spec.XAxis.ShowTicks)
	assert.False(t, spec.XAxis.ShowTitle)
	assert.False(t, spec.FacetStripBackground)
	assert.False(t, spec.Legend)

	require.Len(t, spec.Panels, sigtype.NumBaseChanges)
	wantOrder := lo.Map(sigtype.BaseChanges(), func(bc sigtype.BaseChange, _ int) string {
		return string(bc)
	})
	gotOrder := lo.Map(spec.Panels, func(p sigchart.Panel, _ int) string { return p.Key })
	assert.Equal(t, wantOrder, gotOrder, "panels must follow canonical class order")

	for _, panel := range spec.Panels {
		require.Len(t, panel.Bars, sigtype.NumContexts, "panel %q", panel.Key)
		for _, bar := range panel.Bars {
			assert.InDelta(t, p, bar.Height, 1e-12)
			assert.Equal(t, sigchart.BarWidth, bar.Width)

			want, ok := sigchart.ColorFor(sigtype.Context(bar.Context))
			require.True(t, ok, "bar context %q must be a valid pair", bar.Context)
			assert.Equal(t, want, bar.Color)
		}
	}
}

// TestBuild_SparseOmitsPanels: classes absent from the input produce no
// panel, and input order survives within a panel.
func TestBuild_SparseOmitsPanels(t *testing.T) {
	tbl, err := catalog.New(
		catalog.Entry{Type: "T[T>C]G", Proportion: 0.1},
		catalog.Entry{Type: "A[C>A]C", Proportion: 0.2},
		catalog.Entry{Type: "G[C>A]T", Proportion: 0.3},
	)
	require.NoError(t, err)

	spec, err := sigchart.Build(tbl, nil)
	require.NoError(t, err)

	require.Len(t, spec.Panels, 2)
	assert.Equal(t, "C>A", spec.Panels[0].Key, "canonical order puts C>A first")
	assert.Equal(t, "T>C", spec.Panels[1].Key)

	ca := spec.Panels[0].Bars
	require.Len(t, ca, 2)
	assert.Equal(t, "A-C", ca[0].Context)
	assert.Equal(t, "G-T", ca[1].Context)
}

// TestBuild_DuplicateLabelsStaySeparate: duplicates are neither merged
// nor rejected.
func TestBuild_DuplicateLabelsStaySeparate(t *testing.T) {
	tbl := catalog.Table{
		{Type: "A[C>A]A", Proportion: 0.1},
		{Type: "A[C>A]A", Proportion: 0.2},
	}
	spec, err := sigchart.Build(tbl, nil)
	require.NoError(t, err)
	require.Len(t, spec.Panels, 1)
	assert.Len(t, spec.Panels[0].Bars, 2)
}

// TestBuild_BadInput: any malformed entry fails the whole build with
// the input-format error; no partial spec comes back.
func TestBuild_BadInput(t *testing.T) {
	cases := map[string]catalog.Table{
		"two-character flank": {{Type: "XY[C>A]T", Proportion: 0.1}},
		"missing arrow":       {{Type: "C[CA]T", Proportion: 0.1}},
		"negative proportion": {{Type: "A[C>A]A", Proportion: -0.1}},
	}
	for name, tbl := range cases {
		t.Run(name, func(t *testing.T) {
			spec, err := sigchart.Build(tbl, nil)
			assert.ErrorIs(t, err, sigtype.ErrInputFormat)
			assert.Nil(t, spec)
		})
	}
}

// TestBuild_Title covers the default-title fallback and an explicit
// title.
func TestBuild_Title(t *testing.T) {
	tbl := catalog.Table{{Type: "A[C>A]A", Proportion: 0.1}}

	spec, err := sigchart.Build(tbl, nil)
	require.NoError(t, err)
	assert.Equal(t, sigchart.DefaultTitle, spec.Title)

	opts := sigchart.DefaultOptions()
	opts.Title = "SBS1"
	spec, err = sigchart.Build(tbl, &opts)
	require.NoError(t, err)
	assert.Equal(t, "SBS1", spec.Title)
}

// TestBuild_EmptyTable: an empty table is valid input — zero panels,
// floor axis.
func TestBuild_EmptyTable(t *testing.T) {
	spec, err := sigchart.Build(catalog.Table{}, nil)
	require.NoError(t, err)
	assert.Empty(t, spec.Panels)
	assert.Equal(t, sigchart.YAxis{Min: 0, Max: sigchart.MinYAxisMax}, spec.YAxis)
}

// TestBuildLegend: 4 panels keyed by 5′ base, 4 unit bars each, labels
// shown (the legend exists to name the colors).
func TestBuildLegend(t *testing.T) {
	legend := sigchart.BuildLegend()

	require.Len(t, legend.Panels, 4)
	assert.Equal(t, []string{"A", "C", "G", "T"},
		lo.Map(legend.Panels, func(p sigchart.Panel, _ int) string { return p.Key }))
	assert.True(t, legend.XAxis.ShowLabels)

	seen := make([]string, 0, sigtype.NumContexts)
	for _, panel := range legend.Panels {
		require.Len(t, panel.Bars, 4)
		for _, bar := range panel.Bars {
			assert.Equal(t, 1.0, bar.Height)
			seen = append(seen, bar.Context)
		}
	}
	want := lo.Map(sigchart.PaletteOrder(), func(c sigtype.Context, _ int) string {
		return string(c)
	})
	assert.Equal(t, want, seen, "legend bars must follow palette order")
}
