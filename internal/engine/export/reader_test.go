package export_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/engine/export"
)

type nation struct {
	name, region, endorsements string
}

func dump(nations ...nation) *strings.Reader {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n<NATIONS api_version=\"12\">\n")
	for _, n := range nations {
		fmt.Fprintf(&b, "<NATION><NAME>%s</NAME><TYPE>Republic</TYPE><REGION>%s</REGION>"+
			"<UNSTATUS>WA Member</UNSTATUS><ENDORSEMENTS>%s</ENDORSEMENTS></NATION>\n",
			n.name, n.region, n.endorsements)
	}
	b.WriteString("</NATIONS>\n")
	return strings.NewReader(b.String())
}

func TestReader_ExtractEndorsed(t *testing.T) {
	doc := dump(
		nation{"Nation 1", "My Region", "my_nation,nation_2"},
		nation{"Nation 2", "My Region", "my_nation"},
		nation{"Nation 3", "My Region", ""},
		nation{"My Nation", "My Region", "nation_1,nation_2"},
		nation{"Nation 4", "Other Region", "nation_5,nation_6"},
	)

	got, err := export.NewReader(false).ExtractEndorsed(doc, "my_region", "my_nation")
	require.NoError(t, err)
	assert.Equal(t, []domain.Identifier{"nation_1", "nation_2"}, got.Sorted())
}

func TestReader_StopsAfterRegionRun(t *testing.T) {
	nations := []nation{
		{"A", "R1", "self"},
		{"B", "R1", "self"},
		{"C", "R2", "self"},
		{"D", "R1", "self"},
	}

	t.Run("early exit", func(t *testing.T) {
		res, err := export.NewReader(false).Extract(dump(nations...), "r1", "self")
		require.NoError(t, err)
		assert.Equal(t, []domain.Identifier{"a", "b"}, res.Endorsed.Sorted())
		assert.Equal(t, 3, res.Scanned)
		assert.Equal(t, 2, res.RegionRecords)
		assert.True(t, res.StoppedEarly)
	})

	t.Run("full scan", func(t *testing.T) {
		res, err := export.NewReader(true).Extract(dump(nations...), "r1", "self")
		require.NoError(t, err)
		assert.Equal(t, []domain.Identifier{"a", "b", "d"}, res.Endorsed.Sorted())
		assert.Equal(t, 4, res.Scanned)
		assert.False(t, res.StoppedEarly)
	})
}

func TestReader_SkipsRecordsBeforeRegion(t *testing.T) {
	doc := dump(
		nation{"X", "Elsewhere", "self"},
		nation{"Y", "Elsewhere", "self"},
		nation{"A", "Home", "Self"},
	)

	got, err := export.NewReader(false).ExtractEndorsed(doc, "home", "self")
	require.NoError(t, err)
	assert.Equal(t, []domain.Identifier{"a"}, got.Sorted())
}

func TestReader_ExcludesSelf(t *testing.T) {
	doc := dump(
		nation{"Self", "Home", "self,other"},
		nation{"Other", "Home", "self"},
	)

	got, err := export.NewReader(false).ExtractEndorsed(doc, "home", "self")
	require.NoError(t, err)
	assert.False(t, got.Has("self"))
	assert.True(t, got.Has("other"))
}

func TestReader_CanonicalEndorserMatch(t *testing.T) {
	doc := dump(
		nation{"Alpha", "Home", "My Nation"},
		nation{"Beta", "Home", "my_nation_two"},
		nation{"Gamma", "Home", "someone, my_nation"},
	)

	got, err := export.NewReader(false).ExtractEndorsed(doc, "home", "my_nation")
	require.NoError(t, err)
	assert.Equal(t, []domain.Identifier{"alpha", "gamma"}, got.Sorted(),
		"endorsers match element-wise, not by substring")
}

func TestReader_EmptyDocument(t *testing.T) {
	got, err := export.NewReader(false).ExtractEndorsed(strings.NewReader(""), "home", "self")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestReader_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unclosed element", doc: "<NATIONS><NATION><NAME>A</NAME><REGION>Home</REGION>"},
		{name: "mismatched tags", doc: "<NATIONS><NATION><NAME>A</REGION></NATION></NATIONS>"},
		{name: "missing region", doc: "<NATIONS><NATION><NAME>A</NAME></NATION></NATIONS>"},
		{name: "missing name", doc: "<NATIONS><NATION><REGION>Home</REGION></NATION></NATIONS>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := export.NewReader(true).ExtractEndorsed(strings.NewReader(tt.doc), "home", "self")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedExport), "got %v", err)
		})
	}
}
