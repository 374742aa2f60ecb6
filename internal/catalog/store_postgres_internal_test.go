// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/platform/database/schema"
)

/*
TestAttachChildren verifies child rows land on their profile in row order.
*/
func TestAttachChildren(t *testing.T) {
	profiles := []Profile{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	attachChildren(profiles,
		[]profileTagRow{{1, "Mogadishu"}, {1, "President"}, {9, "Orphan"}},
		[]mediaRow{{2, Media{Type: "photo", URL: "https://example.test/b.jpg"}}},
		[]relationRow{{2, Relation{Name: "Amoud University", RelationType: "Professor"}}},
	)

	assert.Equal(t, []string{"Mogadishu", "President"}, profiles[0].Tags)
	assert.Empty(t, profiles[0].Media)
	assert.Empty(t, profiles[0].Relations)
	assert.NotNil(t, profiles[0].Relations)

	assert.Empty(t, profiles[1].Tags)
	require.Len(t, profiles[1].Media, 1)
	assert.Equal(t, "Amoud University", profiles[1].Relations[0].Name)
}

/*
TestSeedTables verifies COPY rows follow the column lists and parent order.
*/
func TestSeedTables(t *testing.T) {
	c, err := New(Shipped())
	require.NoError(t, err)

	tables := seedTables(c.Dataset())
	require.Len(t, tables, 6)

	assert.Equal(t, []string{"core", "category"}, []string(tables[0].identifier))
	assert.Equal(t, []string{"core", "relation"}, []string(tables[5].identifier))

	for _, table := range tables {
		for _, row := range table.rows {
			assert.Len(t, row, len(table.columns), table.identifier)
		}
	}

	assert.Len(t, tables[0].rows, 10)
	assert.Len(t, tables[1].rows, 17)
	assert.Len(t, tables[2].rows, 6)
	assert.Equal(t, schema.CoreProfile.Columns(), tables[2].columns)

	assert.Equal(t, "Farmaajo", *tables[2].rows[0][3].(*string))

	var tagCount, mediaCount, relationCount int
	for _, p := range c.Profiles() {
		tagCount += len(p.Tags)
		mediaCount += len(p.Media)
		relationCount += len(p.Relations)
	}
	assert.Len(t, tables[3].rows, tagCount)
	assert.Len(t, tables[4].rows, mediaCount)
	assert.Len(t, tables[5].rows, relationCount)
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	assert.Equal(t, "Poet", *nullable("Poet"))
}
