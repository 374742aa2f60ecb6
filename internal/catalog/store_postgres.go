// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/somalitag/internal/platform/database/schema"
	"github.com/taibuivan/somalitag/internal/platform/dberr"
	"github.com/taibuivan/somalitag/pkg/pointer"
)

// PostgresSource reads a catalog snapshot from the core schema.
//
// The snapshot is taken once; the catalog never reads the database again.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (source *PostgresSource) Name() string { return "postgres" }

// Dataset reads every catalog table inside one read-only transaction.
func (source *PostgresSource) Dataset(ctx context.Context) (Dataset, error) {
	tx, err := source.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return Dataset{}, dberr.Wrap(err, "begin_catalog_snapshot")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categories, err := listCategories(ctx, tx)
	if err != nil {
		return Dataset{}, err
	}

	tags, err := listTags(ctx, tx)
	if err != nil {
		return Dataset{}, err
	}

	profiles, err := listProfiles(ctx, tx)
	if err != nil {
		return Dataset{}, err
	}

	profileTags, err := listProfileTags(ctx, tx)
	if err != nil {
		return Dataset{}, err
	}

	media, err := listMedia(ctx, tx)
	if err != nil {
		return Dataset{}, err
	}

	relations, err := listRelations(ctx, tx)
	if err != nil {
		return Dataset{}, err
	}

	attachChildren(profiles, profileTags, media, relations)

	return Dataset{Profiles: profiles, Categories: categories, Tags: tags}, nil
}

// # Row Types

type profileTagRow struct {
	ProfileID int
	Tag       string
}

type mediaRow struct {
	ProfileID int
	Media     Media
}

type relationRow struct {
	SourceID int
	Relation Relation
}

// attachChildren distributes child rows onto their profiles.
// Rows must already be ordered by position; rows for unknown profiles are dropped.
func attachChildren(profiles []Profile, tags []profileTagRow, media []mediaRow, relations []relationRow) {
	index := make(map[int]*Profile, len(profiles))
	for i := range profiles {
		profiles[i].normalize()
		index[profiles[i].ID] = &profiles[i]
	}

	for _, row := range tags {
		if profile, ok := index[row.ProfileID]; ok {
			profile.Tags = append(profile.Tags, row.Tag)
		}
	}

	for _, row := range media {
		if profile, ok := index[row.ProfileID]; ok {
			profile.Media = append(profile.Media, row.Media)
		}
	}

	for _, row := range relations {
		if profile, ok := index[row.SourceID]; ok {
			profile.Relations = append(profile.Relations, row.Relation)
		}
	}
}

// # Queries

func listCategories(ctx context.Context, tx pgx.Tx) ([]Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CoreCategory.ID, schema.CoreCategory.Name, schema.CoreCategory.Slug, schema.CoreCategory.ParentID,
		schema.CoreCategory.Table, schema.CoreCategory.SortOrder, schema.CoreCategory.ID)

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, dberr.Wrap(rows.Err(), "list_categories")
}

func listTags(ctx context.Context, tx pgx.Tx) ([]Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.Slug,
		schema.CoreTag.Table, schema.CoreTag.SortOrder, schema.CoreTag.ID)

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]Tag, 0)
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, dberr.Wrap(rows.Err(), "list_tags")
}

func listProfiles(ctx context.Context, tx pgx.Tx) ([]Profile, error) {
	p := schema.CoreProfile
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC`,
		p.ID, p.Name, p.Slug, p.Aka, p.Gender, p.DOB, p.POB, p.Nationality,
		p.Status, p.PrimaryRole, p.SubCategory, p.IsVerified, p.Summary, p.Sections,
		p.Table, p.SortOrder, p.ID)

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_profiles")
	}
	defer rows.Close()

	profiles := make([]Profile, 0)
	for rows.Next() {
		var (
			profile     Profile
			aka         *string
			subCategory *string
			sections    []Section
		)

		err := rows.Scan(
			&profile.ID, &profile.Name, &profile.Slug, &aka, &profile.Gender, &profile.DOB, &profile.POB,
			&profile.Nationality, &profile.Status, &profile.PrimaryRole, &subCategory, &profile.IsVerified,
			&profile.Summary, &sections,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_profile")
		}

		profile.Aka = pointer.Fallback(aka, "")
		profile.SubCategory = pointer.Fallback(subCategory, "")
		profile.Sections = Sections(sections)
		profiles = append(profiles, profile)
	}

	return profiles, dberr.Wrap(rows.Err(), "list_profiles")
}

func listProfileTags(ctx context.Context, tx pgx.Tx) ([]profileTagRow, error) {
	t := schema.CoreProfileTag
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		t.ProfileID, t.Tag, t.Table, t.ProfileID, t.Position)

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_profile_tags")
	}
	defer rows.Close()

	result := make([]profileTagRow, 0)
	for rows.Next() {
		var row profileTagRow
		if err := rows.Scan(&row.ProfileID, &row.Tag); err != nil {
			return nil, dberr.Wrap(err, "scan_profile_tag")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_profile_tags")
}

func listMedia(ctx context.Context, tx pgx.Tx) ([]mediaRow, error) {
	m := schema.CoreMedia
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		m.ProfileID, m.Type, m.URL, m.Caption, m.Table, m.ProfileID, m.Position)

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_media")
	}
	defer rows.Close()

	result := make([]mediaRow, 0)
	for rows.Next() {
		var row mediaRow
		if err := rows.Scan(&row.ProfileID, &row.Media.Type, &row.Media.URL, &row.Media.Caption); err != nil {
			return nil, dberr.Wrap(err, "scan_media")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_media")
}

func listRelations(ctx context.Context, tx pgx.Tx) ([]relationRow, error) {
	r := schema.CoreRelation
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		r.SourceID, r.TargetName, r.Type, r.Table, r.SourceID, r.Position)

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_relations")
	}
	defer rows.Close()

	result := make([]relationRow, 0)
	for rows.Next() {
		var row relationRow
		if err := rows.Scan(&row.SourceID, &row.Relation.Name, &row.Relation.RelationType); err != nil {
			return nil, dberr.Wrap(err, "scan_relation")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_relations")
}

// # Seeding

// Seed replaces the stored catalog with the content of a validated catalog.
func (source *PostgresSource) Seed(ctx context.Context, catalog *Catalog) error {
	tx, err := source.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_catalog_seed")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	truncate := fmt.Sprintf(`TRUNCATE %s`, strings.Join([]string{
		schema.CoreRelation.Table, schema.CoreMedia.Table, schema.CoreProfileTag.Table,
		schema.CoreProfile.Table, schema.CoreTag.Table, schema.CoreCategory.Table,
	}, ", "))
	if _, err := tx.Exec(ctx, truncate); err != nil {
		return dberr.Wrap(err, "truncate_catalog")
	}

	dataset := catalog.Dataset()
	for _, table := range seedTables(dataset) {
		if _, err := tx.CopyFrom(ctx, table.identifier, table.columns, pgx.CopyFromRows(table.rows)); err != nil {
			return dberr.Wrap(err, "copy_"+strings.Join(table.identifier, "_"))
		}
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_catalog_seed")
}

type seedTable struct {
	identifier pgx.Identifier
	columns    []string
	rows       [][]any
}

// seedTables flattens a dataset into COPY rows, parents before children.
func seedTables(dataset Dataset) []seedTable {
	identifier := func(table string) pgx.Identifier {
		return pgx.Identifier(strings.SplitN(table, ".", 2))
	}

	categories := seedTable{identifier: identifier(schema.CoreCategory.Table), columns: schema.CoreCategory.Columns()}
	for i, c := range dataset.Categories {
		categories.rows = append(categories.rows, []any{c.ID, c.Name, c.Slug, c.ParentID, i})
	}

	tags := seedTable{identifier: identifier(schema.CoreTag.Table), columns: schema.CoreTag.Columns()}
	for i, t := range dataset.Tags {
		tags.rows = append(tags.rows, []any{t.ID, t.Name, t.Slug, i})
	}

	profiles := seedTable{identifier: identifier(schema.CoreProfile.Table), columns: schema.CoreProfile.Columns()}
	profileTags := seedTable{identifier: identifier(schema.CoreProfileTag.Table), columns: schema.CoreProfileTag.Columns()}
	media := seedTable{identifier: identifier(schema.CoreMedia.Table), columns: schema.CoreMedia.Columns()}
	relations := seedTable{identifier: identifier(schema.CoreRelation.Table), columns: schema.CoreRelation.Columns()}

	for i, p := range dataset.Profiles {
		profiles.rows = append(profiles.rows, []any{
			p.ID, p.Name, p.Slug, nullable(p.Aka), p.Gender, p.DOB, p.POB, p.Nationality,
			string(p.Status), p.PrimaryRole, nullable(p.SubCategory), p.IsVerified, p.Summary,
			[]Section(p.Sections), i,
		})

		for position, tag := range p.Tags {
			profileTags.rows = append(profileTags.rows, []any{p.ID, position, tag})
		}
		for position, m := range p.Media {
			media.rows = append(media.rows, []any{p.ID, position, m.Type, m.URL, m.Caption})
		}
		for position, r := range p.Relations {
			relations.rows = append(relations.rows, []any{p.ID, position, r.Name, r.RelationType})
		}
	}

	return []seedTable{categories, tags, profiles, profileTags, media, relations}
}

// nullable maps an absent optional string to SQL NULL.
func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return pointer.To(value)
}
