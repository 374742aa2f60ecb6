package schema

// CoreRelationTable represents the 'core.relation' table
type CoreRelationTable struct {
	Table      string
	SourceID   string
	Position   string
	TargetName string
	Type       string
}

// CoreRelation is the schema definition for core.relation
var CoreRelation = CoreRelationTable{
	Table:      "core.relation",
	SourceID:   "sourceid",
	Position:   "position",
	TargetName: "targetname",
	Type:       "type",
}

func (t CoreRelationTable) Columns() []string {
	return []string{t.SourceID, t.Position, t.TargetName, t.Type}
}
