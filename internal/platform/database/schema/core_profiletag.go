package schema

// CoreProfileTagTable represents the 'core.profiletag' table
type CoreProfileTagTable struct {
	Table     string
	ProfileID string
	Position  string
	Tag       string
}

// CoreProfileTag is the schema definition for core.profiletag
var CoreProfileTag = CoreProfileTagTable{
	Table:     "core.profiletag",
	ProfileID: "profileid",
	Position:  "position",
	Tag:       "tag",
}

func (t CoreProfileTagTable) Columns() []string {
	return []string{t.ProfileID, t.Position, t.Tag}
}
