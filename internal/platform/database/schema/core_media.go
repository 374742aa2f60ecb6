package schema

// CoreMediaTable represents the 'core.media' table
type CoreMediaTable struct {
	Table     string
	ProfileID string
	Position  string
	Type      string
	URL       string
	Caption   string
}

// CoreMedia is the schema definition for core.media
var CoreMedia = CoreMediaTable{
	Table:     "core.media",
	ProfileID: "profileid",
	Position:  "position",
	Type:      "type",
	URL:       "url",
	Caption:   "caption",
}

func (t CoreMediaTable) Columns() []string {
	return []string{t.ProfileID, t.Position, t.Type, t.URL, t.Caption}
}
