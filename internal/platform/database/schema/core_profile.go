package schema

// CoreProfileTable represents the 'core.profile' table
type CoreProfileTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Aka         string
	Gender      string
	DOB         string
	POB         string
	Nationality string
	Status      string
	PrimaryRole string
	SubCategory string
	IsVerified  string
	Summary     string
	Sections    string
	SortOrder   string
}

// CoreProfile is the schema definition for core.profile
var CoreProfile = CoreProfileTable{
	Table:       "core.profile",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Aka:         "aka",
	Gender:      "gender",
	DOB:         "dob",
	POB:         "pob",
	Nationality: "nationality",
	Status:      "status",
	PrimaryRole: "primaryrole",
	SubCategory: "subcategory",
	IsVerified:  "isverified",
	Summary:     "summary",
	Sections:    "sections",
	SortOrder:   "sortorder",
}

func (t CoreProfileTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Aka, t.Gender, t.DOB, t.POB, t.Nationality,
		t.Status, t.PrimaryRole, t.SubCategory, t.IsVerified, t.Summary, t.Sections, t.SortOrder,
	}
}
