// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

var english = Bundle{
	AppTitle:     "SOMALITAG",
	KnowledgeHub: "Knowledge Hub",
	Nav: Nav{
		Profiles:   "profiles",
		Categories: "categories",
		Tags:       "tags",
		API:        "api",
	},
	Hero: Hero{
		Kicker:             "Nation • Data • Connect",
		TitleStart:         "SomaliTag is the ",
		TitleHighlight:     "Wikipedia + WikiData",
		TitleEnd:           " for Somalia.",
		Subtitle:           "Connecting Profiles, Categories, and Tags to create a trusted, linked data knowledge graph for researchers and the public.",
		SearchBtn:          "🔍 Search Profiles",
		APIBtn:             "⚙ View API",
		StatProfiles:       "Profiles",
		StatProfilesDesc:   "Politics • Business • Culture",
		StatCategories:     "Categories",
		StatCategoriesDesc: "Tree-based Graph",
		StatTags:           "Tags",
		StatTagsDesc:       "Linked Data Nodes",
		APIStatus:          "API Status",
		APIReady:           "Ready",
		APIPath:            "/api/profiles/v1",
	},
	Profiles: Profiles{
		Title:             "Profiles Directory",
		Subtitle:          "Search and filter Somali public figures.",
		SearchPlaceholder: "Search by name, role, or tag...",
		AllRoles:          "All Roles",
		AllStatus:         "All Status",
		Alive:             "Alive",
		Deceased:          "Deceased",
		Showing:           "Showing",
		Of:                "of",
		Items:             "profiles",
		Prev:              "Previous",
		Next:              "Next",
		NoResults:         "No profiles found matching your criteria.",
		TableHeaders: TableHeaders{
			Name:        "Name",
			Role:        "Role",
			SubCategory: "Sub-Category",
			Tags:        "Tags",
			Status:      "Status",
		},
	},
	Categories: Categories{
		Title:     "Knowledge Categories",
		Subtitle:  "Browse profiles by their primary domain. This structure supports a hierarchical tree.",
		NoteTitle: "Technical Note:",
		NoteBody:  "The backend supports `parent_id` for nested sub-categories. E.g., Politics → Executive Branch → Ministers.",
	},
	Tags: Tags{
		Title:    "Tag Cloud",
		Subtitle: "Explore connected data nodes across regions, events, and organizations.",
	},
	API: API{
		Title:           "API Documentation & Schema",
		Subtitle:        "SomaliTag is designed as a headless data provider. Any frontend can consume this data via REST or GraphQL endpoints.",
		CoreSchema:      "Core Schema",
		Endpoints:       "Endpoints",
		EndpointList:    "List with pagination",
		EndpointDetails: "Full details + relations",
		EndpointSearch:  "Global search",
	},
	Modal: Modal{
		Aka:       "AKA",
		Role:      "Role",
		Born:      "Born",
		Place:     "Place",
		Status:    "Status",
		Tags:      "Tags",
		Relations: "Relations",
		Summary:   "Summary",
		Media:     "Media Gallery",
		Close:     "Close",
	},
	Footer: "SomaliTag. Open Knowledge Initiative.",
}
