// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

var somali = Bundle{
	AppTitle:     "SOMALITAG",
	KnowledgeHub: "Xarunta Aqoonta",
	Nav: Nav{
		Profiles:   "profiles",
		Categories: "qeybaha",
		Tags:       "tags",
		API:        "api",
	},
	Hero: Hero{
		Kicker:             "Qaramo • Xog • Xiriir",
		TitleStart:         "SomaliTag waa ",
		TitleHighlight:     "Wikipedia + WikiData",
		TitleEnd:           " ee Soomaaliya.",
		Subtitle:           "Isku xirka Profiles, Categories, iyo Tags si loo abuuro shabakad xogeed oo la isku halleyn karo oo ay adeegsadaan cilmi-baarayaasha iyo bulshada.",
		SearchBtn:          "🔍 Raadi Profile",
		APIBtn:             "⚙ Eeg API",
		StatProfiles:       "Profiles",
		StatProfilesDesc:   "Siyaasad • Ganacsi • Dhaqan",
		StatCategories:     "Qeybaha",
		StatCategoriesDesc: "Qaab Dhismeed Geed",
		StatTags:           "Tags",
		StatTagsDesc:       "Xog Xiriirsan",
		APIStatus:          "Xaaladda API",
		APIReady:           "Diyaar",
		APIPath:            "/api/profiles/v1",
	},
	Profiles: Profiles{
		Title:             "Diiwaanka Profiles-ka",
		Subtitle:          "Raadi oo shaandhee shaqsiyaadka caanka ah ee Soomaalida.",
		SearchPlaceholder: "Ku raadi magac, xil, ama tag...",
		AllRoles:          "Dhamaan Xilalka",
		AllStatus:         "Dhamaan Xaaladaha",
		Alive:             "Nool",
		Deceased:          "Geeriyooday",
		Showing:           "Wuxuu muujinayaa",
		Of:                "oo ka mid ah",
		Items:             "profiles",
		Prev:              "Hore",
		Next:              "Dambe",
		NoResults:         "Lama helin profile u dhigma raadintaada.",
		TableHeaders: TableHeaders{
			Name:        "Magaca",
			Role:        "Doorka",
			SubCategory: "Qeyb-hoosaad",
			Tags:        "Tags",
			Status:      "Xaaladda",
		},
	},
	Categories: Categories{
		Title:     "Qeybaha Aqoonta",
		Subtitle:  "Baadh profiles-ka iyadoo loo eegayo qeybta ay khuseeyaan.",
		NoteTitle: "Fiiro Gaar ah:",
		NoteBody:  "Backend-ka wuxuu taageeraa `parent_id` si loo sameeyo qeybo-hoosaadyo. Tusaale: Siyaasadda → Laanta Fulinta → Wasiirrada.",
	},
	Tags: Tags{
		Title:    "Daruurta Tag-yada",
		Subtitle: "Baadh xogta isku xiran ee gobollada, dhacdooyinka, iyo ururrada.",
	},
	API: API{
		Title:           "Dukumentiga API & Qaab-dhismeedka",
		Subtitle:        "SomaliTag waxaa loo qaabeeyey inay noqoto xog-bixiye (headless data provider). Frontend kasta wuxuu xogtan ku heli karaa REST ama GraphQL.",
		CoreSchema:      "Qaab-dhismeedka Muhiimka ah",
		Endpoints:       "Jidadka (Endpoints)",
		EndpointList:    "Liiska oo bogag leh",
		EndpointDetails: "Faahfaahin buuxda + xiriirrada",
		EndpointSearch:  "Raadinta guud",
	},
	Modal: Modal{
		Aka:       "AKA",
		Role:      "Doorka",
		Born:      "Dhashay",
		Place:     "Goobta",
		Status:    "Xaaladda",
		Tags:      "Tags",
		Relations: "Xiriirrada",
		Summary:   "Guudmar",
		Media:     "Keydka Sawirrada",
		Close:     "Xir",
	},
	Footer: "SomaliTag. Hindisaha Aqoonta Furan.",
}
