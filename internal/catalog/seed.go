// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// Shipped returns the dataset bundled with the binary.
//
// A fresh copy is built on every call.
func Shipped() Dataset {
	return Dataset{
		Profiles:   shippedProfiles(),
		Categories: shippedCategories(),
		Tags:       shippedTags(),
	}
}

func shippedCategories() []Category {
	names := []string{
		"Politics",
		"Governance",
		"Business",
		"Culture & Arts",
		"Religion",
		"Security & Military",
		"Civil Society",
		"Sports",
		"Science & Technology",
		"History & Legacy People",
	}

	categories := make([]Category, len(names))
	for i, name := range names {
		categories[i] = Category{ID: i + 1, Name: name}
	}
	return categories
}

func shippedTags() []Tag {
	names := []string{
		"Mogadishu",
		"Galkacyo",
		"Hargeisa",
		"Kismayo",
		"Baidoa",
		"Borama",
		"Federal Parliament",
		"2026 Elections",
		"Youth Empowerment",
		"Entrepreneur",
		"Islamic Scholar",
		"President",
		"Tech Startup",
		"Healthcare",
		"Education",
		"Poetry",
		"Diaspora",
	}

	tags := make([]Tag, len(names))
	for i, name := range names {
		tags[i] = Tag{ID: i + 1, Name: name}
	}
	return tags
}

func shippedProfiles() []Profile {
	return []Profile{
		{
			ID:          1,
			Name:        "Mohamed Abdullahi Farmaajo",
			IsVerified:  true,
			Aka:         "Farmaajo",
			Gender:      "Male",
			DOB:         "1962-05-11",
			POB:         "Mogadishu, Somalia",
			Nationality: "Somali",
			Status:      StatusAlive,
			PrimaryRole: "Politics",
			SubCategory: "President of Somalia",
			Tags:        []string{"Mogadishu", "Federal Government", "President", "Hawiye?"},
			Summary:     "Mohamed Abdullahi Mohamed 'Farmaajo' is a Somali politician who served as the President of Somalia.",
			Sections: Sections{
				{SectionEarlyLife, "Ku dhashay Muqdisho, wuxuuna ku koray deegaan magaalada caasimadda ah..."},
				{SectionEducation, "Waxbarashadiisa sare waxa uu ka qaatay jaamacado ku yaalla gudaha iyo dibadda..."},
				{SectionCareer, "Shaqooyin badan ayuu ka soo qabtay safaarado, hay'ado caalami ah, iyo xukuumado kala duwan..."},
				{SectionAchievements, "Waxa lagu xusuustaa tallaabooyin la xiriira dagaalka lagula jiro kooxaha hubeysan iyo nidaaminta maaliyadda..."},
				{SectionControversies, "Waxaa jiray eedeymo siyaasadeed oo ku saabsan muddo-kordhin iyo xiisado doorasho..."},
				{SectionPublicInfluence, "Saameyn weyn ayuu ku yeeshay doodaha siyaasadeed ee Soomaaliya muddadii uu xilka hayay..."},
			},
			Media: []Media{
				{Type: "photo", URL: "https://picsum.photos/400/300?random=1", Caption: "Sawir rasmi ah oo xafiiska madaxweynaha."},
			},
			Relations: []Relation{
				{Name: "Hassan Sheikh Mohamud", RelationType: "Predecessor / Successor"},
				{Name: "Cabinet of Somalia", RelationType: "Worked With"},
			},
		},
		{
			ID:          2,
			Name:        "Asha Ahmed",
			IsVerified:  true,
			Aka:         "Asha A.",
			Gender:      "Female",
			DOB:         "1984-03-09",
			POB:         "Hargeisa, Somalia",
			Nationality: "Somali",
			Status:      StatusAlive,
			PrimaryRole: "Business",
			SubCategory: "Entrepreneur",
			Tags:        []string{"Entrepreneur", "Women Leadership", "Mogadishu", "Tech Startup"},
			Summary:     "Asha Ahmed is a Somali entrepreneur known for founding a technology startup supporting youth employment.",
			Sections: Sections{
				{SectionEarlyLife, "Waxay ku dhalatay Hargeysa, iyadoo ku barbaartay deegaan ganacsi iyo dhaqan shaqo-jecel..."},
				{SectionEducation, "Waxay baratay maaraynta ganacsiga iyo teknoolojiyadda macluumaadka..."},
				{SectionCareer, "Waxay aasaastay shirkad dijitaal ah oo shaqo-abuur u sameysa dhalinyarada..."},
				{SectionAchievements, "Waxaa lagu abaal-mariyay billado caalami ah oo la xiriira hal-abuurnimada ganacsiga..."},
				{SectionPublicInfluence, "Waxay dhiirri-gelisaa gabdhaha Soomaaliyeed ee rabta in ay ganacsi bilaabaan."},
			},
			Media: []Media{
				{Type: "photo", URL: "https://picsum.photos/400/300?random=2", Caption: "Sawir xaflad abaal-marin ganacsi ah."},
			},
			Relations: []Relation{
				{Name: "Somali Business Council", RelationType: "Member"},
				{Name: "Youth Innovation Hub", RelationType: "Founder"},
			},
		},
		{
			ID:          3,
			Name:        "Sheikh Abdullahi Hassan",
			Aka:         "Sh. Abdullahi",
			Gender:      "Male",
			DOB:         "1955-01-02",
			POB:         "Galkacyo, Somalia",
			Nationality: "Somali",
			Status:      StatusDeceased,
			PrimaryRole: "Religion",
			SubCategory: "Islamic Scholar",
			Tags:        []string{"Islamic Scholar", "Quran Teacher", "Galkacyo"},
			Summary:     "Sheikh Abdullahi Hassan was a respected Somali Islamic scholar and Quran teacher.",
			Sections: Sections{
				{SectionEarlyLife, "Waxa uu ku dhashay Galkacyo, isagoo yaraantiisii baran jiray Qur'aanka Kariimka..."},
				{SectionEducation, "Waxa uu waxbarasho diini ah ku soo qaatay xarumo cilmiga shareecada ah..."},
				{SectionCareer, "Sanado badan ayuu ka shaqeeyay mac-hadyada diinta iyo xarumaha Qur'aanka..."},
				{SectionAchievements, "Boqolaal arday ayuu Qur'aan iyo fiqi ku baray gudaha iyo dibadda..."},
				{SectionPublicInfluence, "Wuxuu caan ku ahaa fatwooyin dhexdhexaad ah iyo wacyigelin nabadeed."},
			},
			Media: []Media{},
			Relations: []Relation{
				{Name: "Local Mosques Network", RelationType: "Teacher"},
			},
		},
		{
			ID:          4,
			Name:        "Dr. Ali Jibril",
			Aka:         "Dr. Ali",
			Gender:      "Male",
			DOB:         "1970-11-21",
			POB:         "Borama, Somalia",
			Nationality: "Somali",
			Status:      StatusAlive,
			PrimaryRole: "Science & Technology",
			SubCategory: "Medical Doctor",
			Tags:        []string{"Healthcare", "Borama", "Public Health", "University Professor"},
			Summary:     "Dr. Ali Jibril is a leading public health expert and professor at Amoud University.",
			Sections: Sections{
				{SectionEarlyLife, "Born in Borama, he showed early aptitude for sciences."},
				{SectionEducation, "Studied Medicine in Italy and Public Health in the UK."},
				{SectionCareer, "Returned to Somalia to help establish medical faculties."},
				{SectionAchievements, "Published over 20 papers on tropical diseases in the Horn of Africa."},
			},
			Media: []Media{
				{Type: "photo", URL: "https://picsum.photos/400/300?random=3", Caption: "Dr. Ali at a conference."},
			},
			Relations: []Relation{
				{Name: "Amoud University", RelationType: "Professor"},
				{Name: "Ministry of Health", RelationType: "Advisor"},
			},
		},
		{
			ID:          5,
			Name:        "Fartun Abdi",
			Aka:         "Fartun",
			Gender:      "Female",
			DOB:         "1990-06-15",
			POB:         "Kismayo, Somalia",
			Nationality: "Somali",
			Status:      StatusAlive,
			PrimaryRole: "Sports",
			SubCategory: "Athlete",
			Tags:        []string{"Kismayo", "Athletics", "Olympics", "Youth Role Model"},
			Summary:     "Fartun Abdi is a professional sprinter who has represented Somalia in international competitions.",
			Sections: Sections{
				{SectionEarlyLife, "Started running in local competitions in Kismayo."},
				{SectionCareer, "Trained in difficult conditions to reach national level."},
				{SectionAchievements, "Won regional medals and participated in the Olympics."},
			},
			Media:     []Media{},
			Relations: []Relation{},
		},
		{
			ID:          6,
			Name:        "Abdi Warsame",
			IsVerified:  true,
			Aka:         "Warsame",
			Gender:      "Male",
			DOB:         "1950-01-01",
			POB:         "Baidoa, Somalia",
			Nationality: "Somali",
			Status:      StatusDeceased,
			PrimaryRole: "Culture & Arts",
			SubCategory: "Poet",
			Tags:        []string{"Poetry", "Literature", "Baidoa", "Cultural Heritage"},
			Summary:     "Abdi Warsame was a renowned poet known for his patriotic verses.",
			Sections: Sections{
				{SectionEarlyLife, "Grew up in a family of orators."},
				{SectionCareer, "Composed poems that were broadcast nationwide."},
				{SectionPublicInfluence, "His poems are still taught in schools."},
			},
			Media: []Media{
				{Type: "photo", URL: "https://picsum.photos/400/300?random=4", Caption: "Abdi reciting a poem in 1980."},
			},
			Relations: []Relation{},
		},
	}
}
