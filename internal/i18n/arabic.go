// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

var arabic = Bundle{
	AppTitle:     "الصومال تاج",
	KnowledgeHub: "مركز المعرفة",
	Nav: Nav{
		Profiles:   "ملفات",
		Categories: "فئات",
		Tags:       "وسوم",
		API:        "واجهة برمجة",
	},
	Hero: Hero{
		Kicker:             "أمة • بيانات • تواصل",
		TitleStart:         "الصومال تاج هو ",
		TitleHighlight:     "ويكيبيديا + ويكي داتا",
		TitleEnd:           " للصومال.",
		Subtitle:           "ربط الملفات الشخصية والفئات والوسوم لإنشاء رسم بياني معرفي موثوق للباحثين والجمهور.",
		SearchBtn:          "🔍 بحث في الملفات",
		APIBtn:             "⚙ عرض الـ API",
		StatProfiles:       "ملفات شخصية",
		StatProfilesDesc:   "سياسة • أعمال • ثقافة",
		StatCategories:     "فئات",
		StatCategoriesDesc: "رسم بياني شجري",
		StatTags:           "وسوم",
		StatTagsDesc:       "عقد بيانات مترابطة",
		APIStatus:          "حالة النظام",
		APIReady:           "جاهز",
		APIPath:            "/api/profiles/v1",
	},
	Profiles: Profiles{
		Title:             "دليل الملفات الشخصية",
		Subtitle:          "بحث وتصفية الشخصيات العامة الصومالية.",
		SearchPlaceholder: "ابحث بالاسم، الدور، أو الوسم...",
		AllRoles:          "جميع الأدوار",
		AllStatus:         "جميع الحالات",
		Alive:             "على قيد الحياة",
		Deceased:          "متوفى",
		Showing:           "إظهار",
		Of:                "من",
		Items:             "ملفات",
		Prev:              "السابق",
		Next:              "التالي",
		NoResults:         "لم يتم العثور على ملفات مطابقة لبحثك.",
		TableHeaders: TableHeaders{
			Name:        "الاسم",
			Role:        "الدور",
			SubCategory: "الفئة الفرعية",
			Tags:        "الوسوم",
			Status:      "الحالة",
		},
	},
	Categories: Categories{
		Title:     "فئات المعرفة",
		Subtitle:  "تصفح الملفات حسب المجال الرئيسي. هذا الهيكل يدعم التسلسل الهرمي.",
		NoteTitle: "ملاحظة فنية:",
		NoteBody:  "الخلفية تدعم `parent_id` للفئات الفرعية المتداخلة. مثال: السياسة ← السلطة التنفيذية ← الوزراء.",
	},
	Tags: Tags{
		Title:    "سحابة الوسوم",
		Subtitle: "استكشف عقد البيانات المتصلة عبر المناطق والأحداث والمنظمات.",
	},
	API: API{
		Title:           "وثائق API والمخطط",
		Subtitle:        "تم تصميم SomaliTag كمزود بيانات مستقل. يمكن لأي واجهة أمامية استهلاك هذه البيانات عبر نقاط نهاية REST أو GraphQL.",
		CoreSchema:      "المخطط الأساسي",
		Endpoints:       "نقاط النهاية",
		EndpointList:    "قائمة مع ترقيم الصفحات",
		EndpointDetails: "تفاصيل كاملة + علاقات",
		EndpointSearch:  "بحث شامل",
	},
	Modal: Modal{
		Aka:       "معروف بـ",
		Role:      "الدور",
		Born:      "تاريخ الميلاد",
		Place:     "المكان",
		Status:    "الحالة",
		Tags:      "الوسوم",
		Relations: "العلاقات",
		Summary:   "ملخص",
		Media:     "معرض الوسائط",
		Close:     "إغلاق",
	},
	Footer: "SomaliTag. مبادرة المعرفة المفتوحة.",
}
