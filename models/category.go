package models

import "golang.org/x/text/language"

// CareCategory care note category ENUM
type CareCategory string

const (
	// CareCategoryMedication medication intake
	CareCategoryMedication CareCategory = "medication"
	// CareCategoryMeal meal / food intake
	CareCategoryMeal CareCategory = "meal"
	// CareCategoryToileting toileting assistance
	CareCategoryToileting CareCategory = "toileting"
	// CareCategoryMedicalVisit doctor or hospital visit
	CareCategoryMedicalVisit CareCategory = "medicalVisit"
	// CareCategoryBathing bathing assistance
	CareCategoryBathing CareCategory = "bathing"
	// CareCategoryVitalSigns vital sign measurement
	CareCategoryVitalSigns CareCategory = "vitalSigns"
	// CareCategoryExercise exercise / rehabilitation
	CareCategoryExercise CareCategory = "exercise"
	// CareCategoryFreeMemo free-form memo
	CareCategoryFreeMemo CareCategory = "freeMemo"
)

// SimpleCategories the category subset shown in simple mode. Ordering is fixed.
var SimpleCategories = []CareCategory{
	CareCategoryMedication,
	CareCategoryMeal,
	CareCategoryToileting,
	CareCategoryMedicalVisit,
	CareCategoryFreeMemo,
}

// DetailedCategories all categories, in display order. Ordering is fixed.
var DetailedCategories = []CareCategory{
	CareCategoryMedication,
	CareCategoryMeal,
	CareCategoryToileting,
	CareCategoryMedicalVisit,
	CareCategoryBathing,
	CareCategoryVitalSigns,
	CareCategoryExercise,
	CareCategoryFreeMemo,
}

// categoryLabels per-category display labels. Only Japanese and English are supported.
var categoryLabels = map[CareCategory]struct{ ja, en string }{
	CareCategoryMedication:   {ja: "服薬", en: "Medication"},
	CareCategoryMeal:         {ja: "食事", en: "Meal"},
	CareCategoryToileting:    {ja: "排泄", en: "Toileting"},
	CareCategoryMedicalVisit: {ja: "通院", en: "Medical Visit"},
	CareCategoryBathing:      {ja: "入浴", en: "Bath"},
	CareCategoryVitalSigns:   {ja: "バイタル", en: "Vitals"},
	CareCategoryExercise:     {ja: "運動", en: "Exercise"},
	CareCategoryFreeMemo:     {ja: "自由メモ", en: "Free Memo"},
}

/*
LocaleIsJapanese check whether a BCP-47 locale tag resolves to Japanese

	@param locale string - BCP-47 locale tag (e.g. "ja", "ja-JP", "en-US")
	@return whether the base language of the tag is Japanese
*/
func LocaleIsJapanese(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base.String() == language.Japanese.String()
}

/*
LocalizedLabel display label of the category for a locale

	@param locale string - BCP-47 locale tag
	@return the Japanese label when the locale is Japanese, the English label otherwise
*/
func (c CareCategory) LocalizedLabel(locale string) string {
	labels, ok := categoryLabels[c]
	if !ok {
		return string(c)
	}
	if LocaleIsJapanese(locale) {
		return labels.ja
	}
	return labels.en
}

/*
ParseCareCategory convert a persisted category value back into a CareCategory.

Unrecognized values fall back to `freeMemo` so old builds can read records
written by newer builds with additional categories.

	@param raw string - persisted category value
	@return matching category, or `freeMemo`
*/
func ParseCareCategory(raw string) CareCategory {
	for _, category := range DetailedCategories {
		if string(category) == raw {
			return category
		}
	}
	return CareCategoryFreeMemo
}
