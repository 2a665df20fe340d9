// Package vitals - vital sign input parsing
package vitals

import (
	"strconv"
	"strings"

	"github.com/alwitt/carelog/models"
)

// Field one of the five vital sign input fields
type Field string

const (
	// FieldBodyTemperature body temperature input field
	FieldBodyTemperature Field = "bodyTemperature"
	// FieldSystolicBP systolic blood pressure input field
	FieldSystolicBP Field = "systolicBP"
	// FieldDiastolicBP diastolic blood pressure input field
	FieldDiastolicBP Field = "diastolicBP"
	// FieldPulseRate pulse rate input field
	FieldPulseRate Field = "pulseRate"
	// FieldOxygenSaturation oxygen saturation input field
	FieldOxygenSaturation Field = "oxygenSaturation"
)

// fieldLabels per-field display labels. Only Japanese and English are supported.
var fieldLabels = map[Field]struct{ ja, en string }{
	FieldBodyTemperature:  {ja: "体温", en: "Body Temperature"},
	FieldSystolicBP:       {ja: "収縮期血圧", en: "Systolic BP"},
	FieldDiastolicBP:      {ja: "拡張期血圧", en: "Diastolic BP"},
	FieldPulseRate:        {ja: "脈拍", en: "Pulse Rate"},
	FieldOxygenSaturation: {ja: "SpO₂", en: "Oxygen Saturation"},
}

// LocalizedLabel display label of the field for a locale
func (f Field) LocalizedLabel(locale string) string {
	labels, ok := fieldLabels[f]
	if !ok {
		return string(f)
	}
	if models.LocaleIsJapanese(locale) {
		return labels.ja
	}
	return labels.en
}

// RawFields the raw text of the five vital sign input fields
type RawFields struct {
	BodyTemperature  string
	SystolicBP       string
	DiastolicBP      string
	PulseRate        string
	OxygenSaturation string
}

// ParseResult outcome of parsing the vital sign input fields
type ParseResult struct {
	// Values the successfully parsed values. A field that was blank or
	// invalid carries no value.
	Values models.VitalSigns
	// InvalidFields every field whose non-blank input failed to parse
	InvalidFields []Field
}

// HasInvalidInput whether any field failed to parse
func (r ParseResult) HasInvalidInput() bool {
	return len(r.InvalidFields) > 0
}

/*
InvalidInputMessage build the combined user-facing message naming every
invalid field

	@param locale string - BCP-47 locale tag
	@return localized message listing all invalid fields
*/
func (r ParseResult) InvalidInputMessage(locale string) string {
	labels := make([]string, 0, len(r.InvalidFields))
	for _, field := range r.InvalidFields {
		labels = append(labels, field.LocalizedLabel(locale))
	}
	prefix := "Invalid input"
	if models.LocaleIsJapanese(locale) {
		prefix = "入力が不正です"
	}
	return prefix + ": " + strings.Join(labels, ", ")
}

/*
Parse validate and parse the raw vital sign input fields.

Each field is first normalized; a blank field parses to no value and is never
flagged invalid. Body temperature accepts both "." and "," as the decimal
separator. Numeric values are not range checked. All failures are collected in
one pass.

	@param raw RawFields - the raw field text
	@return parse result with every invalid field reported
*/
func Parse(raw RawFields) ParseResult {
	result := ParseResult{}

	result.Values.BodyTemperature = parseOptionalFloat(
		raw.BodyTemperature, FieldBodyTemperature, &result.InvalidFields,
	)
	result.Values.SystolicBP = parseOptionalInt(
		raw.SystolicBP, FieldSystolicBP, &result.InvalidFields,
	)
	result.Values.DiastolicBP = parseOptionalInt(
		raw.DiastolicBP, FieldDiastolicBP, &result.InvalidFields,
	)
	result.Values.PulseRate = parseOptionalInt(
		raw.PulseRate, FieldPulseRate, &result.InvalidFields,
	)
	result.Values.OxygenSaturation = parseOptionalInt(
		raw.OxygenSaturation, FieldOxygenSaturation, &result.InvalidFields,
	)

	return result
}

func parseOptionalInt(text string, field Field, invalid *[]Field) *int {
	normalized := models.NormalizeText(&text)
	if normalized == nil {
		return nil
	}
	value, err := strconv.Atoi(*normalized)
	if err != nil {
		*invalid = append(*invalid, field)
		return nil
	}
	return &value
}

func parseOptionalFloat(text string, field Field, invalid *[]Field) *float64 {
	normalized := models.NormalizeText(&text)
	if normalized == nil {
		return nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(*normalized, ",", "."), 64)
	if err != nil {
		*invalid = append(*invalid, field)
		return nil
	}
	return &value
}
