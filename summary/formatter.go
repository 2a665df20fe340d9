// Package summary - daily summary report generation
package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alwitt/carelog/models"
)

// headingSet the localized section headings of the daily summary
type headingSet struct {
	title      string
	dateLayout string
	timeline   string
	counts     string
	memos      string
	vitals     string
	none       string
}

var japaneseHeadings = headingSet{
	title:      "日次サマリー",
	dateLayout: "2006/01/02",
	timeline:   "タイムライン",
	counts:     "カテゴリ別件数",
	memos:      "メモ一覧",
	vitals:     "バイタル推移",
	none:       "なし",
}

var englishHeadings = headingSet{
	title:      "Daily Summary",
	dateLayout: "2006-01-02",
	timeline:   "Timeline",
	counts:     "Category Counts",
	memos:      "Free Memos",
	vitals:     "Vital Trends",
	none:       "None",
}

/*
Format render the shareable daily summary text for one day of care records.

Pure and deterministic. Records are re-sorted by timestamp, so the input order
does not matter. Display times use the local time zone of each record
timestamp as seen by the process, not UTC.

	@param records []models.CareRecord - the day's records, any order
	@param date time.Time - the day being summarized
	@param locale string - BCP-47 locale tag; Japanese selects the Japanese
	    labels, everything else the English ones
	@param includeVitalTrend bool - append the vital trend section and use the
	    detailed category list for the counts
	@return the rendered report
*/
func Format(
	records []models.CareRecord, date time.Time, locale string, includeVitalTrend bool,
) string {
	isJapanese := models.LocaleIsJapanese(locale)
	headings := englishHeadings
	if isJapanese {
		headings = japaneseHeadings
	}

	sorted := make([]models.CareRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	lines := []string{
		fmt.Sprintf("%s (%s)", headings.title, date.Local().Format(headings.dateLayout)),
		"",
		headings.timeline,
	}
	lines = append(lines, timelineLines(sorted, locale)...)
	lines = append(lines, "", headings.counts)
	lines = append(lines, countsLines(sorted, locale, includeVitalTrend)...)
	lines = append(lines, "", headings.memos)
	lines = append(lines, memoLines(sorted, headings)...)
	if includeVitalTrend {
		lines = append(lines, "", headings.vitals)
		lines = append(lines, vitalTrendLines(sorted, isJapanese, headings)...)
	}

	return strings.Join(lines, "\n")
}

// timelineLines one line per record, chronological
func timelineLines(records []models.CareRecord, locale string) []string {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		line := fmt.Sprintf(
			"- %s %s",
			record.Timestamp.Local().Format("15:04"),
			record.Category.LocalizedLabel(locale),
		)
		if detail := recordDetail(record); detail != "" {
			line += ": " + detail
		}
		lines = append(lines, line)
	}
	return lines
}

// recordDetail the first non-empty of transcript and free memo
func recordDetail(record models.CareRecord) string {
	if text := models.NormalizeText(record.TranscriptText); text != nil {
		return *text
	}
	if text := models.NormalizeText(record.FreeMemoText); text != nil {
		return *text
	}
	return ""
}

// countsLines one line per category in the fixed category ordering, zero
// counts included
func countsLines(records []models.CareRecord, locale string, detailed bool) []string {
	categories := models.SimpleCategories
	if detailed {
		categories = models.DetailedCategories
	}

	counts := map[models.CareCategory]int{}
	for _, record := range records {
		counts[record.Category]++
	}

	lines := make([]string, 0, len(categories))
	for _, category := range categories {
		lines = append(lines, fmt.Sprintf(
			"- %s: %d", category.LocalizedLabel(locale), counts[category],
		))
	}
	return lines
}

// memoLines one line per non-empty free memo, or the placeholder
func memoLines(records []models.CareRecord, headings headingSet) []string {
	lines := []string{}
	for _, record := range records {
		if text := models.NormalizeText(record.FreeMemoText); text != nil {
			lines = append(lines, "- "+*text)
		}
	}
	if len(lines) == 0 {
		return []string{"- " + headings.none}
	}
	return lines
}

// vitalTrendLines one line per record carrying at least one vital measurement,
// or the placeholder
func vitalTrendLines(
	records []models.CareRecord, isJapanese bool, headings headingSet,
) []string {
	lines := []string{}
	for _, record := range records {
		measurements := formattedMeasurements(record.Vitals(), isJapanese)
		if len(measurements) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"- %s %s",
			record.Timestamp.Local().Format("15:04"),
			strings.Join(measurements, ", "),
		))
	}
	if len(lines) == 0 {
		return []string{"- " + headings.none}
	}
	return lines
}

// formattedMeasurements the record's vital measurements in fixed field order.
// Blood pressure renders only when both readings are present.
func formattedMeasurements(v models.VitalSigns, isJapanese bool) []string {
	label := func(ja, en string) string {
		if isJapanese {
			return ja
		}
		return en
	}

	items := []string{}
	if v.BodyTemperature != nil {
		items = append(items, fmt.Sprintf("%s %.1f", label("体温", "Temp"), *v.BodyTemperature))
	}
	if v.SystolicBP != nil && v.DiastolicBP != nil {
		items = append(items, fmt.Sprintf(
			"%s %d/%d", label("血圧", "BP"), *v.SystolicBP, *v.DiastolicBP,
		))
	}
	if v.PulseRate != nil {
		items = append(items, fmt.Sprintf("%s %d", label("脈拍", "Pulse"), *v.PulseRate))
	}
	if v.OxygenSaturation != nil {
		items = append(items, fmt.Sprintf(
			"%s %d%%", label("SpO₂", "SpO2"), *v.OxygenSaturation,
		))
	}
	return items
}
