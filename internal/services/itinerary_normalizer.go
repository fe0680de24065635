package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/models/response_models"
)

// Defaults substituted whenever the generator omits a field.
const (
	defaultMorningTime       = "9:00 AM - 12:00 PM"
	defaultAfternoonTime     = "1:00 PM - 6:00 PM"
	defaultMorningActivity   = "Morning activities"
	defaultAfternoonActivity = "Afternoon activities"
	defaultRainPlan          = "Indoor alternatives"
	defaultDestination       = "Custom Destination"
	defaultAccommodation     = "Mid-range accommodations as per budget"
)

// NormalizeItinerary turns whatever the generation model returned into the
// canonical itinerary. It recognizes a handful of JSON shapes the model tends
// to produce, tried in a fixed order, and falls back to a single placeholder
// day when nothing matches (including non-JSON responses). It never fails and
// is safe to call concurrently.
func NormalizeItinerary(req request_models.TripPlannerRequest, rawText string) response_models.Itinerary {
	payload := parsePayload(rawText)

	destination := defaultDestination
	var days []response_models.ItineraryDay

	if payload != nil {
		for _, match := range dialectMatchers {
			plan, ok := match(payload)
			if !ok {
				continue
			}
			if plan.destination != "" {
				destination = plan.destination
			}
			for i, rec := range plan.days {
				days = append(days, buildDay(i+1, destination, rec, req.Budget))
			}
			break
		}
	}

	// A matched shape with zero day entries gets the same placeholder as an
	// unrecognized one; the extracted destination still names the itinerary.
	if len(days) == 0 {
		days = []response_models.ItineraryDay{fallbackDay(req.Budget)}
	}

	return response_models.Itinerary{
		ID:                    uuid.New().String(),
		Title:                 fmt.Sprintf("%s %s Itinerary", req.TripLength, destination),
		Days:                  days,
		AccommodationStrategy: accommodationStrategy(payload),
		BudgetBreakdown:       resolveBudgetBreakdown(payload, req.Budget),
		Timestamp:             time.Now().UTC().Format(time.RFC3339),
	}
}

// dayRecord is the dialect-independent view of one extracted day. Empty
// fields mean the dialect did not carry them; defaulting happens in buildDay.
type dayRecord struct {
	morningTime       string
	morningActivity   string
	afternoonTime     string
	afternoonActivity string
	highlights        []string
	rainPlan          string
}

type extractedPlan struct {
	destination string
	days        []dayRecord
}

// dialectMatcher inspects the parsed payload and either claims it, returning
// the extracted plan, or passes so the next matcher can try.
type dialectMatcher func(payload *jsonObject) (*extractedPlan, bool)

// Checked in this exact order; the first claim wins.
var dialectMatchers = []dialectMatcher{
	matchTitledDayKeys,
	matchItineraryObject,
	matchItineraryArray,
	matchItineraryBreakdown,
}

// Dialect 1: {"Destination": "...", "Day1": {"Morning": {...}, "Afternoon": {...}}, "Day2": ...}
type titledDay struct {
	Morning   *titledBlock `json:"Morning"`
	Afternoon *titledBlock `json:"Afternoon"`
}

type titledBlock struct {
	Activity       string `json:"Activity"`
	Details        string `json:"Details"`
	Time           string `json:"Time"`
	RainBackupPlan string `json:"RainBackupPlan"`
}

func matchTitledDayKeys(payload *jsonObject) (*extractedPlan, bool) {
	dest := payload.str("Destination")
	if dest == "" {
		return nil, false
	}
	if !payload.truthy("Day1") && !payload.truthy("day1") {
		return nil, false
	}

	plan := &extractedPlan{destination: dest}
	for _, key := range payload.keys {
		if !strings.HasPrefix(key, "Day") && !strings.HasPrefix(key, "day") {
			continue
		}
		var day titledDay
		decodeLoose(payload.fields[key], &day)

		var rec dayRecord
		if m := day.Morning; m != nil {
			rec.morningTime = m.Time
			rec.morningActivity = firstNonEmpty(m.Activity, m.Details)
			if m.Activity != "" {
				rec.highlights = append(rec.highlights, m.Activity)
			}
		}
		if a := day.Afternoon; a != nil {
			rec.afternoonTime = a.Time
			rec.afternoonActivity = firstNonEmpty(a.Activity, a.Details)
			if a.Activity != "" {
				rec.highlights = append(rec.highlights, a.Activity)
			}
		}
		rec.rainPlan = firstNonEmpty(blockRainPlan(day.Morning), blockRainPlan(day.Afternoon))
		plan.days = append(plan.days, rec)
	}
	return plan, true
}

func blockRainPlan(b *titledBlock) string {
	if b == nil {
		return ""
	}
	return b.RainBackupPlan
}

// Dialect 2: {"destination": "...", "itinerary": {"day1": {"morning": {...}, "afternoon": {...}}}}
// Dialect 4 reuses the same day shape under itinerary.breakdown.
type camelDay struct {
	Morning   *camelBlock `json:"morning"`
	Afternoon *camelBlock `json:"afternoon"`
}

type camelBlock struct {
	Activity       string `json:"activity"`
	Timing         string `json:"timing"`
	Highlight      string `json:"highlight"`
	RainBackupPlan string `json:"rainBackupPlan"`
}

func matchItineraryObject(payload *jsonObject) (*extractedPlan, bool) {
	itinerary, ok := payload.object("itinerary")
	if !ok {
		return nil, false
	}

	plan := &extractedPlan{destination: payload.str("destination")}
	for _, key := range itinerary.keys {
		plan.days = append(plan.days, camelDayRecord(itinerary.fields[key], true))
	}
	return plan, true
}

// camelDayRecord extracts one morning/afternoon day. The breakdown dialect
// never carries explicit times, so withTiming is false there.
func camelDayRecord(raw json.RawMessage, withTiming bool) dayRecord {
	var day camelDay
	decodeLoose(raw, &day)

	var rec dayRecord
	if m := day.Morning; m != nil {
		if withTiming {
			rec.morningTime = m.Timing
		}
		rec.morningActivity = m.Activity
		if m.Highlight != "" {
			rec.highlights = append(rec.highlights, m.Highlight)
		}
	}
	if a := day.Afternoon; a != nil {
		if withTiming {
			rec.afternoonTime = a.Timing
		}
		rec.afternoonActivity = a.Activity
		if a.Highlight != "" {
			rec.highlights = append(rec.highlights, a.Highlight)
		}
	}
	rec.rainPlan = firstNonEmpty(camelRainPlan(day.Morning), camelRainPlan(day.Afternoon))
	return rec
}

func camelRainPlan(b *camelBlock) string {
	if b == nil {
		return ""
	}
	return b.RainBackupPlan
}

// Dialect 3: {"Destination": "...", "Itinerary": [{"MorningActivity": {...}, "AfternoonActivity": {...}, "Highlights": ...}]}
type arrayDay struct {
	MorningActivity   *arrayBlock `json:"MorningActivity"`
	AfternoonActivity *arrayBlock `json:"AfternoonActivity"`
	Highlights        stringList  `json:"Highlights"`
}

type arrayBlock struct {
	Activity       string `json:"Activity"`
	Time           string `json:"Time"`
	RainBackupPlan string `json:"RainBackupPlan"`
}

func matchItineraryArray(payload *jsonObject) (*extractedPlan, bool) {
	raw, ok := payload.raw("Itinerary")
	if !ok || !isArray(raw) {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	plan := &extractedPlan{destination: payload.str("Destination")}
	for _, item := range items {
		var day arrayDay
		decodeLoose(item, &day)

		var rec dayRecord
		if m := day.MorningActivity; m != nil {
			rec.morningTime = m.Time
			rec.morningActivity = m.Activity
		}
		if a := day.AfternoonActivity; a != nil {
			rec.afternoonTime = a.Time
			rec.afternoonActivity = a.Activity
		}
		for _, h := range day.Highlights {
			if h != "" {
				rec.highlights = append(rec.highlights, h)
			}
		}
		rec.rainPlan = firstNonEmpty(arrayRainPlan(day.MorningActivity), arrayRainPlan(day.AfternoonActivity))
		plan.days = append(plan.days, rec)
	}
	return plan, true
}

func arrayRainPlan(b *arrayBlock) string {
	if b == nil {
		return ""
	}
	return b.RainBackupPlan
}

// Dialect 4: {"itinerary": {"destination": "...", "breakdown": {"day1": {...}}}}
// Only reachable when the itinerary field is not a plain object, since
// dialect 2 claims those first.
func matchItineraryBreakdown(payload *jsonObject) (*extractedPlan, bool) {
	itinerary, ok := payload.object("itinerary")
	if !ok {
		return nil, false
	}
	breakdown, ok := itinerary.object("breakdown")
	if !ok {
		return nil, false
	}

	plan := &extractedPlan{destination: itinerary.str("destination")}
	for _, key := range breakdown.keys {
		plan.days = append(plan.days, camelDayRecord(breakdown.fields[key], false))
	}
	return plan, true
}

func buildDay(n int, destination string, rec dayRecord, budget string) response_models.ItineraryDay {
	highlights := rec.highlights
	if highlights == nil {
		highlights = []string{}
	}
	return response_models.ItineraryDay{
		DayNumber: n,
		Title:     fmt.Sprintf("Day %d - %s", n, destination),
		Location:  destination,
		Morning: response_models.ActivityBlock{
			Time:     firstNonEmpty(rec.morningTime, defaultMorningTime),
			Activity: firstNonEmpty(rec.morningActivity, defaultMorningActivity),
		},
		Afternoon: response_models.ActivityBlock{
			Time:     firstNonEmpty(rec.afternoonTime, defaultAfternoonTime),
			Activity: firstNonEmpty(rec.afternoonActivity, defaultAfternoonActivity),
		},
		Highlights: highlights,
		RainPlan:   firstNonEmpty(rec.rainPlan, defaultRainPlan),
		Budget:     budget,
	}
}

func fallbackDay(budget string) response_models.ItineraryDay {
	return response_models.ItineraryDay{
		DayNumber: 1,
		Title:     "Custom Travel Plan",
		Location:  defaultDestination,
		Morning: response_models.ActivityBlock{
			Time:     defaultMorningTime,
			Activity: "AI-generated morning activities",
		},
		Afternoon: response_models.ActivityBlock{
			Time:     defaultAfternoonTime,
			Activity: "AI-generated afternoon activities",
		},
		Highlights: []string{"Personalized recommendations"},
		RainPlan:   "Weather alternatives included",
		Budget:     budget,
	}
}

// accommodationStrategy checks the dialect-specific first-day accommodation
// fields in priority order. A single default entry covers the rest.
func accommodationStrategy(payload *jsonObject) []string {
	if payload != nil {
		if day1, ok := payload.object("Day1"); ok {
			if v := day1.str("Accommodation"); v != "" {
				return []string{v}
			}
		}
		if itinerary, ok := payload.object("itinerary"); ok {
			if day1, ok := itinerary.object("day1"); ok {
				if v := day1.str("accommodation"); v != "" {
					return []string{v}
				}
			}
			if breakdown, ok := itinerary.object("breakdown"); ok {
				if day1, ok := breakdown.object("day1"); ok {
					if v := day1.str("accommodation"); v != "" {
						return []string{v}
					}
				}
			}
		}
	}
	return []string{defaultAccommodation}
}

// resolveBudgetBreakdown fills each field independently: capitalized payload
// field, then the lowercase/nested variants, then the tier-keyed default.
func resolveBudgetBreakdown(payload *jsonObject, tier string) response_models.BudgetBreakdown {
	defaults := tierDefaults(tier)
	if payload == nil {
		return defaults
	}

	capital, _ := payload.object("Budget")
	estimated, _ := payload.object("totalEstimatedBudget")
	var nested *jsonObject
	if itinerary, ok := payload.object("itinerary"); ok {
		nested, _ = itinerary.object("budgetBreakdown")
	}

	return response_models.BudgetBreakdown{
		Accommodation: firstNonEmpty(objStr(capital, "Accommodation"), objStr(estimated, "accommodation"), objStr(nested, "accommodation"), defaults.Accommodation),
		Meals:         firstNonEmpty(objStr(capital, "Food"), objStr(estimated, "meals"), objStr(nested, "food"), defaults.Meals),
		Attractions:   firstNonEmpty(objStr(capital, "Activities"), objStr(estimated, "activities"), objStr(nested, "activities"), defaults.Attractions),
		Transport:     firstNonEmpty(objStr(capital, "Transportation"), objStr(estimated, "transportation"), objStr(nested, "transport"), defaults.Transport),
	}
}

func tierDefaults(tier string) response_models.BudgetBreakdown {
	switch tier {
	case "budget":
		return response_models.BudgetBreakdown{
			Accommodation: "$50-100",
			Meals:         "$30-50",
			Attractions:   "$20-40",
			Transport:     "$20-40",
		}
	case "moderate":
		return response_models.BudgetBreakdown{
			Accommodation: "$100-200",
			Meals:         "$50-80",
			Attractions:   "$40-70",
			Transport:     "$40-70",
		}
	default:
		return response_models.BudgetBreakdown{
			Accommodation: "$200-400",
			Meals:         "$80-150",
			Attractions:   "$70-120",
			Transport:     "$70-120",
		}
	}
}

// jsonObject is a lenient view of a JSON object: values by key plus the key
// order as written, which decides day ordering for the keyed dialects.
type jsonObject struct {
	keys   []string
	fields map[string]json.RawMessage
}

// parsePayload returns nil unless text is a valid JSON object.
func parsePayload(text string) *jsonObject {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	obj, ok := decodeObject(json.RawMessage(trimmed))
	if !ok {
		return nil
	}
	return obj
}

func decodeObject(raw json.RawMessage) (*jsonObject, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	if fields == nil {
		return nil, false
	}
	keys, ok := objectKeyOrder(raw)
	if !ok {
		return nil, false
	}
	return &jsonObject{keys: keys, fields: fields}, true
}

// objectKeyOrder walks the token stream to recover key order, which
// map-based decoding loses. Duplicate keys keep their first position.
func objectKeyOrder(raw json.RawMessage) ([]string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, false
	}

	keys := []string{}
	seen := map[string]bool{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		if err := skipValue(dec); err != nil {
			return nil, false
		}
	}
	return keys, true
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}

func (o *jsonObject) raw(key string) (json.RawMessage, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// truthy reports whether key holds a value that is truthy in the
// JavaScript sense: null, false, 0, and "" do not count.
func (o *jsonObject) truthy(key string) bool {
	v, ok := o.fields[key]
	return ok && jsTruthy(v)
}

func jsTruthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", `""`:
		return false
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return n != 0
	}
	return true
}

// str returns the value only when it is a JSON string.
func (o *jsonObject) str(key string) string {
	v, ok := o.fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

func (o *jsonObject) object(key string) (*jsonObject, bool) {
	v, ok := o.fields[key]
	if !ok {
		return nil, false
	}
	return decodeObject(v)
}

func objStr(o *jsonObject, key string) string {
	if o == nil {
		return ""
	}
	return o.str(key)
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// decodeLoose fills v from raw on a best-effort basis; fields that do not
// match the expected type are simply left at their zero value.
func decodeLoose(raw json.RawMessage, v any) {
	_ = json.Unmarshal(raw, v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// stringList tolerates both a bare string and an array of strings, which the
// generator uses interchangeably for day-level highlights.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = stringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = stringList(many)
		return nil
	}
	*s = nil
	return nil
}
