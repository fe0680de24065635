package services

import (
	"reflect"
	"testing"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/models/response_models"
)

func plannerRequest(budget string) request_models.TripPlannerRequest {
	return request_models.TripPlannerRequest{
		TripLength:   "5 days",
		TravelMonth:  "June",
		PartySize:    "2 adults",
		MaxDriveTime: "3 hours",
		Interests:    "castles and lochs",
		Budget:       budget,
	}
}

func TestNormalizeItinerary_TitledDayKeys(t *testing.T) {
	raw := `{
		"Destination": "Scotland",
		"Day1": {
			"Morning": {"Activity": "Castle tour", "Time": "8:00 AM - 11:00 AM", "RainBackupPlan": "National Museum"},
			"Afternoon": {"Activity": "Loch cruise"}
		},
		"Day2": {
			"Morning": {"Details": "Highland drive"},
			"Afternoon": {"Activity": "Whisky tasting"}
		}
	}`

	it := NormalizeItinerary(plannerRequest("moderate"), raw)

	if it.Title != "5 days Scotland Itinerary" {
		t.Fatalf("title = %q", it.Title)
	}
	if len(it.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(it.Days))
	}

	d1 := it.Days[0]
	if d1.DayNumber != 1 || d1.Title != "Day 1 - Scotland" || d1.Location != "Scotland" {
		t.Fatalf("day 1 header mismatch: %+v", d1)
	}
	if d1.Morning.Time != "8:00 AM - 11:00 AM" || d1.Morning.Activity != "Castle tour" {
		t.Fatalf("day 1 morning = %+v", d1.Morning)
	}
	if d1.Afternoon.Time != "1:00 PM - 6:00 PM" {
		t.Fatalf("missing afternoon time should default, got %q", d1.Afternoon.Time)
	}
	if d1.RainPlan != "National Museum" {
		t.Fatalf("day 1 rain plan = %q", d1.RainPlan)
	}
	if !reflect.DeepEqual(d1.Highlights, []string{"Castle tour", "Loch cruise"}) {
		t.Fatalf("day 1 highlights = %v", d1.Highlights)
	}

	d2 := it.Days[1]
	if d2.Morning.Activity != "Highland drive" {
		t.Fatalf("Details should back Activity, got %q", d2.Morning.Activity)
	}
	if !reflect.DeepEqual(d2.Highlights, []string{"Whisky tasting"}) {
		t.Fatalf("Details must not become a highlight, got %v", d2.Highlights)
	}
	if d2.RainPlan != "Indoor alternatives" {
		t.Fatalf("day 2 rain plan = %q", d2.RainPlan)
	}
	if d2.Budget != "moderate" {
		t.Fatalf("day budget = %q", d2.Budget)
	}
}

func TestNormalizeItinerary_ItineraryObject(t *testing.T) {
	raw := `{
		"destination": "Portugal",
		"itinerary": {
			"day1": {
				"morning": {"activity": "Tram ride", "timing": "10:00 AM - 12:00 PM", "highlight": "Alfama views"},
				"afternoon": {"activity": "Belem pastries", "rainBackupPlan": "Tile museum"}
			}
		}
	}`

	it := NormalizeItinerary(plannerRequest("budget"), raw)

	if it.Title != "5 days Portugal Itinerary" {
		t.Fatalf("title = %q", it.Title)
	}
	if len(it.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(it.Days))
	}
	d := it.Days[0]
	if d.Morning.Time != "10:00 AM - 12:00 PM" || d.Morning.Activity != "Tram ride" {
		t.Fatalf("morning = %+v", d.Morning)
	}
	if d.Afternoon.Time != "1:00 PM - 6:00 PM" || d.Afternoon.Activity != "Belem pastries" {
		t.Fatalf("afternoon = %+v", d.Afternoon)
	}
	if !reflect.DeepEqual(d.Highlights, []string{"Alfama views"}) {
		t.Fatalf("highlights = %v", d.Highlights)
	}
	if d.RainPlan != "Tile museum" {
		t.Fatalf("rain plan = %q", d.RainPlan)
	}
}

func TestNormalizeItinerary_ItineraryArray(t *testing.T) {
	raw := `{
		"Destination": "Norway",
		"Itinerary": [
			{
				"MorningActivity": {"Activity": "Fjord kayaking", "Time": "7:00 AM - 10:00 AM"},
				"AfternoonActivity": {"Activity": "Stave church visit", "RainBackupPlan": "Maritime museum"},
				"Highlights": ["Fjord views", "Viking history"]
			},
			{
				"MorningActivity": {"Activity": "Glacier hike"},
				"Highlights": "Blue ice"
			}
		]
	}`

	it := NormalizeItinerary(plannerRequest("luxury"), raw)

	if it.Title != "5 days Norway Itinerary" {
		t.Fatalf("title = %q", it.Title)
	}
	if len(it.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(it.Days))
	}
	d1 := it.Days[0]
	if d1.Morning.Time != "7:00 AM - 10:00 AM" || d1.Morning.Activity != "Fjord kayaking" {
		t.Fatalf("day 1 morning = %+v", d1.Morning)
	}
	if !reflect.DeepEqual(d1.Highlights, []string{"Fjord views", "Viking history"}) {
		t.Fatalf("day 1 highlights = %v", d1.Highlights)
	}
	if d1.RainPlan != "Maritime museum" {
		t.Fatalf("day 1 rain plan = %q", d1.RainPlan)
	}

	d2 := it.Days[1]
	if d2.Afternoon.Activity != "Afternoon activities" {
		t.Fatalf("missing afternoon should default, got %q", d2.Afternoon.Activity)
	}
	if !reflect.DeepEqual(d2.Highlights, []string{"Blue ice"}) {
		t.Fatalf("bare string highlights should become a single entry, got %v", d2.Highlights)
	}
}

func TestNormalizeItinerary_ItineraryArrayRequiresArray(t *testing.T) {
	// An Itinerary key holding an object belongs to none of the recognized
	// shapes, so the placeholder day applies.
	raw := `{"Itinerary": {"day1": {}}}`

	it := NormalizeItinerary(plannerRequest("budget"), raw)
	if len(it.Days) != 1 || it.Days[0].Title != "Custom Travel Plan" {
		t.Fatalf("expected placeholder day, got %+v", it.Days)
	}
}

func TestMatchItineraryBreakdown(t *testing.T) {
	// The breakdown shape is claimed by the itinerary-object matcher first,
	// so its extraction is checked directly.
	payload := parsePayload(`{
		"itinerary": {
			"destination": "Iceland",
			"breakdown": {
				"day1": {
					"morning": {"activity": "Golden Circle", "timing": "8:00 AM - 1:00 PM", "highlight": "Geysir"},
					"afternoon": {"activity": "Blue Lagoon", "rainBackupPlan": "Perlan museum"}
				}
			}
		}
	}`)
	if payload == nil {
		t.Fatal("payload failed to parse")
	}

	plan, ok := matchItineraryBreakdown(payload)
	if !ok {
		t.Fatal("breakdown shape not claimed")
	}
	if plan.destination != "Iceland" {
		t.Fatalf("destination = %q", plan.destination)
	}
	if len(plan.days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(plan.days))
	}
	rec := plan.days[0]
	if rec.morningTime != "" {
		t.Fatalf("breakdown days carry no timing, got %q", rec.morningTime)
	}
	if rec.morningActivity != "Golden Circle" || rec.afternoonActivity != "Blue Lagoon" {
		t.Fatalf("activities = %q / %q", rec.morningActivity, rec.afternoonActivity)
	}
	if !reflect.DeepEqual(rec.highlights, []string{"Geysir"}) {
		t.Fatalf("highlights = %v", rec.highlights)
	}
	if rec.rainPlan != "Perlan museum" {
		t.Fatalf("rain plan = %q", rec.rainPlan)
	}
}

func TestNormalizeItinerary_DialectPriority(t *testing.T) {
	// Markers for two shapes at once: the Destination/Day1 shape wins.
	raw := `{
		"Destination": "Wales",
		"Day1": {"Morning": {"Activity": "Snowdon hike"}},
		"itinerary": {"day1": {"morning": {"activity": "should be ignored"}}}
	}`

	it := NormalizeItinerary(plannerRequest("budget"), raw)
	if len(it.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(it.Days))
	}
	if it.Days[0].Morning.Activity != "Snowdon hike" {
		t.Fatalf("wrong dialect won: %q", it.Days[0].Morning.Activity)
	}
}

func TestNormalizeItinerary_NonJSONFallback(t *testing.T) {
	for _, raw := range []string{
		"Sorry, I could not produce an itinerary today.",
		"",
		"[1, 2, 3]",
		"null",
	} {
		it := NormalizeItinerary(plannerRequest("moderate"), raw)

		if it.Title != "5 days Custom Destination Itinerary" {
			t.Fatalf("raw %q: title = %q", raw, it.Title)
		}
		if len(it.Days) != 1 {
			t.Fatalf("raw %q: expected 1 day, got %d", raw, len(it.Days))
		}
		d := it.Days[0]
		if d.Title != "Custom Travel Plan" || d.Location != "Custom Destination" {
			t.Fatalf("raw %q: day = %+v", raw, d)
		}
		if d.Morning.Activity != "AI-generated morning activities" || d.Afternoon.Activity != "AI-generated afternoon activities" {
			t.Fatalf("raw %q: activities = %q / %q", raw, d.Morning.Activity, d.Afternoon.Activity)
		}
		if !reflect.DeepEqual(d.Highlights, []string{"Personalized recommendations"}) {
			t.Fatalf("raw %q: highlights = %v", raw, d.Highlights)
		}
		if d.RainPlan != "Weather alternatives included" {
			t.Fatalf("raw %q: rain plan = %q", raw, d.RainPlan)
		}
		if !reflect.DeepEqual(it.AccommodationStrategy, []string{"Mid-range accommodations as per budget"}) {
			t.Fatalf("raw %q: accommodation = %v", raw, it.AccommodationStrategy)
		}
	}
}

func TestNormalizeItinerary_FalsyDayMarker(t *testing.T) {
	// A Day1 key holding null, false, 0, or "" does not count as a day
	// marker, so the whole shape goes unclaimed: no destination is
	// extracted and the placeholder day applies.
	for _, raw := range []string{
		`{"Destination": "Japan", "Day1": null}`,
		`{"Destination": "Japan", "Day1": false}`,
		`{"Destination": "Japan", "Day1": 0}`,
		`{"Destination": "Japan", "Day1": ""}`,
	} {
		it := NormalizeItinerary(plannerRequest("budget"), raw)

		if it.Title != "5 days Custom Destination Itinerary" {
			t.Fatalf("raw %q: title = %q", raw, it.Title)
		}
		if len(it.Days) != 1 || it.Days[0].Title != "Custom Travel Plan" {
			t.Fatalf("raw %q: expected placeholder day, got %+v", raw, it.Days)
		}
	}

	// A lowercase day1 marker is enough on its own.
	it := NormalizeItinerary(plannerRequest("budget"), `{"Destination": "Japan", "day1": {"Morning": {"Activity": "Fish market"}}}`)
	if it.Title != "5 days Japan Itinerary" {
		t.Fatalf("title = %q", it.Title)
	}
	if len(it.Days) != 1 || it.Days[0].Morning.Activity != "Fish market" {
		t.Fatalf("days = %+v", it.Days)
	}
}

func TestNormalizeItinerary_MatchedShapeWithZeroDays(t *testing.T) {
	// An empty itinerary object still claims the shape; the placeholder day
	// applies while the extracted destination names the title.
	raw := `{"destination": "Japan", "itinerary": {}}`

	it := NormalizeItinerary(plannerRequest("budget"), raw)

	if it.Title != "5 days Japan Itinerary" {
		t.Fatalf("title = %q", it.Title)
	}
	if len(it.Days) != 1 || it.Days[0].Title != "Custom Travel Plan" {
		t.Fatalf("expected placeholder day, got %+v", it.Days)
	}
}

func TestNormalizeItinerary_DayOrderFollowsDocument(t *testing.T) {
	raw := `{
		"Destination": "Italy",
		"Day1": {"Morning": {"Activity": "Colosseum"}},
		"Day2": {"Morning": {"Activity": "Vatican"}},
		"Day3": {"Morning": {"Activity": "Trastevere"}}
	}`

	it := NormalizeItinerary(plannerRequest("moderate"), raw)
	if len(it.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(it.Days))
	}
	want := []string{"Colosseum", "Vatican", "Trastevere"}
	for i, d := range it.Days {
		if d.DayNumber != i+1 {
			t.Fatalf("day %d numbered %d", i+1, d.DayNumber)
		}
		if d.Morning.Activity != want[i] {
			t.Fatalf("day %d activity = %q, want %q", i+1, d.Morning.Activity, want[i])
		}
	}
}

func TestNormalizeItinerary_Metadata(t *testing.T) {
	first := NormalizeItinerary(plannerRequest("budget"), "not json")
	second := NormalizeItinerary(plannerRequest("budget"), "not json")

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("ids must be unique and non-empty: %q vs %q", first.ID, second.ID)
	}
	if first.Timestamp == "" {
		t.Fatal("timestamp must be set")
	}
}

func TestAccommodationStrategy_Chain(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"capitalized day1", `{"Day1": {"Accommodation": "Castle hotel"}}`, "Castle hotel"},
		{"itinerary day1", `{"itinerary": {"day1": {"accommodation": "Riad stay"}}}`, "Riad stay"},
		{"breakdown day1", `{"itinerary": {"breakdown": {"day1": {"accommodation": "Cabin"}}}}`, "Cabin"},
		{"default", `{"Day1": {}}`, "Mid-range accommodations as per budget"},
	}
	for _, tc := range cases {
		payload := parsePayload(tc.raw)
		got := accommodationStrategy(payload)
		if !reflect.DeepEqual(got, []string{tc.want}) {
			t.Fatalf("%s: got %v", tc.name, got)
		}
	}
}

func TestResolveBudgetBreakdown_PayloadChains(t *testing.T) {
	payload := parsePayload(`{
		"Budget": {"Accommodation": "$120/night", "Food": "$60/day"},
		"totalEstimatedBudget": {"activities": "$45/day"},
		"itinerary": {"budgetBreakdown": {"transport": "$30/day", "activities": "loses to totalEstimatedBudget"}}
	}`)

	got := resolveBudgetBreakdown(payload, "budget")
	want := response_models.BudgetBreakdown{
		Accommodation: "$120/night",
		Meals:         "$60/day",
		Attractions:   "$45/day",
		Transport:     "$30/day",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestResolveBudgetBreakdown_TierDefaults(t *testing.T) {
	cases := []struct {
		tier string
		want response_models.BudgetBreakdown
	}{
		{"budget", response_models.BudgetBreakdown{Accommodation: "$50-100", Meals: "$30-50", Attractions: "$20-40", Transport: "$20-40"}},
		{"moderate", response_models.BudgetBreakdown{Accommodation: "$100-200", Meals: "$50-80", Attractions: "$40-70", Transport: "$40-70"}},
		{"luxury", response_models.BudgetBreakdown{Accommodation: "$200-400", Meals: "$80-150", Attractions: "$70-120", Transport: "$70-120"}},
		{"unrecognized", response_models.BudgetBreakdown{Accommodation: "$200-400", Meals: "$80-150", Attractions: "$70-120", Transport: "$70-120"}},
	}
	for _, tc := range cases {
		got := resolveBudgetBreakdown(nil, tc.tier)
		if got != tc.want {
			t.Fatalf("tier %q: got %+v, want %+v", tc.tier, got, tc.want)
		}
	}
}

func TestNormalizeItinerary_BudgetChainsRunWithoutDayMatch(t *testing.T) {
	// Budget and accommodation extraction do not depend on a day shape
	// being recognized.
	raw := `{
		"summary": "unrecognized shape",
		"Budget": {"Accommodation": "$90/night"},
		"Day1": {"Accommodation": "Guesthouse"}
	}`

	it := NormalizeItinerary(plannerRequest("moderate"), raw)
	if it.BudgetBreakdown.Accommodation != "$90/night" {
		t.Fatalf("budget accommodation = %q", it.BudgetBreakdown.Accommodation)
	}
	if it.BudgetBreakdown.Meals != "$50-80" {
		t.Fatalf("meals should fall back to tier default, got %q", it.BudgetBreakdown.Meals)
	}
	if !reflect.DeepEqual(it.AccommodationStrategy, []string{"Guesthouse"}) {
		t.Fatalf("accommodation strategy = %v", it.AccommodationStrategy)
	}
	if len(it.Days) != 1 || it.Days[0].Title != "Custom Travel Plan" {
		t.Fatalf("expected placeholder day, got %+v", it.Days)
	}
}

func TestParsePayload_KeyOrder(t *testing.T) {
	payload := parsePayload(`{"b": 1, "a": 2, "c": {"nested": [1, {"deep": true}]}, "b": 3}`)
	if payload == nil {
		t.Fatal("payload failed to parse")
	}
	if !reflect.DeepEqual(payload.keys, []string{"b", "a", "c"}) {
		t.Fatalf("keys = %v", payload.keys)
	}
}
