package upstream

import (
	"encoding/json"
	"testing"
)

// decode ผ่าน encoding/json จริง ให้ number เป็น float64 เหมือน payload จริง
func doc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func TestNormalizeRestaurants_BothNestingPaths(t *testing.T) {
	payload := doc(t, `{
		"data": {"cards": [
			{"card": {"card": {"gridElements": {"infoWithStyle": {"restaurants": [
				{"info": {"id": "101", "name": "Pizza Hut", "avgRating": 4.2,
				 "cuisines": ["Italian", "Pizzas"], "areaName": "Connaught Place",
				 "costForTwo": "₹400 for two", "sla": {"slaString": "30-35 mins"},
				 "cloudinaryImageId": "img101", "veg": false}}
			]}}}}},
			{"card": {"gridElements": {"infoWithStyle": {"restaurants": [
				{"info": {"id": "202", "name": "Spice Garden", "avgRating": "3.9",
				 "veg": true}}
			]}}}},
			{"card": {"card": {"id": "banner-card"}}}
		]}
	}`)

	got := NormalizeRestaurants(payload)
	if len(got) != 2 {
		t.Fatalf("want 2 restaurants, got %d", len(got))
	}

	first := got[0]
	if first.ID != "101" || first.Name != "Pizza Hut" {
		t.Errorf("unexpected first restaurant: %+v", first)
	}
	if first.AvgRating != 4.2 {
		t.Errorf("avgRating = %v, want 4.2", first.AvgRating)
	}
	if len(first.Cuisines) != 2 || first.Cuisines[0] != "Italian" {
		t.Errorf("cuisines = %v", first.Cuisines)
	}
	if first.SlaString != "30-35 mins" {
		t.Errorf("slaString = %q", first.SlaString)
	}

	// path ที่สอง + rating มาเป็น string
	second := got[1]
	if second.ID != "202" || second.AvgRating != 3.9 {
		t.Errorf("unexpected second restaurant: %+v", second)
	}
	if !second.Veg {
		t.Errorf("veg should be true")
	}
}

func TestNormalizeRestaurants_Defaults(t *testing.T) {
	payload := doc(t, `{
		"data": {"cards": [
			{"card": {"card": {"gridElements": {"infoWithStyle": {"restaurants": [
				{"info": {"id": "1", "name": "Bare Minimum", "avgRating": "--"}}
			]}}}}}
		]}
	}`)

	got := NormalizeRestaurants(payload)
	if len(got) != 1 {
		t.Fatalf("want 1 restaurant, got %d", len(got))
	}
	r := got[0]
	if r.AvgRating != 0 {
		t.Errorf("non-numeric rating should coerce to 0, got %v", r.AvgRating)
	}
	if r.Cuisines == nil || len(r.Cuisines) != 0 {
		t.Errorf("missing cuisines should be empty list, got %v", r.Cuisines)
	}
	if r.Veg {
		t.Errorf("missing veg should default false")
	}
	if r.CostForTwo != "" || r.SlaString != "" {
		t.Errorf("missing strings should default empty: %+v", r)
	}
}

func TestNormalizeRestaurants_MalformedShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"no cards", `{"data": {}}`},
		{"cards not a list", `{"data": {"cards": {"oops": true}}}`},
		{"cards of wrong types", `{"data": {"cards": [42, "str", null, []]}}`},
		{"restaurants not a list", `{"data": {"cards": [
			{"card": {"card": {"gridElements": {"infoWithStyle": {"restaurants": "nope"}}}}}
		]}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeRestaurants(doc(t, tc.raw))
			if len(got) != 0 {
				t.Errorf("want empty result, got %d", len(got))
			}
		})
	}
}

func menuPayload(items string) string {
	return `{
		"data": {"cards": [
			{"card": {"card": {"id": "not-grouped"}}},
			{"groupedCard": {"cardGroupMap": {"REGULAR": {"cards": [
				{"card": {"card": {"itemCards": [` + items + `]}}}
			]}}}}
		]}
	}`
}

func TestNormalizeMenu_PriceNormalization(t *testing.T) {
	payload := doc(t, menuPayload(`
		{"card": {"info": {"id": 1001, "name": "Paneer Tikka", "price": 25000}}},
		{"card": {"info": {"id": "1002", "name": "Dal Makhani", "defaultPrice": 19900}}},
		{"card": {"info": {"id": "1003", "name": "Mystery Dish"}}}
	`))

	got := NormalizeMenu(payload)
	if len(got) != 3 {
		t.Fatalf("want 3 items, got %d", len(got))
	}
	if got[0].Price != 250 {
		t.Errorf("price 25000 paise should be 250, got %v", got[0].Price)
	}
	if got[0].ID != "1001" {
		t.Errorf("numeric id should stringify, got %q", got[0].ID)
	}
	if got[1].Price != 199 {
		t.Errorf("defaultPrice 19900 should be 199, got %v", got[1].Price)
	}
	if got[2].Price != 0 {
		t.Errorf("missing price should be 0, got %v", got[2].Price)
	}
}

func TestNormalizeMenu_VegSignals(t *testing.T) {
	payload := doc(t, menuPayload(`
		{"card": {"info": {"id": "1", "isVeg": 1}}},
		{"card": {"info": {"id": "2", "itemAttribute": {"vegClassifier": "VEG"}}}},
		{"card": {"info": {"id": "3", "veg": true}}},
		{"card": {"info": {"id": "4", "isVeg": 0, "itemAttribute": {"vegClassifier": "NONVEG"}}}}
	`))

	got := NormalizeMenu(payload)
	if len(got) != 4 {
		t.Fatalf("want 4 items, got %d", len(got))
	}
	for i, want := range []bool{true, true, true, false} {
		if got[i].IsVeg != want {
			t.Errorf("item %d IsVeg = %v, want %v", i, got[i].IsVeg, want)
		}
	}
}

func TestNormalizeMenu_InnerCardWithoutDoubleNesting(t *testing.T) {
	// variant ที่ item อยู่ใต้ card ชั้นเดียว
	payload := doc(t, `{
		"data": {"cards": [
			{"groupedCard": {"cardGroupMap": {"REGULAR": {"cards": [
				{"card": {"itemCards": [
					{"card": {"info": {"id": "7", "name": "Single Nested", "price": 100}}}
				]}}
			]}}}}
		]}
	}`)

	got := NormalizeMenu(payload)
	if len(got) != 1 || got[0].ID != "7" {
		t.Fatalf("single-nested card variant not handled: %+v", got)
	}
}

func TestNormalizeMenu_MissingGroup(t *testing.T) {
	cases := []string{
		`{}`,
		`{"data": {}}`,
		`{"data": {"cards": []}}`,
		`{"data": {"cards": [{"groupedCard": {"cardGroupMap": {}}}]}}`,
		`{"data": {"cards": [{"groupedCard": {"cardGroupMap": {"REGULAR": {}}}}]}}`,
	}
	for _, raw := range cases {
		got := NormalizeMenu(doc(t, raw))
		if len(got) != 0 {
			t.Errorf("payload %s: want empty menu, got %d items", raw, len(got))
		}
	}
}
