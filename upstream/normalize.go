package upstream

import (
	"fmt"
	"strconv"
)

// Swiggy ซ้อน restaurants ไว้หลาย path แล้วแต่ variant ของ response
// ลองทีละ path ตามลำดับ เจอก่อนใช้ก่อน ไม่เจอเลย = card นั้นไม่มีร้าน
var restaurantPaths = [][]string{
	{"card", "card", "gridElements", "infoWithStyle", "restaurants"},
	{"card", "gridElements", "infoWithStyle", "restaurants"},
}

// NormalizeRestaurants แปลง payload ของ /dapi/restaurants/list/v5 เป็น list แบน
func NormalizeRestaurants(payload map[string]any) []Restaurant {
	cards := digSlice(payload, "data", "cards")

	out := []Restaurant{}
	for _, card := range cards {
		for _, path := range restaurantPaths {
			arr, ok := dig(card, path...)
			if !ok {
				continue
			}
			rs, ok := arr.([]any)
			if !ok {
				continue
			}
			for _, r := range rs {
				info, ok := dig(r, "info")
				if !ok {
					continue
				}
				m, ok := info.(map[string]any)
				if !ok {
					continue
				}
				out = append(out, normalizeRestaurant(m))
			}
		}
	}
	return out
}

func normalizeRestaurant(info map[string]any) Restaurant {
	return Restaurant{
		ID:                asString(info["id"]),
		Name:              asString(info["name"]),
		AvgRating:         asNumber(info["avgRating"]),
		Cuisines:          asStringSlice(info["cuisines"]),
		AreaName:          asString(info["areaName"]),
		CostForTwo:        asString(info["costForTwo"]),
		SlaString:         asString(digOr(info, "", "sla", "slaString")),
		CloudinaryImageID: asString(info["cloudinaryImageId"]),
		Veg:               info["veg"] == true,
	}
}

// NormalizeMenu แปลง payload ของ /dapi/menu/pl:
// cards[*].groupedCard.cardGroupMap.REGULAR.cards[*].card.card.itemCards[*].card.info
// หา group ไม่เจอ = list ว่าง (caller fallback เอง)
func NormalizeMenu(payload map[string]any) []MenuItem {
	cards := digSlice(payload, "data", "cards")

	var regularCards []any
	for _, card := range cards {
		if _, ok := dig(card, "groupedCard"); !ok {
			continue
		}
		regularCards = digSlice(card, "groupedCard", "cardGroupMap", "REGULAR", "cards")
		break
	}

	out := []MenuItem{}
	for _, rc := range regularCards {
		inner, ok := dig(rc, "card", "card")
		if !ok {
			inner, ok = dig(rc, "card")
			if !ok {
				continue
			}
		}
		itemCards, ok := dig(inner, "itemCards")
		if !ok {
			continue
		}
		ics, ok := itemCards.([]any)
		if !ok {
			continue
		}
		for _, ic := range ics {
			info, ok := dig(ic, "card", "info")
			if !ok {
				continue
			}
			m, ok := info.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, normalizeMenuItem(m))
		}
	}
	return out
}

func normalizeMenuItem(info map[string]any) MenuItem {
	// ราคาเป็น paise อยู่ได้สองชื่อ field; ไม่มีทั้งคู่ = 0
	raw, ok := info["price"]
	if !ok {
		raw = info["defaultPrice"]
	}

	isVeg := asNumber(info["isVeg"]) == 1 ||
		asString(digOr(info, "", "itemAttribute", "vegClassifier")) == "VEG" ||
		info["veg"] == true

	return MenuItem{
		ID:          asString(info["id"]),
		Name:        asString(info["name"]),
		Description: asString(info["description"]),
		Price:       asNumber(raw) / 100,
		IsVeg:       isVeg,
	}
}

// ---- helpers over untyped documents ----

// dig เดินลง map ตาม keys; ค่าที่ path ไหนหายก็คืน ok=false
func dig(doc any, keys ...string) (any, bool) {
	cur := doc
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func digOr(doc any, fallback any, keys ...string) any {
	if v, ok := dig(doc, keys...); ok {
		return v
	}
	return fallback
}

func digSlice(doc any, keys ...string) []any {
	v, ok := dig(doc, keys...)
	if !ok {
		return nil
	}
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// upstream ids บางทีมาเป็น number
		return strconv.FormatFloat(s, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
