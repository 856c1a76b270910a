package services

import (
	"testing"

	"github.com/samir25141/SwiggyCloneBySamir/upstream"
)

var sampleRestaurants = []upstream.Restaurant{
	{ID: "1", Name: "Pizza Hut", Cuisines: []string{"Italian"}, AvgRating: 4.2},
	{ID: "2", Name: "Spice", Cuisines: []string{"Indian"}, AvgRating: 3.0},
}

func ids(rs []upstream.Restaurant) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterRestaurants(t *testing.T) {
	cases := []struct {
		name string
		q    RestaurantQuery
		want []string
	}{
		{"no filters", RestaurantQuery{}, []string{"1", "2"}},
		{"min rating inclusive", RestaurantQuery{MinRating: 4}, []string{"1"}},
		{"min rating exact boundary", RestaurantQuery{MinRating: 4.2}, []string{"1"}},
		{"cuisine case-insensitive", RestaurantQuery{Cuisine: "italian"}, []string{"1"}},
		{"cuisine exact not substring", RestaurantQuery{Cuisine: "ital"}, []string{}},
		{"search by name", RestaurantQuery{Search: "spice"}, []string{"2"}},
		{"search by cuisine substring", RestaurantQuery{Search: "ind"}, []string{"2"}},
		{"search case-insensitive", RestaurantQuery{Search: "PIZZA"}, []string{"1"}},
		{"search no match", RestaurantQuery{Search: "sushi"}, []string{}},
		{"conjunctive filters", RestaurantQuery{Search: "pizza", MinRating: 5}, []string{}},
		{"all three combined", RestaurantQuery{Search: "pizza", MinRating: 4, Cuisine: "Italian"}, []string{"1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterRestaurants(sampleRestaurants, tc.q))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}
