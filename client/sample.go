package client

import "github.com/samir25141/SwiggyCloneBySamir/upstream"

// SampleMenu is shown when the upstream menu comes back empty, so the cart
// flow still works end to end.
var SampleMenu = []upstream.MenuItem{
	{ID: "sample-1", Name: "Margherita Pizza", Description: "Classic cheese and tomato", Price: 249, IsVeg: true},
	{ID: "sample-2", Name: "Paneer Butter Masala", Description: "Served with butter naan", Price: 319, IsVeg: true},
	{ID: "sample-3", Name: "Chicken Biryani", Description: "Hyderabadi style, serves one", Price: 289},
	{ID: "sample-4", Name: "Masala Dosa", Description: "With sambar and chutney", Price: 149, IsVeg: true},
	{ID: "sample-5", Name: "Butter Chicken", Description: "Rich tomato gravy", Price: 349},
	{ID: "sample-6", Name: "Veg Hakka Noodles", Description: "Indo-Chinese", Price: 199, IsVeg: true},
}
