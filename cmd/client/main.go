// Command client is a terminal front end for the swiggy-clone backend.
//
// Session, cart and delivery location live in ~/.swiggy-cli/state.json and
// survive between runs. Cart mutations are synced to the server whenever a
// session token is present.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/samir25141/SwiggyCloneBySamir/client"
	"github.com/samir25141/SwiggyCloneBySamir/upstream"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := os.Getenv("SWIGGY_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}

	statePath := client.DefaultStatePath()
	st := client.LoadState(statePath)
	api := client.NewAPI(baseURL, st.Token)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "register":
		err = cmdRegister(ctx, api, st, os.Args[2:])
	case "login":
		err = cmdLogin(ctx, api, st, os.Args[2:])
	case "logout":
		st.Token = ""
		st.User = nil
		fmt.Println("logged out")
	case "location":
		err = cmdLocation(st, os.Args[2:])
	case "restaurants":
		err = cmdRestaurants(ctx, api, st, os.Args[2:])
	case "menu":
		err = cmdMenu(ctx, api, st, os.Args[2:])
	case "cart":
		err = cmdCart(ctx, api, st, os.Args[2:])
	case "favorite":
		err = cmdFavorite(ctx, api, os.Args[2:])
	case "favorites":
		err = cmdFavorites(ctx, api)
	case "order":
		err = cmdOrder(ctx, api, st)
	case "orders":
		err = cmdOrders(ctx, api)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := st.Save(statePath); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save state:", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: client <command> [flags]

commands:
  register  --name --email --password
  login     --email --password
  logout
  location  [city name] | --lat --lng
  restaurants [--search --min-rating --cuisine --veg --favorites-only --sort --page]
  menu      <restaurantId>
  cart      show | add <itemId> <name> <price> [qty] | remove <itemId> | qty <itemId> <n> | clear
  favorite  <restaurantId> [--name --rating]   (toggle)
  favorites
  order     (places the current cart)
  orders`)
}

func cmdRegister(ctx context.Context, api *client.API, st *client.State, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	res, err := api.Register(ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	st.Token = res.Token
	st.User = &res.User
	fmt.Printf("registered as %s <%s>\n", res.User.Name, res.User.Email)
	return nil
}

func cmdLogin(ctx context.Context, api *client.API, st *client.State, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	res, err := api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	st.Token = res.Token
	st.User = &res.User
	api.Token = res.Token

	// login ใหม่ ดึงคาร์ทจาก server มาทับ local
	if items, err := api.FetchCart(ctx); err == nil && len(items) > 0 {
		st.Cart = items
	}
	fmt.Printf("logged in as %s\n", res.User.Email)
	return nil
}

func cmdLocation(st *client.State, args []string) error {
	fs := flag.NewFlagSet("location", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	fs.Parse(args)

	switch {
	case *lat != 0 || *lng != 0:
		st.Location = client.NearestCity(*lat, *lng)
	case len(fs.Args()) > 0:
		st.Location = client.ResolveName(fs.Args()[0], st.Location)
	}
	fmt.Printf("delivering to %s (%.4f, %.4f)\n", st.Location.Name, st.Location.Lat, st.Location.Lng)
	return nil
}

func cmdRestaurants(ctx context.Context, api *client.API, st *client.State, args []string) error {
	fs := flag.NewFlagSet("restaurants", flag.ExitOnError)
	search := fs.String("search", "", "free-text search")
	minRating := fs.Float64("min-rating", 0, "minimum rating")
	cuisine := fs.String("cuisine", "", "exact cuisine")
	onlyVeg := fs.Bool("veg", false, "veg restaurants only")
	favOnly := fs.Bool("favorites-only", false, "favorites only")
	sortBy := fs.String("sort", client.SortRelevance, "relevance|rating|delivery|costLowHigh|costHighLow")
	page := fs.Int("page", 1, "reveal the first page*12 results")
	fs.Parse(args)

	restaurants, err := api.Restaurants(ctx, client.RestaurantQuery{
		Search:    *search,
		MinRating: *minRating,
		Cuisine:   *cuisine,
		Lat:       st.Location.Lat,
		Lng:       st.Location.Lng,
	})
	if err != nil {
		return err
	}

	var favIDs []string
	if *favOnly && api.Token != "" {
		favs, err := api.Favorites(ctx)
		if err == nil {
			for _, f := range favs {
				favIDs = append(favIDs, f.RestaurantID)
			}
		}
	}

	visible := client.ApplyView(restaurants, client.ViewOptions{
		OnlyVeg:       *onlyVeg,
		FavoritesOnly: *favOnly,
		FavoriteIDs:   favIDs,
		SortBy:        *sortBy,
		Page:          *page,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tRATING\tAREA\tDELIVERY\tCOST")
	for _, r := range visible {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\t%s\n",
			r.ID, r.Name, r.AvgRating, r.AreaName, r.SlaString, r.CostForTwo)
	}
	w.Flush()
	fmt.Printf("showing %d of %d\n", len(visible), len(restaurants))
	return nil
}

func cmdMenu(ctx context.Context, api *client.API, st *client.State, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("menu: restaurant id required")
	}

	items, err := api.Menu(ctx, args[0], st.Location)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("(upstream returned no menu, showing sample items)")
		items = client.SampleMenu
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tVEG")
	for _, it := range items {
		veg := ""
		if it.IsVeg {
			veg = "veg"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", it.ID, it.Name, it.Price, veg)
	}
	return w.Flush()
}

func cmdCart(ctx context.Context, api *client.API, st *client.State, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		if len(st.Cart) == 0 {
			fmt.Println("cart is empty")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY")
		for _, it := range st.Cart {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", it.ItemID, it.Name, it.Price, it.Quantity)
		}
		w.Flush()
		fmt.Printf("total: %.2f\n", st.CartTotal())
		return nil

	case "add":
		if len(args) < 4 {
			return fmt.Errorf("cart add <itemId> <name> <price> [qty]")
		}
		price, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("bad price %q", args[3])
		}
		qty := 1
		if len(args) > 4 {
			qty, _ = strconv.Atoi(args[4])
		}
		st.AddToCart(upstream.MenuItem{ID: args[1], Name: args[2], Price: price}, qty)

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("cart remove <itemId>")
		}
		st.RemoveFromCart(args[1])

	case "qty":
		if len(args) < 3 {
			return fmt.Errorf("cart qty <itemId> <n>")
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad quantity %q", args[2])
		}
		st.SetQuantity(args[1], n)

	case "clear":
		st.ClearCart()

	default:
		return fmt.Errorf("unknown cart subcommand %q", args[0])
	}

	st.SyncCart(ctx, api)
	fmt.Printf("cart has %d item(s), total %.2f\n", len(st.Cart), st.CartTotal())
	return nil
}

func cmdFavorite(ctx context.Context, api *client.API, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("favorite: restaurant id required")
	}
	fs := flag.NewFlagSet("favorite", flag.ExitOnError)
	name := fs.String("name", "", "restaurant name")
	rating := fs.Float64("rating", 0, "avg rating")
	fs.Parse(args[1:])

	return api.ToggleFavorite(ctx, client.Favorite{
		RestaurantID: args[0],
		Name:         *name,
		AvgRating:    *rating,
	})
}

func cmdFavorites(ctx context.Context, api *client.API) error {
	favs, err := api.Favorites(ctx)
	if err != nil {
		return err
	}
	for _, f := range favs {
		fmt.Printf("%s\t%s\t%.1f\n", f.RestaurantID, f.Name, f.AvgRating)
	}
	return nil
}

func cmdOrder(ctx context.Context, api *client.API, st *client.State) error {
	if len(st.Cart) == 0 {
		return fmt.Errorf("cart is empty")
	}
	order, err := api.PlaceOrder(ctx, st.Cart, st.CartTotal())
	if err != nil {
		return err
	}
	st.ClearCart()
	fmt.Printf("order #%d placed, status %s, total %.2f\n", order.ID, order.Status, order.Total)
	return nil
}

func cmdOrders(ctx context.Context, api *client.API) error {
	orders, err := api.Orders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		fmt.Printf("#%d\t%s\t%.2f\t%d item(s)\t%s\n",
			o.ID, o.Status, o.Total, len(o.Items), o.CreatedAt)
	}
	return nil
}
