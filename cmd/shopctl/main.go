// shopctl is a terminal storefront client: it browses the catalog,
// keeps a file-persisted cart, and checks out through the order API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpatel-dev/ecom-backoffice/internal/cart"
	"github.com/rpatel-dev/ecom-backoffice/internal/client"
	"github.com/rpatel-dev/ecom-backoffice/internal/order"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: shopctl [flags] <command> [args]

commands:
  products                 list products in stock
  cart                     show the cart
  add <product-id> <qty>   add a product to the cart
  remove <product-id>      remove a cart line
  qty <product-id> <n>     set a line's quantity (0 removes it)
  clear                    empty the cart
  checkout                 place an order for the cart (-customer required)

flags:
`)
	flag.PrintDefaults()
}

func main() {
	apiURL := flag.String("api", "http://localhost:3000", "base URL of the back-office API")
	cartPath := flag.String("cart", ".shopcart.json", "cart file")
	customerID := flag.Int64("customer", 0, "customer id for checkout")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	api := client.New(*apiURL)
	store := cart.NewFileStore(*cartPath)
	ct := cart.New()
	if err := ct.Restore(store); err != nil {
		fatal(err)
	}

	switch flag.Arg(0) {
	case "products":
		listProducts(ctx, api)
	case "cart":
		showCart(ct)
	case "add":
		id, qty := argID(1), argInt(2, 1)
		addToCart(ctx, api, ct, id, qty)
		persist(ct, store)
	case "remove":
		ct.Remove(argID(1))
		persist(ct, store)
	case "qty":
		ct.SetQuantity(argID(1), argInt(2, 0))
		persist(ct, store)
	case "clear":
		ct.Clear()
		persist(ct, store)
	case "checkout":
		checkout(ctx, api, ct, store, *customerID)
	default:
		usage()
		os.Exit(2)
	}
}

func argID(n int) int64 {
	id, err := strconv.ParseInt(flag.Arg(n), 10, 64)
	if err != nil || id <= 0 {
		fatal(fmt.Errorf("invalid product id %q", flag.Arg(n)))
	}
	return id
}

func argInt(n, def int) int {
	if flag.Arg(n) == "" {
		return def
	}
	v, err := strconv.Atoi(flag.Arg(n))
	if err != nil {
		fatal(fmt.Errorf("invalid quantity %q", flag.Arg(n)))
	}
	return v
}

func listProducts(ctx context.Context, api *client.Client) {
	products, err := api.Products(ctx)
	if err != nil {
		fatal(err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category, p.Price, p.Stock)
	}
	_ = w.Flush()
}

func addToCart(ctx context.Context, api *client.Client, ct *cart.Cart, id int64, qty int) {
	// Fetch the live product so the cart line carries a real name and a
	// current price snapshot.
	p, err := api.Product(ctx, id)
	if err != nil {
		fatal(err)
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		fatal(err)
	}
	ct.Add(p.ID, p.Name, price, qty)
	fmt.Printf("added %d x %s\n", qty, p.Name)
}

func showCart(ct *cart.Cart) {
	entries := ct.Entries()
	if len(entries) == 0 {
		fmt.Println("cart is empty")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tLINE TOTAL")
	for _, e := range entries {
		line := e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", e.ProductID, e.Name, e.Price, e.Quantity, line)
	}
	_ = w.Flush()
	fmt.Printf("total: %s (%d items)\n", ct.Total(), ct.Count())
}

func checkout(ctx context.Context, api *client.Client, ct *cart.Cart, store cart.Store, customerID int64) {
	if customerID <= 0 {
		fatal(fmt.Errorf("checkout requires -customer"))
	}
	entries := ct.Entries()
	if len(entries) == 0 {
		fatal(fmt.Errorf("cart is empty"))
	}
	lines := make([]order.Line, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, order.Line{ProductID: e.ProductID, Quantity: e.Quantity})
	}
	orderID, err := api.PlaceOrder(ctx, customerID, lines)
	if err != nil {
		fatal(err)
	}
	ct.Clear()
	persist(ct, store)
	fmt.Printf("order %d placed\n", orderID)
}

func persist(ct *cart.Cart, store cart.Store) {
	if err := ct.Persist(store); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "shopctl:", err)
	os.Exit(1)
}
