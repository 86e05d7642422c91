// Package main implements the interactive catalog client: a terminal
// front-end over pkg/catalog that lists, searches, sorts, paginates,
// creates, edits and deletes products.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/akosmin/prodcatalog/pkg/catalog"
	catalogmock "github.com/akosmin/prodcatalog/pkg/catalog/mock"
)

const apiURLEnv = "CATALOG_API_URL"

func main() {
	apiURL := flag.String("api", defaultAPIURL(), "base URL of the catalog API")
	useMock := flag.Bool("mock", false, "run against an in-memory gateway instead of the API")
	flag.Parse()

	var gateway catalog.Gateway
	if *useMock {
		gateway = catalogmock.New()
	} else {
		client, err := catalog.NewClient(*apiURL)
		if err != nil {
			log.Fatalf("create catalog client: %v", err)
		}
		gateway = client
	}

	ui := &ui{
		store: catalog.NewStore(gateway),
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
	}
	ui.run(context.Background())
}

func defaultAPIURL() string {
	if v := os.Getenv(apiURLEnv); v != "" {
		return v
	}
	return "http://localhost:5001"
}

type ui struct {
	store *catalog.Store
	in    *bufio.Scanner
	out   *os.File
}

func (u *ui) run(ctx context.Context) {
	if err := u.store.Load(ctx); err != nil {
		// The banner already carries the generic message; keep going so the
		// user can retry with "reload".
		fmt.Fprintf(u.out, "warning: %v\n", err)
	}
	u.render()

	for {
		fmt.Fprint(u.out, "> ")
		if !u.in.Scan() {
			return
		}
		line := strings.TrimSpace(u.in.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "quit", "exit", "q":
			return
		case "help", "h":
			u.printHelp()
		case "list", "ls":
			u.render()
		case "reload":
			if err := u.store.Load(ctx); err == nil {
				fmt.Fprintln(u.out, "reloaded")
			}
			u.render()
		case "search":
			u.store.Dispatch(catalog.QueryChanged{Query: arg})
			u.render()
		case "sort":
			u.setSort(arg)
		case "next":
			u.store.Dispatch(catalog.PageChanged{Page: u.store.State().Page + 1})
			u.render()
		case "prev":
			u.store.Dispatch(catalog.PageChanged{Page: u.store.State().Page - 1})
			u.render()
		case "page":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintln(u.out, "usage: page <number>")
				continue
			}
			u.store.Dispatch(catalog.PageChanged{Page: n})
			u.render()
		case "add":
			u.store.Dispatch(catalog.FormOpened{})
			u.save(ctx)
		case "edit":
			if p, ok := u.rowProduct(arg); ok {
				u.store.Dispatch(catalog.FormOpened{Product: &p})
				u.save(ctx)
			}
		case "show":
			if p, ok := u.rowProduct(arg); ok {
				u.show(p)
			}
		case "delete", "del", "rm":
			if p, ok := u.rowProduct(arg); ok {
				u.delete(ctx, p)
			}
		default:
			fmt.Fprintf(u.out, "unknown command %q (try: help)\n", cmd)
		}
	}
}

func (u *ui) printHelp() {
	fmt.Fprint(u.out, `commands:
  list                 show the current page
  search <text>        filter by name or creation date (empty to clear)
  sort newest|price|weight
  next | prev | page <n>
  add                  create a product
  edit <row>           edit the product on the given row
  show <row>           print the raw record
  delete <row>         delete (asks for confirmation)
  reload               re-fetch the full list
  quit
`)
}

func (u *ui) setSort(arg string) {
	switch arg {
	case "newest", "":
		u.store.Dispatch(catalog.SortChanged{SortBy: catalog.SortByNewest})
	case "price":
		u.store.Dispatch(catalog.SortChanged{SortBy: catalog.SortByPrice})
	case "weight":
		u.store.Dispatch(catalog.SortChanged{SortBy: catalog.SortByWeight})
	default:
		fmt.Fprintln(u.out, "usage: sort newest|price|weight")
		return
	}
	u.render()
}

// rowProduct resolves a 1-based row number on the current page to a product.
func (u *ui) rowProduct(arg string) (catalog.Product, bool) {
	view := u.store.View()
	row, err := strconv.Atoi(arg)
	if err != nil || row < 1 || row > len(view.Items) {
		fmt.Fprintf(u.out, "pick a row between 1 and %d\n", len(view.Items))
		return catalog.Product{}, false
	}
	return view.Items[row-1], true
}

// save prompts for the three form fields and saves. An invalid form aborts
// locally without contacting the server.
func (u *ui) save(ctx context.Context) {
	form := u.store.State().Form
	form.Name = u.prompt("Name", form.Name)
	form.Weight = u.prompt("Weight (kg)", form.Weight)
	form.Price = u.prompt("Price", form.Price)
	u.store.Dispatch(catalog.FormChanged{Form: form})

	if err := u.store.Save(ctx); err != nil {
		if errors.Is(err, catalog.ErrInvalidForm) {
			fmt.Fprintln(u.out, "Please provide valid name, weight and price")
		}
		u.render()
		return
	}
	u.render()
}

func (u *ui) delete(ctx context.Context, p catalog.Product) {
	answer := u.prompt(fmt.Sprintf("Delete %q? [y/N]", p.Name), "")
	if !strings.EqualFold(answer, "y") {
		return
	}
	_ = u.store.Delete(ctx, p.ID)
	u.render()
}

func (u *ui) show(p catalog.Product) {
	fmt.Fprintf(u.out, "id:        %s\n", p.ID)
	fmt.Fprintf(u.out, "name:      %s\n", p.Name)
	fmt.Fprintf(u.out, "weight:    %s\n", catalog.FormatWeight(p.Weight))
	fmt.Fprintf(u.out, "price:     %s\n", catalog.FormatPrice(p.Price))
	fmt.Fprintf(u.out, "createdAt: %s\n", catalog.FormatTimestamp(p.CreatedAt))
	fmt.Fprintf(u.out, "updatedAt: %s\n", catalog.FormatTimestamp(p.UpdatedAt))
}

func (u *ui) prompt(label, current string) string {
	if current != "" {
		fmt.Fprintf(u.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(u.out, "%s: ", label)
	}
	if !u.in.Scan() {
		return current
	}
	text := strings.TrimSpace(u.in.Text())
	if text == "" {
		return current
	}
	return text
}

func (u *ui) render() {
	state := u.store.State()
	view := u.store.View()

	if state.ErrMsg != "" {
		fmt.Fprintf(u.out, "!! %s\n", state.ErrMsg)
	}
	if state.Loading {
		fmt.Fprintln(u.out, "Loading...")
		return
	}
	if view.Total == 0 {
		fmt.Fprintln(u.out, "No products found.")
		return
	}

	w := tabwriter.NewWriter(u.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCreated At\tName\tWeight\tPrice")
	for i, p := range view.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			catalog.FormatTimestamp(p.CreatedAt),
			p.Name,
			catalog.FormatWeight(p.Weight),
			catalog.FormatPrice(p.Price),
		)
	}
	_ = w.Flush()
	fmt.Fprintf(u.out, "Page %d of %d (%d products)\n", view.Page, view.TotalPages, view.Total)
}
