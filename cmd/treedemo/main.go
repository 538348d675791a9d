package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/DAA2020-team/midterm-project/currency"
	"github.com/DAA2020-team/midterm-project/multiway"
)

// main - Inserts a handful of currency entries into a multiway search tree keyed by
// ISO-4217 code and prints the in-order listing.
func main() {
	order := flag.Int("order", 4, "order of the multiway search tree")
	flag.Parse()

	amounts := map[string]float64{
		"EUR": 104.0,
		"USD": 112.5,
		"GBP": 89.9,
		"JPY": 16460.0,
		"CHF": 98.2,
		"SEK": 1087.0,
		"NOK": 1110.4,
		"DKK": 775.3,
	}

	tree, err := multiway.New[string, float64](*order)
	if err != nil {
		log.Fatalf("error while creating tree: %s", err)
	}

	for code, amount := range amounts {
		// The registry check belongs to the currency collaborator, the tree itself
		// only requires its keys to be ordered and comparable
		if _, err = currency.New(code); err != nil {
			log.Fatalf("error while validating currency: %s", err)
		}

		err = tree.Insert(code, amount)
		if err != nil {
			log.Fatalf("error while inserting %s: %s", code, err)
		}
	}

	fmt.Printf("%d entries, height %d\n", tree.Len(), tree.Height())

	for it := tree.InOrder(); it.HasNext(); {
		entry, err := it.Next()
		if err != nil {
			log.Fatalf("error while traversing tree: %s", err)
		}
		fmt.Printf("%s: %.2f\n", entry.Key, entry.Value)
	}
}
