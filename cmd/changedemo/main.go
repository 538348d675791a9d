package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/DAA2020-team/midterm-project/currency"
)

// main - Builds the euro denomination series and prints the change decomposition for
// the given amount.
func main() {
	amount := flag.Float64("amount", 12.85, "amount to decompose into denominations")
	flag.Parse()

	eur, err := currency.New("EUR")
	if err != nil {
		log.Fatalf("error while creating currency: %s", err)
	}

	for _, d := range []float64{0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500} {
		if err = eur.AddDenomination(d); err != nil {
			log.Fatalf("error while adding denomination: %s", err)
		}
	}

	coins, count, err := currency.Change(*amount, eur)
	if err != nil {
		log.Fatalf("error while making change: %s", err)
	}

	fmt.Printf("%.2f %s = %d coins: %v\n", *amount, eur.Code(), count, coins)
}
