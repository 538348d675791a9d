package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/DAA2020-team/midterm-project/hashmap"
)

// main - Performs a number of inserts followed by a number of deletes against a double
// hashing hash map and reports size, capacity and the cumulative collision count after
// each phase.
func main() {
	inserts := flag.Int("inserts", 70, "number of entries to insert")
	deletes := flag.Int("deletes", 30, "number of entries to delete again")
	capacity := flag.Int64("capacity", 17, "initial table capacity, rounded up to a prime")
	loadFactor := flag.Float64("loadfactor", 0.75, "load factor threshold triggering a resize")
	flag.Parse()

	if *deletes > *inserts {
		log.Fatalf("cannot delete %d entries out of %d inserted", *deletes, *inserts)
	}

	m, err := hashmap.New[int](*capacity, hashmap.WithLoadFactor(*loadFactor))
	if err != nil {
		log.Fatalf("error while creating hash map: %s", err)
	}

	for i := 0; i < *inserts; i++ {
		err = m.Insert(fmt.Sprintf("key-%04d", i), i)
		if err != nil {
			log.Fatalf("error while inserting entry %d: %s", i, err)
		}
	}
	fmt.Printf("after %d inserts: size=%d capacity=%d collisions=%d\n",
		*inserts, m.Len(), m.Capacity(), m.Collisions())

	for i := 0; i < *deletes; i++ {
		err = m.Delete(fmt.Sprintf("key-%04d", i))
		if err != nil {
			log.Fatalf("error while deleting entry %d: %s", i, err)
		}
	}
	fmt.Printf("after %d deletes: size=%d capacity=%d collisions=%d\n",
		*deletes, m.Len(), m.Capacity(), m.Collisions())
}
