package main

import (
	"log"

	"github.com/cvmcore/guestid/flag"
)

func main() {
	if err := flag.Parse(); err != nil {
		log.Fatal(err)
	}
}
