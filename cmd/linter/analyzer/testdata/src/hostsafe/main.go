package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	fmt.Println("starting")

	if len(os.Args) < 2 {
		log.Fatal("missing argument")
	}

	os.Exit(0)
}
