package main

import (
	"fmt"
	"log"
	"os"
)

func restoreLinks() {
	panic("boom") // want `panic is forbidden outside main function`
}

func reportError(err error) {
	fmt.Println(err)                     // want `fmt\.Println is forbidden outside main function`
	log.Fatalf("unrecoverable: %v", err) // want `log\.Fatalf is forbidden outside main function`
}

func shutdown() {
	os.Exit(1) // want `os\.Exit is forbidden outside main function`
}
