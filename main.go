package main

import (
	"log"

	"github.com/plantops/maintcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
