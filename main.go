package main

import (
	"log"

	"github.com/easygen/go-easy-generation/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
