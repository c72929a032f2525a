package main

import (
	"log"
	"os"

	"github.com/rog-golang-buddies/userboard/internal/commands"
)

func main() {
	if err := commands.NewApp().Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
