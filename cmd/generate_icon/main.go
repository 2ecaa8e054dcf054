package main

import (
	"flag"
	"fmt"
	"log"

	"seatbench/pkg/ui"
)

func main() {
	out := flag.String("o", "Icon.png", "output file")
	flag.Parse()

	if err := ui.GenerateIcon(*out); err != nil {
		log.Fatal("Failed to generate icon:", err)
	}
	fmt.Println("Icon generated successfully:", *out)
}
