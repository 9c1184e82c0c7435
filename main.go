package main

import (
	"os"

	"github.com/cartismo/default-theme/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
