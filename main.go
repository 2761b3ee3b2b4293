package main

import (
	"os"

	"github.com/tabnote/tabnote/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
