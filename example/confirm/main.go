// Package main demonstrates a yes/no prompt with custom submit keys.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/inquire"
)

func main() {
	fmt.Println("Confirm Example")
	fmt.Println("Type y or n, Left/Right to toggle, Enter or Space to submit")
	fmt.Println()

	keys := inquire.DefaultKeyBindings()
	keys.Bind(inquire.ActionSubmit, "enter", "return", "space")

	ok, err := inquire.Ask(inquire.NewConfirm(), "Deploy to production?",
		inquire.WithDefault(false),
		inquire.WithKeys(keys),
		inquire.WithColorScheme(inquire.ThemeDracula),
	)
	if err != nil {
		log.Fatal(err)
	}

	if ok {
		fmt.Println("Deploying...")
		return
	}
	fmt.Println("Cancelled")
}
