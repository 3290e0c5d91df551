// Package main demonstrates answering prompts without a terminal, as a script
// or a test would.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nao1215/inquire"
)

func main() {
	inj := inquire.NewInjector()

	// Answers can come from anywhere: flags, environment, a test table.
	inj.Set(os.Getenv("INQUIRE_NAME"))
	name, err := inquire.Ask(inquire.NewText(), "Name",
		inquire.WithDefault("Ann"),
		inquire.WithInjector(inj),
		inquire.WithOutput(os.Stdout),
	)
	if err != nil {
		log.Fatal(err)
	}

	proceed, err := inquire.Ask(inquire.NewConfirm(), "Proceed?",
		inquire.WithInjectedValue(true),
		inquire.WithOutput(io.Discard),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("name=%s proceed=%t\n", name, proceed)

	// A rejected injected answer fails instead of waiting for input.
	_, err = inquire.Ask(inquire.NewText(), "Email",
		inquire.WithInjectedValue("not-an-email"),
		inquire.WithValidator(func(context.Context, string) error {
			return inquire.ErrInvalidAnswer
		}),
		inquire.WithOutput(io.Discard),
	)
	if errors.Is(err, inquire.ErrInjectedValueRejected) {
		fmt.Println("email rejected:", err)
	}
}
