// Package main demonstrates basic usage of the inquire library.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/nao1215/inquire"
)

func main() {
	fmt.Println("Basic Prompt Example")
	fmt.Println("Press Enter to accept the default, Ctrl+C to quit")
	fmt.Println()

	// Create a text prompt with a default and a validator
	s, err := inquire.New(inquire.NewText(), "What is your name?",
		inquire.WithDefault("Ann"),
		inquire.WithHint("at least two letters"),
		inquire.WithValidator(func(_ context.Context, name string) error {
			if utf8.RuneCountInString(name) < 2 {
				return errors.New("too short")
			}
			return nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	name, err := s.Run()
	if err != nil {
		if errors.Is(err, inquire.ErrEOF) {
			fmt.Println("\nGoodbye!")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("Hello, %s!\n", name)
}
