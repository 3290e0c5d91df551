// Package main demonstrates a masked prompt read in cbreak mode.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/inquire"
)

func main() {
	fmt.Println("Password Example")
	fmt.Println("Input is masked; Ctrl+C is handled by the terminal")
	fmt.Println()

	password, err := inquire.Ask(inquire.NewPassword(), "Password",
		inquire.WithCbreak(true),
		inquire.WithValidator(func(_ context.Context, p string) error {
			if len(p) < 8 {
				return fmt.Errorf("must be at least 8 characters, got %d", len(p))
			}
			if !strings.ContainsAny(p, "0123456789") {
				return inquire.ErrInvalidAnswer
			}
			return nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Accepted a password of %d characters\n", len(password))
}
