// Package inquire is the engine behind interactive command-line prompts.
//
// A prompt is a widget (which knows how to build, check and show one kind of
// answer) driven by a Session (which owns the terminal). The session renders
// the prompt in place, reads raw keypresses, runs the answer through
// validation and either redraws with an inline error or prints a final
// confirmation line and returns the answer.
//
// Key Features:
//
//   - Flicker-free in-place redraw that accounts for terminal width, line
//     wrapping, wide characters and color escape sequences
//   - Raw mode held only for the duration of each read, never left on
//   - Cbreak mode, leaving Ctrl+C to the operating system
//   - Validate and transform pipeline with default values
//   - Configurable submit keys
//   - Headless runs with injected answers for tests and scripted use
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/inquire"
//	)
//
//	func main() {
//		name, err := inquire.Ask(inquire.NewText(), "What is your name?",
//			inquire.WithDefault("Ann"),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s\n", name)
//	}
//
// Validation:
//
// A validator returns nil to accept an answer, ErrInvalidAnswer to reject it
// with a generic message, or any other error whose text is shown under the
// prompt. The user then edits the answer and submits again.
//
//	inquire.WithValidator(func(_ context.Context, name string) error {
//		if len(name) < 2 {
//			return errors.New("too short")
//		}
//		return nil
//	})
//
// When the user submits an empty answer and a default is configured, the
// default is accepted without calling the validator or the transform.
//
// Key Bindings:
//
// Enter and Return submit. Ctrl+C erases the prompt, shows the cursor and
// exits the process with status 130. Other keys go to the widget. The submit
// keys can be replaced:
//
//	inquire.WithKeys(inquire.KeyBindings{inquire.ActionSubmit: {"y"}})
//
// Headless Use:
//
// An Injector supplies the answer without opening the terminal. The answer
// goes through the same validation; if it is rejected the session returns
// ErrInjectedValueRejected instead of waiting for input.
//
//	answer, err := inquire.Ask(inquire.NewConfirm(), "Continue?",
//		inquire.WithInjectedValue(true),
//		inquire.WithOutput(io.Discard),
//	)
//
// Error Handling:
//
//   - ErrEOF: the input was closed
//   - ErrInjectedValueRejected: an injected answer failed validation
//   - ErrInjectedValueType: an injected answer has the wrong type
//   - ErrInternal: a widget broke its contract
//   - context.Canceled, context.DeadlineExceeded: from RunWithContext
//
// Thread Safety:
//
// Sessions are not thread-safe and only one session should use a terminal at
// a time. An Injector may be filled from another goroutine before the
// session reads from it.
package inquire
