package inquire

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// invalidAnswerMessage is shown when a validator rejects an answer without
// saying why.
const invalidAnswerMessage = "Invalid answer"

// ValidateFunc checks an answer. It returns nil to accept the answer,
// ErrInvalidAnswer to reject it with a generic message, or any other error
// whose text is shown to the user as is.
type ValidateFunc[T any] func(ctx context.Context, value T) error

// TransformFunc converts an accepted answer into the value the prompt
// returns. An error aborts the prompt.
type TransformFunc[T any] func(ctx context.Context, value T) (T, error)

// validateAnswer runs raw through the default short-circuit, the validator and
// the transform. Rejections are recorded in the session state; only transform
// failures are returned.
func (s *Session[T]) validateAnswer(ctx context.Context, raw T, present bool) error {
	if s.settings.HasDefault && (!present || isBlank(raw)) {
		s.state.accept(s.settings.Default)
		return nil
	}

	s.state.clearOutcome()

	validate := s.settings.Validate
	if validate == nil {
		validate = s.widget.Validate
	}
	if err := validate(ctx, raw); err != nil {
		if errors.Is(err, ErrInvalidAnswer) {
			s.state.reject(invalidAnswerMessage)
		} else {
			s.state.reject(err.Error())
		}
		return nil
	}

	transform := s.settings.Transform
	if transform == nil {
		transform = s.widget.Transform
	}
	value, err := transform(ctx, raw)
	if err != nil {
		return fmt.Errorf("failed to transform answer: %w", err)
	}
	s.state.accept(value)
	return nil
}

// isBlank reports whether v carries no answer: nil, an empty string, or an
// empty slice or map. Booleans and numbers are never blank.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
