package inquire

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	empty := ""

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "nil", value: nil, expected: true},
		{name: "empty string", value: "", expected: true},
		{name: "string", value: "a", expected: false},
		{name: "whitespace string", value: " ", expected: false},
		{name: "empty slice", value: []string{}, expected: true},
		{name: "nil slice", value: []int(nil), expected: true},
		{name: "slice", value: []int{0}, expected: false},
		{name: "empty map", value: map[string]int{}, expected: true},
		{name: "nil pointer", value: nilPtr, expected: true},
		{name: "pointer to empty string", value: &empty, expected: false},
		{name: "false", value: false, expected: false},
		{name: "zero", value: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, isBlank(tt.value))
		})
	}
}

func TestValidateAnswerPipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       int
		present   bool
		options   []Option
		wantValue int
		wantOK    bool
		wantErr   string
	}{
		{
			name:      "absent with default",
			present:   false,
			options:   []Option{WithDefault(7)},
			wantValue: 7,
			wantOK:    true,
		},
		{
			name:      "zero is an answer",
			raw:       0,
			present:   true,
			options:   []Option{WithDefault(7)},
			wantValue: 0,
			wantOK:    true,
		},
		{
			name:    "rejected",
			raw:     -1,
			present: true,
			options: []Option{WithValidator(func(_ context.Context, v int) error {
				if v < 0 {
					return errors.New("must not be negative")
				}
				return nil
			})},
			wantErr: "must not be negative",
		},
		{
			name:    "transformed",
			raw:     3,
			present: true,
			options: []Option{WithTransform(func(_ context.Context, v int) (int, error) {
				return v * 10, nil
			})},
			wantValue: 30,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newForTesting[int](t, &numberWidget{}, newMockInput(), tt.options...)
			s.state = newState[int]()

			require.NoError(t, s.validateAnswer(context.Background(), tt.raw, tt.present))
			assert.Equal(t, tt.wantOK, s.state.hasValue)
			assert.Equal(t, tt.wantValue, s.state.value)
			assert.Equal(t, tt.wantErr, s.state.err)
		})
	}
}

func TestValidateAnswerClearsPreviousOutcome(t *testing.T) {
	t.Parallel()

	s, _ := newForTesting[int](t, &numberWidget{}, newMockInput())
	s.state = newState[int]()
	s.state.accept(5)

	transformErr := errors.New("boom")
	s.settings.Transform = func(context.Context, int) (int, error) { return 0, transformErr }

	err := s.validateAnswer(context.Background(), 9, true)
	require.ErrorIs(t, err, transformErr)
	assert.False(t, s.state.hasValue, "a failed attempt must not leave the previous answer behind")
	assert.Zero(t, s.state.value)
}

// numberWidget is a minimal int widget with no key handling.
type numberWidget struct{}

func (numberWidget) Value() (int, bool) { return 0, false }

func (numberWidget) Validate(context.Context, int) error { return nil }

func (numberWidget) Transform(_ context.Context, v int) (int, error) { return v, nil }

func (numberWidget) Format(int) string { return "n" }
