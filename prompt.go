// Package inquire provides the engine behind interactive terminal prompts.
// It renders a prompt in place, reads raw keypresses, validates answers and
// runs headless when an answer is injected.
package inquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Common errors
var (
	// ErrEOF is returned when the input reaches end of stream or keeps
	// returning nothing.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when Ctrl+C is pressed and the process exit
	// hook returns instead of terminating the process.
	ErrInterrupted = errors.New("interrupted")
	// ErrInvalidAnswer is returned by a validator to reject an answer with a
	// generic message.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrInjectedValueRejected is returned when an injected answer fails
	// validation, since there is nobody to type a corrected one.
	ErrInjectedValueRejected = errors.New("injected answer rejected")
	// ErrInjectedValueType is returned when an injected answer does not have
	// the type of the prompt.
	ErrInjectedValueType = errors.New("injected answer has wrong type")
	// ErrInternal is returned when a widget breaks its contract, for example
	// when a submit reports an answer that was never stored.
	ErrInternal = errors.New("internal prompt error")
	// ErrNoMessage is returned by New when the message is empty.
	ErrNoMessage = errors.New("prompt message is required")
	// ErrNoWidget is returned by New when the widget is nil.
	ErrNoWidget = errors.New("prompt widget is required")
	// ErrOptionType is returned by New when a typed option does not match
	// the type of the widget.
	ErrOptionType = errors.New("option type does not match prompt type")
)

// ExitInterrupt is the exit status used when the user presses Ctrl+C.
const ExitInterrupt = 130

const (
	readBufferSize = 64
	// maxEmptyReads bounds consecutive reads that decode to nothing before
	// the input is treated as exhausted.
	maxEmptyReads = 32
)

// Widget is the behavior a concrete prompt supplies to the engine.
//
// T is the answer type. The engine owns rendering, input and the
// validate/transform pipeline; the widget only provides the current answer and
// the default rules for checking, converting and displaying it.
type Widget[T any] interface {
	// Value returns the answer built so far. ok is false when the user has
	// not given one, in which case a configured default applies.
	Value() (value T, ok bool)
	// Validate is used unless WithValidator is given.
	Validate(ctx context.Context, value T) error
	// Transform is used unless WithTransform is given.
	Transform(ctx context.Context, value T) (T, error)
	// Format renders an answer for the confirmation line.
	Format(value T) string
}

// Bodier is implemented by widgets that draw lines below the message, such
// as a list of choices.
type Bodier interface {
	Body(ctx context.Context) (string, error)
}

// KeyHandler is implemented by widgets that react to keys other than submit
// and interrupt.
type KeyHandler interface {
	HandleKey(ev KeyEvent)
}

// Inliner is implemented by widgets that echo input on the message line.
// cursor is the rune offset in text where the terminal cursor belongs.
type Inliner interface {
	Inline() (text string, cursor int)
}

// Config holds the per-call configuration of a prompt.
type Config struct {
	Message     string       // Question shown to the user (required)
	HideDefault bool         // Do not show the default next to the message
	Hint        string       // Shown below the prompt when there is no error
	Pointer     string       // Glyph between the message and the answer (default "›")
	Indent      string       // Indentation of the footer line (default two spaces)
	Prefix      string       // Glyph in front of the message (default "?")
	Keys        KeyBindings  // Overrides per action; nil for defaults
	Cbreak      bool         // Use cbreak instead of raw mode
	Input       Input        // Key source (nil for the controlling terminal)
	Output      io.Writer    // Render target (nil for stdout)
	ColorScheme *ColorScheme // Color scheme (nil for default)
	Decoder     Decoder      // Key decoder (nil for DefaultDecoder)
	Injector    *Injector    // Injected answer source (nil for none)

	defaultValue any
	hasDefault   bool
	validate     any
	transform    any
}

// Option represents a configuration option for a prompt
type Option func(*Config)

// WithDefault sets the answer used when the user submits nothing. Defaults
// bypass validation and transformation.
func WithDefault[T any](value T) Option {
	return func(c *Config) {
		c.defaultValue = value
		c.hasDefault = true
	}
}

// WithHideDefault hides the default value next to the message
func WithHideDefault(hide bool) Option {
	return func(c *Config) {
		c.HideDefault = hide
	}
}

// WithValidator replaces the widget's validation.
//
// Example:
//
//	inquire.WithValidator(func(_ context.Context, name string) error {
//		if len(name) < 2 {
//			return errors.New("too short")
//		}
//		return nil
//	})
func WithValidator[T any](validate func(ctx context.Context, value T) error) Option {
	return func(c *Config) {
		c.validate = ValidateFunc[T](validate)
	}
}

// WithTransform replaces the widget's transformation of accepted answers.
func WithTransform[T any](transform func(ctx context.Context, value T) (T, error)) Option {
	return func(c *Config) {
		c.transform = TransformFunc[T](transform)
	}
}

// WithHint sets the text shown below the prompt
func WithHint(hint string) Option {
	return func(c *Config) {
		c.Hint = hint
	}
}

// WithPointer sets the glyph between the message and the answer
func WithPointer(pointer string) Option {
	return func(c *Config) {
		c.Pointer = pointer
	}
}

// WithIndent sets the indentation of the hint and error line
func WithIndent(indent string) Option {
	return func(c *Config) {
		c.Indent = indent
	}
}

// WithPrefix sets the glyph in front of the message
func WithPrefix(prefix string) Option {
	return func(c *Config) {
		c.Prefix = prefix
	}
}

// WithKeys overrides key bindings. Every action present in keys replaces the
// default keys of that action entirely.
//
// Example:
//
//	// Only "y" submits; Enter no longer does.
//	inquire.WithKeys(inquire.KeyBindings{inquire.ActionSubmit: {"y"}})
func WithKeys(keys KeyBindings) Option {
	return func(c *Config) {
		c.Keys = keys
	}
}

// WithCbreak reads keys in cbreak mode, leaving Ctrl+C to the OS
func WithCbreak(cbreak bool) Option {
	return func(c *Config) {
		c.Cbreak = cbreak
	}
}

// WithInput sets the key source
func WithInput(input Input) Option {
	return func(c *Config) {
		c.Input = input
	}
}

// WithOutput sets the render target
func WithOutput(output io.Writer) Option {
	return func(c *Config) {
		c.Output = output
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithDecoder sets the key decoder
func WithDecoder(decoder Decoder) Option {
	return func(c *Config) {
		c.Decoder = decoder
	}
}

// WithInjector takes the answer from inj when it holds one
func WithInjector(inj *Injector) Option {
	return func(c *Config) {
		c.Injector = inj
	}
}

// WithInjectedValue answers the prompt with value without reading the terminal
func WithInjectedValue(value any) Option {
	return func(c *Config) {
		inj := NewInjector()
		inj.Set(value)
		c.Injector = inj
	}
}

// Settings is the resolved configuration of a session. It is built once by
// New and never modified afterwards.
type Settings[T any] struct {
	Message     string
	Default     T
	HasDefault  bool
	HideDefault bool
	Validate    ValidateFunc[T]
	Transform   TransformFunc[T]
	Hint        string
	Pointer     string
	Indent      string
	Prefix      string
	Keys        KeyBindings
	Cbreak      bool
	Input       Input
	Output      io.Writer
	ColorScheme *ColorScheme
	Decoder     Decoder
	Injector    *Injector
}

// state is the mutable part of one Run.
type state[T any] struct {
	value      T
	hasValue   bool
	err        string
	firstRun   bool
	cursor     position // where the previous frame left the cursor
	lines      int      // visual lines of the previous frame
	injected   bool     // an injected answer was consumed
	emptyReads int
	pending    []byte // bytes of a key cut off by the end of the previous read
}

func newState[T any]() state[T] {
	return state[T]{firstRun: true}
}

func (st *state[T]) accept(value T) {
	st.value = value
	st.hasValue = true
	st.err = ""
}

func (st *state[T]) reject(message string) {
	var zero T
	st.value = zero
	st.hasValue = false
	st.err = message
}

func (st *state[T]) clearOutcome() {
	st.reject("")
}

// Session runs one prompt: it renders, reads keys, validates and returns the
// answer.
//
// A Session is not safe for concurrent use and only one session should use a
// terminal at a time.
type Session[T any] struct {
	settings  Settings[T]
	widget    Widget[T]
	renderer  *renderer
	input     Input // resolved lazily, headless runs never open a terminal
	ownsInput bool
	openInput func() (Input, error)
	exit      func(code int)
	state     state[T]
}

// New creates a prompt session for widget with the given message and options.
//
// Example:
//
//	s, err := inquire.New(inquire.NewText(), "Name",
//		inquire.WithDefault("Ann"),
//		inquire.WithHint("your first name"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	name, err := s.Run()
func New[T any](widget Widget[T], message string, options ...Option) (*Session[T], error) {
	config := Config{
		Message: message,
	}

	// Apply options
	for _, option := range options {
		option(&config)
	}

	return newFromConfig(widget, config)
}

func newFromConfig[T any](widget Widget[T], config Config) (*Session[T], error) {
	if widget == nil {
		return nil, ErrNoWidget
	}
	if strings.TrimSpace(config.Message) == "" {
		return nil, ErrNoMessage
	}

	settings := Settings[T]{
		Message:     config.Message,
		HideDefault: config.HideDefault,
		Hint:        config.Hint,
		Pointer:     config.Pointer,
		Indent:      config.Indent,
		Prefix:      config.Prefix,
		Keys:        DefaultKeyBindings().merge(config.Keys),
		Cbreak:      config.Cbreak,
		Input:       config.Input,
		Output:      config.Output,
		ColorScheme: config.ColorScheme,
		Decoder:     config.Decoder,
		Injector:    config.Injector,
	}

	if config.hasDefault {
		value, ok := config.defaultValue.(T)
		if !ok {
			return nil, optionTypeError[T]("default", config.defaultValue)
		}
		settings.Default = value
		settings.HasDefault = true
	}
	if config.validate != nil {
		validate, ok := config.validate.(ValidateFunc[T])
		if !ok {
			return nil, optionTypeError[T]("validator", config.validate)
		}
		settings.Validate = validate
	}
	if config.transform != nil {
		transform, ok := config.transform.(TransformFunc[T])
		if !ok {
			return nil, optionTypeError[T]("transform", config.transform)
		}
		settings.Transform = transform
	}

	// Set defaults
	if settings.Pointer == "" {
		settings.Pointer = "›"
	}
	if settings.Indent == "" {
		settings.Indent = "  "
	}
	if settings.Prefix == "" {
		settings.Prefix = "?"
	}
	if settings.Decoder == nil {
		settings.Decoder = DefaultDecoder{}
	}

	var columns func() int
	if settings.Output == nil {
		settings.Output = defaultOutput()
		columns = columnsOf(os.Stdout)
		if settings.ColorScheme == nil && !isInteractiveWriter(os.Stdout) {
			settings.ColorScheme = ThemePlain
		}
	} else {
		columns = columnsOf(settings.Output)
		if settings.ColorScheme == nil && !isInteractiveWriter(settings.Output) {
			settings.ColorScheme = ThemePlain
		}
	}
	if settings.ColorScheme == nil {
		settings.ColorScheme = ThemeDefault
	}

	return &Session[T]{
		settings:  settings,
		widget:    widget,
		renderer:  newRenderer(settings.Output, settings.ColorScheme, columns),
		input:     settings.Input,
		openInput: openTTYInput,
		exit:      os.Exit,
	}, nil
}

func optionTypeError[T any](name string, got any) error {
	var want T
	return fmt.Errorf("%w: %s is %T, prompt answers are %T", ErrOptionType, name, got, want)
}

func openTTYInput() (Input, error) {
	return newTTYInput()
}

// Ask creates a session, runs it once and closes it.
func Ask[T any](widget Widget[T], message string, options ...Option) (T, error) {
	var zero T
	s, err := New(widget, message, options...)
	if err != nil {
		return zero, err
	}
	defer s.Close()
	return s.Run()
}

// Settings returns a copy of the resolved configuration of the session.
func (s *Session[T]) Settings() Settings[T] {
	settings := s.settings
	settings.Keys = s.settings.Keys.merge(nil)
	return settings
}

// Run shows the prompt and returns the accepted answer.
//
// This is a convenience method that calls RunWithContext with a background context.
func (s *Session[T]) Run() (T, error) {
	return s.RunWithContext(context.Background())
}

// RunWithContext shows the prompt and returns the accepted answer.
//
// The loop renders, reads one batch of keys and repeats until an answer
// passes validation. The context is checked between reads and passed to the
// validator, the transform and the widget body; a read that is already
// blocked is not interrupted.
//
// Ctrl+C erases the prompt, restores the cursor and exits the process with
// status 130.
func (s *Session[T]) RunWithContext(ctx context.Context) (T, error) {
	var zero T
	s.state = newState[T]()
	defer s.settings.Injector.Release()

	for {
		if err := ctx.Err(); err != nil {
			s.abort()
			return zero, err
		}
		if err := s.render(ctx); err != nil {
			s.abort()
			return zero, fmt.Errorf("failed to render prompt: %w", err)
		}
		produced, err := s.read(ctx)
		if err != nil {
			s.abort()
			return zero, err
		}
		if produced {
			break
		}
	}

	if !s.state.hasValue {
		s.abort()
		return zero, ErrInternal
	}
	if err := s.succeed(); err != nil {
		return zero, fmt.Errorf("failed to render answer: %w", err)
	}
	return s.state.value, nil
}

// Close releases the terminal opened by the session, if any. It is safe to
// call Close multiple times.
func (s *Session[T]) Close() error {
	if !s.ownsInput {
		return nil
	}
	s.ownsInput = false
	if c, ok := s.input.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// render draws the current state of the prompt.
func (s *Session[T]) render(ctx context.Context) error {
	lead := s.messageLine()
	inline, cursor := "", 0
	if in, ok := s.widget.(Inliner); ok {
		inline, cursor = in.Inline()
	}

	body := ""
	if b, ok := s.widget.(Bodier); ok {
		var err error
		if body, err = b.Body(ctx); err != nil {
			return err
		}
	}

	parts := []string{lead + s.paint(s.colors().Answer, inline)}
	if body != "" {
		parts = append(parts, body)
	}
	if footer := s.footer(); footer != "" {
		parts = append(parts, footer)
	}
	content := strings.Join(parts, "\n")

	columns := s.renderer.columns()
	repaint := !s.state.firstRun || s.state.err != ""
	pos := s.cursorPosition(lead, inline, cursor, columns)

	lines, err := s.renderer.draw(content, repaint, s.state.cursor, pos, columns)
	if err != nil {
		return err
	}
	s.state.firstRun = false
	s.state.cursor = pos
	s.state.lines = lines
	return nil
}

// messageLine returns the first line of the block up to and including the
// pointer glyph and the separating space.
func (s *Session[T]) messageLine() string {
	colors := s.colors()
	return s.paint(colors.Prefix, s.settings.Prefix) + " " +
		s.paint(colors.Message, s.settings.Message) +
		s.defaultAnnotation() + " " +
		s.paint(colors.Pointer, s.settings.Pointer) + " "
}

func (s *Session[T]) defaultAnnotation() string {
	if !s.settings.HasDefault || s.settings.HideDefault {
		return ""
	}
	return " " + s.paint(s.colors().Default, "("+s.widget.Format(s.settings.Default)+")")
}

func (s *Session[T]) footer() string {
	switch {
	case s.state.err != "":
		return s.settings.Indent + s.paint(s.colors().Error, "✖ "+s.state.err)
	case s.settings.Hint != "":
		return s.settings.Indent + s.paint(s.colors().Hint, s.settings.Hint)
	default:
		return ""
	}
}

// cursorPosition returns where the cursor belongs: at the widget's cursor
// inside the inline text, or at the end of the message line.
func (s *Session[T]) cursorPosition(lead, inline string, cursor, columns int) position {
	runes := []rune(inline)
	cursor = max(0, min(cursor, len(runes)))
	return wrapPosition(printableWidth(lead+string(runes[:cursor])), printableWidth(lead+inline), columns)
}

// read acquires one round of input. It reports whether a submit passed
// validation.
func (s *Session[T]) read(ctx context.Context) (bool, error) {
	if raw, ok := s.settings.Injector.take(); ok {
		s.state.injected = true
		return s.submitInjected(ctx, raw)
	}
	if s.state.injected {
		return false, fmt.Errorf("%w: %s", ErrInjectedValueRejected, s.state.err)
	}

	events, err := s.readEvents()
	if err != nil {
		return false, err
	}
	if len(events) == 0 {
		s.state.emptyReads++
		if s.state.emptyReads >= maxEmptyReads {
			return false, ErrEOF
		}
		return false, nil
	}
	s.state.emptyReads = 0

	for _, ev := range events {
		submitted, err := s.handleEvent(ctx, ev)
		if err != nil {
			return false, err
		}
		if submitted && s.state.err == "" {
			return true, nil
		}
	}
	return false, nil
}

func (s *Session[T]) submitInjected(ctx context.Context, raw any) (bool, error) {
	if raw == nil {
		var zero T
		if err := s.validateAnswer(ctx, zero, false); err != nil {
			return false, err
		}
		return s.state.err == "", nil
	}
	value, ok := raw.(T)
	if !ok {
		var want T
		return false, fmt.Errorf("%w: got %T, want %T", ErrInjectedValueType, raw, want)
	}
	if err := s.validateAnswer(ctx, value, true); err != nil {
		return false, err
	}
	return s.state.err == "", nil
}

// readEvents performs one raw read and decodes it. Raw mode is held only for
// the duration of the read. A key cut off by a full buffer is decoded with the
// next read.
func (s *Session[T]) readEvents() (events []KeyEvent, err error) {
	input, err := s.resolveInput()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	if input.IsInteractive() {
		if err := input.SetRawMode(true, s.settings.Cbreak); err != nil {
			return nil, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if rerr := input.SetRawMode(false, s.settings.Cbreak); rerr != nil {
				if err == nil {
					err = fmt.Errorf("failed to exit raw mode: %w", rerr)
					return
				}
				fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", rerr)
			}
		}()
	}

	buf := make([]byte, readBufferSize)
	n, err := input.Read(buf)
	data := make([]byte, 0, len(s.state.pending)+n)
	data = append(data, s.state.pending...)
	data = append(data, buf[:n]...)
	s.state.pending = nil
	if n == len(buf) && err == nil {
		// A full buffer may end inside a key; the rest arrives with the next read.
		cut := completeLength(data)
		s.state.pending = append([]byte(nil), data[cut:]...)
		data = data[:cut]
	}
	if len(data) > 0 {
		events = s.settings.Decoder.Decode(data)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(events) > 0 {
				return events, nil
			}
			return nil, ErrEOF
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return events, nil
}

func (s *Session[T]) resolveInput() (Input, error) {
	if s.input != nil {
		return s.input, nil
	}
	input, err := s.openInput()
	if err != nil {
		return nil, err
	}
	s.input = input
	s.ownsInput = true
	return input, nil
}

// handleEvent dispatches one key. It reports whether the key submitted.
func (s *Session[T]) handleEvent(ctx context.Context, ev KeyEvent) (bool, error) {
	if ev.isInterrupt() {
		s.interrupt()
		return false, ErrInterrupted
	}
	if s.settings.Keys.Matches(ActionSubmit, ev) {
		return true, s.submit(ctx)
	}
	if h, ok := s.widget.(KeyHandler); ok {
		h.HandleKey(ev)
	}
	return false, nil
}

// submit runs the widget's current answer through validation.
func (s *Session[T]) submit(ctx context.Context) error {
	value, ok := s.widget.Value()
	return s.validateAnswer(ctx, value, ok)
}

// interrupt erases the prompt, restores the cursor and exits the process.
func (s *Session[T]) interrupt() {
	_ = s.renderer.erase(s.state.cursor)
	_ = s.renderer.showCursor()
	s.exit(ExitInterrupt)
}

// succeed replaces the prompt with the confirmation line.
func (s *Session[T]) succeed() error {
	if err := s.renderer.erase(s.state.cursor); err != nil {
		return err
	}
	colors := s.colors()
	line := s.paint(colors.Prefix, s.settings.Prefix) + " " +
		s.paint(colors.Message, s.settings.Message) +
		s.defaultAnnotation() + " " +
		s.paint(colors.Pointer, s.settings.Pointer) + " " +
		s.paint(colors.Answer, s.widget.Format(s.state.value))
	return s.renderer.writeLine(line)
}

// abort leaves the last frame on screen and moves below it.
func (s *Session[T]) abort() {
	if s.state.firstRun {
		return
	}
	if err := s.renderer.finish(s.state.cursor, s.state.lines); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to restore cursor: %v\n", err)
	}
}

func (s *Session[T]) colors() *ColorScheme {
	return s.settings.ColorScheme
}

func (s *Session[T]) paint(c Color, text string) string {
	return s.settings.ColorScheme.paint(c, text)
}
