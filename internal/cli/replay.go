package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"imecore/internal/giokey"
	"imecore/internal/ime"
	"imecore/internal/journal"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Transport string
	Form      string
	File      string
	Record    string
	Gio       bool
}

// ReplayScript is a scripted IME session. Each step is one client request
// or one input method callback.
type ReplayScript struct {
	// Form overrides --form when set.
	Form string `yaml:"form"`

	// Text is the initial content of every surface's field.
	Text string `yaml:"text"`

	Steps []ReplayStep `yaml:"steps"`
}

// ReplayStep is one scripted operation. Op selects which fields apply.
type ReplayStep struct {
	Op      string `yaml:"op"`
	Surface uint64 `yaml:"surface"`

	// enable, update
	Capabilities []string  `yaml:"capabilities"`
	Hints        []string  `yaml:"hints"`
	Purpose      string    `yaml:"purpose"`
	Area         []float64 `yaml:"area"`

	// key
	Key     string `yaml:"key"`
	Release bool   `yaml:"release"`

	// preedit_draw, preedit_caret, commit, expect
	Text    *string `yaml:"text"`
	Caret   *int    `yaml:"caret"`
	Changed []int   `yaml:"changed"`

	// delete_surrounding
	Before int `yaml:"before"`
	After  int `yaml:"after"`

	// select
	Select []int `yaml:"select"`

	// expect
	Preedit *string `yaml:"preedit"`
}

// ReplayStepResult is what one step produced.
type ReplayStepResult struct {
	Index   int      `json:"index"`
	Op      string   `json:"op"`
	Surface uint64   `json:"surface"`
	Key     string   `json:"key,omitempty"`
	Typed   string   `json:"typed,omitempty"`
	Events  []string `json:"events,omitempty"`
	Gio     []string `json:"gio,omitempty"`
}

// ReplaySurface is the final state of one surface's field.
type ReplaySurface struct {
	Surface uint64 `json:"surface"`
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	Preedit string `json:"preedit,omitempty"`
}

// ReplayResult holds the transcript of a replay.
type ReplayResult struct {
	Transport string             `json:"transport"`
	Form      string             `json:"form"`
	Steps     []ReplayStepResult `json:"steps"`
	Surfaces  []ReplaySurface    `json:"surfaces"`
	Failures  []string           `json:"failures,omitempty"`
}

func (r ReplayResult) renderText(w io.Writer) {
	fmt.Fprintf(w, "transport: %s, form: %s\n", r.Transport, r.Form)
	for _, s := range r.Steps {
		line := fmt.Sprintf("%3d %-18s #%d", s.Index, s.Op, s.Surface)
		if s.Key != "" {
			line += " " + s.Key
			if s.Typed != "" {
				line += fmt.Sprintf(" typed %q", s.Typed)
			}
		}
		if len(s.Events) > 0 {
			line += "  " + strings.Join(s.Events, " ")
		}
		fmt.Fprintln(w, line)
		for _, g := range s.Gio {
			fmt.Fprintf(w, "      gio %s\n", g)
		}
	}
	for _, s := range r.Surfaces {
		fmt.Fprintf(w, "surface %d: %q", s.Surface, s.Text)
		if s.Preedit != "" {
			fmt.Fprintf(w, " preedit %q", s.Preedit)
		}
		if s.Enabled {
			fmt.Fprint(w, " (enabled)")
		}
		fmt.Fprintln(w)
	}
	for _, f := range r.Failures {
		fmt.Fprintf(w, "FAIL %s\n", f)
	}
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Run a scripted IME session and print the delivered events",
		Long: `Run a YAML script of client requests and input method callbacks through
the input context manager, apply the delivered batches to a text field and
print the transcript.

Script operations:
  enable, update        capabilities, hints, purpose, area
  disable, destroy
  key                   key (X11 keysym name), release
  preedit_start, preedit_done
  preedit_draw          text, caret, changed [start, end]
  preedit_caret         caret
  commit                text
  delete_surrounding    before, after (bytes)
  flush
  select                select [caret, anchor] (bytes)
  expect                text, preedit

Exit codes:
  0 - Script ran and every expectation held
  1 - An expectation failed
  2 - Command error (unreadable script, bad step)

Examples:
  imectl replay session.yaml
  imectl replay --transport compose --gio session.yaml
  imectl replay --record ./journal.db --format json session.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Transport, "transport", ime.TransportNone, "transport (none|compose)")
	cmd.Flags().StringVar(&opts.Form, "form", "range", "preedit event form (range|legacy)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "compose file (default: built-in table)")
	cmd.Flags().StringVar(&opts.Record, "record", "", "record delivered batches to this journal database")
	cmd.Flags().BoolVar(&opts.Gio, "gio", false, "include the Gio events each step produced")

	return cmd
}

// ParseReplayScript decodes a script. Unknown keys are errors.
func ParseReplayScript(data []byte) (*ReplayScript, error) {
	var s ReplayScript
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read script", err)
	}
	script, err := ParseReplayScript(data)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid script", err)
	}
	if script.Form != "" {
		opts.Form = script.Form
	}
	form, err := ime.ParseEventForm(opts.Form)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid form", err)
	}
	if opts.Transport != ime.TransportNone && opts.Transport != ime.TransportCompose {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid transport %q: replay supports none and compose", opts.Transport))
	}

	log := opts.logger(cmd)
	table := ime.BuiltinComposeTable()
	if opts.File != "" {
		if table, err = ime.LoadComposeTable(ime.ComposeOptions{File: opts.File, Logger: log.Logger}); err != nil {
			return WrapExitError(ExitCommandError, "failed to load compose table", err)
		}
	}

	r := &replayer{text: script.Text, gio: opts.Gio, editors: make(map[ime.SurfaceID]*giokey.Editor)}
	var sink ime.EventSink = r
	if opts.Record != "" {
		j, err := journal.Open(opts.Record, journal.Options{Transport: opts.Transport, Form: form, Logger: log.Logger})
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open journal", err)
		}
		defer j.Close()
		sink = j.Tee(r)
	}

	factory, err := ime.SelectTransport(opts.Transport, ime.TransportConfig{
		ComposeTable: table,
		Logger:       log.Logger,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid transport", err)
	}
	r.m = ime.NewManager(ime.ManagerConfig{
		ComposeTable: table,
		Transport:    factory,
		Form:         form,
		Logger:       log.Logger,
	}, sink)
	defer r.m.Close()

	res := ReplayResult{Transport: r.m.TransportName(), Form: form.String()}
	for i, step := range script.Steps {
		out, failure, err := r.run(i+1, step)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("step %d (%s)", i+1, step.Op), err)
		}
		res.Steps = append(res.Steps, out)
		if failure != "" {
			res.Failures = append(res.Failures, failure)
		}
	}
	res.Surfaces = r.surfaces()

	if err := opts.formatter(cmd).Success(res); err != nil {
		return err
	}
	if len(res.Failures) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d expectation(s) failed", len(res.Failures)))
	}
	return nil
}

// replayer is the event sink of a replay: it routes batches to per-surface
// editors and records them on the running step.
type replayer struct {
	m       *ime.Manager
	text    string
	gio     bool
	editors map[ime.SurfaceID]*giokey.Editor
	cur     *ReplayStepResult
}

func (r *replayer) editor(id ime.SurfaceID) *giokey.Editor {
	e, ok := r.editors[id]
	if !ok {
		e = giokey.NewEditor(giokey.NewField(r.text))
		r.editors[id] = e
	}
	return e
}

func (r *replayer) Deliver(id ime.SurfaceID, events []ime.Event) {
	if r.cur != nil {
		for _, ev := range events {
			r.cur.Events = append(r.cur.Events, fmt.Sprint(ev))
		}
	}
	r.editor(id).Deliver(id, events)
}

func (r *replayer) run(index int, step ReplayStep) (ReplayStepResult, string, error) {
	id := ime.SurfaceID(step.Surface)
	if id == 0 {
		id = 1
	}
	out := ReplayStepResult{Index: index, Op: step.Op, Surface: uint64(id)}
	r.cur = &out
	ed := r.editor(id)

	var failure string
	switch step.Op {
	case "enable":
		caps, data, err := r.request(ed.Field, step)
		if err != nil {
			return out, "", err
		}
		req, ok := ime.NewEnableRequest(caps, data)
		if !ok {
			return out, "", errors.New("request data not covered by capabilities")
		}
		if err := r.m.Enable(id, req); err != nil {
			return out, "", err
		}
	case "update":
		_, data, err := r.request(ed.Field, step)
		if err != nil {
			return out, "", err
		}
		if err := r.m.Update(id, data); err != nil {
			return out, "", err
		}
	case "disable":
		r.m.Disable(id)
	case "destroy":
		r.m.DestroySurface(id)
	case "key":
		sym, err := ime.ParseKeySymbol(step.Key)
		if err != nil {
			return out, "", err
		}
		res := r.m.FeedKey(id, ime.KeyInput{Symbol: sym}, !step.Release)
		if res == nil {
			break
		}
		out.Key = res.Logical.String()
		if res.Consumed {
			out.Key += " consumed"
		}
		out.Typed = res.Text
		ed.Key(res, 0)
	case "preedit_start":
		r.m.OnPreeditStart(id)
	case "preedit_done":
		r.m.OnPreeditDone(id)
	case "preedit_draw":
		text := deref(step.Text)
		current, _ := r.m.Preedit(id)
		changed := ime.ScalarRange{Start: 0, End: utf8.RuneCountInString(current)}
		if len(step.Changed) == 2 {
			changed = ime.ScalarRange{Start: step.Changed[0], End: step.Changed[1]}
		} else if len(step.Changed) != 0 {
			return out, "", errors.New("changed needs [start, end]")
		}
		caret := -1
		if step.Caret != nil {
			caret = *step.Caret
		} else if text != "" {
			caret = utf8.RuneCountInString(text)
		}
		r.m.OnPreeditDraw(id, caret, changed, text)
	case "preedit_caret":
		if step.Caret == nil {
			return out, "", errors.New("preedit_caret needs caret")
		}
		r.m.OnPreeditCaret(id, *step.Caret)
	case "commit":
		r.m.OnCommit(id, deref(step.Text))
	case "delete_surrounding":
		r.m.OnDeleteSurrounding(id, step.Before, step.After)
	case "flush":
		r.m.OnFlush(id)
	case "select":
		if len(step.Select) != 2 {
			return out, "", errors.New("select needs [caret, anchor]")
		}
		ed.Field.SetSelection(step.Select[0], step.Select[1])
	case "expect":
		failure = expect(index, ed.Field, step)
	default:
		return out, "", fmt.Errorf("unknown op %q", step.Op)
	}

	for _, ev := range ed.Events() {
		if r.gio {
			out.Gio = append(out.Gio, describeGio(ev))
		}
	}
	r.cur = nil
	return out, failure, nil
}

func expect(index int, f *giokey.Field, step ReplayStep) string {
	var problems []string
	if step.Text != nil && f.Text() != *step.Text {
		problems = append(problems, fmt.Sprintf("text = %q, want %q", f.Text(), *step.Text))
	}
	if step.Preedit != nil {
		if preedit, _ := f.Preedit(); preedit != *step.Preedit {
			problems = append(problems, fmt.Sprintf("preedit = %q, want %q", preedit, *step.Preedit))
		}
	}
	if len(problems) == 0 {
		return ""
	}
	return fmt.Sprintf("step %d: %s", index, strings.Join(problems, ", "))
}

var (
	capabilityNames = map[string]func(ime.Capabilities) ime.Capabilities{
		"surrounding_text": ime.Capabilities.WithSurroundingText,
		"cursor_area":      ime.Capabilities.WithCursorArea,
		"hint_and_purpose": ime.Capabilities.WithHintAndPurpose,
	}
	hintNames = map[string]ime.Hint{
		"completion": ime.HintCompletion, "spellcheck": ime.HintSpellcheck,
		"auto_capitalization": ime.HintAutoCapitalization, "lowercase": ime.HintLowercase,
		"uppercase": ime.HintUppercase, "titlecase": ime.HintTitlecase,
		"hidden_text": ime.HintHiddenText, "sensitive_data": ime.HintSensitiveData,
		"latin": ime.HintLatin, "multiline": ime.HintMultiline,
	}
	purposeNames = map[string]ime.Purpose{
		"": ime.PurposeNormal, "normal": ime.PurposeNormal, "alpha": ime.PurposeAlpha,
		"digits": ime.PurposeDigits, "number": ime.PurposeNumber, "phone": ime.PurposePhone,
		"url": ime.PurposeURL, "email": ime.PurposeEmail, "name": ime.PurposeName,
		"password": ime.PurposePassword, "pin": ime.PurposePin, "date": ime.PurposeDate,
		"time": ime.PurposeTime, "datetime": ime.PurposeDateTime, "terminal": ime.PurposeTerminal,
	}
)

// request builds the capabilities and data a step asks for. Surrounding
// text always comes from the field.
func (r *replayer) request(f *giokey.Field, step ReplayStep) (ime.Capabilities, ime.RequestData, error) {
	caps := ime.NewCapabilities()
	var data ime.RequestData
	for _, name := range step.Capabilities {
		with, ok := capabilityNames[name]
		if !ok {
			return caps, data, fmt.Errorf("unknown capability %q", name)
		}
		caps = with(caps)
	}
	if caps.Has(ime.CapSurroundingText) {
		st, err := f.SurroundingText()
		if err != nil {
			return caps, data, err
		}
		data = data.WithSurroundingText(st)
	}
	if caps.Has(ime.CapCursorArea) {
		var a [4]float64
		if len(step.Area) != 0 && len(step.Area) != 4 {
			return caps, data, errors.New("area needs [x, y, width, height]")
		}
		copy(a[:], step.Area)
		data = data.WithCursorArea(ime.Position{X: a[0], Y: a[1]}, ime.Size{Width: a[2], Height: a[3]})
	}
	if caps.Has(ime.CapHintAndPurpose) {
		hint := ime.HintNone
		for _, name := range step.Hints {
			h, ok := hintNames[name]
			if !ok {
				return caps, data, fmt.Errorf("unknown hint %q", name)
			}
			hint |= h
		}
		purpose, ok := purposeNames[step.Purpose]
		if !ok {
			return caps, data, fmt.Errorf("unknown purpose %q", step.Purpose)
		}
		data = data.WithHintAndPurpose(hint, purpose)
	}
	return caps, data, nil
}

func (r *replayer) surfaces() []ReplaySurface {
	ids := make([]ime.SurfaceID, 0, len(r.editors))
	for id := range r.editors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]ReplaySurface, 0, len(ids))
	for _, id := range ids {
		f := r.editors[id].Field
		preedit, _ := f.Preedit()
		out = append(out, ReplaySurface{Surface: uint64(id), Enabled: f.Enabled(), Text: f.Text(), Preedit: preedit})
	}
	return out
}

func describeGio(ev event.Event) string {
	switch e := ev.(type) {
	case key.Event:
		return fmt.Sprintf("Key(%s %s)", e.Name, e.State)
	case key.EditEvent:
		return fmt.Sprintf("Edit([%d,%d) %q)", e.Range.Start, e.Range.End, e.Text)
	case key.SelectionEvent:
		return fmt.Sprintf("Selection(%d,%d)", e.Start, e.End)
	case key.SnippetEvent:
		return fmt.Sprintf("Snippet([%d,%d))", e.Start, e.End)
	default:
		return fmt.Sprintf("%T", ev)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
