package ime

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"gioui.org/io/key"
	"github.com/godbus/dbus/v5"
)

// IBus D-Bus constants
const (
	IBusService               = "org.freedesktop.IBus"
	IBusPath                  = "/org/freedesktop/IBus"
	IBusInterface             = "org.freedesktop.IBus"
	IBusInputContextInterface = "org.freedesktop.IBus.InputContext"
)

// IBus input context capability bits
const (
	IBusCapPreeditText     uint32 = 1 << 0
	IBusCapAuxiliaryText   uint32 = 1 << 1
	IBusCapLookupTable     uint32 = 1 << 2
	IBusCapFocus           uint32 = 1 << 3
	IBusCapProperty        uint32 = 1 << 4
	IBusCapSurroundingText uint32 = 1 << 5
)

// IBus key event state masks
const (
	IBusShiftMask   uint32 = 1 << 0
	IBusLockMask    uint32 = 1 << 1
	IBusControlMask uint32 = 1 << 2
	IBusMod1Mask    uint32 = 1 << 3 // Alt
	IBusMod4Mask    uint32 = 1 << 6 // Super/Meta
	IBusReleaseMask uint32 = 1 << 30
)

// xkbKeycodeOffset separates XKB keycodes from the evdev codes IBus wants.
const xkbKeycodeOffset = 8

// ibusAttrList and ibusText are the IBusSerializable wire shapes.
type ibusAttrList struct {
	Name        string
	Attachments map[string]dbus.Variant
	Attributes  []dbus.Variant
}

type ibusText struct {
	Name        string
	Attachments map[string]dbus.Variant
	Text        string
	AttrList    dbus.Variant
}

func newIBusText(s string) dbus.Variant {
	return dbus.MakeVariant(ibusText{
		Name:        "IBusText",
		Attachments: map[string]dbus.Variant{},
		Text:        s,
		AttrList: dbus.MakeVariant(ibusAttrList{
			Name:        "IBusAttrList",
			Attachments: map[string]dbus.Variant{},
			Attributes:  []dbus.Variant{},
		}),
	})
}

// decodeIBusText extracts the string of an IBusText variant as received
// from the bus, where structs arrive as []interface{}.
func decodeIBusText(v interface{}) (string, bool) {
	if variant, ok := v.(dbus.Variant); ok {
		v = variant.Value()
	}
	switch t := v.(type) {
	case []interface{}:
		if len(t) < 3 {
			return "", false
		}
		if name, _ := t[0].(string); name != "IBusText" {
			return "", false
		}
		s, ok := t[2].(string)
		return s, ok
	case ibusText:
		return t.Text, true
	}
	return "", false
}

// ibusContentType is the (purpose, hints) pair of the ContentType
// property, using GTK's enum values.
type ibusContentType struct {
	Purpose uint32
	Hints   uint32
}

// GTK input purposes, in enum order.
var gtkPurpose = map[Purpose]uint32{
	PurposeNormal:   0, // free form
	PurposeAlpha:    1,
	PurposeDigits:   2,
	PurposeNumber:   3,
	PurposePhone:    4,
	PurposeURL:      5,
	PurposeEmail:    6,
	PurposeName:     7,
	PurposePassword: 8,
	PurposePin:      9,
	PurposeTerminal: 10,
	// No GTK purpose for dates and times; digits is the closest.
	PurposeDate:     2,
	PurposeTime:     2,
	PurposeDateTime: 2,
}

func contentTypeFor(hp HintAndPurpose) ibusContentType {
	const (
		gtkSpellcheck   = 1 << 0
		gtkNoSpellcheck = 1 << 1
		gtkWordComplete = 1 << 2
		gtkLowercase    = 1 << 3
		gtkUppercase    = 1 << 4
		gtkWords        = 1 << 5
		gtkSentences    = 1 << 6
		gtkPrivate      = 1 << 10
	)
	var hints uint32
	if hp.Hint&HintSpellcheck != 0 {
		hints |= gtkSpellcheck
	} else {
		hints |= gtkNoSpellcheck
	}
	if hp.Hint&HintCompletion != 0 {
		hints |= gtkWordComplete
	}
	if hp.Hint&HintLowercase != 0 {
		hints |= gtkLowercase
	}
	if hp.Hint&HintUppercase != 0 {
		hints |= gtkUppercase
	}
	if hp.Hint&HintTitlecase != 0 {
		hints |= gtkWords
	}
	if hp.Hint&HintAutoCapitalization != 0 {
		hints |= gtkSentences
	}
	if hp.Hint&(HintSensitiveData|HintHiddenText) != 0 {
		hints |= gtkPrivate
	}
	return ibusContentType{Purpose: gtkPurpose[hp.Purpose], Hints: hints}
}

// ibusState converts modifiers to an IBus key state mask.
func ibusState(mods key.Modifiers, pressed bool) uint32 {
	var state uint32
	if mods.Contain(key.ModShift) {
		state |= IBusShiftMask
	}
	if mods.Contain(key.ModCtrl) {
		state |= IBusControlMask
	}
	if mods.Contain(key.ModAlt) {
		state |= IBusMod1Mask
	}
	if mods.Contain(key.ModSuper) || mods.Contain(key.ModCommand) {
		state |= IBusMod4Mask
	}
	if !pressed {
		state |= IBusReleaseMask
	}
	return state
}

// IBusAddress locates the IBus daemon. IBUS_ADDRESS wins; otherwise the
// address file ibus-daemon writes for this machine and display is read.
func IBusAddress() (string, error) {
	if addr := os.Getenv("IBUS_ADDRESS"); addr != "" {
		return addr, nil
	}
	machineID, err := readMachineID()
	if err != nil {
		return "", err
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ibus address: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	display := os.Getenv("DISPLAY")
	if display == "" {
		display = os.Getenv("WAYLAND_DISPLAY")
	}
	path := filepath.Join(configDir, "ibus", "bus", ibusSocketName(machineID, display))

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ibus address: %w", err)
	}
	defer f.Close()
	return parseIBusAddressFile(f)
}

func readMachineID() (string, error) {
	for _, p := range []string{"/var/lib/dbus/machine-id", "/etc/machine-id"} {
		b, err := os.ReadFile(p)
		if err == nil {
			return strings.TrimSpace(string(b)), nil
		}
	}
	return "", fmt.Errorf("ibus address: no machine id: %w", ErrTransportUnavailable)
}

// ibusSocketName builds "<machine-id>-<host>-<display-number>" the way
// ibus_get_socket_path does. An empty host means "unix".
func ibusSocketName(machineID, display string) string {
	host, num := "unix", "0"
	if display != "" {
		if i := strings.LastIndexByte(display, ':'); i >= 0 {
			if i > 0 {
				host = display[:i]
			}
			num = display[i+1:]
			if j := strings.IndexByte(num, '.'); j >= 0 {
				num = num[:j]
			}
		} else {
			num = display
		}
	}
	return machineID + "-" + host + "-" + num
}

// parseIBusAddressFile reads IBUS_ADDRESS from an ibus-daemon address file.
func parseIBusAddressFile(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if addr, ok := strings.CutPrefix(line, "IBUS_ADDRESS="); ok && addr != "" {
			return addr, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("ibus address: %w", err)
	}
	return "", fmt.Errorf("ibus address: no IBUS_ADDRESS entry: %w", ErrTransportUnavailable)
}

// ibusSurface is one IBus input context.
type ibusSurface struct {
	obj         dbus.BusObject
	path        dbus.ObjectPath
	preedit     int // scalar length of the preedit the context holds
	text        string
	caret       int
	surrounding *SurroundingText
}

// IBusTransport talks to ibus-daemon as an IBus client, one input context
// per surface.
type IBusTransport struct {
	conn   *dbus.Conn
	bus    dbus.BusObject
	cb     Callbacks
	client string
	log    *slog.Logger

	signals chan *dbus.Signal
	done    chan struct{}

	// object and watch reach the bus for one input context.
	object func(dbus.ObjectPath) dbus.BusObject
	watch  func(path dbus.ObjectPath, on bool) error

	mu       sync.Mutex
	surfaces map[SurfaceID]*ibusSurface
	byPath   map[dbus.ObjectPath]SurfaceID
	closed   bool
}

// NewIBusTransport connects to the IBus daemon.
func NewIBusTransport(cfg TransportConfig, cb Callbacks) (*IBusTransport, error) {
	addr := cfg.IBusAddress
	if addr == "" {
		var err error
		if addr, err = IBusAddress(); err != nil {
			return nil, err
		}
	}
	conn, err := dbus.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ibus: %w", err)
	}
	if err := conn.Auth(nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ibus auth: %w", err)
	}
	if err := conn.Hello(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ibus hello: %w", err)
	}

	client := cfg.ClientName
	if client == "" {
		client = "imecore"
	}
	t := &IBusTransport{
		conn:     conn,
		bus:      conn.Object(IBusService, IBusPath),
		cb:       cb,
		client:   client,
		log:      cfg.logger().With("transport", TransportIBus),
		signals:  make(chan *dbus.Signal, 64),
		done:     make(chan struct{}),
		surfaces: make(map[SurfaceID]*ibusSurface),
		byPath:   make(map[dbus.ObjectPath]SurfaceID),
	}
	t.object = func(path dbus.ObjectPath) dbus.BusObject { return conn.Object(IBusService, path) }
	t.watch = func(path dbus.ObjectPath, on bool) error {
		opts := []dbus.MatchOption{
			dbus.WithMatchObjectPath(path),
			dbus.WithMatchInterface(IBusInputContextInterface),
		}
		if on {
			return conn.AddMatchSignal(opts...)
		}
		return conn.RemoveMatchSignal(opts...)
	}
	conn.Signal(t.signals)
	go t.signalLoop()
	t.log.Info("connected to ibus", "address", addr)
	return t, nil
}

func (t *IBusTransport) Name() string { return TransportIBus }

// Open creates an IBus input context for the surface and focuses it.
func (t *IBusTransport) Open(id SurfaceID, caps Capabilities, data RequestData) error {
	var path dbus.ObjectPath
	if err := t.bus.Call(IBusInterface+".CreateInputContext", 0, t.client).Store(&path); err != nil {
		return fmt.Errorf("create input context: %w", err)
	}
	obj := t.object(path)

	if err := t.watch(path, true); err != nil {
		t.destroy(id, obj)
		return fmt.Errorf("watch input context: %w", err)
	}

	ibusCaps := IBusCapPreeditText | IBusCapFocus
	if caps.Has(CapSurroundingText) {
		ibusCaps |= IBusCapSurroundingText
	}
	if err := obj.Call(IBusInputContextInterface+".SetCapabilities", 0, ibusCaps).Err; err != nil {
		_ = t.watch(path, false)
		t.destroy(id, obj)
		return fmt.Errorf("set capabilities: %w", err)
	}

	t.mu.Lock()
	t.surfaces[id] = &ibusSurface{obj: obj, path: path}
	t.byPath[path] = id
	t.mu.Unlock()

	if err := t.Update(id, data); err != nil {
		return err
	}
	if err := obj.Call(IBusInputContextInterface+".FocusIn", 0).Err; err != nil {
		return fmt.Errorf("focus in: %w", err)
	}
	t.log.Debug("input context created", "surface", uint64(id), "path", string(path))
	return nil
}

// Update forwards content type, cursor rectangle and surrounding text.
func (t *IBusTransport) Update(id SurfaceID, data RequestData) error {
	t.mu.Lock()
	s, ok := t.surfaces[id]
	if ok && data.SurroundingText != nil {
		s.surrounding = data.SurroundingText
	}
	t.mu.Unlock()
	if !ok {
		return nil
	}

	var errs []error
	if hp := data.HintAndPurpose; hp != nil {
		ct := contentTypeFor(*hp)
		if err := s.obj.SetProperty(IBusInputContextInterface+".ContentType", dbus.MakeVariant(ct)); err != nil {
			errs = append(errs, fmt.Errorf("content type: %w", err))
		}
	}
	if area := data.CursorArea; area != nil {
		err := s.obj.Call(IBusInputContextInterface+".SetCursorLocation", 0,
			int32(area.Position.X), int32(area.Position.Y),
			int32(area.Size.Width), int32(area.Size.Height)).Err
		if err != nil {
			errs = append(errs, fmt.Errorf("cursor location: %w", err))
		}
	}
	if st := data.SurroundingText; st != nil {
		cursor, anchor := st.ScalarOffsets()
		err := s.obj.Call(IBusInputContextInterface+".SetSurroundingText", 0,
			newIBusText(st.Text()), uint32(cursor), uint32(anchor)).Err
		if err != nil {
			errs = append(errs, fmt.Errorf("surrounding text: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Feed forwards the key to ProcessKeyEvent. Signals the engine emits
// while handling it arrive on the signal loop.
func (t *IBusTransport) Feed(id SurfaceID, in KeyInput, pressed bool) bool {
	t.mu.Lock()
	s, ok := t.surfaces[id]
	t.mu.Unlock()
	if !ok || in.Symbol == NoSymbol {
		return false
	}
	keycode := in.Code
	if keycode >= xkbKeycodeOffset {
		keycode -= xkbKeycodeOffset
	}
	var handled bool
	err := s.obj.Call(IBusInputContextInterface+".ProcessKeyEvent", 0,
		uint32(in.Symbol), keycode, ibusState(in.Modifiers, pressed)).Store(&handled)
	if err != nil {
		t.log.Warn("process key event failed", "surface", uint64(id), "error", err)
		return false
	}
	return handled
}

// Close unfocuses and destroys the surface's input context.
func (t *IBusTransport) Close(id SurfaceID) {
	t.mu.Lock()
	s, ok := t.surfaces[id]
	if ok {
		delete(t.surfaces, id)
		delete(t.byPath, s.path)
	}
	t.mu.Unlock()
	if !ok {
		return
	}
	if err := s.obj.Call(IBusInputContextInterface+".FocusOut", 0).Err; err != nil {
		t.log.Debug("focus out failed", "surface", uint64(id), "error", err)
	}
	t.destroy(id, s.obj)
	_ = t.watch(s.path, false)
}

func (t *IBusTransport) destroy(id SurfaceID, obj dbus.BusObject) {
	if err := obj.Call(IBusInputContextInterface+".Destroy", 0).Err; err != nil {
		t.log.Debug("destroy input context failed", "surface", uint64(id), "error", err)
	}
}

// Shutdown destroys every input context and closes the connection.
func (t *IBusTransport) Shutdown() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	ids := make([]SurfaceID, 0, len(t.surfaces))
	for id := range t.surfaces {
		ids = append(ids, id)
	}
	t.mu.Unlock()

	for _, id := range ids {
		t.Close(id)
	}
	close(t.done)
	return t.conn.Close()
}

func (t *IBusTransport) signalLoop() {
	for {
		select {
		case <-t.done:
			return
		case sig, ok := <-t.signals:
			if !ok {
				t.mu.Lock()
				closed := t.closed
				t.mu.Unlock()
				if !closed {
					t.cb.OnTransportError(fmt.Errorf("ibus connection lost: %w", ErrTransportUnavailable))
				}
				return
			}
			t.handleSignal(sig)
		}
	}
}

func (t *IBusTransport) handleSignal(sig *dbus.Signal) {
	t.mu.Lock()
	id, ok := t.byPath[sig.Path]
	var s *ibusSurface
	if ok {
		s = t.surfaces[id]
	}
	t.mu.Unlock()
	if !ok || s == nil {
		return
	}

	name, _ := strings.CutPrefix(sig.Name, IBusInputContextInterface+".")
	switch name {
	case "CommitText":
		if len(sig.Body) < 1 {
			return
		}
		text, ok := decodeIBusText(sig.Body[0])
		if !ok {
			t.log.Warn("malformed CommitText", "surface", uint64(id))
			return
		}
		t.setPreedit(s, "", 0)
		t.cb.OnCommit(id, text)
		t.cb.OnFlush(id)

	case "UpdatePreeditText", "UpdatePreeditTextWithMode":
		if len(sig.Body) < 3 {
			return
		}
		text, ok := decodeIBusText(sig.Body[0])
		cursor, _ := sig.Body[1].(uint32)
		visible, _ := sig.Body[2].(bool)
		if !ok {
			t.log.Warn("malformed UpdatePreeditText", "surface", uint64(id))
			return
		}
		if !visible || text == "" {
			t.setPreedit(s, "", 0)
			t.cb.OnPreeditDone(id)
			t.cb.OnFlush(id)
			return
		}
		prev := t.setPreedit(s, text, int(cursor))
		if prev == 0 {
			t.cb.OnPreeditStart(id)
		}
		t.cb.OnPreeditDraw(id, int(cursor), ScalarRange{Start: 0, End: prev}, text)
		t.cb.OnFlush(id)

	case "HidePreeditText":
		t.setPreedit(s, "", 0)
		t.cb.OnPreeditDone(id)
		t.cb.OnFlush(id)

	case "DeleteSurroundingText":
		if len(sig.Body) < 2 {
			return
		}
		offset, _ := sig.Body[0].(int32)
		nchars, _ := sig.Body[1].(uint32)
		before, after, ok := t.surroundingBytes(s, int(offset), int(nchars))
		if !ok {
			t.log.Warn("dropping surrounding delete outside known text",
				"surface", uint64(id), "offset", offset, "nchars", nchars)
			return
		}
		t.cb.OnDeleteSurrounding(id, before, after)
		// A batch without a preedit clears it; the engine's preedit
		// outlives the deletion, so draw it again.
		if text, caret, n := t.currentPreedit(s); n > 0 {
			t.cb.OnPreeditDraw(id, caret, ScalarRange{Start: 0, End: n}, text)
		}
		t.cb.OnFlush(id)
	}
}

// setPreedit records the preedit the context now holds and returns the
// scalar length of the one it replaces.
func (t *IBusTransport) setPreedit(s *ibusSurface, text string, caret int) (prev int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev = s.preedit
	s.text, s.caret, s.preedit = text, caret, utf8.RuneCountInString(text)
	return prev
}

func (t *IBusTransport) currentPreedit(s *ibusSurface) (string, int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return s.text, s.caret, s.preedit
}

// surroundingBytes converts an IBus deletion, a scalar offset from the
// cursor plus a scalar count, into byte counts around the cursor.
func (t *IBusTransport) surroundingBytes(s *ibusSurface, offset, nchars int) (before, after int, ok bool) {
	t.mu.Lock()
	st := s.surrounding
	t.mu.Unlock()
	return scalarDeleteToBytes(st, offset, nchars)
}

func scalarDeleteToBytes(st *SurroundingText, offset, nchars int) (before, after int, ok bool) {
	if st == nil || nchars < 0 || offset > 0 || offset+nchars < 0 {
		return 0, 0, false
	}
	return st.BytesAroundCursor(-offset, offset+nchars)
}
