package ime

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"gioui.org/io/key"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIBusText(t *testing.T) {
	// Structs arrive from the bus as []interface{}.
	wire := dbus.MakeVariant([]interface{}{
		"IBusText",
		map[string]dbus.Variant{},
		"日本",
		dbus.MakeVariant([]interface{}{"IBusAttrList", map[string]dbus.Variant{}, []dbus.Variant{}}),
	})
	text, ok := decodeIBusText(wire)
	require.True(t, ok)
	assert.Equal(t, "日本", text)

	text, ok = decodeIBusText(newIBusText("é"))
	require.True(t, ok)
	assert.Equal(t, "é", text)

	_, ok = decodeIBusText(dbus.MakeVariant([]interface{}{"IBusAttrList", "x", "y"}))
	assert.False(t, ok)
	_, ok = decodeIBusText(dbus.MakeVariant("plain"))
	assert.False(t, ok)
}

func TestIBusSocketName(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{":0", "abc-unix-0"},
		{":1.0", "abc-unix-1"},
		{"remote:10.0", "abc-remote-10"},
		{"wayland-0", "abc-unix-wayland-0"},
		{"", "abc-unix-0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ibusSocketName("abc", tt.display), "display %q", tt.display)
	}
}

func TestParseIBusAddressFile(t *testing.T) {
	file := `# This file is created by ibus-daemon, please do not modify it.
# This file allows processes on the machine to find the
# ibus session bus with the below address.
IBUS_ADDRESS=unix:path=/home/u/.cache/ibus/dbus-Xk2,guid=1f2e
IBUS_DAEMON_PID=1234
`
	addr, err := parseIBusAddressFile(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, "unix:path=/home/u/.cache/ibus/dbus-Xk2,guid=1f2e", addr)

	_, err = parseIBusAddressFile(strings.NewReader("IBUS_DAEMON_PID=1\n"))
	assert.ErrorIs(t, err, ErrTransportUnavailable)
}

func TestScalarDeleteToBytes(t *testing.T) {
	st, err := NewSurroundingText("aé😀b", 7, 7)
	require.NoError(t, err)

	before, after, ok := scalarDeleteToBytes(&st, -2, 2)
	require.True(t, ok)
	assert.Equal(t, 6, before)
	assert.Equal(t, 0, after)

	before, after, ok = scalarDeleteToBytes(&st, -1, 2)
	require.True(t, ok)
	assert.Equal(t, 4, before)
	assert.Equal(t, 1, after)

	_, _, ok = scalarDeleteToBytes(nil, -1, 1)
	assert.False(t, ok, "no surrounding text to convert against")
	_, _, ok = scalarDeleteToBytes(&st, 1, 1)
	assert.False(t, ok, "ranges starting after the cursor are not expressible")
	_, _, ok = scalarDeleteToBytes(&st, -5, 5)
	assert.False(t, ok)
}

func TestContentTypeFor(t *testing.T) {
	ct := contentTypeFor(HintAndPurpose{Hint: HintSpellcheck | HintCompletion, Purpose: PurposeEmail})
	assert.Equal(t, uint32(6), ct.Purpose)
	assert.Equal(t, uint32(1|4), ct.Hints)

	ct = contentTypeFor(HintAndPurpose{Hint: HintSensitiveData, Purpose: PurposePassword})
	assert.Equal(t, uint32(8), ct.Purpose)
	assert.Equal(t, uint32(2|1024), ct.Hints)
}

func TestIBusState(t *testing.T) {
	assert.Equal(t, uint32(0), ibusState(0, true))
	assert.Equal(t, IBusShiftMask|IBusControlMask, ibusState(key.ModShift|key.ModCtrl, true))
	assert.Equal(t, IBusMod1Mask|IBusReleaseMask, ibusState(key.ModAlt, false))
	assert.Equal(t, IBusMod4Mask, ibusState(key.ModSuper, true))
}

// fakeBusObject answers method calls from canned replies and records the
// short method names it saw.
type fakeBusObject struct {
	dbus.BusObject
	calls []string
	fail  map[string]error
	reply map[string][]interface{}
}

func (o *fakeBusObject) Call(method string, _ dbus.Flags, _ ...interface{}) *dbus.Call {
	name := method[strings.LastIndexByte(method, '.')+1:]
	o.calls = append(o.calls, name)
	return &dbus.Call{Err: o.fail[name], Body: o.reply[name]}
}

func (o *fakeBusObject) SetProperty(string, interface{}) error {
	o.calls = append(o.calls, "SetProperty")
	return nil
}

const testContextPath = dbus.ObjectPath("/org/freedesktop/IBus/InputContext_1")

// newFakeIBus returns a transport whose daemon and input context are fakes.
func newFakeIBus(cb Callbacks, ic *fakeBusObject) (*IBusTransport, *[]bool) {
	var watches []bool
	bus := &fakeBusObject{reply: map[string][]interface{}{
		"CreateInputContext": {testContextPath},
	}}
	t := &IBusTransport{
		bus:      bus,
		cb:       cb,
		client:   "test",
		log:      slog.New(slog.DiscardHandler),
		surfaces: make(map[SurfaceID]*ibusSurface),
		byPath:   make(map[dbus.ObjectPath]SurfaceID),
		object:   func(dbus.ObjectPath) dbus.BusObject { return ic },
		watch: func(_ dbus.ObjectPath, on bool) error {
			watches = append(watches, on)
			return nil
		},
	}
	return t, &watches
}

func ibusSignal(name string, body ...interface{}) *dbus.Signal {
	return &dbus.Signal{
		Path: testContextPath,
		Name: IBusInputContextInterface + "." + name,
		Body: body,
	}
}

func TestIBusPreeditSurvivesSurroundingDelete(t *testing.T) {
	ic := &fakeBusObject{}
	var tr *IBusTransport
	sink := newRecordingSink()
	m := NewManager(ManagerConfig{
		Transport: func(cb Callbacks) (Transport, error) {
			tr, _ = newFakeIBus(cb, ic)
			return tr, nil
		},
	}, sink)

	st, err := NewSurroundingText("xy", 2, 2)
	require.NoError(t, err)
	req, ok := NewEnableRequest(NewCapabilities().WithSurroundingText(), RequestData{}.WithSurroundingText(st))
	require.True(t, ok)
	require.NoError(t, m.Enable(1, req))
	assert.Equal(t, []string{"CreateInputContext"}, tr.bus.(*fakeBusObject).calls)
	assert.Equal(t, []string{"SetCapabilities", "SetSurroundingText", "FocusIn"}, ic.calls)

	tr.handleSignal(ibusSignal("UpdatePreeditText", newIBusText("ab"), uint32(2), true))
	tr.handleSignal(ibusSignal("DeleteSurroundingText", int32(-1), uint32(1)))
	tr.handleSignal(ibusSignal("UpdatePreeditText", newIBusText("abc"), uint32(3), true))

	want := [][]Event{
		{EnabledEvent{}},
		{StartEvent{}, PreeditEvent{Text: "ab", Cursor: &CursorRange{Begin: 2, End: 2}}},
		{DeleteSurroundingEvent{BeforeBytes: 1}, PreeditEvent{Text: "ab", Cursor: &CursorRange{Begin: 2, End: 2}}},
		{PreeditEvent{Text: "abc", Cursor: &CursorRange{Begin: 3, End: 3}}},
	}
	assert.Equal(t, want, sink.batches[1])
	text, caret := m.Preedit(1)
	assert.Equal(t, "abc", text)
	assert.Equal(t, 3, caret)

	// Without a preedit the delete stands alone.
	tr.handleSignal(ibusSignal("CommitText", newIBusText("abc")))
	sink.reset()
	tr.handleSignal(ibusSignal("DeleteSurroundingText", int32(-1), uint32(1)))
	assert.Equal(t, []Event{
		DeleteSurroundingEvent{BeforeBytes: 1},
		PreeditEvent{},
	}, sink.events(1))
}

func TestIBusOpenFailureDestroysContext(t *testing.T) {
	ic := &fakeBusObject{fail: map[string]error{"SetCapabilities": errors.New("no such method")}}
	tr, watches := newFakeIBus(nil, ic)

	err := tr.Open(1, NewCapabilities(), RequestData{})
	require.Error(t, err)
	assert.Equal(t, []string{"SetCapabilities", "Destroy"}, ic.calls)
	assert.Equal(t, []bool{true, false}, *watches, "the signal match is removed again")
	assert.Empty(t, tr.surfaces)

	ic = &fakeBusObject{}
	tr, _ = newFakeIBus(nil, ic)
	tr.watch = func(dbus.ObjectPath, bool) error { return errors.New("match rule rejected") }
	err = tr.Open(1, NewCapabilities(), RequestData{})
	require.Error(t, err)
	assert.Equal(t, []string{"Destroy"}, ic.calls)
	assert.Empty(t, tr.byPath)
}
