package ime

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultXLocaleDir is where X11 locale data, including compose.dir, lives.
const DefaultXLocaleDir = "/usr/share/X11/locale"

// maxIncludeDepth bounds nested include directives in Compose files.
const maxIncludeDepth = 8

// ErrComposeTableUnavailable is returned when no compose table could be
// loaded and the built-in table is not allowed as a fallback.
var ErrComposeTableUnavailable = errors.New("compose table unavailable")

type composeNode struct {
	children map[KeySymbol]*composeNode
	result   string
	leaf     bool
}

// ComposeTable is a read-only trie of compose sequences. Once built it is
// safe for concurrent use by any number of ComposeEngines.
type ComposeTable struct {
	root    *composeNode
	source  string
	entries int
	skipped int
}

func newComposeTable(source string) *ComposeTable {
	return &ComposeTable{
		root:   &composeNode{children: make(map[KeySymbol]*composeNode)},
		source: source,
	}
}

// Source describes where the table was loaded from.
func (t *ComposeTable) Source() string { return t.source }

// Len returns the number of sequences in the table.
func (t *ComposeTable) Len() int { return t.entries }

// Skipped returns the number of malformed or conflicting lines ignored
// while loading.
func (t *ComposeTable) Skipped() int { return t.skipped }

// Lookup returns the result of a complete sequence.
func (t *ComposeTable) Lookup(seq ...KeySymbol) (string, bool) {
	n := t.root
	for _, sym := range seq {
		n = n.children[sym]
		if n == nil {
			return "", false
		}
	}
	return n.result, n.leaf
}

// add inserts a sequence. A sequence that would pass through an existing
// leaf, or end on an existing prefix, is a conflict and is skipped.
func (t *ComposeTable) add(seq []KeySymbol, result string) bool {
	if len(seq) == 0 || result == "" {
		return false
	}
	n := t.root
	for i, sym := range seq {
		if n.leaf {
			return false
		}
		child := n.children[sym]
		if child == nil {
			child = &composeNode{}
			if i < len(seq)-1 {
				child.children = make(map[KeySymbol]*composeNode)
			}
			if n.children == nil {
				n.children = make(map[KeySymbol]*composeNode)
			}
			n.children[sym] = child
		}
		n = child
	}
	if len(n.children) > 0 {
		return false
	}
	if !n.leaf {
		t.entries++
	}
	n.leaf = true
	n.result = result
	return true
}

// ComposeOptions selects where compose data is loaded from.
type ComposeOptions struct {
	// File is an explicit Compose file. When set, no other file source is tried.
	File string

	// Locale overrides the LC_ALL / LC_CTYPE / LANG lookup.
	Locale string

	// XLocaleDir overrides DefaultXLocaleDir.
	XLocaleDir string

	// Home overrides the user's home directory for ~/.XCompose and %H.
	Home string

	// BuiltinFallback allows the built-in table when no file could be read.
	BuiltinFallback bool

	Logger *slog.Logger
}

func (o ComposeOptions) locale() string {
	if o.Locale != "" {
		return o.Locale
	}
	return LocaleFromEnv()
}

func (o ComposeOptions) xlocaleDir() string {
	if o.XLocaleDir != "" {
		return o.XLocaleDir
	}
	return DefaultXLocaleDir
}

func (o ComposeOptions) home() string {
	if o.Home != "" {
		return o.Home
	}
	home, _ := os.UserHomeDir()
	return home
}

func (o ComposeOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// LocaleFromEnv returns the locale governing character handling, the way
// libxkbcommon resolves it.
func LocaleFromEnv() string {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if loc := os.Getenv(v); loc != "" {
			return loc
		}
	}
	return "C"
}

// normalizeLocale canonicalizes the codeset suffix so "en_US.utf8" matches
// the "en_US.UTF-8" entries of compose.dir.
func normalizeLocale(loc string) string {
	if loc == "" || loc == "C" || loc == "POSIX" {
		return "en_US.UTF-8"
	}
	if i := strings.IndexByte(loc, '@'); i >= 0 {
		loc = loc[:i]
	}
	base, codeset, ok := strings.Cut(loc, ".")
	if !ok {
		return loc
	}
	switch strings.ToLower(strings.ReplaceAll(codeset, "-", "")) {
	case "utf8":
		codeset = "UTF-8"
	}
	return base + "." + codeset
}

// LoadComposeTable loads the compose table for opts. Sources are tried in
// order: opts.File, $XCOMPOSEFILE, ~/.XCompose, the system file for the
// locale, and finally the built-in table when BuiltinFallback is set.
func LoadComposeTable(opts ComposeOptions) (*ComposeTable, error) {
	log := opts.logger()

	if opts.File != "" {
		t, err := loadComposeFile(opts.File, opts)
		if err != nil {
			if opts.BuiltinFallback {
				log.Warn("compose file unreadable, using built-in table", "path", opts.File, "error", err)
				return BuiltinComposeTable(), nil
			}
			return nil, fmt.Errorf("%w: %v", ErrComposeTableUnavailable, err)
		}
		return t, nil
	}

	var candidates []string
	if p := os.Getenv("XCOMPOSEFILE"); p != "" {
		candidates = append(candidates, p)
	}
	if home := opts.home(); home != "" {
		candidates = append(candidates, filepath.Join(home, ".XCompose"))
	}
	if p, err := systemComposeFile(opts.xlocaleDir(), opts.locale()); err == nil {
		candidates = append(candidates, p)
	} else {
		log.Debug("no system compose file for locale", "locale", opts.locale(), "error", err)
	}

	for _, path := range candidates {
		t, err := loadComposeFile(path, opts)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("compose file unreadable", "path", path, "error", err)
		}
	}

	if opts.BuiltinFallback {
		return BuiltinComposeTable(), nil
	}
	return nil, fmt.Errorf("%w for locale %q", ErrComposeTableUnavailable, opts.locale())
}

// systemComposeFile resolves the locale's Compose file through compose.dir.
func systemComposeFile(xlocaleDir, locale string) (string, error) {
	f, err := os.Open(filepath.Join(xlocaleDir, "compose.dir"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	want := normalizeLocale(locale)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		// Format: "en_US.UTF-8/Compose:		en_US.UTF-8"
		rel, loc, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(loc) == want {
			return filepath.Join(xlocaleDir, strings.TrimSpace(rel)), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("locale %q not listed in compose.dir", want)
}

func loadComposeFile(path string, opts ComposeOptions) (*ComposeTable, error) {
	t := newComposeTable(path)
	if err := t.parseFile(path, opts, 0); err != nil {
		return nil, err
	}
	if t.skipped > 0 {
		opts.logger().Debug("compose lines skipped", "path", path, "count", t.skipped)
	}
	return t, nil
}

// ParseComposeTable parses Compose-format data from r. Include directives
// are resolved against opts.
func ParseComposeTable(r io.Reader, source string, opts ComposeOptions) (*ComposeTable, error) {
	t := newComposeTable(source)
	if err := t.parse(r, opts, 0); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *ComposeTable) parseFile(path string, opts ComposeOptions, depth int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.parse(f, opts, depth)
}

func (t *ComposeTable) parse(r io.Reader, opts ComposeOptions, depth int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "include"); ok {
			t.include(strings.TrimSpace(rest), opts, depth)
			continue
		}
		seq, result, err := parseComposeLine(line)
		if err != nil || !t.add(seq, result) {
			t.skipped++
		}
	}
	return scanner.Err()
}

func (t *ComposeTable) include(arg string, opts ComposeOptions, depth int) {
	if depth >= maxIncludeDepth {
		t.skipped++
		return
	}
	arg, err := unquoteCompose(arg)
	if err != nil {
		t.skipped++
		return
	}
	path := expandIncludePath(arg, opts)
	if path == "" {
		t.skipped++
		return
	}
	if err := t.parseFile(path, opts, depth+1); err != nil {
		opts.logger().Debug("compose include failed", "path", path, "error", err)
		t.skipped++
	}
}

// expandIncludePath substitutes %L (locale Compose file), %H (home) and
// %S (system locale directory).
func expandIncludePath(arg string, opts ComposeOptions) string {
	var b strings.Builder
	for i := 0; i < len(arg); i++ {
		if arg[i] != '%' || i == len(arg)-1 {
			b.WriteByte(arg[i])
			continue
		}
		i++
		switch arg[i] {
		case '%':
			b.WriteByte('%')
		case 'H':
			b.WriteString(opts.home())
		case 'S':
			b.WriteString(opts.xlocaleDir())
		case 'L':
			p, err := systemComposeFile(opts.xlocaleDir(), opts.locale())
			if err != nil {
				return ""
			}
			b.WriteString(p)
		default:
			return ""
		}
	}
	return b.String()
}

// parseComposeLine parses `<a> <b> ... : "result" [keysym]`.
func parseComposeLine(line string) ([]KeySymbol, string, error) {
	lhs, rhs, ok := strings.Cut(line, ":")
	if !ok {
		return nil, "", errors.New("missing ':'")
	}

	var seq []KeySymbol
	rest := strings.TrimSpace(lhs)
	for rest != "" {
		if rest[0] != '<' {
			// Modifier prefixes (e.g. "~Ctrl") are not supported.
			return nil, "", fmt.Errorf("unexpected %q", rest)
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return nil, "", errors.New("unterminated keysym")
		}
		sym, err := ParseKeySymbol(rest[1:end])
		if err != nil {
			return nil, "", err
		}
		seq = append(seq, sym)
		rest = strings.TrimSpace(rest[end+1:])
	}
	if len(seq) == 0 {
		return nil, "", errors.New("empty sequence")
	}

	rhs = strings.TrimSpace(rhs)
	if i := strings.Index(rhs, "#"); i >= 0 && !strings.HasPrefix(rhs, "\"") {
		rhs = strings.TrimSpace(rhs[:i])
	}
	var result string
	if strings.HasPrefix(rhs, "\"") {
		end := closingQuote(rhs)
		if end < 0 {
			return nil, "", errors.New("unterminated string")
		}
		s, err := unquoteCompose(rhs[:end+1])
		if err != nil {
			return nil, "", err
		}
		result = s
		rhs = strings.TrimSpace(rhs[end+1:])
	}
	if result == "" && rhs != "" {
		name := strings.Fields(rhs)[0]
		sym, err := ParseKeySymbol(name)
		if err != nil {
			return nil, "", err
		}
		if r := sym.Rune(); r != 0 {
			result = string(r)
		}
	}
	if result == "" || !utf8.ValidString(result) {
		return nil, "", errors.New("no result")
	}
	return seq, result, nil
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// unquoteCompose decodes a double-quoted Compose string.
func unquoteCompose(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("not a quoted string: %s", s)
	}
	s = s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", errors.New("dangling escape")
		}
		switch c = s[i]; {
		case c == 'n':
			b.WriteByte('\n')
		case c == 'r':
			b.WriteByte('\r')
		case c == 't':
			b.WriteByte('\t')
		case c == '"' || c == '\\':
			b.WriteByte(c)
		case c == 'x' || c == 'X':
			j := i + 1
			for j < len(s) && j < i+3 && isHex(s[j]) {
				j++
			}
			v, err := strconv.ParseUint(s[i+1:j], 16, 8)
			if err != nil {
				return "", err
			}
			b.WriteByte(byte(v))
			i = j - 1
		case c >= '0' && c <= '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, err := strconv.ParseUint(s[i:j], 8, 8)
			if err != nil {
				return "", err
			}
			b.WriteByte(byte(v))
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

var (
	builtinOnce  sync.Once
	builtinTable *ComposeTable
)

// BuiltinComposeTable returns the process-wide built-in table.
func BuiltinComposeTable() *ComposeTable {
	builtinOnce.Do(func() {
		builtinTable = buildBuiltinTable()
	})
	return builtinTable
}

// multiKeyPairs are the Multi_key sequences of the built-in table.
var multiKeyPairs = []struct {
	a, b   rune
	result string
}{
	{'a', 'e', "æ"}, {'A', 'E', "Æ"}, {'o', 'e', "œ"}, {'O', 'E', "Œ"},
	{'s', 's', "ß"}, {'o', '/', "ø"}, {'O', '/', "Ø"}, {'a', 'a', "å"},
	{'A', 'A', "Å"}, {'!', '!', "¡"}, {'?', '?', "¿"}, {'<', '<', "«"},
	{'>', '>', "»"}, {'c', 'o', "©"}, {'r', 'o', "®"}, {'t', 'm', "™"},
	{'=', 'e', "€"}, {'-', 'l', "£"}, {'=', 'y', "¥"}, {'o', 'o', "°"},
	{'+', '-', "±"}, {'x', 'x', "×"}, {':', '-', "÷"}, {'.', '.', "…"},
	{'-', '-', "–"}, {'1', '2', "½"}, {'1', '4', "¼"}, {'3', '4', "¾"},
}

// buildBuiltinTable derives dead-key sequences from Unicode composition:
// a dead key followed by a base letter maps to the precomposed scalar that
// NFC produces for base+mark, when one exists.
func buildBuiltinTable() *ComposeTable {
	t := newComposeTable("builtin")
	for sym, d := range deadKeys {
		for base := rune(0x20); d.combining != 0 && base <= 0x7e; base++ {
			composed := norm.NFC.String(string([]rune{base, d.combining}))
			if utf8.RuneCountInString(composed) == 1 {
				t.add([]KeySymbol{sym, KeySymbol(base)}, composed)
			}
		}
		t.add([]KeySymbol{sym, KeySpace}, string(d.spacing))
		t.add([]KeySymbol{sym, sym}, string(d.spacing))
	}
	for _, p := range multiKeyPairs {
		t.add([]KeySymbol{KeyMultiKey, KeySymbolForRune(p.a), KeySymbolForRune(p.b)}, p.result)
	}
	return t
}

var (
	sharedOnce  sync.Once
	sharedTable *ComposeTable
	sharedErr   error
)

// SharedComposeTable loads the process-wide compose table on first use and
// returns the same table (or error) on every later call. opts only applies
// to the first call.
func SharedComposeTable(opts ComposeOptions) (*ComposeTable, error) {
	sharedOnce.Do(func() {
		sharedTable, sharedErr = LoadComposeTable(opts)
	})
	return sharedTable, sharedErr
}
