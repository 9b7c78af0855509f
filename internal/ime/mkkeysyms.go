//go:build ignore

// mkkeysyms generates keysym_names.go from the X11 keysymdef.h.
//
//	go run mkkeysyms.go [-o keysym_names.go] [path/to/keysymdef.h]
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"regexp"
	"strconv"
)

// define matches "#define XK_name 0xVALUE /* U+XXXX ... */". Approximate
// mappings are written "/*(U+XXXX ...)*/" and count too.
var define = regexp.MustCompile(`^#define XK_([a-zA-Z0-9_]+)\s+0x([0-9a-fA-F]+)\s*(?:/\*\s*\(?U\+([0-9A-Fa-f]{4,6}))?`)

func main() {
	out := flag.String("o", "keysym_names.go", "output file")
	flag.Parse()
	src := "/usr/include/X11/keysymdef.h"
	if flag.NArg() > 0 {
		src = flag.Arg(0)
	}

	f, err := os.Open(src)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var buf bytes.Buffer
	buf.WriteString("// Code generated by mkkeysyms.go from keysymdef.h; DO NOT EDIT.\n\n")
	buf.WriteString("package ime\n\n")
	buf.WriteString("// keysymTable lists every keysym name in keysymdef.h order with the\n")
	buf.WriteString("// character the keysym types, or 0.\n")
	buf.WriteString("var keysymTable = [...]struct {\n\tname string\n\tsym  KeySymbol\n\tr    rune\n}{\n")

	seen := make(map[string]bool)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := define.FindStringSubmatch(sc.Text())
		if m == nil || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		sym, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil {
			log.Fatalf("%s: %v", m[1], err)
		}
		r := "0"
		if m[3] != "" {
			cp, err := strconv.ParseUint(m[3], 16, 32)
			if err != nil {
				log.Fatalf("%s: %v", m[1], err)
			}
			r = fmt.Sprintf("0x%04x", cp)
		}
		fmt.Fprintf(&buf, "\t{%q, 0x%04x, %s},\n", m[1], sym, r)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	buf.WriteString("}\n")

	code, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, code, 0o644); err != nil {
		log.Fatal(err)
	}
}
