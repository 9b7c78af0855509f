// Package ime turns native input method protocols and dead-key compose
// tables into one ordered stream of text input events per surface.
//
// # Architecture Overview
//
// Native input methods disagree on almost everything: IBus reports scalar
// offsets and has no batch boundary, Wayland text-input batches changes
// behind a done event, and a local compose table has no protocol at all.
// This package hides those differences behind a small transport contract
// and a single state machine:
//
//	┌──────────────┐   callbacks    ┌──────────────┐   Flush   ┌────────────┐
//	│  Transport   │ ─────────────→ │ InputContext │ ────────→ │ EventSink  │
//	│ ibus/compose │                │ (per surface)│           │ (windowing)│
//	└──────────────┘                └──────────────┘           └────────────┘
//	        ↑                              ↑
//	        └──────── Manager (surface table, one lock) ───────┘
//
// # Event Ordering
//
// Each flush releases staged changes in a fixed order. Text fields rely on
// it to avoid duplicating or losing characters:
//
//	┌───┬───────────────────────────┬─────────────────────────────────────┐
//	│ # │ Event                     │ Emitted when                        │
//	├───┼───────────────────────────┼─────────────────────────────────────┤
//	│ 1 │ Start                     │ a composition began in this batch   │
//	│ 2 │ DeleteSurrounding(b, a)   │ a delete was staged                 │
//	│ 3 │ Preedit("", None)         │ commit staged, or no new preedit    │
//	│ 4 │ Commit(text)              │ a commit was staged                 │
//	│ 5 │ Preedit(text, (c, c))     │ a non-empty preedit was staged      │
//	└───┴───────────────────────────┴─────────────────────────────────────┘
//
// Preedit cursors are byte ranges into the preedit text. Transports report
// carets as scalar indices; InputContext converts them.
//
// # Capabilities
//
// A client enables IME input with an EnableRequest whose Capabilities and
// initial RequestData must agree feature by feature. Later updates may
// carry fields outside the negotiated set; those are dropped with a
// warning and never reach the transport.
//
// # Composition
//
// ComposeEngine walks a ComposeTable trie one key symbol at a time. Keys
// that continue a sequence type nothing, a completed sequence types its
// result instead of the final key, and a key that breaks a sequence types
// nothing at all. Compose tables are loaded once per process and shared
// read-only.
package ime
