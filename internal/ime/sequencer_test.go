package ime

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

// trace renders events one per line for golden comparison.
func trace(events []Event) []byte {
	var b strings.Builder
	for _, ev := range events {
		fmt.Fprintf(&b, "%s\n", ev)
	}
	return []byte(b.String())
}

func TestFlushGolden(t *testing.T) {
	tests := []struct {
		name  string
		form  EventForm
		stage func(s *EventSequencer)
	}{
		{
			name: "flush_start_preedit",
			stage: func(s *EventSequencer) {
				s.StageStart()
				s.StagePreedit("a", &CursorRange{Begin: 1, End: 1})
			},
		},
		{
			name: "flush_commit_only",
			stage: func(s *EventSequencer) {
				s.StageCommit("x")
			},
		},
		{
			name: "flush_full_batch",
			stage: func(s *EventSequencer) {
				// Staged out of order on purpose.
				s.StagePreedit("ab", &CursorRange{Begin: 2, End: 2})
				s.StageCommit("é")
				s.StageDelete(1, 0)
				s.StageDelete(2, 0)
				s.StageStart()
			},
		},
		{
			name:  "flush_empty",
			stage: func(s *EventSequencer) {},
		},
		{
			name: "flush_hidden_caret",
			stage: func(s *EventSequencer) {
				s.StagePreedit("ab", nil)
			},
		},
		{
			name: "flush_legacy",
			form: FormLegacy,
			stage: func(s *EventSequencer) {
				s.StageDelete(1, 0)
				s.StageCommit("x")
				s.StagePreedit("yz", &CursorRange{Begin: 1, End: 1})
			},
		},
		{
			name: "flush_commits_concatenate",
			stage: func(s *EventSequencer) {
				s.StageCommit("ab")
				s.StageCommit("c")
				s.StagePreedit("", nil)
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s EventSequencer
			tt.stage(&s)
			g.Assert(t, tt.name, trace(s.Flush(tt.form)))
			assert.False(t, s.Pending())
		})
	}
}

// rank is an event's slot in flush order.
func rank(ev Event) int {
	switch e := ev.(type) {
	case StartEvent:
		return 0
	case DeleteSurroundingEvent:
		return 1
	case PreeditEvent:
		if e.Text == "" {
			return 2
		}
		return 4
	case CommitEvent:
		return 3
	}
	return -1
}

func TestFlushOrderAllCombinations(t *testing.T) {
	preedits := []struct {
		staged bool
		text   string
	}{{false, ""}, {true, ""}, {true, "ab"}}

	for mask := 0; mask < 8; mask++ {
		for _, p := range preedits {
			var s EventSequencer
			start, del, commit := mask&1 != 0, mask&2 != 0, mask&4 != 0
			if start {
				s.StageStart()
			}
			if del {
				s.StageDelete(1, 1)
			}
			if commit {
				s.StageCommit("c")
			}
			if p.staged {
				s.StagePreedit(p.text, &CursorRange{Begin: len(p.text), End: len(p.text)})
			}
			events := s.Flush(FormRange)
			desc := fmt.Sprintf("start=%v delete=%v commit=%v preedit=%q", start, del, commit, p.text)

			last := -1
			for _, ev := range events {
				r := rank(ev)
				assert.Greater(t, r, last, "%s: %v out of order in %v", desc, ev, events)
				last = r
			}

			newPreedit := p.text != ""
			hasClear := false
			for _, ev := range events {
				if rank(ev) == 2 {
					hasClear = true
				}
			}
			assert.Equal(t, commit || !newPreedit, hasClear, desc)

			want := 1 // the clear or the new preedit is always present
			if commit && newPreedit {
				want = 2
			}
			for _, b := range []bool{start, del, commit} {
				if b {
					want++
				}
			}
			assert.Len(t, events, want, desc)
		}
	}
}

func TestSequencerMoveCursor(t *testing.T) {
	var s EventSequencer
	assert.False(t, s.MoveCursor(&CursorRange{}))

	s.StagePreedit("abc", &CursorRange{Begin: 3, End: 3})
	assert.True(t, s.MoveCursor(&CursorRange{Begin: 1, End: 1}))
	events := s.Flush(FormRange)
	assert.Equal(t, []Event{PreeditEvent{Text: "abc", Cursor: &CursorRange{Begin: 1, End: 1}}}, events)
}
