package merge_test

import (
	"testing"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/merge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func header(seq uint64, typ event.Type, offset time.Duration) event.Header {
	return event.Header{SequenceID: seq, Type: typ, Time: t0.Add(offset)}
}

func chat(seq uint64, offset time.Duration, channel, from, msg string) *event.ReceiveText {
	return &event.ReceiveText{
		Header:  header(seq, event.TypeReceiveText, offset),
		From:    event.Named{ID: from, Label: from},
		Message: msg,
		Channel: channel,
	}
}

func scoop(seq uint64, offset time.Duration, total float64) *event.FuelScoop {
	return &event.FuelScoop{Header: header(seq, event.TypeFuelScoop, offset), Scooped: 5, Total: total}
}

func TestThreeChatLinesMergeIntoOne(t *testing.T) {
	in := []event.Event{
		chat(1, 0, "local", "X", "a"),
		chat(2, 10*time.Second, "local", "X", "b"),
		chat(3, 20*time.Second, "local", "X", "c"),
	}

	out := merge.New().Merge(in)
	require.Len(t, out, 1)

	m, ok := out[0].(*event.Merged)
	require.True(t, ok)
	assert.Len(t, m.Constituents, 2)
	assert.Equal(t, 3, m.Summary.Count)
	assert.Same(t, in[0], m.Primary)
	assert.Equal(t, uint64(1), m.Head().SequenceID)
	assert.Equal(t, "c", m.Last().(*event.ReceiveText).Message)
}

func TestChatMergeBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   []event.Event
		want int
	}{
		{
			name: "different channel",
			in:   []event.Event{chat(1, 0, "local", "X", "a"), chat(2, time.Second, "wing", "X", "b")},
			want: 2,
		},
		{
			name: "different sender",
			in:   []event.Event{chat(1, 0, "local", "X", "a"), chat(2, time.Second, "local", "Y", "b")},
			want: 2,
		},
		{
			name: "outside window",
			in:   []event.Event{chat(1, 0, "local", "X", "a"), chat(2, 2*time.Minute, "local", "X", "b")},
			want: 2,
		},
		{
			name: "time goes backwards",
			in:   []event.Event{chat(1, time.Minute, "local", "X", "a"), chat(2, 0, "local", "X", "b")},
			want: 2,
		},
		{
			name: "type change closes the window",
			in: []event.Event{
				chat(1, 0, "local", "X", "a"),
				scoop(2, time.Second, 10),
				chat(3, 2*time.Second, "local", "X", "b"),
			},
			want: 3,
		},
		{
			name: "window is measured from the last absorbed event",
			in: []event.Event{
				chat(1, 0, "local", "X", "a"),
				chat(2, 50*time.Second, "local", "X", "b"),
				chat(3, 100*time.Second, "local", "X", "c"),
			},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, merge.New().Merge(tt.in), tt.want)
		})
	}
}

func TestSessionBoundaryStopsMerge(t *testing.T) {
	a := chat(1, 0, "local", "X", "a")
	b := chat(2, time.Second, "local", "X", "b")
	b.Session = 1
	assert.Len(t, merge.New().Merge([]event.Event{a, b}), 2)
}

func TestFuelSummaryTracksFirstAndLatest(t *testing.T) {
	in := []event.Event{scoop(1, 0, 10), scoop(2, 5*time.Second, 15), scoop(3, 10*time.Second, 20)}
	out := merge.New().Merge(in)
	require.Len(t, out, 1)

	m := out[0].(*event.Merged)
	require.NotNil(t, m.Summary.FirstValue)
	require.NotNil(t, m.Summary.LatestValue)
	assert.Equal(t, 10.0, *m.Summary.FirstValue)
	assert.Equal(t, 20.0, *m.Summary.LatestValue)
	assert.Equal(t, event.CapVehicle, m.Capabilities())
}

func TestMaxConstituents(t *testing.T) {
	var in []event.Event
	for i := 0; i < 5; i++ {
		in = append(in, scoop(uint64(i+1), time.Duration(i)*time.Second, float64(i)))
	}
	out := merge.New(merge.WithMaxConstituents(2)).Merge(in)
	require.Len(t, out, 2)
	assert.Equal(t, 3, out[0].(*event.Merged).Summary.Count)
	assert.Equal(t, 2, out[1].(*event.Merged).Summary.Count)
}

func TestMergeLeavesInputUntouched(t *testing.T) {
	in := []event.Event{chat(1, 0, "local", "X", "a"), chat(2, time.Second, "local", "X", "b")}
	first := merge.New().Merge(in)
	require.Len(t, first, 1)
	m := first[0].(*event.Merged)

	extended := merge.New().Merge(append(first, chat(3, 2*time.Second, "local", "X", "c")))
	require.Len(t, extended, 1)
	assert.Len(t, m.Constituents, 1, "earlier aggregate must not change")
	assert.Len(t, extended[0].(*event.Merged).Constituents, 2)
	assert.Equal(t, 3, extended[0].(*event.Merged).Summary.Count)
}

func TestWithWindow(t *testing.T) {
	in := []event.Event{chat(1, 0, "local", "X", "a"), chat(2, 90*time.Second, "local", "X", "b")}
	assert.Len(t, merge.New().Merge(in), 2)
	assert.Len(t, merge.New(merge.WithWindow(event.TypeReceiveText, 2*time.Minute)).Merge(in), 1)
}

func TestFlattenRestoresOrder(t *testing.T) {
	in := []event.Event{
		chat(1, 0, "local", "X", "a"),
		chat(2, time.Second, "local", "X", "b"),
		scoop(3, 2*time.Second, 1),
	}
	out := merge.New().Merge(in)
	require.Len(t, out, 2)
	assert.Equal(t, in, event.Flatten(out))
}

func TestMergeableAcceptsAggregates(t *testing.T) {
	e := merge.New()
	out := e.Merge([]event.Event{chat(1, 0, "local", "X", "a"), chat(2, 10*time.Second, "local", "X", "b")})
	require.Len(t, out, 1)
	agg := out[0]

	assert.True(t, e.Mergeable(agg, chat(3, 20*time.Second, "local", "X", "c")))
	assert.False(t, e.Mergeable(agg, chat(3, 20*time.Second, "wing", "X", "c")))
	assert.False(t, e.Mergeable(agg, chat(3, 5*time.Minute, "local", "X", "c")), "window runs from the last constituent")

	next := e.Merge([]event.Event{chat(3, 20*time.Second, "local", "X", "c"), chat(4, 25*time.Second, "local", "X", "d")})
	assert.True(t, e.Mergeable(agg, next[0]))
}
