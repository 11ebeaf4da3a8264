package merge

import (
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Rule decides whether consecutive events of one type continue each other.
type Rule struct {
	Type   event.Type
	Window time.Duration
	// Continues reports whether next continues prev. Both have Type.
	Continues func(prev, next event.Event) bool
	// Value extracts the numeric value tracked in the merge summary.
	Value func(ev event.Event) (float64, bool)
}

// Default windows per family.
const (
	ChatWindow          = 60 * time.Second
	FriendsWindow       = 120 * time.Second
	FuelWindow          = 120 * time.Second
	CommunityGoalWindow = 300 * time.Second
)

func always(_, _ event.Event) bool { return true }

// DefaultRules returns the built-in family rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			Type:   event.TypeReceiveText,
			Window: ChatWindow,
			Continues: func(prev, next event.Event) bool {
				p, n := prev.(*event.ReceiveText), next.(*event.ReceiveText)
				return p.Channel == n.Channel && p.From.ID == n.From.ID
			},
		},
		{
			Type:   event.TypeSendText,
			Window: ChatWindow,
			Continues: func(prev, next event.Event) bool {
				return prev.(*event.SendText).To == next.(*event.SendText).To
			},
		},
		{
			Type:   event.TypeFriends,
			Window: FriendsWindow,
			Continues: func(prev, next event.Event) bool {
				return prev.(*event.Friends).Name == next.(*event.Friends).Name
			},
		},
		{
			Type:      event.TypeFuelScoop,
			Window:    FuelWindow,
			Continues: always,
			Value: func(ev event.Event) (float64, bool) {
				return ev.(*event.FuelScoop).Total, true
			},
		},
		{
			Type:      event.TypeReservoirReplenished,
			Window:    FuelWindow,
			Continues: always,
			Value: func(ev event.Event) (float64, bool) {
				return ev.(*event.ReservoirReplenished).FuelMain, true
			},
		},
		{
			Type:      event.TypeCommunityGoal,
			Window:    CommunityGoalWindow,
			Continues: always,
		},
	}
}
