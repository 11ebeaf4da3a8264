// Package cartography builds the graph of known star systems: where they
// are, what was found in them, how the commander travelled between them
// and which event first revealed each fact.
package cartography

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
)

// Name is the projection name.
const Name = "cartography"

// Provenance names the event that established a fact.
type Provenance struct {
	Seq  uint64     `json:"seq"`
	Type event.Type `json:"type"`
	Time time.Time  `json:"time"`
}

func provenanceOf(ev event.Event) Provenance {
	h := ev.Head()
	return Provenance{Seq: h.SequenceID, Type: h.Type, Time: h.Time}
}

// Body is a scanned or visited body.
type Body struct {
	Name          string           `json:"name"`
	ID            *int             `json:"id,omitempty"`
	Kind          event.BodyKind   `json:"kind,omitempty"`
	Class         string           `json:"class,omitempty"`
	DistanceLS    float64          `json:"distance_ls,omitempty"`
	Landable      *bool            `json:"landable,omitempty"`
	WasDiscovered *bool            `json:"was_discovered,omitempty"`
	WasMapped     *bool            `json:"was_mapped,omitempty"`
	MappedByMe    bool             `json:"mapped_by_me"`
	Efficient     bool             `json:"efficient"`
	Approached    bool             `json:"approached"`
	Landed        bool             `json:"landed"`
	Value         *event.BestValue `json:"value,omitempty"`
	Signals       map[string]int   `json:"signals,omitempty"`
	Scanned       *Provenance      `json:"scanned,omitempty"`
	Found         Provenance       `json:"found"`
}

// Station is a docked or reported station.
type Station struct {
	Name       string     `json:"name"`
	Type       string     `json:"type,omitempty"`
	MarketID   *int64     `json:"market_id,omitempty"`
	DistanceLS *float64   `json:"distance_ls,omitempty"`
	Faction    string     `json:"faction,omitempty"`
	Services   []string   `json:"services,omitempty"`
	Docks      int        `json:"docks"`
	Found      Provenance `json:"found"`
}

// System is one node of the graph.
type System struct {
	Name               string              `json:"name"`
	Address            *int64              `json:"address,omitempty"`
	Coords             *event.Coords       `json:"coords,omitempty"`
	CoordsFrom         *Provenance         `json:"coords_from,omitempty"`
	Found              Provenance          `json:"found"`
	Visits             int                 `json:"visits"`
	FirstVisit         *time.Time          `json:"first_visit,omitempty"`
	LastVisit          *time.Time          `json:"last_visit,omitempty"`
	Allegiance         string              `json:"allegiance,omitempty"`
	Economy            string              `json:"economy,omitempty"`
	Government         string              `json:"government,omitempty"`
	Security           string              `json:"security,omitempty"`
	Population         *int64              `json:"population,omitempty"`
	ControllingFaction string              `json:"controlling_faction,omitempty"`
	BodyCount          *int                `json:"body_count,omitempty"`
	AllBodiesFound     bool                `json:"all_bodies_found"`
	Bodies             map[string]*Body    `json:"bodies,omitempty"`
	Stations           map[string]*Station `json:"stations,omitempty"`
}

func (s *System) clone() *System {
	cp := *s
	cp.Bodies = make(map[string]*Body, len(s.Bodies))
	for k, b := range s.Bodies {
		bc := *b
		bc.Signals = maps.Clone(b.Signals)
		cp.Bodies[k] = &bc
	}
	cp.Stations = make(map[string]*Station, len(s.Stations))
	for k, st := range s.Stations {
		sc := *st
		sc.Services = slices.Clone(st.Services)
		cp.Stations[k] = &sc
	}
	return &cp
}

// Jump is one edge: a hyperspace or carrier jump between systems. From is
// empty for the first arrival of a session without a known origin.
type Jump struct {
	Seq      uint64     `json:"seq"`
	Time     time.Time  `json:"time"`
	Kind     event.Type `json:"kind"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to"`
	Distance float64    `json:"distance,omitempty"`
}

// Snapshot is the published view. Systems are keyed by lowercased name.
type Snapshot struct {
	Systems map[string]*System `json:"systems"`
	Jumps   []Jump             `json:"jumps"`
	Route   []event.RouteLeg   `json:"route,omitempty"`
	Current string             `json:"current,omitempty"`
	Orphans int                `json:"orphans"`
}

// Graph is the cartographic projection.
type Graph struct {
	systems   map[string]*System
	addresses map[int64]string
	jumps     []Jump
	route     []event.RouteLeg
	current   string
	orphans   int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		systems:   make(map[string]*System),
		addresses: make(map[int64]string),
		jumps:     make([]Jump, 0),
	}
}

// Factory builds empty graphs for the dispatcher.
func Factory() projection.Projection { return New() }

func (g *Graph) Name() string               { return Name }
func (g *Graph) Interest() event.Capability { return event.CapLocation }

func (g *Graph) Clone() projection.Projection {
	return &Graph{
		systems:   g.copySystems(),
		addresses: maps.Clone(g.addresses),
		jumps:     slices.Clone(g.jumps),
		route:     slices.Clone(g.route),
		current:   g.current,
		orphans:   g.orphans,
	}
}

func (g *Graph) Snapshot() any {
	return Snapshot{
		Systems: g.copySystems(),
		Jumps:   slices.Clone(g.jumps),
		Route:   slices.Clone(g.route),
		Current: g.current,
		Orphans: g.orphans,
	}
}

func (g *Graph) copySystems() map[string]*System {
	out := make(map[string]*System, len(g.systems))
	for k, s := range g.systems {
		out[k] = s.clone()
	}
	return out
}

// System returns a copy of the named system.
func (g *Graph) System(name string) (*System, bool) {
	s, ok := g.systems[key(name)]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// Current returns the name of the system the commander is in.
func (g *Graph) Current() string { return g.current }

// Jumps returns a copy of the travel edges.
func (g *Graph) Jumps() []Jump { return slices.Clone(g.jumps) }

func key(name string) string { return strings.ToLower(name) }

func (g *Graph) Apply(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Location:
		sys := g.arrive(ev, e.StarSystem, e.SystemAddress, e.StarPos, &e.SystemInfo)
		if e.Docked && e.StationName != nil {
			st := g.station(ev, sys, *e.StationName)
			st.Type = derefOr(e.StationType, st.Type)
			if e.MarketID != nil {
				st.MarketID = e.MarketID
			}
		}
	case *event.FSDJump:
		from := g.current
		g.arrive(ev, e.StarSystem, e.SystemAddress, e.StarPos, &e.SystemInfo)
		g.jump(ev, from, e.StarSystem, e.JumpDist)
		g.advanceRoute(e.StarSystem)
	case *event.CarrierJump:
		from := g.current
		sys := g.arrive(ev, e.StarSystem, e.SystemAddress, e.StarPos, &e.SystemInfo)
		g.jump(ev, from, e.StarSystem, 0)
		if e.Docked && e.StationName != nil {
			st := g.station(ev, sys, *e.StationName)
			if e.MarketID != nil {
				st.MarketID = e.MarketID
			}
		}
	case *event.Docked:
		sys := g.system(ev, e.StarSystem, e.SystemAddress)
		g.current = sys.Name
		st := g.station(ev, sys, e.StationName)
		st.Docks++
		st.Type = derefOr(e.StationType, st.Type)
		if e.MarketID != nil {
			st.MarketID = e.MarketID
		}
		if e.DistFromStarLS != nil {
			st.DistanceLS = e.DistFromStarLS
		}
		if e.StationFaction != nil {
			st.Faction = e.StationFaction.Name
		}
		if len(e.StationServices) > 0 {
			st.Services = slices.Clone(e.StationServices)
		}

	case *event.ApproachBody:
		sys := g.system(ev, e.StarSystem, e.SystemAddress)
		g.body(ev, sys, e.Body).Approached = true
	case *event.Touchdown:
		if e.Body == nil {
			return nil
		}
		sys := g.resolve(ev, derefOr(e.StarSystem, ""), e.SystemAddress)
		if sys == nil {
			g.orphans++
			return nil
		}
		g.body(ev, sys, *e.Body).Landed = true
	case *event.Scan:
		g.scan(e)
	case *event.SAAScanComplete:
		sys := g.resolve(ev, "", e.SystemAddress)
		if sys == nil {
			g.orphans++
			return nil
		}
		b := g.body(ev, sys, e.BodyName)
		b.MappedByMe = true
		b.Efficient = e.Efficient()
		if e.BodyID != nil {
			b.ID = e.BodyID
		}
	case *event.FSSDiscoveryScan:
		sys := g.resolve(ev, derefOr(e.SystemName, ""), e.SystemAddress)
		if sys == nil {
			g.orphans++
			return nil
		}
		n := e.BodyCount
		sys.BodyCount = &n
	case *event.FSSAllBodiesFound:
		sys := g.resolve(ev, e.SystemName, e.SystemAddress)
		if sys == nil {
			g.orphans++
			return nil
		}
		sys.AllBodiesFound = true
		n := e.Count
		sys.BodyCount = &n

	case *event.NavBeaconScan:
		sys := g.resolve(ev, "", e.SystemAddress)
		if sys == nil {
			g.orphans++
			return nil
		}
		n := e.NumBodies
		sys.BodyCount = &n
	case *event.FSSBodySignals:
		g.signals(ev, e.SystemAddress, e.BodyName, e.BodyID, e.Signals)
	case *event.SAASignalsFound:
		g.signals(ev, e.SystemAddress, e.BodyName, e.BodyID, e.Signals)
	case *event.FSSSignalDiscovered:
		if !e.IsStation {
			return nil
		}
		sys := g.resolve(ev, "", e.SystemAddress)
		if sys == nil {
			g.orphans++
			return nil
		}
		g.station(ev, sys, e.SignalName.String())

	case *event.NavRoute:
		g.navRoute(ev, e)
	case *event.NavRouteClear:
		g.route = nil
	}
	return nil
}

// arrive records a visit and makes the system current.
func (g *Graph) arrive(ev event.Event, name string, addr *int64, pos *event.Coords, info *event.SystemInfo) *System {
	sys := g.system(ev, name, addr)
	g.locate(ev, sys, pos)
	t := ev.Head().Time
	sys.Visits++
	if sys.FirstVisit == nil {
		sys.FirstVisit = &t
	}
	sys.LastVisit = &t
	g.current = sys.Name
	g.describe(sys, info)
	return sys
}

func (g *Graph) describe(sys *System, info *event.SystemInfo) {
	if info.Allegiance != nil {
		sys.Allegiance = *info.Allegiance
	}
	if info.Economy != nil {
		sys.Economy = info.Economy.String()
	}
	if info.Government != nil {
		sys.Government = info.Government.String()
	}
	if info.Security != nil {
		sys.Security = info.Security.String()
	}
	if info.Population != nil {
		sys.Population = info.Population
	}
	if info.SystemFaction != nil {
		sys.ControllingFaction = info.SystemFaction.Name
	}
}

func (g *Graph) jump(ev event.Event, from, to string, dist float64) {
	h := ev.Head()
	if strings.EqualFold(from, to) {
		from = ""
	}
	g.jumps = append(g.jumps, Jump{Seq: h.SequenceID, Time: h.Time, Kind: h.Type, From: from, To: to, Distance: dist})
}

// system finds or creates a system by name, linking its address.
func (g *Graph) system(ev event.Event, name string, addr *int64) *System {
	if name == "" && addr != nil {
		if known, ok := g.addresses[*addr]; ok {
			name = known
		}
	}
	k := key(name)
	sys, ok := g.systems[k]
	if !ok {
		sys = &System{
			Name:     name,
			Found:    provenanceOf(ev),
			Bodies:   make(map[string]*Body),
			Stations: make(map[string]*Station),
		}
		g.systems[k] = sys
	}
	if addr != nil {
		a := *addr
		sys.Address = &a
		g.addresses[a] = name
	}
	return sys
}

// resolve finds the system an exploration event refers to: by name, by
// address, or the current system. It never creates a nameless system.
func (g *Graph) resolve(ev event.Event, name string, addr *int64) *System {
	if name != "" {
		return g.system(ev, name, addr)
	}
	if addr != nil {
		if known, ok := g.addresses[*addr]; ok {
			return g.systems[key(known)]
		}
	}
	if g.current != "" {
		return g.systems[key(g.current)]
	}
	return nil
}

// locate records coordinates with the event that supplied them. A plotted
// route never overrides coordinates already known.
func (g *Graph) locate(ev event.Event, sys *System, pos *event.Coords) {
	if pos == nil || (sys.Coords != nil && event.TypeOf(ev) == event.TypeNavRoute) {
		return
	}
	c := *pos
	sys.Coords = &c
	p := provenanceOf(ev)
	sys.CoordsFrom = &p
}

func (g *Graph) station(ev event.Event, sys *System, name string) *Station {
	k := key(name)
	st, ok := sys.Stations[k]
	if !ok {
		st = &Station{Name: name, Found: provenanceOf(ev)}
		sys.Stations[k] = st
	}
	return st
}

func (g *Graph) body(ev event.Event, sys *System, name string) *Body {
	k := key(name)
	b, ok := sys.Bodies[k]
	if !ok {
		b = &Body{Name: name, Found: provenanceOf(ev)}
		sys.Bodies[k] = b
	}
	return b
}

// signals records per-type signal counts on a body. A later report
// replaces the counts it names.
func (g *Graph) signals(ev event.Event, addr *int64, name string, id *int, sigs []*event.Signal) {
	sys := g.resolve(ev, "", addr)
	if sys == nil {
		g.orphans++
		return
	}
	b := g.body(ev, sys, name)
	if id != nil {
		b.ID = id
	}
	if b.Signals == nil {
		b.Signals = make(map[string]int, len(sigs))
	}
	for _, sig := range sigs {
		if sig != nil {
			b.Signals[sig.Type.ID] = sig.Count
		}
	}
}

func (g *Graph) scan(e *event.Scan) {
	sys := g.resolve(e, derefOr(e.StarSystem, ""), e.SystemAddress)
	if sys == nil {
		g.orphans++
		return
	}
	b := g.body(e, sys, e.BodyName)
	p := provenanceOf(e)
	b.Scanned = &p
	b.Kind = e.Kind
	b.DistanceLS = e.DistanceFromArrivalLS
	if e.BodyID != nil {
		b.ID = e.BodyID
	}
	switch {
	case e.StarType != nil:
		b.Class = *e.StarType
	case e.PlanetClass != nil:
		b.Class = *e.PlanetClass
	}
	b.Landable = e.Landable
	b.WasDiscovered = e.WasDiscovered
	b.WasMapped = e.WasMapped
	if v, ok := e.FrozenValuation(); ok {
		best := v.Best
		b.Value = &best
	}
}

// navRoute replaces the plotted route and registers its systems without
// counting them as visited.
func (g *Graph) navRoute(ev event.Event, e *event.NavRoute) {
	if e.Route == nil {
		return
	}
	g.route = make([]event.RouteLeg, 0, len(e.Route))
	for _, leg := range e.Route {
		if leg == nil {
			continue
		}
		g.route = append(g.route, *leg)
		addr := leg.SystemAddress
		pos := leg.StarPos
		sys := g.system(ev, leg.StarSystem, &addr)
		g.locate(ev, sys, &pos)
	}
}

// advanceRoute drops the legs up to and including the system reached.
func (g *Graph) advanceRoute(reached string) {
	for i, leg := range g.route {
		if strings.EqualFold(leg.StarSystem, reached) {
			g.route = slices.Clone(g.route[i+1:])
			return
		}
	}
}

func derefOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
