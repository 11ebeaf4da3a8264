// Package vehicle tracks the commander's ships, sub-vehicles and crew.
//
// Each sub-vehicle bay is a small state machine (stowed, launched,
// destroyed). Transitions the journal reports from an impossible state are
// tolerated: the state is left unchanged and the event is counted in
// Ignored.
package vehicle

import (
	"maps"
	"slices"
	"strings"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
)

// Name is the projection name.
const Name = "vehicle"

// BayStatus is the state of a sub-vehicle bay.
type BayStatus string

const (
	BayStowed    BayStatus = "stowed"
	BayLaunched  BayStatus = "launched"
	BayDestroyed BayStatus = "destroyed"
)

// ShipStatus is where a known ship is.
type ShipStatus string

const (
	ShipActive    ShipStatus = "active"
	ShipStored    ShipStatus = "stored"
	ShipDestroyed ShipStatus = "destroyed"
)

// Piloting values.
const (
	PilotMothership = "Mothership"
	PilotFighter    = "Fighter"
	PilotSRV        = "SRV"
	PilotOnFoot     = "OnFoot"
	PilotTaxi       = "Taxi"
)

// Bay is a sub-vehicle slot.
type Bay struct {
	Status  BayStatus `json:"status"`
	Type    string    `json:"type,omitempty"`
	ID      *int      `json:"id,omitempty"`
	Loadout string    `json:"loadout,omitempty"`
}

// Module is a fitted module.
type Module struct {
	Item   event.Named `json:"item"`
	On     bool        `json:"on"`
	Health *float64    `json:"health,omitempty"`
	Value  *int64      `json:"value,omitempty"`
}

// Ship is the last known state of one hull.
type Ship struct {
	ID           int               `json:"id"`
	Type         event.Named       `json:"type"`
	Name         string            `json:"name,omitempty"`
	Ident        string            `json:"ident,omitempty"`
	Status       ShipStatus        `json:"status"`
	HullHealth   *float64          `json:"hull_health,omitempty"`
	HullValue    *int64            `json:"hull_value,omitempty"`
	ModulesValue *int64            `json:"modules_value,omitempty"`
	Rebuy        *int64            `json:"rebuy,omitempty"`
	FuelLevel    *float64          `json:"fuel_level,omitempty"`
	FuelCapacity *float64          `json:"fuel_capacity,omitempty"`
	Modules      map[string]Module `json:"modules,omitempty"`
}

func (sh *Ship) clone() *Ship {
	cp := *sh
	cp.Modules = maps.Clone(sh.Modules)
	return &cp
}

// NPC is a hired pilot.
type NPC struct {
	Name       string `json:"name"`
	ID         *int64 `json:"id,omitempty"`
	Faction    string `json:"faction,omitempty"`
	CombatRank int    `json:"combat_rank"`
}

// Snapshot is the published view.
type Snapshot struct {
	CurrentShipID *int     `json:"current_ship_id,omitempty"`
	Ships         []Ship   `json:"ships"`
	SRV           Bay      `json:"srv"`
	Fighter       Bay      `json:"fighter"`
	Piloting      string   `json:"piloting"`
	Crew          []string `json:"crew,omitempty"`
	NPCCrew       []NPC    `json:"npc_crew,omitempty"`
	Captain       string   `json:"captain,omitempty"`
	Dead          bool     `json:"dead"`
	Ignored       int      `json:"ignored"`
}

// State is the vehicle projection.
type State struct {
	current  *int
	ships    map[int]*Ship
	srv      Bay
	fighter  Bay
	piloting string
	crew     map[string]bool
	npcs     map[string]NPC
	captain  string
	dead     bool
	ignored  int
}

// New returns an empty state with both bays stowed.
func New() *State {
	return &State{
		ships:    make(map[int]*Ship),
		srv:      Bay{Status: BayStowed},
		fighter:  Bay{Status: BayStowed},
		piloting: PilotMothership,
		crew:     make(map[string]bool),
		npcs:     make(map[string]NPC),
	}
}

// Factory builds empty vehicle states for the dispatcher.
func Factory() projection.Projection { return New() }

func (s *State) Name() string               { return Name }
func (s *State) Interest() event.Capability { return event.CapVehicle }

func (s *State) Clone() projection.Projection {
	cp := *s
	if s.current != nil {
		id := *s.current
		cp.current = &id
	}
	cp.ships = make(map[int]*Ship, len(s.ships))
	for id, ship := range s.ships {
		cp.ships[id] = ship.clone()
	}
	cp.crew = maps.Clone(s.crew)
	cp.npcs = maps.Clone(s.npcs)
	return &cp
}

func (s *State) Snapshot() any {
	out := Snapshot{
		SRV:      s.srv,
		Fighter:  s.fighter,
		Piloting: s.piloting,
		Captain:  s.captain,
		Dead:     s.dead,
		Ignored:  s.ignored,
		Ships:    make([]Ship, 0, len(s.ships)),
	}
	if s.current != nil {
		id := *s.current
		out.CurrentShipID = &id
	}
	for _, id := range slices.Sorted(maps.Keys(s.ships)) {
		out.Ships = append(out.Ships, *s.ships[id].clone())
	}
	out.Crew = slices.Sorted(maps.Keys(s.crew))
	for _, name := range slices.Sorted(maps.Keys(s.npcs)) {
		out.NPCCrew = append(out.NPCCrew, s.npcs[name])
	}
	return out
}

// Ignored is the number of transitions tolerated as no-ops.
func (s *State) Ignored() int { return s.ignored }

// CurrentShip returns a copy of the ship in use.
func (s *State) CurrentShip() (Ship, bool) {
	ship := s.currentShip()
	if ship == nil {
		return Ship{}, false
	}
	return *ship.clone(), true
}

// SRV returns the SRV bay.
func (s *State) SRV() Bay { return s.srv }

// Fighter returns the fighter bay.
func (s *State) Fighter() Bay { return s.fighter }

// Piloting returns which vehicle the commander is flying.
func (s *State) Piloting() string { return s.piloting }

func (s *State) Apply(ev event.Event) error {
	switch e := ev.(type) {
	case *event.LoadGame:
		s.loadGame(e)
	case *event.Loadout:
		s.loadout(e)
	case *event.ShipyardBuy:
		s.retire(e.StoreShipID, e.SellShipID)
		s.current = nil
	case *event.ShipyardNew:
		s.switchTo(e.NewShipID, e.ShipType)
	case *event.ShipyardSwap:
		s.retire(e.StoreShipID, e.SellShipID)
		s.switchTo(e.ShipID, e.ShipType)
	case *event.ShipyardSell:
		if _, ok := s.ships[e.SellShipID]; !ok {
			s.ignored++
			return nil
		}
		delete(s.ships, e.SellShipID)
	case *event.SetUserShipName:
		ship := s.ensure(e.ShipID, e.Ship)
		ship.Name = e.UserShipName
		ship.Ident = e.UserShipID

	case *event.ModuleBuy:
		s.ensure(e.ShipID, e.Ship).fit(e.Slot, e.BuyItem)
	case *event.ModuleSell:
		delete(s.ensure(e.ShipID, e.Ship).Modules, e.Slot)
	case *event.ModuleStore:
		ship := s.ensure(e.ShipID, e.Ship)
		if e.ReplacementItem != nil {
			ship.fit(e.Slot, *e.ReplacementItem)
		} else {
			delete(ship.Modules, e.Slot)
		}
	case *event.ModuleRetrieve:
		s.ensure(e.ShipID, e.Ship).fit(e.Slot, e.RetrievedItem)
	case *event.ModuleSwap:
		s.ensure(e.ShipID, e.Ship).swap(e.FromSlot, e.ToSlot)
	case *event.MassModuleStore:
		ship := s.ensure(e.ShipID, e.Ship)
		for _, it := range e.Items {
			if it != nil {
				delete(ship.Modules, it.Slot)
			}
		}
	case *event.AfmuRepairs:
		if ship := s.currentShip(); ship != nil {
			ship.setModuleHealth(e.Module.ID, e.Health)
		}

	case *event.RefuelAll:
		s.refuel(e.Amount, true)
	case *event.RefuelPartial:
		s.refuel(e.Amount, false)
	case *event.FuelScoop:
		s.setFuel(e.Total)
	case *event.ReservoirReplenished:
		s.setFuel(e.FuelMain)
	case *event.FSDJump:
		if e.FuelLevel != nil {
			s.setFuel(*e.FuelLevel)
		}
	case *event.RepairAll:
		if ship := s.currentShip(); ship != nil {
			ship.repairHull()
			ship.repairModules("")
		}
	case *event.Repair:
		s.repair(e.Items)
	case *event.HullDamage:
		if e.PlayerPilot && !e.Fighter {
			if ship := s.currentShip(); ship != nil {
				h := e.Health
				ship.HullHealth = &h
			}
		}

	case *event.LaunchSRV:
		s.launchSRV(e)
	case *event.DockSRV:
		s.recover(&s.srv, PilotSRV)
	case *event.SRVDestroyed:
		s.destroy(&s.srv, PilotSRV)
	case *event.LaunchFighter:
		s.launchFighter(e)
	case *event.DockFighter:
		s.recover(&s.fighter, PilotFighter)
	case *event.FighterDestroyed:
		s.destroy(&s.fighter, PilotFighter)
	case *event.FighterRebuilt:
		if s.fighter.Status != BayDestroyed {
			s.ignored++
			return nil
		}
		s.fighter = Bay{Status: BayStowed, Loadout: e.Loadout, ID: e.ID}
	case *event.RestockVehicle:
		s.restock(e)
	case *event.VehicleSwitch:
		s.vehicleSwitch(e.To)
	case *event.Disembark:
		s.piloting = PilotOnFoot
	case *event.Embark:
		s.embark(e)

	case *event.CrewMemberJoins:
		if s.crew[e.Crew] {
			s.ignored++
			return nil
		}
		s.crew[e.Crew] = true
	case *event.CrewMemberQuits:
		if !s.crew[e.Crew] {
			s.ignored++
			return nil
		}
		delete(s.crew, e.Crew)
	case *event.CrewHire:
		s.npcs[e.Name] = NPC{Name: e.Name, ID: e.CrewID, Faction: e.Faction, CombatRank: e.CombatRank}
	case *event.CrewFire:
		if _, ok := s.npcs[e.Name]; !ok {
			s.ignored++
			return nil
		}
		delete(s.npcs, e.Name)
	case *event.JoinACrew:
		s.captain = e.Captain
	case *event.QuitACrew:
		if s.captain == "" {
			s.ignored++
			return nil
		}
		s.captain = ""

	case *event.Died:
		s.died()
	case *event.Resurrect:
		s.dead = false
		if ship := s.currentShip(); ship != nil {
			ship.Status = ShipActive
			ship.repairHull()
			if ship.FuelCapacity != nil {
				f := *ship.FuelCapacity
				ship.FuelLevel = &f
			}
		}
	}
	return nil
}

func (s *State) loadGame(e *event.LoadGame) {
	s.srv = Bay{Status: BayStowed}
	s.fighter = Bay{Status: BayStowed}
	s.piloting = PilotMothership
	s.captain = ""
	clear(s.crew)
	s.dead = false
	if e.ShipID == nil {
		return
	}
	var typ event.Named
	if e.Ship != nil {
		typ = *e.Ship
	}
	ship := s.switchTo(*e.ShipID, typ)
	if e.ShipName != nil {
		ship.Name = *e.ShipName
	}
	if e.ShipIdent != nil {
		ship.Ident = *e.ShipIdent
	}
	if e.FuelLevel != nil {
		ship.FuelLevel = ptr(*e.FuelLevel)
	}
	if e.FuelCapacity != nil {
		ship.FuelCapacity = ptr(*e.FuelCapacity)
	}
}

func (s *State) loadout(e *event.Loadout) {
	ship := s.switchTo(e.ShipID, e.Ship)
	if e.ShipName != nil {
		ship.Name = *e.ShipName
	}
	if e.ShipIdent != nil {
		ship.Ident = *e.ShipIdent
	}
	ship.HullValue = e.HullValue
	ship.ModulesValue = e.ModulesValue
	ship.Rebuy = e.Rebuy
	if e.HullHealth != nil {
		ship.HullHealth = ptr(*e.HullHealth)
	}
	if e.FuelCapacity != nil {
		ship.FuelCapacity = ptr(e.FuelCapacity.Main)
	}
	ship.Modules = make(map[string]Module, len(e.Modules))
	for _, m := range e.Modules {
		if m == nil {
			continue
		}
		ship.Modules[m.Slot] = Module{Item: m.Item, On: m.On, Health: m.Health, Value: m.Value}
	}
}

// ensure returns the ship with id, creating it as stored when unknown.
func (s *State) ensure(id int, typ event.Named) *Ship {
	ship, ok := s.ships[id]
	if !ok {
		ship = &Ship{ID: id, Type: typ, Status: ShipStored, Modules: make(map[string]Module)}
		s.ships[id] = ship
	}
	if ship.Type.ID == "" {
		ship.Type = typ
	}
	return ship
}

func (s *State) switchTo(id int, typ event.Named) *Ship {
	if cur := s.currentShip(); cur != nil && cur.ID != id && cur.Status == ShipActive {
		cur.Status = ShipStored
	}
	ship := s.ensure(id, typ)
	if typ.ID != "" {
		ship.Type = typ
	}
	ship.Status = ShipActive
	s.current = &id
	return ship
}

// retire stores or sells the current ship as part of a shipyard action.
func (s *State) retire(storeID, sellID *int) {
	if storeID != nil {
		if ship, ok := s.ships[*storeID]; ok {
			ship.Status = ShipStored
		}
	}
	if sellID != nil {
		delete(s.ships, *sellID)
	}
}

func (s *State) currentShip() *Ship {
	if s.current == nil {
		return nil
	}
	return s.ships[*s.current]
}

func (s *State) setFuel(v float64) {
	if ship := s.currentShip(); ship != nil {
		ship.FuelLevel = ptr(v)
	}
}

func (s *State) refuel(amount float64, full bool) {
	ship := s.currentShip()
	if ship == nil {
		return
	}
	if full && ship.FuelCapacity != nil {
		ship.FuelLevel = ptr(*ship.FuelCapacity)
		return
	}
	level := amount
	if ship.FuelLevel != nil {
		level += *ship.FuelLevel
	}
	if ship.FuelCapacity != nil && level > *ship.FuelCapacity {
		level = *ship.FuelCapacity
	}
	ship.FuelLevel = ptr(level)
}

func (s *State) repair(items []string) {
	ship := s.currentShip()
	if ship == nil {
		return
	}
	for _, item := range items {
		switch lower := strings.ToLower(item); lower {
		case "all":
			ship.repairHull()
			ship.repairModules("")
		case "wear", "hull":
			ship.repairHull()
		default:
			ship.repairModules(lower)
		}
	}
}

func (s *State) launchSRV(e *event.LaunchSRV) {
	if s.srv.Status != BayStowed {
		s.ignored++
		return
	}
	s.srv = Bay{Status: BayLaunched, ID: e.ID, Loadout: e.Loadout}
	if e.SRVType != nil {
		s.srv.Type = e.SRVType.ID
	}
	if e.PlayerControlled {
		s.piloting = PilotSRV
	}
}

func (s *State) launchFighter(e *event.LaunchFighter) {
	if s.fighter.Status != BayStowed {
		s.ignored++
		return
	}
	s.fighter = Bay{Status: BayLaunched, ID: e.ID, Loadout: e.Loadout}
	if e.PlayerControlled {
		s.piloting = PilotFighter
	}
}

func (s *State) recover(bay *Bay, pilot string) {
	if bay.Status != BayLaunched {
		s.ignored++
		return
	}
	bay.Status = BayStowed
	if s.piloting == pilot {
		s.piloting = PilotMothership
	}
}

func (s *State) destroy(bay *Bay, pilot string) {
	if bay.Status != BayLaunched {
		s.ignored++
		return
	}
	bay.Status = BayDestroyed
	if s.piloting == pilot {
		s.piloting = PilotMothership
	}
}

// restock replaces a lost sub-vehicle. Restocking a healthy bay only
// tops up spares and leaves the state alone.
func (s *State) restock(e *event.RestockVehicle) {
	bay := &s.fighter
	if isSRV(e.Vehicle.ID) {
		bay = &s.srv
	}
	if bay.Status == BayDestroyed {
		*bay = Bay{Status: BayStowed, Type: e.Vehicle.ID, Loadout: e.Loadout}
	}
}

// embark boards from foot. Boarding an SRV requires one to be deployed.
func (s *State) embark(e *event.Embark) {
	switch {
	case e.SRV:
		if s.srv.Status != BayLaunched {
			s.ignored++
			return
		}
		s.piloting = PilotSRV
	case e.Taxi:
		s.piloting = PilotTaxi
	default:
		s.piloting = PilotMothership
	}
}

func (s *State) vehicleSwitch(to string) {
	switch to {
	case PilotFighter:
		if s.fighter.Status != BayLaunched {
			s.ignored++
			return
		}
		s.piloting = PilotFighter
	case PilotMothership:
		s.piloting = PilotMothership
	default:
		s.ignored++
	}
}

func (s *State) died() {
	s.dead = true
	if ship := s.currentShip(); ship != nil && s.piloting == PilotMothership {
		ship.Status = ShipDestroyed
		ship.HullHealth = ptr(0.0)
	}
	if s.srv.Status == BayLaunched {
		s.srv.Status = BayDestroyed
	}
	if s.fighter.Status == BayLaunched {
		s.fighter.Status = BayDestroyed
	}
	s.piloting = PilotMothership
	s.captain = ""
}

func (sh *Ship) fit(slot string, item event.Named) {
	if sh.Modules == nil {
		sh.Modules = make(map[string]Module)
	}
	sh.Modules[slot] = Module{Item: item, On: true, Health: ptr(100.0)}
}

// swap exchanges two slots; either may be empty.
func (sh *Ship) swap(from, to string) {
	a, aok := sh.Modules[from]
	b, bok := sh.Modules[to]
	delete(sh.Modules, from)
	delete(sh.Modules, to)
	if aok {
		sh.Modules[to] = a
	}
	if bok {
		sh.Modules[from] = b
	}
}

// setModuleHealth sets health on every fitted module with the given item.
func (sh *Ship) setModuleHealth(item string, health float64) {
	for slot, m := range sh.Modules {
		if m.Item.ID == item {
			m.Health = ptr(health)
			sh.Modules[slot] = m
		}
	}
}

func (sh *Ship) repairHull() {
	sh.HullHealth = ptr(100.0)
}

// repairModules restores health on modules whose item id matches, or on
// every module when item is empty.
func (sh *Ship) repairModules(item string) {
	for slot, m := range sh.Modules {
		if item == "" || strings.EqualFold(m.Item.ID, item) || strings.EqualFold(slot, item) {
			m.Health = ptr(100.0)
			sh.Modules[slot] = m
		}
	}
}

func isSRV(id string) bool {
	id = strings.ToLower(id)
	return strings.Contains(id, "buggy") || strings.Contains(id, "srv")
}

func ptr[T any](v T) *T { return &v }
