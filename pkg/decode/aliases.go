package decode

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// fieldAlias renames a legacy field to its current name. An empty Types
// list applies the alias to every variant.
type fieldAlias struct {
	types   []event.Type
	legacy  string
	current string
}

var (
	arrivalTypes = []event.Type{event.TypeLocation, event.TypeFSDJump, event.TypeCarrierJump}
	missionTypes = []event.Type{
		event.TypeMissionAccepted, event.TypeMissionCompleted, event.TypeMissionFailed, event.TypeMissionAbandoned,
	}
)

var fieldAliases = []fieldAlias{
	{types: arrivalTypes, legacy: "Allegiance", current: "SystemAllegiance"},
	{types: arrivalTypes, legacy: "Economy", current: "SystemEconomy"},
	{types: arrivalTypes, legacy: "Economy_Localised", current: "SystemEconomy_Localised"},
	{types: arrivalTypes, legacy: "Government", current: "SystemGovernment"},
	{types: arrivalTypes, legacy: "Government_Localised", current: "SystemGovernment_Localised"},
	{types: arrivalTypes, legacy: "Security", current: "SystemSecurity"},
	{types: arrivalTypes, legacy: "Security_Localised", current: "SystemSecurity_Localised"},
	{types: arrivalTypes, legacy: "Faction", current: "SystemFaction"},
	{types: []event.Type{event.TypeDocked}, legacy: "Faction", current: "StationFaction"},
	{types: []event.Type{event.TypeDocked}, legacy: "DistFromStarLs", current: "DistFromStarLS"},
	{types: []event.Type{event.TypeBounty}, legacy: "Reward", current: "TotalReward"},
	{types: []event.Type{event.TypeRestockVehicle}, legacy: "Type", current: "Vehicle"},
	{types: []event.Type{event.TypeRestockVehicle}, legacy: "Type_Localised", current: "Vehicle_Localised"},
	{types: []event.Type{event.TypeRepairAll, event.TypeRefuelAll, event.TypeRefuelPartial}, legacy: "Price", current: "Cost"},
	{types: missionTypes, legacy: "LocalisedName", current: "Name_Localised"},
	{types: []event.Type{event.TypeMissionCompleted}, legacy: "Donated", current: "Donation"},
	{types: []event.Type{event.TypeLoadGame}, legacy: "CommanderName", current: "Commander"},
}

// aliasIndex groups aliases by type for lookup at decode time.
var aliasIndex = buildAliasIndex(fieldAliases)

func buildAliasIndex(aliases []fieldAlias) map[event.Type][]fieldAlias {
	idx := make(map[event.Type][]fieldAlias)
	for _, a := range aliases {
		if len(a.types) == 0 {
			idx[""] = append(idx[""], a)
			continue
		}
		for _, t := range a.types {
			idx[t] = append(idx[t], a)
		}
	}
	return idx
}

// fixup rewrites structural changes that a plain rename cannot express.
type fixup func(obj map[string]any)

var fixups = map[event.Type][]fixup{
	event.TypeLocation:         {nestFactionState},
	event.TypeFSDJump:          {nestFactionState},
	event.TypeCarrierJump:      {nestFactionState},
	event.TypeDocked:           {nestStationFaction},
	event.TypeRepair:           {singleItemToItems},
	event.TypeDied:             {singleKillerToKillers},
	event.TypeScan:             {materialMapToList},
	event.TypeMissionCompleted: {numericString("Donation")},
}

// applyAliases canonicalizes obj in place for variant t.
func applyAliases(t event.Type, obj map[string]any) {
	for _, a := range aliasIndex[""] {
		rename(obj, a.legacy, a.current)
	}
	for _, a := range aliasIndex[t] {
		rename(obj, a.legacy, a.current)
	}
	for _, fx := range fixups[t] {
		fx(obj)
	}
}

func rename(obj map[string]any, legacy, current string) {
	v, ok := obj[legacy]
	if !ok {
		return
	}
	if _, exists := obj[current]; !exists {
		obj[current] = v
	}
	delete(obj, legacy)
}

// Before 3.3 the controlling faction was a bare string with a sibling
// FactionState; later it is an object.
func nestFactionState(obj map[string]any) {
	nestFaction(obj, "SystemFaction", "FactionState")
}

func nestStationFaction(obj map[string]any) {
	nestFaction(obj, "StationFaction", "FactionState")
}

func nestFaction(obj map[string]any, field, stateField string) {
	name, ok := obj[field].(string)
	if !ok {
		return
	}
	nested := map[string]any{"Name": name}
	if state, ok := obj[stateField]; ok {
		nested["FactionState"] = state
		delete(obj, stateField)
	}
	obj[field] = nested
}

func singleItemToItems(obj map[string]any) {
	if _, ok := obj["Items"]; ok {
		return
	}
	if item, ok := obj["Item"]; ok {
		obj["Items"] = []any{item}
		delete(obj, "Item")
	}
}

func singleKillerToKillers(obj map[string]any) {
	if _, ok := obj["Killers"]; ok {
		return
	}
	name, ok := obj["KillerName"]
	if !ok {
		return
	}
	killer := map[string]any{"Name": name}
	if v, ok := obj["KillerName_Localised"]; ok {
		killer["Name"] = v
	}
	if v, ok := obj["KillerShip"]; ok {
		killer["Ship"] = v
	}
	if v, ok := obj["KillerRank"]; ok {
		killer["Rank"] = v
	}
	obj["Killers"] = []any{killer}
}

// Early scans wrote materials as a name to percent object.
func materialMapToList(obj map[string]any) {
	m, ok := obj["Materials"].(map[string]any)
	if !ok {
		return
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	list := make([]any, 0, len(names))
	for _, k := range names {
		list = append(list, map[string]any{"Name": k, "Percent": m[k]})
	}
	obj["Materials"] = list
}

// numericString accepts a number written as a JSON string.
func numericString(field string) fixup {
	return func(obj map[string]any) {
		s, ok := obj[field].(string)
		if !ok {
			return
		}
		n := json.Number(strings.TrimSpace(s))
		if _, err := n.Int64(); err == nil {
			obj[field] = n
		}
	}
}

// Enum domains with alias tables.
const (
	enumPlanetClass  = "planet_class"
	enumStarType     = "star_type"
	enumChannel      = "channel"
	enumFriendStatus = "friend_status"
	enumVehicle      = "vehicle"
	enumTerraform    = "terraform_state"
)

// enumAliases maps lowercased legacy spellings onto canonical constants.
// Values not listed pass through unchanged.
var enumAliases = map[string]map[string]string{
	enumPlanetClass: {
		"metal rich body":                   "Metal rich body",
		"metal-rich body":                   "Metal rich body",
		"high metal content body":           "High metal content body",
		"high metal content world":          "High metal content body",
		"rocky body":                        "Rocky body",
		"icy body":                          "Icy body",
		"rocky ice body":                    "Rocky ice body",
		"rocky ice world":                   "Rocky ice body",
		"earthlike body":                    "Earthlike body",
		"earth-like world":                  "Earthlike body",
		"water world":                       "Water world",
		"ammonia world":                     "Ammonia world",
		"water giant":                       "Water giant",
		"water giant with life":             "Water giant with life",
		"gas giant with water based life":   "Gas giant with water based life",
		"gas giant with ammonia based life": "Gas giant with ammonia based life",
		"sudarsky class i gas giant":        "Sudarsky class I gas giant",
		"sudarsky class ii gas giant":       "Sudarsky class II gas giant",
		"sudarsky class iii gas giant":      "Sudarsky class III gas giant",
		"sudarsky class iv gas giant":       "Sudarsky class IV gas giant",
		"sudarsky class v gas giant":        "Sudarsky class V gas giant",
		"helium rich gas giant":             "Helium rich gas giant",
		"helium gas giant":                  "Helium gas giant",
	},
	enumStarType: {
		"supermassiveblackhole": "SupermassiveBlackHole",
		"a_bluewhitesupergiant": "A_BlueWhiteSuperGiant",
		"b_bluewhitesupergiant": "B_BlueWhiteSuperGiant",
		"f_whitesupergiant":     "F_WhiteSuperGiant",
		"g_whitesupergiant":     "G_WhiteSuperGiant",
		"k_orangegiant":         "K_OrangeGiant",
		"m_redgiant":            "M_RedGiant",
		"m_redsupergiant":       "M_RedSuperGiant",
		"aebe":                  "AeBe",
		"tts":                   "TTS",
	},
	enumChannel: {
		"local":        "local",
		"npc":          "npc",
		"wing":         "wing",
		"friend":       "friend",
		"player":       "player",
		"voicechat":    "voicechat",
		"squadron":     "squadron",
		"squadleaders": "squadleaders",
		"starsystem":   "starsystem",
	},
	enumFriendStatus: {
		"requested": "Requested",
		"declined":  "Declined",
		"added":     "Added",
		"lost":      "Lost",
		"offline":   "Offline",
		"online":    "Online",
	},
	enumVehicle: {
		"testbuggy":               "testbuggy",
		"combat_multicrew_srv_01": "combat_multicrew_srv_01",
		"srv":                     "testbuggy",
		"mothership":              "Mothership",
		"fighter":                 "Fighter",
	},
	enumTerraform: {
		"terraformable":              "Terraformable",
		"candidate for terraforming": "Terraformable",
		"terraforming":               "Terraforming",
		"terraformed":                "Terraformed",
	},
}

// canonicalEnum resolves value within domain through the alias table.
func canonicalEnum(domain, value string) string {
	table, ok := enumAliases[domain]
	if !ok {
		return value
	}
	key := strings.ToLower(strings.TrimSpace(value))
	if canon, ok := table[key]; ok {
		return canon
	}
	if domain == enumChannel {
		return key
	}
	return value
}
