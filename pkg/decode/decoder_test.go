package decode_test

import (
	"errors"
	"testing"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/decode"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOne(t *testing.T, line string, ctx decode.Context) event.Event {
	t.Helper()
	ev, err := decode.New().Decode([]byte(line), ctx)
	require.NoError(t, err)
	require.NotNil(t, ev)
	return ev
}

func TestRegistryMatchesCatalog(t *testing.T) {
	require.NoError(t, decode.Validate())
	assert.Len(t, decode.Types(), len(event.Catalog))
	assert.False(t, decode.Registered(event.TypeResidual))
}

func TestDecodeHeader(t *testing.T) {
	ev := decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"Shutdown"}`, decode.Context{SequenceID: 7, Session: 2})
	h := ev.Head()
	assert.Equal(t, uint64(7), h.SequenceID)
	assert.Equal(t, 2, h.Session)
	assert.Equal(t, event.TypeShutdown, h.Type)
	assert.Equal(t, time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), h.Time)
	assert.JSONEq(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"Shutdown"}`, string(h.Raw))
}

func TestDecodeUnknownTagIsResidualWithoutError(t *testing.T) {
	ev, err := decode.New().Decode([]byte(`{"timestamp":"2023-01-02T03:04:05Z","event":"NeverSeenBefore","X":1}`), decode.Context{SequenceID: 3})
	require.NoError(t, err)

	res, ok := ev.(*event.Residual)
	require.True(t, ok)
	assert.Equal(t, "NeverSeenBefore", res.Tag)
	assert.Equal(t, event.ReasonUnknownDiscriminator, res.Reason)
	assert.Equal(t, event.TypeResidual, res.Type)
	assert.Equal(t, event.CapDiagnostic, res.Capabilities())
	assert.Equal(t, uint64(3), res.SequenceID)
}

func TestDecodeErrorsDegradeToResidual(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		target error
		reason event.ResidualReason
		field  string
	}{
		{
			name:   "missing required field",
			line:   `{"timestamp":"2023-01-02T03:04:05Z","event":"MarketBuy","Type":"gold","BuyPrice":100,"TotalCost":500}`,
			target: decode.ErrMissingField,
			reason: event.ReasonMissingField,
			field:  "Count",
		},
		{
			name:   "type mismatch",
			line:   `{"timestamp":"2023-01-02T03:04:05Z","event":"MarketBuy","Type":"gold","Count":"five","BuyPrice":100,"TotalCost":500}`,
			target: decode.ErrTypeMismatch,
			reason: event.ReasonTypeMismatch,
			field:  "Count",
		},
		{
			name:   "fractional credits",
			line:   `{"timestamp":"2023-01-02T03:04:05Z","event":"BuyAmmo","Cost":12.5}`,
			target: decode.ErrTypeMismatch,
			reason: event.ReasonTypeMismatch,
			field:  "Cost",
		},
		{
			name:   "bad timestamp",
			line:   `{"timestamp":"yesterday","event":"Shutdown"}`,
			target: decode.ErrTypeMismatch,
			reason: event.ReasonTypeMismatch,
			field:  "timestamp",
		},
		{
			name:   "not json",
			line:   `{"timestamp":`,
			target: decode.ErrMalformed,
			reason: event.ReasonMalformedRecord,
		},
		{
			name:   "no discriminator",
			line:   `{"timestamp":"2023-01-02T03:04:05Z"}`,
			target: decode.ErrMalformed,
			reason: event.ReasonMalformedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := decode.New().Decode([]byte(tt.line), decode.Context{SequenceID: 9})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)

			var derr *decode.DecodeError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.field, derr.Field)

			res, ok := ev.(*event.Residual)
			require.True(t, ok)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, uint64(9), res.SequenceID)
			assert.NotEmpty(t, res.Raw)
		})
	}
}

func TestDecodeCreditsAreExact(t *testing.T) {
	ev := decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"LoadGame","Commander":"Jameson","Credits":9007199254740993,"Loan":0}`, decode.Context{})
	lg := ev.(*event.LoadGame)
	assert.Equal(t, int64(9007199254740993), lg.Credits)
	require.NotNil(t, lg.Loan)
	assert.Equal(t, int64(0), *lg.Loan)
	assert.Nil(t, lg.ShipID, "absent optional fields stay absent")
}

func TestDecodeLegacyAliases(t *testing.T) {
	legacy := `{"timestamp":"2017-01-02T03:04:05Z","event":"FSDJump","StarSystem":"Sol","StarPos":[0,0,0],
		"Allegiance":"Federation","Economy":"$economy_HighTech;","Economy_Localised":"High Tech",
		"Government":"$government_Democracy;","Security":"$SYSTEM_SECURITY_high;",
		"Faction":"Mother Gaia","FactionState":"Boom","JumpDist":8.5,"FuelUsed":1.2}`
	current := `{"timestamp":"2019-01-02T03:04:05Z","event":"FSDJump","StarSystem":"Sol","StarPos":[0,0,0],
		"SystemAllegiance":"Federation","SystemEconomy":"$economy_HighTech;","SystemEconomy_Localised":"High Tech",
		"SystemGovernment":"$government_Democracy;","SystemSecurity":"$SYSTEM_SECURITY_high;",
		"SystemFaction":{"Name":"Mother Gaia","FactionState":"Boom"},"JumpDist":8.5,"FuelUsed":1.2}`

	a := decodeOne(t, legacy, decode.Context{}).(*event.FSDJump)
	b := decodeOne(t, current, decode.Context{}).(*event.FSDJump)

	assert.Equal(t, a.SystemInfo, b.SystemInfo)
	require.NotNil(t, a.SystemFaction)
	assert.Equal(t, "Mother Gaia", a.SystemFaction.Name)
	require.NotNil(t, a.SystemFaction.FactionState)
	assert.Equal(t, "Boom", *a.SystemFaction.FactionState)
	assert.Equal(t, "High Tech", a.Economy.Label)
	assert.Equal(t, &event.Coords{}, a.StarPos)
}

func TestDecodeRatioNormalization(t *testing.T) {
	line := `{"timestamp":"2019-01-02T03:04:05Z","event":"Location","StarSystem":"Sol",
		"Factions":[{"Name":"A","Influence":0.25,"MyReputation":42.5},{"Name":"B","Influence":0.75,"MyReputation":0.5}]}`

	t.Run("current revision keeps reputation as percent", func(t *testing.T) {
		ev := decodeOne(t, line, decode.Context{Revision: semver.MustParse("3.8.0")}).(*event.Location)
		require.Len(t, ev.Factions, 2)
		assert.InDelta(t, 25.0, ev.Factions[0].Influence, 1e-9)
		assert.InDelta(t, 42.5, *ev.Factions[0].MyReputation, 1e-9)
		assert.InDelta(t, 0.5, *ev.Factions[1].MyReputation, 1e-9)
	})

	t.Run("old revision scales reputation", func(t *testing.T) {
		ev := decodeOne(t, line, decode.Context{Revision: semver.MustParse("3.0.0")}).(*event.Location)
		assert.InDelta(t, 50.0, *ev.Factions[1].MyReputation, 1e-9)
	})

	t.Run("unknown revision uses magnitude", func(t *testing.T) {
		ev := decodeOne(t, line, decode.Context{}).(*event.Location)
		assert.InDelta(t, 42.5, *ev.Factions[0].MyReputation, 1e-9)
		assert.InDelta(t, 50.0, *ev.Factions[1].MyReputation, 1e-9)
	})

	t.Run("hull health is a fraction", func(t *testing.T) {
		ev := decodeOne(t, `{"timestamp":"2019-01-02T03:04:05Z","event":"HullDamage","Health":0.8}`, decode.Context{}).(*event.HullDamage)
		assert.InDelta(t, 80.0, ev.Health, 1e-9)
	})
}

func TestDecodeMalformedSubRecordDegradesSlot(t *testing.T) {
	line := `{"timestamp":"2019-01-02T03:04:05Z","event":"Loadout","Ship":"python","ShipID":4,
		"FuelCapacity":"lots",
		"Modules":[{"Slot":"MainEngines","Item":"int_engine_size5_class5","On":true,"Health":1.0},{"Item":"missing slot"},7]}`

	ev := decodeOne(t, line, decode.Context{}).(*event.Loadout)
	assert.Nil(t, ev.FuelCapacity)
	require.Len(t, ev.Modules, 3)
	assert.Equal(t, "MainEngines", ev.Modules[0].Slot)
	assert.Nil(t, ev.Modules[1])
	assert.Nil(t, ev.Modules[2])
	assert.InDelta(t, 100.0, *ev.Modules[0].Health, 1e-9)
	assert.Len(t, ev.Degraded, 3)
}

func TestDecodeLabels(t *testing.T) {
	tr := decode.TranslatorFunc(func(id string) string {
		if id == "painite" {
			return "Painite"
		}
		return ""
	})
	d := decode.New(decode.WithTranslator(tr))

	ev, err := d.Decode([]byte(`{"timestamp":"2019-01-02T03:04:05Z","event":"MiningRefined","Type":"$painite_name;"}`), decode.Context{})
	require.NoError(t, err)
	assert.Equal(t, event.Named{ID: "painite", Label: "Painite"}, ev.(*event.MiningRefined).Commodity)

	ev, err = d.Decode([]byte(`{"timestamp":"2019-01-02T03:04:05Z","event":"MiningRefined","Type":"$lowtemperaturediamond_name;","Type_Localised":"Low Temperature Diamonds"}`), decode.Context{})
	require.NoError(t, err)
	assert.Equal(t, "Low Temperature Diamonds", ev.(*event.MiningRefined).Commodity.Label)

	ev, err = d.Decode([]byte(`{"timestamp":"2019-01-02T03:04:05Z","event":"MiningRefined","Type":"$bauxite_ore_name;"}`), decode.Context{})
	require.NoError(t, err)
	assert.Equal(t, event.Named{ID: "bauxite_ore", Label: "Bauxite Ore"}, ev.(*event.MiningRefined).Commodity)
}

func TestRedecodeKeepsIdentity(t *testing.T) {
	d := decode.New()
	ev, err := d.Decode([]byte(`{"timestamp":"2019-01-02T03:04:05Z","event":"Market","MarketID":128}`), decode.Context{SequenceID: 11, Session: 1})
	require.NoError(t, err)
	require.Empty(t, ev.(*event.Market).Items)

	full := `{"timestamp":"2019-01-02T03:04:05Z","event":"Market","MarketID":128,"StationName":"Abraham Lincoln","StarSystem":"Sol",
		"Items":[{"id":1,"Name":"$gold_name;","Name_Localised":"Gold","Category":"$MARKET_category_metals;","BuyPrice":9000,"SellPrice":8800,"Stock":10,"Demand":0}]}`
	next, err := d.Redecode(ev, []byte(full), decode.Context{SequenceID: 99})
	require.NoError(t, err)

	m := next.(*event.Market)
	assert.Equal(t, uint64(11), m.SequenceID)
	assert.Equal(t, 1, m.Session)
	assert.Equal(t, ev.Head().Time, m.Time)
	require.Len(t, m.Items, 1)
	assert.Equal(t, "gold", m.Items[0].Name.ID)
	assert.Equal(t, int64(8800), m.Items[0].SellPrice)

	_, err = d.Redecode(ev, []byte(`{"timestamp":"2019-01-02T03:04:05Z","event":"Cargo"}`), decode.Context{})
	assert.ErrorIs(t, err, decode.ErrMalformed)
}

func TestDecodeScanKinds(t *testing.T) {
	star := decodeOne(t, `{"timestamp":"2019-01-02T03:04:05Z","event":"Scan","BodyName":"Sol","StarType":"G","StellarMass":1.0}`, decode.Context{}).(*event.Scan)
	assert.Equal(t, event.BodyStar, star.Kind)

	planet := decodeOne(t, `{"timestamp":"2019-01-02T03:04:05Z","event":"Scan","BodyName":"Sol 3","PlanetClass":"Earth-like world",
		"TerraformState":"","Composition":{"Ice":0.0,"Rock":0.67,"Metal":0.33},"Materials":{"iron":19.5,"nickel":14.7}}`, decode.Context{}).(*event.Scan)
	assert.Equal(t, event.BodyPlanet, planet.Kind)
	assert.Equal(t, "Earthlike body", *planet.PlanetClass)
	assert.Nil(t, planet.TerraformState)
	assert.InDelta(t, 67.0, planet.Composition.Rock, 1e-9)
	require.Len(t, planet.Materials, 2)
	assert.Equal(t, "iron", planet.Materials[0].Name)

	belt := decodeOne(t, `{"timestamp":"2019-01-02T03:04:05Z","event":"Scan","BodyName":"Sol A Belt Cluster 1"}`, decode.Context{}).(*event.Scan)
	assert.Equal(t, event.BodyBelt, belt.Kind)
}

func TestParseRevision(t *testing.T) {
	tests := map[string]string{
		"3.8.0.404":    "3.8.0",
		"4.0.0.1450":   "4.0.0",
		"2.2 (Beta 2)": "2.2.0",
		"3":            "3.0.0",
	}
	for in, want := range tests {
		v, err := decode.ParseRevision(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, v.String(), in)
	}

	_, err := decode.ParseRevision("CarrierBuild")
	assert.Error(t, err)
}

func TestIsOdyssey(t *testing.T) {
	yes, no := true, false
	assert.True(t, decode.IsOdyssey(semver.MustParse("4.0.0"), nil))
	assert.False(t, decode.IsOdyssey(semver.MustParse("3.8.0"), nil))
	assert.False(t, decode.IsOdyssey(semver.MustParse("4.0.0"), &no))
	assert.True(t, decode.IsOdyssey(nil, &yes))
	assert.False(t, decode.IsOdyssey(nil, nil))
}

func TestDecodeChatKeepsMessageVerbatim(t *testing.T) {
	ev := decodeOne(t, `{"timestamp":"2024-05-01T12:00:00Z","event":"ReceiveText","From":"X","Message":"Meet at 3.30, OK? $cash_name;","Channel":"player"}`, decode.Context{})
	rt, ok := ev.(*event.ReceiveText)
	require.True(t, ok)
	assert.Equal(t, "Meet at 3.30, OK? $cash_name;", rt.Message)
	assert.Nil(t, rt.MessageLocalised)

	ev = decodeOne(t, `{"timestamp":"2024-05-01T12:00:00Z","event":"ReceiveText","From":"$npc_name_decorate:#name=Pirate;","From_Localised":"Pirate","Message":"$Pirate_OnStartScanCargo07;","Message_Localised":"Hand it over.","Channel":"npc"}`, decode.Context{})
	rt = ev.(*event.ReceiveText)
	assert.Equal(t, "$Pirate_OnStartScanCargo07;", rt.Message)
	require.NotNil(t, rt.MessageLocalised)
	assert.Equal(t, "Hand it over.", *rt.MessageLocalised)
	assert.Equal(t, "Pirate", rt.From.Label)
}

func TestDecodeUnknownTagWithBadTimestampIsStillResidual(t *testing.T) {
	for _, line := range []string{
		`{"event":"NeverSeenBefore"}`,
		`{"timestamp":"yesterday","event":"NeverSeenBefore"}`,
	} {
		ev, err := decode.New().Decode([]byte(line), decode.Context{SequenceID: 4})
		require.NoError(t, err, line)
		res, ok := ev.(*event.Residual)
		require.True(t, ok)
		assert.Equal(t, event.ReasonUnknownDiscriminator, res.Reason)
		assert.True(t, res.Time.IsZero())
	}
}

func TestCatalogCoversCommonJournalEvents(t *testing.T) {
	for _, tag := range []event.Type{
		"FSSAllBodiesFound", "SAASignalsFound", "FSSBodySignals", "CodexEntry", "ScanOrganic", "SellOrganicData",
		"MissionFailed", "MissionAbandoned", "MissionRedirected", "DockingGranted", "Embark", "Disembark",
		"BuyDrones", "ModuleSwap", "MassModuleStore", "CommitCrime", "EngineerCraft", "MaterialTrade",
		"CarrierBankTransfer", "PowerplaySalary", "BuySuit", "BookTaxi", "CollectItems",
	} {
		assert.True(t, decode.Registered(tag), "%s not registered", tag)
	}
	assert.GreaterOrEqual(t, len(event.Catalog), 150)
}

func TestDecodeBodySignals(t *testing.T) {
	ev := decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"SAASignalsFound","BodyName":"Col 285 Sector A 1","SystemAddress":42,"BodyID":7,
		"Signals":[{"Type":"$SAA_SignalType_Biological;","Type_Localised":"Biological","Count":3},{"Type":"$SAA_SignalType_Geological;","Count":2}],
		"Genuses":[{"Genus":"$Codex_Ent_Bacterial_Genus_Name;","Genus_Localised":"Bacterium"}]}`, decode.Context{})

	sig, ok := ev.(*event.SAASignalsFound)
	require.True(t, ok)
	assert.Equal(t, "Col 285 Sector A 1", sig.BodyName)
	require.Len(t, sig.Signals, 2)
	assert.Equal(t, event.Named{ID: "saa_signaltype_biological", Label: "Biological"}, sig.Signals[0].Type)
	assert.Equal(t, 3, sig.Signals[0].Count)
	assert.Equal(t, "saa_signaltype_geological", sig.Signals[1].Type.ID)
	require.Len(t, sig.Genuses, 1)
	assert.Equal(t, "Bacterium", sig.Genuses[0].Label)
	assert.Equal(t, event.CapLocation, sig.Capabilities())
}

func TestDecodeCodexEntry(t *testing.T) {
	ev := decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"CodexEntry","EntryID":2100401,"Name":"$Codex_Ent_Stratum_07_M_Name;",
		"Name_Localised":"Stratum Tectonicas - Green","SubCategory":"$Codex_SubCategory_Organic_Structures;","Category":"$Codex_Category_Biology;",
		"Region":"$Codex_RegionName_18;","System":"Synuefe XR-H d11-102","SystemAddress":3515254557027,"IsNewEntry":true,"VoucherAmount":2500}`, decode.Context{})

	cx, ok := ev.(*event.CodexEntry)
	require.True(t, ok)
	assert.Equal(t, int64(2100401), cx.EntryID)
	assert.Equal(t, "Stratum Tectonicas - Green", cx.Name.Label)
	assert.Equal(t, "codex_category_biology", cx.Category.ID)
	assert.True(t, cx.IsNewEntry)
	require.NotNil(t, cx.VoucherAmount)
	assert.Equal(t, int64(2500), *cx.VoucherAmount)
}

func TestDecodeModuleSwapIntoEmptySlot(t *testing.T) {
	ev := decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"ModuleSwap","MarketID":1,"FromSlot":"Slot01_Size4","ToSlot":"Slot02_Size4",
		"FromItem":"int_cargorack_size4_class1","ToItem":"Null","Ship":"cobramkiii","ShipID":3}`, decode.Context{})

	sw, ok := ev.(*event.ModuleSwap)
	require.True(t, ok)
	assert.Nil(t, sw.ToItem)
	assert.Equal(t, "int_cargorack_size4_class1", sw.FromItem.ID)
	assert.Equal(t, 3, sw.ShipID)
}

func TestDecodeOnFootAndCarrierEvents(t *testing.T) {
	ev := decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"Disembark","SRV":true,"Taxi":false,"Multicrew":false,"ID":53,
		"StarSystem":"HIP 36601","SystemAddress":5,"Body":"HIP 36601 C 1 a","OnStation":false,"OnPlanet":true}`, decode.Context{})
	dis, ok := ev.(*event.Disembark)
	require.True(t, ok)
	assert.True(t, dis.SRV)
	assert.True(t, dis.OnPlanet)
	require.NotNil(t, dis.Body)
	assert.Equal(t, "HIP 36601 C 1 a", *dis.Body)

	ev = decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"CarrierBankTransfer","CarrierID":3700,"Withdraw":500000,
		"PlayerBalance":1500000,"CarrierBalance":9500000}`, decode.Context{})
	tr, ok := ev.(*event.CarrierBankTransfer)
	require.True(t, ok)
	assert.Equal(t, int64(500000), tr.Withdraw)
	assert.Zero(t, tr.Deposit)

	ev = decodeOne(t, `{"timestamp":"2023-01-02T03:04:05Z","event":"MaterialTrade","MarketID":9,"TraderType":"encoded",
		"Paid":{"Material":"scandatabanks","Material_Localised":"Classified Scan Databanks","Category":"Encoded","Quantity":6},
		"Received":{"Material":"encodedscandata","Category":"Encoded","Quantity":1}}`, decode.Context{})
	mt, ok := ev.(*event.MaterialTrade)
	require.True(t, ok)
	require.NotNil(t, mt.Paid)
	require.NotNil(t, mt.Received)
	assert.Equal(t, 6, mt.Paid.Quantity)
	assert.Equal(t, "Classified Scan Databanks", mt.Paid.Material.Label)
	assert.Equal(t, "encodedscandata", mt.Received.Material.ID)
}
