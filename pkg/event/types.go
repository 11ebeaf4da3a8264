package event

// Session
const (
	TypeFileheader Type = "Fileheader"
	TypeContinued  Type = "Continued"
	TypeLoadGame   Type = "LoadGame"
	TypeCommander  Type = "Commander"
	TypeShutdown   Type = "Shutdown"
	TypeRank       Type = "Rank"
	TypeProgress   Type = "Progress"
	TypePromotion  Type = "Promotion"
)

// Travel
const (
	TypeLocation         Type = "Location"
	TypeFSDJump          Type = "FSDJump"
	TypeCarrierJump      Type = "CarrierJump"
	TypeStartJump        Type = "StartJump"
	TypeFSDTarget        Type = "FSDTarget"
	TypeDocked           Type = "Docked"
	TypeUndocked         Type = "Undocked"
	TypeSupercruiseEntry Type = "SupercruiseEntry"
	TypeSupercruiseExit  Type = "SupercruiseExit"
	TypeApproachBody     Type = "ApproachBody"
	TypeTouchdown        Type = "Touchdown"
	TypeLiftoff          Type = "Liftoff"
	TypeNavRoute         Type = "NavRoute"
	TypeNavRouteClear    Type = "NavRouteClear"
)

// Exploration
const (
	TypeScan                     Type = "Scan"
	TypeFSSDiscoveryScan         Type = "FSSDiscoveryScan"
	TypeFSSAllBodiesFound        Type = "FSSAllBodiesFound"
	TypeSAAScanComplete          Type = "SAAScanComplete"
	TypeSellExplorationData      Type = "SellExplorationData"
	TypeMultiSellExplorationData Type = "MultiSellExplorationData"
	TypeDiscoveryScan            Type = "DiscoveryScan"
)

// Trade
const (
	TypeMarket        Type = "Market"
	TypeMarketBuy     Type = "MarketBuy"
	TypeMarketSell    Type = "MarketSell"
	TypeBuyTradeData  Type = "BuyTradeData"
	TypeCollectCargo  Type = "CollectCargo"
	TypeEjectCargo    Type = "EjectCargo"
	TypeCargo         Type = "Cargo"
	TypeMiningRefined Type = "MiningRefined"
)

// Ship
const (
	TypeLoadout              Type = "Loadout"
	TypeShipyardBuy          Type = "ShipyardBuy"
	TypeShipyardSell         Type = "ShipyardSell"
	TypeShipyardSwap         Type = "ShipyardSwap"
	TypeShipyardNew          Type = "ShipyardNew"
	TypeShipyardTransfer     Type = "ShipyardTransfer"
	TypeSetUserShipName      Type = "SetUserShipName"
	TypeModuleBuy            Type = "ModuleBuy"
	TypeModuleSell           Type = "ModuleSell"
	TypeModuleStore          Type = "ModuleStore"
	TypeModuleRetrieve       Type = "ModuleRetrieve"
	TypeRefuelAll            Type = "RefuelAll"
	TypeRefuelPartial        Type = "RefuelPartial"
	TypeRepairAll            Type = "RepairAll"
	TypeRepair               Type = "Repair"
	TypeBuyAmmo              Type = "BuyAmmo"
	TypeRestockVehicle       Type = "RestockVehicle"
	TypeFuelScoop            Type = "FuelScoop"
	TypeReservoirReplenished Type = "ReservoirReplenished"
	TypeHullDamage           Type = "HullDamage"
	TypeOutfitting           Type = "Outfitting"
	TypeShipyard             Type = "Shipyard"
)

// Sub-vehicles and crew
const (
	TypeLaunchSRV        Type = "LaunchSRV"
	TypeDockSRV          Type = "DockSRV"
	TypeSRVDestroyed     Type = "SRVDestroyed"
	TypeLaunchFighter    Type = "LaunchFighter"
	TypeDockFighter      Type = "DockFighter"
	TypeFighterDestroyed Type = "FighterDestroyed"
	TypeFighterRebuilt   Type = "FighterRebuilt"
	TypeVehicleSwitch    Type = "VehicleSwitch"
	TypeCrewMemberJoins  Type = "CrewMemberJoins"
	TypeCrewMemberQuits  Type = "CrewMemberQuits"
	TypeCrewHire         Type = "CrewHire"
	TypeCrewFire         Type = "CrewFire"
	TypeNpcCrewPaidWage  Type = "NpcCrewPaidWage"
	TypeJoinACrew        Type = "JoinACrew"
	TypeQuitACrew        Type = "QuitACrew"
)

// Combat
const (
	TypeBounty          Type = "Bounty"
	TypeFactionKillBond Type = "FactionKillBond"
	TypeRedeemVoucher   Type = "RedeemVoucher"
	TypePayFines        Type = "PayFines"
	TypePayBounties     Type = "PayBounties"
	TypeDied            Type = "Died"
	TypeResurrect       Type = "Resurrect"
	TypeInterdicted     Type = "Interdicted"
	TypeInterdiction    Type = "Interdiction"
)

// Missions
const (
	TypeMissionAccepted     Type = "MissionAccepted"
	TypeMissionCompleted    Type = "MissionCompleted"
	TypeMissionFailed       Type = "MissionFailed"
	TypeMissionAbandoned    Type = "MissionAbandoned"
	TypeCommunityGoal       Type = "CommunityGoal"
	TypeCommunityGoalReward Type = "CommunityGoalReward"
)

// Social
const (
	TypeReceiveText Type = "ReceiveText"
	TypeSendText    Type = "SendText"
	TypeFriends     Type = "Friends"
)

// Materials
const (
	TypeMaterialCollected Type = "MaterialCollected"
	TypeMaterialDiscarded Type = "MaterialDiscarded"
	TypeMaterials         Type = "Materials"
)

// Docking and on-foot transitions
const (
	TypeDockingRequested Type = "DockingRequested"
	TypeDockingGranted   Type = "DockingGranted"
	TypeDockingDenied    Type = "DockingDenied"
	TypeEmbark           Type = "Embark"
	TypeDisembark        Type = "Disembark"
	TypeJetConeBoost     Type = "JetConeBoost"
	TypeUSSDrop          Type = "USSDrop"
	TypeLeaveBody        Type = "LeaveBody"
)

// Signals and biology
const (
	TypeSAASignalsFound     Type = "SAASignalsFound"
	TypeFSSBodySignals      Type = "FSSBodySignals"
	TypeFSSSignalDiscovered Type = "FSSSignalDiscovered"
	TypeCodexEntry          Type = "CodexEntry"
	TypeScanBaryCentre      Type = "ScanBaryCentre"
	TypeNavBeaconScan       Type = "NavBeaconScan"
	TypeScanOrganic         Type = "ScanOrganic"
	TypeSellOrganicData     Type = "SellOrganicData"
)

// Cargo handling and mining
const (
	TypeCargoDepot         Type = "CargoDepot"
	TypeCargoTransfer      Type = "CargoTransfer"
	TypeBuyDrones          Type = "BuyDrones"
	TypeSellDrones         Type = "SellDrones"
	TypeLaunchDrone        Type = "LaunchDrone"
	TypeProspectedAsteroid Type = "ProspectedAsteroid"
)

// Remote outfitting and ship systems
const (
	TypeModuleSellRemote  Type = "ModuleSellRemote"
	TypeModuleSwap        Type = "ModuleSwap"
	TypeFetchRemoteModule Type = "FetchRemoteModule"
	TypeMassModuleStore   Type = "MassModuleStore"
	TypeAfmuRepairs       Type = "AfmuRepairs"
	TypeHeatWarning       Type = "HeatWarning"
	TypeHeatDamage        Type = "HeatDamage"
	TypeSelfDestruct      Type = "SelfDestruct"
)

// Crime and bonds
const (
	TypeCapShipBond        Type = "CapShipBond"
	TypeDatalinkVoucher    Type = "DatalinkVoucher"
	TypeCommitCrime        Type = "CommitCrime"
	TypeCrimeVictim        Type = "CrimeVictim"
	TypeEscapeInterdiction Type = "EscapeInterdiction"
	TypePVPKill            Type = "PVPKill"
	TypeUnderAttack        Type = "UnderAttack"
)

// Rescue and community goals
const (
	TypeMissionRedirected    Type = "MissionRedirected"
	TypeSearchAndRescue      Type = "SearchAndRescue"
	TypeCommunityGoalJoin    Type = "CommunityGoalJoin"
	TypeCommunityGoalDiscard Type = "CommunityGoalDiscard"
)

// Engineering
const (
	TypeEngineerContribution Type = "EngineerContribution"
	TypeEngineerCraft        Type = "EngineerCraft"
	TypeMaterialTrade        Type = "MaterialTrade"
	TypeTechnologyBroker     Type = "TechnologyBroker"
)

// Fleet carriers
const (
	TypeCarrierBuy          Type = "CarrierBuy"
	TypeCarrierBankTransfer Type = "CarrierBankTransfer"
	TypeCarrierJumpRequest  Type = "CarrierJumpRequest"
)

// Powerplay
const (
	TypePowerplayJoin   Type = "PowerplayJoin"
	TypePowerplayLeave  Type = "PowerplayLeave"
	TypePowerplaySalary Type = "PowerplaySalary"
)

// Suits, weapons and taxis
const (
	TypeBuySuit      Type = "BuySuit"
	TypeSellSuit     Type = "SellSuit"
	TypeBuyWeapon    Type = "BuyWeapon"
	TypeSellWeapon   Type = "SellWeapon"
	TypeBookTaxi     Type = "BookTaxi"
	TypeCollectItems Type = "CollectItems"
)

// TypeResidual tags events that could not be decoded into a known variant.
const TypeResidual Type = "Residual"

// Catalog lists every variant the decoder knows. The decode registry is
// validated against this list.
var Catalog = []Type{
	TypeFileheader, TypeContinued, TypeLoadGame, TypeCommander, TypeShutdown, TypeRank, TypeProgress, TypePromotion,
	TypeLocation, TypeFSDJump, TypeCarrierJump, TypeStartJump, TypeFSDTarget, TypeDocked, TypeUndocked,
	TypeSupercruiseEntry, TypeSupercruiseExit, TypeApproachBody, TypeTouchdown, TypeLiftoff, TypeNavRoute, TypeNavRouteClear,
	TypeScan, TypeFSSDiscoveryScan, TypeFSSAllBodiesFound, TypeSAAScanComplete, TypeSellExplorationData,
	TypeMultiSellExplorationData, TypeDiscoveryScan,
	TypeMarket, TypeMarketBuy, TypeMarketSell, TypeBuyTradeData, TypeCollectCargo, TypeEjectCargo, TypeCargo, TypeMiningRefined,
	TypeLoadout, TypeShipyardBuy, TypeShipyardSell, TypeShipyardSwap, TypeShipyardNew, TypeShipyardTransfer, TypeSetUserShipName,
	TypeModuleBuy, TypeModuleSell, TypeModuleStore, TypeModuleRetrieve, TypeRefuelAll, TypeRefuelPartial, TypeRepairAll,
	TypeRepair, TypeBuyAmmo, TypeRestockVehicle, TypeFuelScoop, TypeReservoirReplenished, TypeHullDamage, TypeOutfitting, TypeShipyard,
	TypeLaunchSRV, TypeDockSRV, TypeSRVDestroyed, TypeLaunchFighter, TypeDockFighter, TypeFighterDestroyed, TypeFighterRebuilt,
	TypeVehicleSwitch, TypeCrewMemberJoins, TypeCrewMemberQuits, TypeCrewHire, TypeCrewFire, TypeNpcCrewPaidWage,
	TypeJoinACrew, TypeQuitACrew,
	TypeBounty, TypeFactionKillBond, TypeRedeemVoucher, TypePayFines, TypePayBounties, TypeDied, TypeResurrect,
	TypeInterdicted, TypeInterdiction,
	TypeMissionAccepted, TypeMissionCompleted, TypeMissionFailed, TypeMissionAbandoned, TypeCommunityGoal, TypeCommunityGoalReward,
	TypeReceiveText, TypeSendText, TypeFriends,
	TypeMaterialCollected, TypeMaterialDiscarded, TypeMaterials,
	TypeDockingRequested, TypeDockingGranted, TypeDockingDenied, TypeEmbark, TypeDisembark, TypeJetConeBoost,
	TypeUSSDrop, TypeLeaveBody,
	TypeSAASignalsFound, TypeFSSBodySignals, TypeFSSSignalDiscovered, TypeCodexEntry, TypeScanBaryCentre,
	TypeNavBeaconScan, TypeScanOrganic, TypeSellOrganicData,
	TypeCargoDepot, TypeCargoTransfer, TypeBuyDrones, TypeSellDrones, TypeLaunchDrone, TypeProspectedAsteroid,
	TypeModuleSellRemote, TypeModuleSwap, TypeFetchRemoteModule, TypeMassModuleStore, TypeAfmuRepairs,
	TypeHeatWarning, TypeHeatDamage, TypeSelfDestruct,
	TypeCapShipBond, TypeDatalinkVoucher, TypeCommitCrime, TypeCrimeVictim, TypeEscapeInterdiction, TypePVPKill, TypeUnderAttack,
	TypeMissionRedirected, TypeSearchAndRescue, TypeCommunityGoalJoin, TypeCommunityGoalDiscard,
	TypeEngineerContribution, TypeEngineerCraft, TypeMaterialTrade, TypeTechnologyBroker,
	TypeCarrierBuy, TypeCarrierBankTransfer, TypeCarrierJumpRequest,
	TypePowerplayJoin, TypePowerplayLeave, TypePowerplaySalary,
	TypeBuySuit, TypeSellSuit, TypeBuyWeapon, TypeSellWeapon, TypeBookTaxi, TypeCollectItems,
}

// SideFileKind names an out-of-band file that carries the full detail of
// an event whose journal line is abbreviated.
type SideFileKind string

const (
	SideFileMarket     SideFileKind = "Market"
	SideFileNavRoute   SideFileKind = "NavRoute"
	SideFileCargo      SideFileKind = "Cargo"
	SideFileOutfitting SideFileKind = "Outfitting"
	SideFileShipyard   SideFileKind = "Shipyard"
)

var sideFiles = map[Type]SideFileKind{
	TypeMarket:     SideFileMarket,
	TypeNavRoute:   SideFileNavRoute,
	TypeCargo:      SideFileCargo,
	TypeOutfitting: SideFileOutfitting,
	TypeShipyard:   SideFileShipyard,
}

// SideFileOf reports the side file that completes events of type t.
func SideFileOf(t Type) (SideFileKind, bool) {
	k, ok := sideFiles[t]
	return k, ok
}

// SideFileKinds returns every known side-file kind in a stable order.
func SideFileKinds() []SideFileKind {
	return []SideFileKind{SideFileMarket, SideFileNavRoute, SideFileCargo, SideFileOutfitting, SideFileShipyard}
}
