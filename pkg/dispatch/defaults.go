package dispatch

import (
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/cartography"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/diagnostics"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/inventory"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/ledger"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/stats"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/vehicle"
)

// DefaultProjections returns the built-in projection set in fold order.
func DefaultProjections() []projection.Factory {
	return []projection.Factory{
		ledger.Factory,
		vehicle.Factory,
		inventory.Factory,
		stats.Factory,
		cartography.Factory,
		diagnostics.Factory,
	}
}
