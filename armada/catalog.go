package armada

// FLEET_SIZE is the number of ships every player places.
const FLEET_SIZE = 5

// Ship kinds, in placement order.
const (
	SHIP_PATROL_BOAT = iota
	SHIP_SUBMARINE
	SHIP_DESTROYER
	SHIP_BATTLESHIP
	SHIP_CARRIER
)

// ShipTemplate is the set of offsets, relative to the anchor, that a ship covers
// before rotation. Templates are shared between every ship of the same kind and
// must never be written to.
type ShipTemplate []Coord

var Templates = [FLEET_SIZE]ShipTemplate{
	SHIP_PATROL_BOAT: {{0, 0}, {0, 1}},
	SHIP_SUBMARINE:   {{-1, 0}, {0, 0}, {1, 0}},
	SHIP_DESTROYER:   {{-1, 0}, {0, 0}, {1, 0}},
	SHIP_BATTLESHIP:  {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	SHIP_CARRIER:     {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0}},
}

var shipNames = [FLEET_SIZE]string{
	SHIP_PATROL_BOAT: "patrol boat",
	SHIP_SUBMARINE:   "submarine",
	SHIP_DESTROYER:   "destroyer",
	SHIP_BATTLESHIP:  "battleship",
	SHIP_CARRIER:     "carrier",
}

// ShipName returns the lowercase display name for a ship kind.
func ShipName(kind int) string {
	if kind < 0 || kind >= FLEET_SIZE {
		return "unknown"
	}

	return shipNames[kind]
}
