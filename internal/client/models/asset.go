// Package models holds the wire-level records exchanged with the remote
// asset service and the locally persisted session identity.
package models

import "fmt"

// Asset is a single patrimônio record as returned by GET /api/inventarios/.
// The server owns the record; the client only holds read-only snapshots.
type Asset struct {
	// ID is assigned by the server and never changes.
	ID int64 `json:"id"`
	// InventoryNumber is the 6-digit external lookup key, unique in the
	// directory. It is the meaningful content of a scanned QR payload.
	InventoryNumber string `json:"num_inventario"`
	// Denomination is the free-text label of the asset.
	Denomination string `json:"denominacao"`
	// Location is a free-text placement description.
	Location string `json:"localizacao"`
	// Room references a Room by name, not by id.
	Room string `json:"sala"`
	// ImageURL is optional and may be empty.
	ImageURL string `json:"link_imagem"`
}

func (a Asset) String() string {
	return fmt.Sprintf("%s  %s (%s, sala %s)", a.InventoryNumber, a.Denomination, a.Location, a.Room)
}
