package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/client/scan"
)

// clipboardWrite is a test seam; clipboard access is also allowed to fail on
// headless machines without failing the scan flow.
var clipboardWrite = clipboard.WriteAll

// Scan is the QR reader screen. One visit fetches the directory once; each
// pasted payload stands in for a camera read. The surface lock engages on
// every read and is cleared when the "camera" reopens for the next payload.
func (a *App) Scan(ctx context.Context) {
	assets, err := a.api.ListAssets(ctx)
	if err != nil {
		a.log.Error(ctx, "loading directory", "error", err)
		fmt.Println("Could not load the asset directory, try again later.")
		return
	}
	a.log.Info(ctx, "directory fetched", "assets", len(assets))

	surface := scan.NewSurface(scan.NewDirectory(assets))

	for {
		payload, err := getSimpleText(a.reader, "Paste QR payload (empty line to close)", os.Stdout)
		if err != nil || payload == "" {
			return
		}

		surface.Reopen()
		asset, err := surface.Read(payload)
		switch {
		case errors.Is(err, scan.ErrInvalidFormat):
			fmt.Println("Invalid format: the QR code carries no valid inventory number.")
		case errors.Is(err, scan.ErrNotFound):
			fmt.Println("Asset not found:", err)
		case err != nil:
			a.log.Error(ctx, "scan failed", "error", err)
			fmt.Println("Something went wrong, try again.")
		default:
			a.showAsset(asset)
		}
	}
}

// showAsset renders the read-only detail view with its single action:
// copying the inventory number to the clipboard.
func (a *App) showAsset(asset *models.Asset) {
	fmt.Println("Inventory number:", asset.InventoryNumber)
	fmt.Println("Denomination:    ", asset.Denomination)
	fmt.Println("Location:        ", asset.Location)
	fmt.Println("Sala:            ", asset.Room)
	if asset.ImageURL != "" {
		fmt.Println("Image:           ", asset.ImageURL)
	}

	if GetConfirm(a.reader, "Copy inventory number to clipboard?", os.Stdout) {
		if err := clipboardWrite(asset.InventoryNumber); err != nil {
			fmt.Println("Clipboard unavailable:", err)
			return
		}
		fmt.Println("Inventory number copied to clipboard!")
	}
}
