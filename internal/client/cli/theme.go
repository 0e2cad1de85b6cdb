package cli

import (
	"context"
	"fmt"
)

// ToggleTheme flips between light and dark and persists the choice.
func (a *App) ToggleTheme(ctx context.Context) {
	next, err := a.theme.Toggle(ctx)
	if err != nil {
		a.log.Error(ctx, "toggling theme", "error", err)
		fmt.Println("Could not save the theme preference.")
		return
	}
	fmt.Println("Theme switched to", next)
}
