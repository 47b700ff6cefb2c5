package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	list, err := a.store.List(ctx)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to list QRs: %v", err))
		return err
	}

	if len(list) == 0 {
		printlnFn("No QR codes yet")
		return nil
	}

	for _, rec := range list {
		line := fmt.Sprintf("%s  %s  %s", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"), rec.Content)
		if rec.Logo != "" {
			line += "  [logo]"
		}
		printlnFn(line)
	}
	return nil
}
