package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter the id of the QR to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.Delete(ctx, id); err != nil {
		printlnFn(fmt.Sprintf("Failed to delete QR: %v", err))
		return err
	}

	printlnFn(fmt.Sprintf("Deleted QR %s", id))
	return nil
}
