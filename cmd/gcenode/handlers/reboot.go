package handlers

import (
	"context"
	"fmt"
)

// Reboot handles the reboot command.
func Reboot(ctx context.Context, configPath, id string) error {
	_, api, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	if err := newManager(api).RebootNode(ctx, id); err != nil {
		return fmt.Errorf("reboot failed: %w", err)
	}
	fmt.Printf("rebooted %s\n", id)
	return nil
}
