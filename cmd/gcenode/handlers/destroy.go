package handlers

import (
	"context"
	"fmt"
)

// Destroy handles the destroy command.
func Destroy(ctx context.Context, configPath, id string) error {
	_, api, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	if err := newManager(api).DestroyNode(ctx, id); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}
	fmt.Printf("destroyed %s\n", id)
	return nil
}
