package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/gcenode/internal/platform/gce"
)

// List handles the list command. With ids it restricts the listing to the
// named nodes; otherwise it prints every node across all zones.
func List(ctx context.Context, configPath string, ids []string) error {
	_, api, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	manager := newManager(api)

	var nodes []*gce.Instance
	if len(ids) > 0 {
		nodes, err = manager.ListNodesByIDs(ctx, ids)
	} else {
		nodes, err = manager.ListNodes(ctx)
	}
	if err != nil {
		return err
	}

	for _, node := range nodes {
		id := gce.NodeID{Zone: node.Zone, Name: node.Name}
		fmt.Printf("%s\t%s\n", id, node.MachineType)
	}
	return nil
}
