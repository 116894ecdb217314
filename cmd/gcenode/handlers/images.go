package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/gcenode/internal/platform/gce"
)

// Images handles the images command. Catalog order is lookup order: the
// configured project first, then the public projects.
func Images(ctx context.Context, configPath string) error {
	cfg, api, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	catalog := gce.NewImageCatalog(api, cfg.Project, cfg.ImageProjects...)
	images, err := catalog.ListImages(ctx)
	if err != nil {
		return err
	}

	for _, image := range images {
		fmt.Printf("%s\t%s\n", image.Project, image.Name)
	}
	return nil
}
