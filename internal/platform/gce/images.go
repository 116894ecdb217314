package gce

import (
	"context"
	"fmt"
)

// Public image catalog projects, consulted after the caller's own project.
// The order is fixed and load-bearing: lookups fall through it and the
// first hit wins.
const (
	DebianCloudProject = "debian-cloud"
	CentOSCloudProject = "centos-cloud"
)

// ImageCatalog resolves images across the caller's project and the shared
// public projects.
type ImageCatalog struct {
	api      ImageAPI
	project  string
	fallback []string
}

// NewImageCatalog creates a catalog for the given project. Without
// explicit fallback projects, the built-in public catalogs are used.
func NewImageCatalog(api ImageAPI, project string, fallback ...string) *ImageCatalog {
	if len(fallback) == 0 {
		fallback = []string{DebianCloudProject, CentOSCloudProject}
	}
	return &ImageCatalog{api: api, project: project, fallback: fallback}
}

// ListImages concatenates the caller's catalog with each public catalog in
// priority order. Identifiers are not deduplicated across projects; the
// same name may appear more than once, and GetImage resolves such
// collisions in favor of the earliest project.
func (c *ImageCatalog) ListImages(ctx context.Context) ([]*Image, error) {
	var all []*Image
	for _, project := range c.projects() {
		images, err := c.api.ListImages(ctx, project)
		if err != nil {
			return nil, fmt.Errorf("failed to list images in %s: %w", project, err)
		}
		all = append(all, images...)
	}
	return all, nil
}

// GetImage looks up id in the caller's project first, then falls through
// the public projects in order. Returns nil if no project has it.
func (c *ImageCatalog) GetImage(ctx context.Context, id string) (*Image, error) {
	for _, project := range c.projects() {
		image, err := c.api.GetImage(ctx, project, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get image %s in %s: %w", id, project, err)
		}
		if image != nil {
			return image, nil
		}
	}
	return nil, nil
}

func (c *ImageCatalog) projects() []string {
	return append([]string{c.project}, c.fallback...)
}
