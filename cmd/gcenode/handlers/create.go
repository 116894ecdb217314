package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/gcenode/internal/config"
	"github.com/imamik/gcenode/internal/platform/gce"
)

// CreateOptions carries the create command's flag values.
type CreateOptions struct {
	Name           string
	Group          string
	Image          string
	MachineType    string
	BootDiskSizeGB int64
	KeepBootDisk   bool
	EnableNAT      bool
	Wait           bool
	Tags           []string
	Ports          []int
}

// Create handles the create command.
//
// It resolves the image through the catalog and the hardware profile
// through the zone listing, provisions the node, and prints its identifier
// together with the resolved login credentials.
func Create(ctx context.Context, configPath string, opts CreateOptions) error {
	cfg, api, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	imageName := opts.Image
	if imageName == "" {
		imageName = cfg.Image
	}
	if imageName == "" {
		return fmt.Errorf("no image given and none configured")
	}
	catalog := gce.NewImageCatalog(api, cfg.Project, cfg.ImageProjects...)
	image, err := catalog.GetImage(ctx, imageName)
	if err != nil {
		return err
	}
	if image == nil {
		return fmt.Errorf("image %s not found in any catalog project", imageName)
	}

	machineType, err := resolveMachineType(ctx, api, cfg, opts.MachineType)
	if err != nil {
		return err
	}

	template := &gce.Template{
		Zone:        cfg.Zone,
		MachineType: machineType,
		Image:       image,
		Network:     cfg.Network,
		Options: gce.Options{
			BootDiskSizeGB:    opts.BootDiskSizeGB,
			KeepBootDisk:      opts.KeepBootDisk,
			EnableNAT:         opts.EnableNAT,
			BlockUntilRunning: opts.Wait,
			Tags:              opts.Tags,
			InboundPorts:      opts.Ports,
		},
	}

	provisioner := gce.NewProvisioner(api, config.LoadTimeouts(), gce.WithProvisionerLogger(newLogger()))
	result, err := provisioner.CreateNode(ctx, opts.Group, opts.Name, template)
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	fmt.Printf("created %s\n", result.ID)
	fmt.Printf("  user: %s\n", result.Credentials.User)
	if result.Credentials.PrivateKey != "" {
		fmt.Printf("%s", result.Credentials.PrivateKey)
	}
	return nil
}

// resolveMachineType matches the requested hardware profile name against
// the zone's listing. Deprecated profiles do not resolve.
func resolveMachineType(ctx context.Context, api gce.ComputeAPI, cfg *config.Config, name string) (*gce.MachineType, error) {
	if name == "" {
		name = cfg.MachineType
	}

	machineTypes, err := api.ListMachineTypes(ctx, cfg.Zone)
	if err != nil {
		return nil, fmt.Errorf("failed to list machine types: %w", err)
	}
	for _, machineType := range machineTypes {
		if machineType.Name != name || machineType.Deprecated {
			continue
		}
		return machineType, nil
	}
	return nil, fmt.Errorf("machine type %s not available in %s", name, cfg.Zone)
}
