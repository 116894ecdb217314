package gce

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/gcenode/internal/config"
	"github.com/imamik/gcenode/internal/util/naming"
	"github.com/imamik/gcenode/internal/util/retry"
)

// Metadata keys recorded on every created instance.
const (
	// imageMetadataKey records the source image locator.
	imageMetadataKey = "gcenode-image"
	// deleteBootDiskMetadataKey marks the boot disk for deletion together
	// with the node. Destroy honors it only when the value is "true".
	deleteBootDiskMetadataKey = "gcenode-delete-boot-disk"
)

// defaultBootDiskSizeGB sizes a synthesized boot disk when the template
// does not request a size.
const defaultBootDiskSizeGB = 10

// NodeAndCredentials pairs a created node with its external identifier and
// resolved login credentials.
type NodeAndCredentials struct {
	Node        *Instance
	ID          string
	Credentials *LoginCredentials
}

// Provisioner orchestrates the multi-step node creation protocol:
// boot-disk provisioning, instance creation, eventual-consistency
// read-back, and tag assignment.
//
// Each CreateNode invocation is independent and safe to run concurrently
// with others; all coordination on the remote node goes through the
// provider's fingerprint-based optimistic concurrency.
type Provisioner struct {
	api      ComputeAPI
	poller   *Poller
	timeouts *config.Timeouts
	tagNamer func(group string) naming.FirewallTagNamer
	log      logr.Logger
}

// ProvisionerOption configures a Provisioner.
type ProvisionerOption func(*Provisioner)

// WithProvisionerLogger sets the logger.
func WithProvisionerLogger(log logr.Logger) ProvisionerOption {
	return func(p *Provisioner) {
		p.log = log
	}
}

// WithFirewallTagNamer replaces the naming convention used to derive
// firewall tags from inbound ports.
func WithFirewallTagNamer(namer func(group string) naming.FirewallTagNamer) ProvisionerOption {
	return func(p *Provisioner) {
		p.tagNamer = namer
	}
}

// NewProvisioner creates a Provisioner over the given provider API.
func NewProvisioner(api ComputeAPI, timeouts *config.Timeouts, opts ...ProvisionerOption) *Provisioner {
	p := &Provisioner{
		api:      api,
		timeouts: timeouts,
		tagNamer: naming.FirewallTagsForGroup,
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.poller = NewPoller(api, timeouts, p.log)
	return p
}

// CreateNode creates the node described by template under the given
// provisioning group and returns it together with its resolved login
// credentials.
//
// On a mid-sequence failure no partial resources are cleaned up; the
// caller owns compensating cleanup (typically DestroyNode).
func (p *Provisioner) CreateNode(ctx context.Context, group, name string, template *Template) (*NodeAndCredentials, error) {
	if err := template.validate(); err != nil {
		return nil, err
	}
	opts := &template.Options
	zone := template.Zone

	// The ordering is significant here - the first disk must be the boot disk.
	var disks []AttachedDisk
	if !hasBootDisk(opts.Disks) {
		bootDisk, err := p.createBootDisk(ctx, name, template)
		if err != nil {
			return nil, err
		}
		disks = append(disks, AttachedDisk{
			Type:       DiskPersistent,
			Mode:       DiskModeReadWrite,
			Boot:       true,
			AutoDelete: true,
			Source:     bootDisk.SelfLink,
		})
	}
	disks = append(disks, opts.Disks...)

	credentials, err := ResolveLoginCredentials(template.Image, opts)
	if err != nil {
		return nil, err
	}

	metadata := Metadata{}
	for k, v := range opts.Metadata {
		metadata[k] = v
	}
	metadata[imageMetadataKey] = template.Image.SelfLink
	if !opts.KeepBootDisk {
		metadata[deleteBootDiskMetadataKey] = "true"
	}

	networkInterface := NetworkInterface{Network: template.Network}
	if opts.EnableNAT {
		networkInterface.AccessConfigs = []AccessConfig{{Type: AccessConfigOneToOneNAT, Name: "external-nat"}}
	}

	request := InstanceTemplate{
		MachineType:       template.MachineType.SelfLink,
		Disks:             disks,
		NetworkInterfaces: []NetworkInterface{networkInterface},
		Metadata:          metadata,
		ServiceAccounts:   opts.ServiceAccounts,
	}

	p.log.Info("creating instance", "zone", zone, "name", name, "machineType", template.MachineType.Name)
	operation, err := p.api.CreateInstance(ctx, zone, name, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	if opts.BlockUntilRunning {
		if _, err := p.poller.Await(ctx, operation); err != nil {
			return nil, err
		}
	}

	// Newly created instances are not always immediately visible to reads.
	instance, err := p.awaitVisible(ctx, zone, name)
	if err != nil {
		return nil, err
	}

	if len(opts.Tags) > 0 {
		tagsOperation, err := p.api.SetTags(ctx, zone, name, opts.Tags, instance.Tags.Fingerprint)
		if err != nil {
			return nil, fmt.Errorf("failed to set tags: %w", err)
		}
		if _, err := p.poller.Await(ctx, tagsOperation); err != nil {
			return nil, err
		}

		// The fingerprint advances after every tag mutation; the next
		// mutation must carry the one from a fresh read.
		instance, err = p.awaitVisible(ctx, zone, name)
		if err != nil {
			return nil, err
		}
	}

	// Tags for firewall rules, derived from the requested inbound ports.
	// This mutation is issued but not awaited; the provider settles it on
	// its own. Step asymmetry with the explicit tag set above is inherited
	// behavior and pinned by tests.
	namer := p.tagNamer(group)
	firewallTags := make([]string, 0, len(opts.InboundPorts))
	for _, port := range opts.InboundPorts {
		firewallTags = appendUnique(firewallTags, namer(port))
	}
	if _, err := p.api.SetTags(ctx, zone, instance.Name, firewallTags, instance.Tags.Fingerprint); err != nil {
		return nil, fmt.Errorf("failed to set firewall tags: %w", err)
	}

	return &NodeAndCredentials{
		Node:        instance,
		ID:          NodeID{Zone: zone, Name: instance.Name}.String(),
		Credentials: credentials,
	}, nil
}

// createBootDisk creates the boot disk for a synthesized first disk slot,
// awaits its creation, and re-reads it for the self link.
func (p *Provisioner) createBootDisk(ctx context.Context, instanceName string, template *Template) (*Disk, error) {
	size := template.Options.BootDiskSizeGB
	if size == 0 {
		size = defaultBootDiskSizeGB
	}
	diskName := naming.BootDisk(instanceName)

	p.log.Info("creating boot disk", "zone", template.Zone, "disk", diskName, "sizeGB", size)
	operation, err := p.api.CreateDisk(ctx, template.Zone, diskName, size, template.Image.SelfLink)
	if err != nil {
		return nil, fmt.Errorf("failed to create boot disk: %w", err)
	}
	if _, err := p.poller.Await(ctx, operation); err != nil {
		return nil, err
	}

	disk, err := p.api.GetDisk(ctx, template.Zone, diskName)
	if err != nil {
		return nil, fmt.Errorf("failed to get boot disk: %w", err)
	}
	if disk == nil {
		return nil, fmt.Errorf("boot disk %s not visible after creation", diskName)
	}
	return disk, nil
}

// awaitVisible bridges the eventual-consistency gap between a mutating
// acknowledgment and read visibility: it re-polls the instance under the
// poller's interval/timeout policy until a non-nil snapshot is observed.
func (p *Provisioner) awaitVisible(ctx context.Context, zone, name string) (*Instance, error) {
	var instance *Instance
	err := retry.Until(ctx, p.timeouts.PollInterval, p.timeouts.PollTimeout, func(ctx context.Context) (bool, error) {
		current, err := p.api.GetInstance(ctx, zone, name)
		if err != nil {
			return false, fmt.Errorf("failed to get instance %s/%s: %w", zone, name, err)
		}
		instance = current
		return current != nil, nil
	})
	if errors.Is(err, retry.ErrTimeout) {
		return nil, &OperationTimeoutError{Target: NodeID{Zone: zone, Name: name}.String(), Timeout: p.timeouts.PollTimeout}
	}
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func appendUnique(tags []string, tag string) []string {
	for _, existing := range tags {
		if existing == tag {
			return tags
		}
	}
	return append(tags, tag)
}
