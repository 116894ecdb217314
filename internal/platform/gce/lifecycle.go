package gce

import (
	"context"
	"fmt"
	"path"

	"github.com/go-logr/logr"

	"github.com/imamik/gcenode/internal/config"
	"github.com/imamik/gcenode/internal/util/async"
)

// Manager implements lifecycle operations on existing nodes: get, list,
// destroy, and reboot. Opaque node identifiers are slash-encoded
// (zone, name) pairs resolved through ParseNodeID.
type Manager struct {
	api    ComputeAPI
	poller *Poller
	zones  *zoneCache
	log    logr.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger.
func WithManagerLogger(log logr.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a Manager over the given provider API.
func NewManager(api ComputeAPI, timeouts *config.Timeouts, opts ...ManagerOption) *Manager {
	m := &Manager{
		api:   api,
		zones: newZoneCache(api),
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.poller = NewPoller(api, timeouts, m.log)
	return m
}

// GetNode fetches the node identified by id. A missing node is a nil
// result, not an error.
func (m *Manager) GetNode(ctx context.Context, id string) (*Instance, error) {
	nodeID, err := ParseNodeID(id)
	if err != nil {
		return nil, err
	}
	return m.api.GetInstance(ctx, nodeID.Zone, nodeID.Name)
}

// ListNodes fans out across every known zone in parallel and concatenates
// the per-zone listings in zone order. The zone list itself comes from the
// adapter-lifetime cache.
func (m *Manager) ListNodes(ctx context.Context) ([]*Instance, error) {
	zones, err := m.zones.get(ctx)
	if err != nil {
		return nil, err
	}

	perZone := make([][]*Instance, len(zones))
	tasks := make([]async.Task, len(zones))
	for i, zone := range zones {
		tasks[i] = async.Task{
			Name: "list instances in " + zone.Name,
			Func: func(ctx context.Context) error {
				instances, err := m.api.ListInstances(ctx, zone.Name)
				if err != nil {
					return err
				}
				perZone[i] = instances
				return nil
			},
		}
	}
	if err := async.RunParallel(ctx, tasks); err != nil {
		return nil, err
	}

	var nodes []*Instance
	for _, instances := range perZone {
		nodes = append(nodes, instances...)
	}
	return nodes, nil
}

// ListNodesByIDs filters the full listing by name membership in ids.
// There is no server-side batch lookup.
func (m *Manager) ListNodesByIDs(ctx context.Context, ids []string) ([]*Instance, error) {
	nodes, err := m.ListNodes(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var filtered []*Instance
	for _, node := range nodes {
		if _, ok := wanted[node.Name]; ok {
			filtered = append(filtered, node)
		}
	}
	return filtered, nil
}

// DestroyNode deletes the node and, when its metadata carries the
// delete-boot-disk marker, the boot disk afterwards. Deletion order is
// instance first, disk second: a disk cannot be deleted while attached.
func (m *Manager) DestroyNode(ctx context.Context, id string) error {
	nodeID, err := ParseNodeID(id)
	if err != nil {
		return err
	}

	instance, err := m.api.GetInstance(ctx, nodeID.Zone, nodeID.Name)
	if err != nil {
		return fmt.Errorf("failed to get instance: %w", err)
	}

	var bootDiskName string
	if instance != nil && instance.Metadata[deleteBootDiskMetadataKey] == "true" {
		for _, disk := range instance.Disks {
			if disk.Type == DiskPersistent && disk.Boot {
				// The disk name is the final path segment of its locator.
				bootDiskName = path.Base(disk.Source)
				break
			}
		}
	}

	m.log.Info("deleting instance", "zone", nodeID.Zone, "name", nodeID.Name)
	operation, err := m.api.DeleteInstance(ctx, nodeID.Zone, nodeID.Name)
	if err != nil {
		return fmt.Errorf("failed to delete instance: %w", err)
	}
	if _, err := m.poller.Await(ctx, operation); err != nil {
		return err
	}

	if bootDiskName != "" {
		m.log.Info("deleting boot disk", "zone", nodeID.Zone, "disk", bootDiskName)
		operation, err := m.api.DeleteDisk(ctx, nodeID.Zone, bootDiskName)
		if err != nil {
			return fmt.Errorf("failed to delete boot disk: %w", err)
		}
		if _, err := m.poller.Await(ctx, operation); err != nil {
			return err
		}
	}
	return nil
}

// RebootNode issues a reset and waits for it to complete. No state is
// read back afterwards.
func (m *Manager) RebootNode(ctx context.Context, id string) error {
	nodeID, err := ParseNodeID(id)
	if err != nil {
		return err
	}

	operation, err := m.api.ResetInstance(ctx, nodeID.Zone, nodeID.Name)
	if err != nil {
		return fmt.Errorf("failed to reset instance: %w", err)
	}
	_, err = m.poller.Await(ctx, operation)
	return err
}

// ResumeNode always fails: the provider has no suspend/resume support.
func (m *Manager) ResumeNode(_ context.Context, _ string) error {
	return &UnsupportedError{Capability: "resume"}
}

// SuspendNode always fails: the provider has no suspend/resume support.
func (m *Manager) SuspendNode(_ context.Context, _ string) error {
	return &UnsupportedError{Capability: "suspend"}
}

// ListLocations returns the cached zone listing.
func (m *Manager) ListLocations(ctx context.Context) ([]*Zone, error) {
	return m.zones.get(ctx)
}

// ListHardwareProfiles lists machine types across every known zone in
// parallel, filtering deprecated entries.
func (m *Manager) ListHardwareProfiles(ctx context.Context) ([]*MachineType, error) {
	zones, err := m.zones.get(ctx)
	if err != nil {
		return nil, err
	}

	perZone := make([][]*MachineType, len(zones))
	tasks := make([]async.Task, len(zones))
	for i, zone := range zones {
		tasks[i] = async.Task{
			Name: "list machine types in " + zone.Name,
			Func: func(ctx context.Context) error {
				machineTypes, err := m.api.ListMachineTypes(ctx, zone.Name)
				if err != nil {
					return err
				}
				perZone[i] = machineTypes
				return nil
			},
		}
	}
	if err := async.RunParallel(ctx, tasks); err != nil {
		return nil, err
	}

	var profiles []*MachineType
	for _, machineTypes := range perZone {
		for _, machineType := range machineTypes {
			if machineType.Deprecated {
				continue
			}
			profiles = append(profiles, machineType)
		}
	}
	return profiles, nil
}
