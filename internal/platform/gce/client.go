package gce

import "context"

// Per-resource API boundaries. Each interface exposes only the operations
// the lifecycle components consume; the wire format behind them is owned
// by the provider. Every mutating call returns an *Operation immediately
// (accepted, not yet complete) and is consumed through the Poller.
//
// Get-style calls return a nil value, not an error, when the resource does
// not exist.

// DiskAPI manages standalone disks.
type DiskAPI interface {
	CreateDisk(ctx context.Context, zone, name string, sizeGB int64, sourceImage string) (*Operation, error)
	GetDisk(ctx context.Context, zone, name string) (*Disk, error)
	DeleteDisk(ctx context.Context, zone, name string) (*Operation, error)
}

// InstanceAPI manages compute instances.
type InstanceAPI interface {
	CreateInstance(ctx context.Context, zone, name string, template InstanceTemplate) (*Operation, error)
	GetInstance(ctx context.Context, zone, name string) (*Instance, error)
	DeleteInstance(ctx context.Context, zone, name string) (*Operation, error)
	ResetInstance(ctx context.Context, zone, name string) (*Operation, error)
	// SetTags replaces the instance's tag set. The fingerprint must come
	// from the most recent instance snapshot or the provider rejects the
	// call.
	SetTags(ctx context.Context, zone, name string, tags []string, fingerprint string) (*Operation, error)
	ListInstances(ctx context.Context, zone string) ([]*Instance, error)
}

// ImageAPI reads image catalogs. The project argument selects the
// namespace: the caller's own project or one of the shared public ones.
type ImageAPI interface {
	ListImages(ctx context.Context, project string) ([]*Image, error)
	GetImage(ctx context.Context, project, name string) (*Image, error)
}

// ZoneAPI lists the provider's zones.
type ZoneAPI interface {
	ListZones(ctx context.Context) ([]*Zone, error)
}

// MachineTypeAPI lists hardware profiles per zone.
type MachineTypeAPI interface {
	ListMachineTypes(ctx context.Context, zone string) ([]*MachineType, error)
}

// OperationAPI re-fetches the current state of an operation.
type OperationAPI interface {
	GetOperation(ctx context.Context, op *Operation) (*Operation, error)
}

// ComputeAPI combines all provider boundaries.
type ComputeAPI interface {
	DiskAPI
	InstanceAPI
	ImageAPI
	ZoneAPI
	MachineTypeAPI
	OperationAPI
}
