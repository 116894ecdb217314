package gce

import (
	"context"
	"fmt"
	"sync"
)

// fakeCompute is a hand-rolled in-memory ComputeAPI. The zero value (after
// newFakeCompute) behaves like a well-behaved provider: mutations succeed
// and return already-DONE operations, reads return what was stored, and
// every tag mutation advances the fingerprint. Function fields override
// individual calls for failure injection.
type fakeCompute struct {
	mu sync.Mutex

	// calls records every API invocation in order, e.g. "CreateDisk(vm1-boot-disk)".
	calls []string

	disks        map[string]*Disk
	instances    map[string]*Instance
	zones        []*Zone
	machineTypes map[string][]*MachineType
	images       map[string][]*Image

	// invisibleReads makes the first N GetInstance calls after an
	// instance's creation return nil, simulating the provider's
	// eventual-consistency read gap.
	invisibleReads int
	remainingNil   map[string]int

	opCounter          int
	fingerprintCounter map[string]int

	getOperationFunc  func(ctx context.Context, op *Operation) (*Operation, error)
	getInstanceFunc   func(ctx context.Context, zone, name string) (*Instance, error)
	setTagsFunc       func(ctx context.Context, zone, name string, tags []string, fingerprint string) (*Operation, error)
	createDiskFunc    func(ctx context.Context, zone, name string, sizeGB int64, sourceImage string) (*Operation, error)
	listZonesFunc     func(ctx context.Context) ([]*Zone, error)
	listInstancesFunc func(ctx context.Context, zone string) ([]*Instance, error)
}

func newFakeCompute() *fakeCompute {
	return &fakeCompute{
		disks:              map[string]*Disk{},
		instances:          map[string]*Instance{},
		machineTypes:       map[string][]*MachineType{},
		images:             map[string][]*Image{},
		remainingNil:       map[string]int{},
		fingerprintCounter: map[string]int{},
	}
}

func key(zone, name string) string {
	return zone + "/" + name
}

func (f *fakeCompute) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeCompute) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeCompute) doneOperation(target string) *Operation {
	f.opCounter++
	return &Operation{
		Name:       fmt.Sprintf("op-%d", f.opCounter),
		TargetLink: target,
		Status:     OperationDone,
	}
}

func (f *fakeCompute) CreateDisk(ctx context.Context, zone, name string, sizeGB int64, sourceImage string) (*Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("CreateDisk(%s)", name))
	if f.createDiskFunc != nil {
		return f.createDiskFunc(ctx, zone, name, sizeGB, sourceImage)
	}
	disk := &Disk{
		Name:        name,
		Zone:        zone,
		SizeGB:      sizeGB,
		SourceImage: sourceImage,
		SelfLink:    fmt.Sprintf("https://compute.example/projects/p/zones/%s/disks/%s", zone, name),
	}
	f.disks[key(zone, name)] = disk
	return f.doneOperation(disk.SelfLink), nil
}

func (f *fakeCompute) GetDisk(_ context.Context, zone, name string) (*Disk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("GetDisk(%s)", name))
	return f.disks[key(zone, name)], nil
}

func (f *fakeCompute) DeleteDisk(_ context.Context, zone, name string) (*Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("DeleteDisk(%s)", name))
	delete(f.disks, key(zone, name))
	return f.doneOperation(name), nil
}

func (f *fakeCompute) CreateInstance(_ context.Context, zone, name string, template InstanceTemplate) (*Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("CreateInstance(%s)", name))
	instance := &Instance{
		Name:              name,
		Zone:              zone,
		MachineType:       template.MachineType,
		Disks:             template.Disks,
		NetworkInterfaces: template.NetworkInterfaces,
		Metadata:          template.Metadata,
		ServiceAccounts:   template.ServiceAccounts,
		Tags:              Tags{Fingerprint: "fp-0"},
		SelfLink:          fmt.Sprintf("https://compute.example/projects/p/zones/%s/instances/%s", zone, name),
	}
	f.instances[key(zone, name)] = instance
	f.remainingNil[key(zone, name)] = f.invisibleReads
	return f.doneOperation(instance.SelfLink), nil
}

func (f *fakeCompute) GetInstance(ctx context.Context, zone, name string) (*Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("GetInstance(%s)", name))
	if f.getInstanceFunc != nil {
		return f.getInstanceFunc(ctx, zone, name)
	}
	if f.remainingNil[key(zone, name)] > 0 {
		f.remainingNil[key(zone, name)]--
		return nil, nil
	}
	instance, ok := f.instances[key(zone, name)]
	if !ok {
		return nil, nil
	}
	// Each read is an independent snapshot, as with the real API.
	snapshot := *instance
	return &snapshot, nil
}

func (f *fakeCompute) DeleteInstance(_ context.Context, zone, name string) (*Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("DeleteInstance(%s)", name))
	delete(f.instances, key(zone, name))
	return f.doneOperation(name), nil
}

func (f *fakeCompute) ResetInstance(_ context.Context, zone, name string) (*Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("ResetInstance(%s)", name))
	return f.doneOperation(name), nil
}

func (f *fakeCompute) SetTags(ctx context.Context, zone, name string, tags []string, fingerprint string) (*Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("SetTags(%s)", name))
	if f.setTagsFunc != nil {
		return f.setTagsFunc(ctx, zone, name, tags, fingerprint)
	}
	instance, ok := f.instances[key(zone, name)]
	if !ok {
		return nil, fmt.Errorf("instance %s/%s not found", zone, name)
	}
	if instance.Tags.Fingerprint != fingerprint {
		op := f.doneOperation(name)
		op.ErrorCode = 412
		op.ErrorMessage = "fingerprint mismatch"
		return op, nil
	}
	f.fingerprintCounter[key(zone, name)]++
	instance.Tags = Tags{
		Items:       tags,
		Fingerprint: fmt.Sprintf("fp-%d", f.fingerprintCounter[key(zone, name)]),
	}
	return f.doneOperation(name), nil
}

func (f *fakeCompute) ListInstances(ctx context.Context, zone string) ([]*Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("ListInstances(%s)", zone))
	if f.listInstancesFunc != nil {
		return f.listInstancesFunc(ctx, zone)
	}
	var out []*Instance
	for _, instance := range f.instances {
		if instance.Zone == zone {
			out = append(out, instance)
		}
	}
	return out, nil
}

func (f *fakeCompute) ListImages(_ context.Context, project string) ([]*Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("ListImages(%s)", project))
	return f.images[project], nil
}

func (f *fakeCompute) GetImage(_ context.Context, project, name string) (*Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("GetImage(%s/%s)", project, name))
	for _, image := range f.images[project] {
		if image.Name == name {
			return image, nil
		}
	}
	return nil, nil
}

func (f *fakeCompute) ListZones(ctx context.Context) ([]*Zone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListZones")
	if f.listZonesFunc != nil {
		return f.listZonesFunc(ctx)
	}
	return f.zones, nil
}

func (f *fakeCompute) ListMachineTypes(_ context.Context, zone string) ([]*MachineType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("ListMachineTypes(%s)", zone))
	return f.machineTypes[zone], nil
}

func (f *fakeCompute) GetOperation(ctx context.Context, op *Operation) (*Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("GetOperation(%s)", op.Name))
	if f.getOperationFunc != nil {
		return f.getOperationFunc(ctx, op)
	}
	return op, nil
}

// addImage registers an image under a project.
func (f *fakeCompute) addImage(project string, image *Image) {
	f.mu.Lock()
	defer f.mu.Unlock()
	image.Project = project
	f.images[project] = append(f.images[project], image)
}

// Interface compliance check.
var _ ComputeAPI = (*fakeCompute)(nil)
