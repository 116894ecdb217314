package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/gcenode/internal/platform/gce"
)

// fakeAPI is a minimal gce.ComputeAPI for handler tests: every mutation
// succeeds with an already-DONE operation, and reads serve pre-seeded
// fixtures.
type fakeAPI struct {
	instances    map[string]*gce.Instance
	zones        []*gce.Zone
	machineTypes map[string][]*gce.MachineType
	images       map[string][]*gce.Image
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		instances:    map[string]*gce.Instance{},
		machineTypes: map[string][]*gce.MachineType{},
		images:       map[string][]*gce.Image{},
	}
}

func instanceKey(zone, name string) string {
	return zone + "/" + name
}

func doneOp(target string) *gce.Operation {
	return &gce.Operation{Name: "op", TargetLink: target, Status: gce.OperationDone}
}

func (f *fakeAPI) CreateDisk(_ context.Context, zone, name string, _ int64, _ string) (*gce.Operation, error) {
	return doneOp(fmt.Sprintf("https://compute.example/zones/%s/disks/%s", zone, name)), nil
}

func (f *fakeAPI) GetDisk(_ context.Context, zone, name string) (*gce.Disk, error) {
	return &gce.Disk{
		Name:     name,
		Zone:     zone,
		SelfLink: fmt.Sprintf("https://compute.example/zones/%s/disks/%s", zone, name),
	}, nil
}

func (f *fakeAPI) DeleteDisk(_ context.Context, _, name string) (*gce.Operation, error) {
	return doneOp(name), nil
}

func (f *fakeAPI) CreateInstance(_ context.Context, zone, name string, template gce.InstanceTemplate) (*gce.Operation, error) {
	f.instances[instanceKey(zone, name)] = &gce.Instance{
		Name:        name,
		Zone:        zone,
		MachineType: template.MachineType,
		Disks:       template.Disks,
		Metadata:    template.Metadata,
	}
	return doneOp(name), nil
}

func (f *fakeAPI) GetInstance(_ context.Context, zone, name string) (*gce.Instance, error) {
	return f.instances[instanceKey(zone, name)], nil
}

func (f *fakeAPI) DeleteInstance(_ context.Context, zone, name string) (*gce.Operation, error) {
	delete(f.instances, instanceKey(zone, name))
	return doneOp(name), nil
}

func (f *fakeAPI) ResetInstance(_ context.Context, _, name string) (*gce.Operation, error) {
	return doneOp(name), nil
}

func (f *fakeAPI) SetTags(_ context.Context, zone, name string, tags []string, _ string) (*gce.Operation, error) {
	if instance := f.instances[instanceKey(zone, name)]; instance != nil {
		instance.Tags = gce.Tags{Items: tags, Fingerprint: "fp"}
	}
	return doneOp(name), nil
}

func (f *fakeAPI) ListInstances(_ context.Context, zone string) ([]*gce.Instance, error) {
	var out []*gce.Instance
	for _, instance := range f.instances {
		if instance.Zone == zone {
			out = append(out, instance)
		}
	}
	return out, nil
}

func (f *fakeAPI) ListImages(_ context.Context, project string) ([]*gce.Image, error) {
	return f.images[project], nil
}

func (f *fakeAPI) GetImage(_ context.Context, project, name string) (*gce.Image, error) {
	for _, image := range f.images[project] {
		if image.Name == name {
			return image, nil
		}
	}
	return nil, nil
}

func (f *fakeAPI) ListZones(_ context.Context) ([]*gce.Zone, error) {
	return f.zones, nil
}

func (f *fakeAPI) ListMachineTypes(_ context.Context, zone string) ([]*gce.MachineType, error) {
	return f.machineTypes[zone], nil
}

func (f *fakeAPI) GetOperation(_ context.Context, op *gce.Operation) (*gce.Operation, error) {
	return op, nil
}

var _ gce.ComputeAPI = (*fakeAPI)(nil)
