package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/gcenode/internal/config"
	"github.com/imamik/gcenode/internal/platform/gce"
)

// swapFactories installs a fixed configuration and the given fake API,
// restoring the real factories when the test ends. Tests mutating the
// factory variables must not run in parallel.
func swapFactories(t *testing.T, fake *fakeAPI) {
	t.Helper()
	origLoad := loadConfigFile
	origAPI := newComputeAPI
	t.Cleanup(func() {
		loadConfigFile = origLoad
		newComputeAPI = origAPI
	})

	loadConfigFile = func(_ string) (*config.Config, error) {
		return &config.Config{
			Project:     "test-project",
			Zone:        "us-central1-a",
			Network:     "default",
			MachineType: "n1-standard-1",
			Image:       "debian-12",
		}, nil
	}
	newComputeAPI = func(_ context.Context, _ string) (gce.ComputeAPI, error) {
		return fake, nil
	}
}

func TestCreate(t *testing.T) {
	fake := newFakeAPI()
	fake.machineTypes["us-central1-a"] = []*gce.MachineType{
		{Name: "n1-standard-1", Zone: "us-central1-a", SelfLink: "https://compute.example/machineTypes/n1-standard-1"},
	}
	fake.images["test-project"] = []*gce.Image{{
		Name:     "debian-12",
		Project:  "test-project",
		SelfLink: "https://compute.example/images/debian-12",
		DefaultCredentials: &gce.LoginCredentials{
			User:       "admin",
			PrivateKey: "pub:priv",
		},
	}}
	swapFactories(t, fake)

	err := Create(context.Background(), "gcenode.yaml", CreateOptions{
		Name:  "vm1",
		Group: "web",
		Ports: []int{22},
	})
	require.NoError(t, err)

	instance := fake.instances[instanceKey("us-central1-a", "vm1")]
	require.NotNil(t, instance)
	assert.Equal(t, []string{"web-port-22"}, instance.Tags.Items)
}

func TestCreate_UnknownMachineType(t *testing.T) {
	fake := newFakeAPI()
	fake.images["test-project"] = []*gce.Image{{
		Name:     "debian-12",
		SelfLink: "https://compute.example/images/debian-12",
	}}
	swapFactories(t, fake)

	err := Create(context.Background(), "gcenode.yaml", CreateOptions{Name: "vm1", MachineType: "n1-mega-96"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n1-mega-96")
}

func TestCreate_UnknownImage(t *testing.T) {
	swapFactories(t, newFakeAPI())

	err := Create(context.Background(), "gcenode.yaml", CreateOptions{Name: "vm1", Image: "no-such-image"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-image")
}

func TestDestroy(t *testing.T) {
	fake := newFakeAPI()
	fake.instances[instanceKey("us-central1-a", "vm1")] = &gce.Instance{Name: "vm1", Zone: "us-central1-a"}
	swapFactories(t, fake)

	require.NoError(t, Destroy(context.Background(), "gcenode.yaml", "us-central1-a/vm1"))
	assert.Empty(t, fake.instances)
}

func TestReboot(t *testing.T) {
	fake := newFakeAPI()
	fake.instances[instanceKey("us-central1-a", "vm1")] = &gce.Instance{Name: "vm1", Zone: "us-central1-a"}
	swapFactories(t, fake)

	require.NoError(t, Reboot(context.Background(), "gcenode.yaml", "us-central1-a/vm1"))
}

func TestList(t *testing.T) {
	fake := newFakeAPI()
	fake.zones = []*gce.Zone{{Name: "us-central1-a"}}
	fake.instances[instanceKey("us-central1-a", "vm1")] = &gce.Instance{Name: "vm1", Zone: "us-central1-a"}
	swapFactories(t, fake)

	require.NoError(t, List(context.Background(), "gcenode.yaml", nil))
	require.NoError(t, List(context.Background(), "gcenode.yaml", []string{"vm1"}))
}

func TestImages(t *testing.T) {
	fake := newFakeAPI()
	fake.images["test-project"] = []*gce.Image{{Name: "debian-12"}}
	swapFactories(t, fake)

	require.NoError(t, Images(context.Background(), "gcenode.yaml"))
}

func TestProfiles(t *testing.T) {
	fake := newFakeAPI()
	fake.zones = []*gce.Zone{{Name: "us-central1-a"}}
	fake.machineTypes["us-central1-a"] = []*gce.MachineType{{Name: "n1-standard-1"}}
	swapFactories(t, fake)

	require.NoError(t, Profiles(context.Background(), "gcenode.yaml"))
}
