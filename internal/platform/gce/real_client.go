package gce

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/imamik/gcenode/internal/config"
	"github.com/imamik/gcenode/internal/util/ptr"
	"github.com/imamik/gcenode/internal/util/retry"
)

// RealClient implements ComputeAPI over the Google Compute Engine REST
// API. All listings drain pagination before returning; all not-found
// responses normalize to nil values. Transient provider failures (rate
// limiting and server errors) are retried with exponential backoff under
// the configured attempt budget before they surface to the caller.
type RealClient struct {
	service   *compute.Service
	project   string
	retryOpts []retry.Option
}

// Interface compliance check.
var _ ComputeAPI = (*RealClient)(nil)

// NewRealClient creates a client for the given project using application
// default credentials. Retry behavior comes from timeouts.
func NewRealClient(ctx context.Context, project string, timeouts *config.Timeouts, opts ...option.ClientOption) (*RealClient, error) {
	credentials, err := google.FindDefaultCredentials(ctx, compute.ComputeScope)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain credentials: %w", err)
	}

	service, err := compute.NewService(ctx, append([]option.ClientOption{option.WithCredentials(credentials)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}

	return &RealClient{service: service, project: project, retryOpts: retryOptions(timeouts)}, nil
}

// retryOptions maps the configured retry budget onto backoff options.
func retryOptions(timeouts *config.Timeouts) []retry.Option {
	return []retry.Option{
		retry.WithMaxRetries(timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(timeouts.RetryInitialDelay),
	}
}

// call runs one remote call with exponential backoff. Only transient
// failures are retried; everything else (including not-found) is marked
// fatal and surfaces on the first attempt.
func (c *RealClient) call(ctx context.Context, op func() error) error {
	return callWithRetry(ctx, c.retryOpts, op)
}

func callWithRetry(ctx context.Context, opts []retry.Option, op func() error) error {
	return retry.WithExponentialBackoff(ctx, func() error {
		err := op()
		if err != nil && !isTransient(err) {
			return retry.Fatal(err)
		}
		return err
	}, opts...)
}

// isTransient reports whether a provider error is worth retrying: rate
// limiting or a server-side failure.
func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}

// CreateDisk creates a standalone disk, optionally sourced from an image.
func (c *RealClient) CreateDisk(ctx context.Context, zone, name string, sizeGB int64, sourceImage string) (*Operation, error) {
	disk := &compute.Disk{
		Name:        name,
		SizeGb:      sizeGB,
		SourceImage: sourceImage,
	}
	var operation *compute.Operation
	err := c.call(ctx, func() error {
		var err error
		operation, err = c.service.Disks.Insert(c.project, zone, disk).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create disk: %w", err)
	}
	return operationFromCompute(operation, zone), nil
}

// GetDisk fetches a disk, returning nil if it does not exist.
func (c *RealClient) GetDisk(ctx context.Context, zone, name string) (*Disk, error) {
	var disk *compute.Disk
	err := c.call(ctx, func() error {
		var err error
		disk, err = c.service.Disks.Get(c.project, zone, name).Context(ctx).Do()
		return err
	})
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get disk: %w", err)
	}
	return &Disk{
		Name:        disk.Name,
		Zone:        path.Base(disk.Zone),
		SizeGB:      disk.SizeGb,
		SourceImage: disk.SourceImage,
		SelfLink:    disk.SelfLink,
	}, nil
}

// DeleteDisk deletes a disk.
func (c *RealClient) DeleteDisk(ctx context.Context, zone, name string) (*Operation, error) {
	var operation *compute.Operation
	err := c.call(ctx, func() error {
		var err error
		operation, err = c.service.Disks.Delete(c.project, zone, name).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete disk: %w", err)
	}
	return operationFromCompute(operation, zone), nil
}

// CreateInstance creates an instance from the given template.
func (c *RealClient) CreateInstance(ctx context.Context, zone, name string, template InstanceTemplate) (*Operation, error) {
	instance := &compute.Instance{
		Name:            name,
		MachineType:     template.MachineType,
		Disks:           attachedDisksToCompute(template.Disks),
		ServiceAccounts: serviceAccountsToCompute(template.ServiceAccounts),
		Metadata:        metadataToCompute(template.Metadata),
	}
	for _, networkInterface := range template.NetworkInterfaces {
		item := &compute.NetworkInterface{
			Network:   networkInterface.Network,
			NetworkIP: networkInterface.NetworkIP,
		}
		for _, accessConfig := range networkInterface.AccessConfigs {
			item.AccessConfigs = append(item.AccessConfigs, &compute.AccessConfig{
				Type:  accessConfig.Type,
				Name:  accessConfig.Name,
				NatIP: accessConfig.NatIP,
			})
		}
		instance.NetworkInterfaces = append(instance.NetworkInterfaces, item)
	}

	var operation *compute.Operation
	err := c.call(ctx, func() error {
		var err error
		operation, err = c.service.Instances.Insert(c.project, zone, instance).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}
	return operationFromCompute(operation, zone), nil
}

// GetInstance fetches an instance, returning nil if it does not exist.
func (c *RealClient) GetInstance(ctx context.Context, zone, name string) (*Instance, error) {
	var instance *compute.Instance
	err := c.call(ctx, func() error {
		var err error
		instance, err = c.service.Instances.Get(c.project, zone, name).Context(ctx).Do()
		return err
	})
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}
	return instanceFromCompute(instance), nil
}

// DeleteInstance deletes an instance.
func (c *RealClient) DeleteInstance(ctx context.Context, zone, name string) (*Operation, error) {
	var operation *compute.Operation
	err := c.call(ctx, func() error {
		var err error
		operation, err = c.service.Instances.Delete(c.project, zone, name).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete instance: %w", err)
	}
	return operationFromCompute(operation, zone), nil
}

// ResetInstance performs a hard reset on an instance.
func (c *RealClient) ResetInstance(ctx context.Context, zone, name string) (*Operation, error) {
	var operation *compute.Operation
	err := c.call(ctx, func() error {
		var err error
		operation, err = c.service.Instances.Reset(c.project, zone, name).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset instance: %w", err)
	}
	return operationFromCompute(operation, zone), nil
}

// SetTags replaces an instance's tag set under the given fingerprint.
func (c *RealClient) SetTags(ctx context.Context, zone, name string, tags []string, fingerprint string) (*Operation, error) {
	var operation *compute.Operation
	err := c.call(ctx, func() error {
		var err error
		operation, err = c.service.Instances.SetTags(c.project, zone, name, &compute.Tags{
			Items:       tags,
			Fingerprint: fingerprint,
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set tags: %w", err)
	}
	return operationFromCompute(operation, zone), nil
}

// ListInstances lists all instances in a zone, draining pagination.
func (c *RealClient) ListInstances(ctx context.Context, zone string) ([]*Instance, error) {
	var instances []*Instance
	err := c.call(ctx, func() error {
		// A retried drain restarts from the first page.
		instances = nil
		return c.service.Instances.List(c.project, zone).Pages(ctx, func(page *compute.InstanceList) error {
			for _, instance := range page.Items {
				instances = append(instances, instanceFromCompute(instance))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	return instances, nil
}

// ListImages lists all images in a project, draining pagination.
func (c *RealClient) ListImages(ctx context.Context, project string) ([]*Image, error) {
	var images []*Image
	err := c.call(ctx, func() error {
		images = nil
		return c.service.Images.List(project).Pages(ctx, func(page *compute.ImageList) error {
			for _, image := range page.Items {
				images = append(images, &Image{
					Name:     image.Name,
					Project:  project,
					SelfLink: image.SelfLink,
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list images in %s: %w", project, err)
	}
	return images, nil
}

// GetImage fetches an image from a project, returning nil if absent.
func (c *RealClient) GetImage(ctx context.Context, project, name string) (*Image, error) {
	var image *compute.Image
	err := c.call(ctx, func() error {
		var err error
		image, err = c.service.Images.Get(project, name).Context(ctx).Do()
		return err
	})
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return &Image{
		Name:     image.Name,
		Project:  project,
		SelfLink: image.SelfLink,
	}, nil
}

// ListZones lists the project's zones, draining pagination.
func (c *RealClient) ListZones(ctx context.Context) ([]*Zone, error) {
	var zones []*Zone
	err := c.call(ctx, func() error {
		zones = nil
		return c.service.Zones.List(c.project).Pages(ctx, func(page *compute.ZoneList) error {
			for _, zone := range page.Items {
				zones = append(zones, &Zone{
					Name:   zone.Name,
					Region: path.Base(zone.Region),
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

// ListMachineTypes lists the machine types of a zone, draining pagination.
func (c *RealClient) ListMachineTypes(ctx context.Context, zone string) ([]*MachineType, error) {
	var machineTypes []*MachineType
	err := c.call(ctx, func() error {
		machineTypes = nil
		return c.service.MachineTypes.List(c.project, zone).Pages(ctx, func(page *compute.MachineTypeList) error {
			for _, machineType := range page.Items {
				machineTypes = append(machineTypes, &MachineType{
					Name:       machineType.Name,
					Zone:       machineType.Zone,
					SelfLink:   machineType.SelfLink,
					Deprecated: machineType.Deprecated != nil,
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list machine types: %w", err)
	}
	return machineTypes, nil
}

// GetOperation re-fetches a zone operation's current state.
func (c *RealClient) GetOperation(ctx context.Context, op *Operation) (*Operation, error) {
	var operation *compute.Operation
	err := c.call(ctx, func() error {
		var err error
		operation, err = c.service.ZoneOperations.Get(c.project, op.Zone, op.Name).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}
	return operationFromCompute(operation, op.Zone), nil
}

func operationFromCompute(operation *compute.Operation, zone string) *Operation {
	if operation.Zone != "" {
		zone = path.Base(operation.Zone)
	}
	return &Operation{
		Name:         operation.Name,
		Zone:         zone,
		TargetLink:   operation.TargetLink,
		Status:       OperationStatus(operation.Status),
		ErrorCode:    operation.HttpErrorStatusCode,
		ErrorMessage: operation.HttpErrorMessage,
	}
}

func instanceFromCompute(instance *compute.Instance) *Instance {
	result := &Instance{
		Name:        instance.Name,
		Zone:        path.Base(instance.Zone),
		MachineType: instance.MachineType,
		Metadata:    Metadata{},
		SelfLink:    instance.SelfLink,
	}

	for _, disk := range instance.Disks {
		result.Disks = append(result.Disks, AttachedDisk{
			Type:       DiskType(disk.Type),
			Mode:       DiskMode(disk.Mode),
			Boot:       disk.Boot,
			AutoDelete: disk.AutoDelete,
			Source:     disk.Source,
		})
	}

	for _, networkInterface := range instance.NetworkInterfaces {
		item := NetworkInterface{
			Network:   networkInterface.Network,
			NetworkIP: networkInterface.NetworkIP,
		}
		for _, accessConfig := range networkInterface.AccessConfigs {
			item.AccessConfigs = append(item.AccessConfigs, AccessConfig{
				Type:  accessConfig.Type,
				Name:  accessConfig.Name,
				NatIP: accessConfig.NatIP,
			})
		}
		result.NetworkInterfaces = append(result.NetworkInterfaces, item)
	}

	if instance.Tags != nil {
		result.Tags = Tags{Items: instance.Tags.Items, Fingerprint: instance.Tags.Fingerprint}
	}
	if instance.Metadata != nil {
		for _, item := range instance.Metadata.Items {
			if item.Value != nil {
				result.Metadata[item.Key] = *item.Value
			}
		}
	}
	for _, serviceAccount := range instance.ServiceAccounts {
		result.ServiceAccounts = append(result.ServiceAccounts, ServiceAccount{
			Email:  serviceAccount.Email,
			Scopes: serviceAccount.Scopes,
		})
	}
	return result
}

func attachedDisksToCompute(disks []AttachedDisk) []*compute.AttachedDisk {
	var result []*compute.AttachedDisk
	for _, disk := range disks {
		result = append(result, &compute.AttachedDisk{
			Type:       string(disk.Type),
			Mode:       string(disk.Mode),
			Boot:       disk.Boot,
			AutoDelete: disk.AutoDelete,
			Source:     disk.Source,
		})
	}
	return result
}

func serviceAccountsToCompute(serviceAccounts []ServiceAccount) []*compute.ServiceAccount {
	var result []*compute.ServiceAccount
	for _, serviceAccount := range serviceAccounts {
		result = append(result, &compute.ServiceAccount{
			Email:  serviceAccount.Email,
			Scopes: serviceAccount.Scopes,
		})
	}
	return result
}

func metadataToCompute(metadata Metadata) *compute.Metadata {
	if len(metadata) == 0 {
		return nil
	}
	result := &compute.Metadata{}
	for key, value := range metadata {
		result.Items = append(result.Items, &compute.MetadataItems{
			Key:   key,
			Value: ptr.String(value),
		})
	}
	return result
}

// isNotFound checks if an error is an HTTP 404 from the provider.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
