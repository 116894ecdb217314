package gce

// Template is the caller-supplied description of a node to create:
// hardware, image, network, disks, credentials, and tag options.
type Template struct {
	// Zone the node is created in.
	Zone string
	// MachineType is the hardware profile; its SelfLink must resolve.
	MachineType *MachineType
	// Image is the boot image; its SelfLink must resolve.
	Image *Image
	// Network the node's single interface attaches to.
	Network string

	Options Options
}

// Options carries the per-creation tuning knobs. Credential overrides are
// merged with the image defaults by ResolveLoginCredentials, which writes
// the final bundle back into ResolvedCredentials so later steps observe a
// single source of truth.
type Options struct {
	// Disks are explicit attached disks. If none is flagged boot, a boot
	// disk is synthesized from the template image and prepended.
	Disks []AttachedDisk
	// BootDiskSizeGB sizes a synthesized boot disk. Zero means 10.
	BootDiskSizeGB int64
	// KeepBootDisk suppresses the delete-on-destroy metadata marker, so
	// the boot disk outlives the node.
	KeepBootDisk bool
	// EnableNAT gives the node's interface a NAT-mapped external address;
	// otherwise the node is private-only.
	EnableNAT bool
	// BlockUntilRunning makes creation wait for the instance operation to
	// complete before the reconciliation read.
	BlockUntilRunning bool
	// Tags are explicit instance tags, set after creation.
	Tags []string
	// InboundPorts derive firewall tags via the group's naming convention.
	InboundPorts []int
	// ServiceAccounts are bound to the created instance.
	ServiceAccounts []ServiceAccount
	// Metadata entries merged into the instance metadata.
	Metadata Metadata

	// Login credential overrides. Unset fields fall back to the image's
	// embedded defaults.
	LoginUser        string
	PrivateKey       string
	PublicKey        string
	Password         *string
	AuthenticateSudo *bool

	// ResolvedCredentials is populated by ResolveLoginCredentials.
	ResolvedCredentials *LoginCredentials
}

// validate checks the preconditions that must hold before any remote call
// is issued.
func (t *Template) validate() error {
	if t == nil {
		return &ValidationError{Field: "template", Reason: "template must be set"}
	}
	if t.Zone == "" {
		return &ValidationError{Field: "zone", Reason: "zone must be set"}
	}
	if t.Network == "" {
		return &ValidationError{Field: "network", Reason: "network was not present in template options"}
	}
	if t.MachineType == nil || t.MachineType.SelfLink == "" {
		return &ValidationError{Field: "machineType", Reason: "hardware must have a resolvable locator"}
	}
	if t.Image == nil || t.Image.SelfLink == "" {
		return &ValidationError{Field: "image", Reason: "image must have a resolvable locator"}
	}
	return nil
}

// hasBootDisk reports whether any explicit disk is flagged as the boot disk.
func hasBootDisk(disks []AttachedDisk) bool {
	for _, d := range disks {
		if d.Boot {
			return true
		}
	}
	return false
}
