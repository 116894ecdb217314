package gce

// OperationStatus is the lifecycle state of an asynchronous provider
// operation. Operations are created by mutating API calls and advanced
// only by the provider; this package polls, never writes.
type OperationStatus string

const (
	OperationPending OperationStatus = "PENDING"
	OperationRunning OperationStatus = "RUNNING"
	OperationDone    OperationStatus = "DONE"
)

// Operation identifies one asynchronous provider action. Terminal once
// DONE; a DONE operation may carry a provider-attached error.
type Operation struct {
	Name       string
	Zone       string
	TargetLink string
	Status     OperationStatus
	// ErrorCode is the HTTP-style error code the provider attached, 0 if
	// the operation succeeded.
	ErrorCode    int64
	ErrorMessage string
}

// Failed reports whether the provider attached an error to the operation.
func (o *Operation) Failed() bool {
	return o.ErrorCode != 0
}

// DiskType distinguishes persistent from scratch attached disks.
type DiskType string

const (
	DiskPersistent DiskType = "PERSISTENT"
	DiskScratch    DiskType = "SCRATCH"
)

// DiskMode is the attachment mode of a disk.
type DiskMode string

const (
	DiskModeReadWrite DiskMode = "READ_WRITE"
	DiskModeReadOnly  DiskMode = "READ_ONLY"
)

// AttachedDisk is a disk slot on an instance. The boot flag is true only
// for the first disk in an instance's disk sequence.
type AttachedDisk struct {
	Type       DiskType
	Mode       DiskMode
	Boot       bool
	AutoDelete bool
	// Source is the self-referencing locator of the backing disk.
	Source string
}

// Disk is a standalone block device. A boot disk is a Disk created from a
// template's image and linked into an instance's first AttachedDisk slot.
type Disk struct {
	Name        string
	Zone        string
	SizeGB      int64
	SourceImage string
	SelfLink    string
}

// AccessConfigOneToOneNAT is the access configuration giving an instance
// a NAT-mapped external address.
const AccessConfigOneToOneNAT = "ONE_TO_ONE_NAT"

// AccessConfig is an external access configuration on a network interface.
type AccessConfig struct {
	Type  string
	Name  string
	NatIP string
}

// NetworkInterface attaches an instance to one network.
type NetworkInterface struct {
	Network       string
	NetworkIP     string
	AccessConfigs []AccessConfig
}

// Tags is an instance's tag set together with its fingerprint, the opaque
// optimistic-concurrency token the provider requires on every tag
// mutation. Stale fingerprints are rejected.
type Tags struct {
	Items       []string
	Fingerprint string
}

// Metadata is an instance's key/value metadata mapping.
type Metadata map[string]string

// ServiceAccount binds an identity and OAuth scopes to an instance.
type ServiceAccount struct {
	Email  string
	Scopes []string
}

// Instance is a compute node. Its identity is the (zone, name) pair for
// its whole lifetime; external identifiers encode both as a single
// slash-joined token (see NodeID). The first element of Disks is always
// the boot disk.
type Instance struct {
	Name              string
	Zone              string
	MachineType       string
	Disks             []AttachedDisk
	NetworkInterfaces []NetworkInterface
	Tags              Tags
	Metadata          Metadata
	ServiceAccounts   []ServiceAccount
	SelfLink          string
}

// Image is a bootable disk image. Images live in the caller's project or
// in shared public projects and are never mutated by this package.
type Image struct {
	Name     string
	Project  string
	SelfLink string
	// DefaultCredentials is the login bundle embedded in the image, if
	// any. Its PrivateKey field stores the public and private key
	// concatenated with a ':' separator; ResolveLoginCredentials splits
	// them.
	DefaultCredentials *LoginCredentials
}

// Zone is a provider location. Read-only reference data, fetched once and
// cached for the adapter's lifetime.
type Zone struct {
	Name   string
	Region string
}

// MachineType is a hardware profile available in one zone.
type MachineType struct {
	Name     string
	Zone     string
	SelfLink string
	// Deprecated machine types are filtered from hardware listings.
	Deprecated bool
}

// InstanceTemplate is the request body for instance creation.
type InstanceTemplate struct {
	MachineType       string
	Disks             []AttachedDisk
	NetworkInterfaces []NetworkInterface
	Metadata          Metadata
	ServiceAccounts   []ServiceAccount
}
