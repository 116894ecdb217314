package naming

import "fmt"

// Naming functions for compute resources.
// All resources created on behalf of a node follow consistent naming
// patterns so they can be identified and cleaned up later.

func BootDisk(instance string) string {
	return fmt.Sprintf("%s-boot-disk", instance)
}

// FirewallTagNamer derives a firewall tag name from an inbound port.
type FirewallTagNamer func(port int) string

// FirewallTagsForGroup returns the tag namer for a provisioning group.
// Every node created under the same group receives identical tags for the
// same inbound ports, so group-wide firewall rules match all of them.
func FirewallTagsForGroup(group string) FirewallTagNamer {
	return func(port int) string {
		return fmt.Sprintf("%s-port-%d", group, port)
	}
}
