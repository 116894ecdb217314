// Package naming provides consistent naming functions for compute resources.
//
// Boot disks follow the pattern {instance}-boot-disk so a node's disk can
// be recovered from the node name alone. Firewall tags follow
// {group}-port-{port} so that tag-based firewall rules created for a
// provisioning group match every node created under that group.
package naming
