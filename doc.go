// Package inventory builds an Ansible dynamic inventory from the compute
// instances of a cloud folder.
//
// Hosts are grouped by availability zone and, when they carry an
// ansible_group label, by that label's value. Every host's address is
// published under _meta.hostvars so Ansible does not need to call --host.
package inventory
