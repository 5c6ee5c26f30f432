package inventory

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// Normalize replaces every hyphen with an underscore. Ansible group and host
// names may not contain hyphens.
func Normalize(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// New returns an inventory with one empty group per zone.
func New(zones []string) (*Inventory, error) {
	i := &Inventory{
		All:    AllGroup{Children: []string{}},
		Meta:   MetaGroup{Hostvars: map[string]HostVars{}},
		Groups: map[string]*HostGroup{},
	}

	for _, zone := range zones {
		name := Normalize(zone)
		if isReserved(name) {
			return nil, &ReservedGroupError{Group: name}
		}
		i.createGroup(name)
	}

	return i, nil
}

// Build returns the inventory for the given zones and hosts. Hosts are added
// in order.
func Build(zones []string, hosts []Host) (*Inventory, error) {
	i, err := New(zones)
	if err != nil {
		return nil, err
	}

	for _, h := range hosts {
		if err := i.AddHost(h); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// AddHost places the host into its zone group and, when it carries a
// non-empty ansible_group label, into that group too.
func (i *Inventory) AddHost(h Host) error {
	if _, ok := i.Meta.Hostvars[h.Name]; ok {
		return &DuplicateHostError{Host: h.Name}
	}

	zone, ok := i.Groups[h.Zone]
	if !ok {
		return &UnknownZoneError{Host: h.Name, Zone: h.Zone}
	}

	groupName := h.Labels[LabelAnsibleGroup]
	if isReserved(groupName) {
		return &ReservedGroupError{Host: h.Name, Group: groupName}
	}

	zone.Hosts = append(zone.Hosts, h.Name)

	if groupName != "" {
		group := i.createGroup(groupName)
		group.Hosts = append(group.Hosts, h.Name)
	}

	for key, value := range hostVariables(h) {
		i.setHostVar(h.Name, key, value)
	}

	return nil
}

// HostVars returns the variables recorded for the named host.
func (i *Inventory) HostVars(name string) (HostVars, bool) {
	vars, ok := i.Meta.Hostvars[name]
	return vars, ok
}

// HostJSON returns the variables of the named host as JSON, or null when
// the host is unknown.
func (i *Inventory) HostJSON(name string) ([]byte, error) {
	vars, _ := i.HostVars(name)
	return json.Marshal(vars)
}

// JSON returns the dynamic inventory document.
func (i *Inventory) JSON() ([]byte, error) {
	return json.Marshal(i)
}

// MarshalJSON writes "all" first, then every group in first-seen order, then
// "_meta".
func (i *Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if err := writeMember(&buf, GroupAll, i.All); err != nil {
		return nil, err
	}
	for _, name := range i.All.Children {
		buf.WriteByte(',')
		if err := writeMember(&buf, name, i.Groups[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(',')
	if err := writeMember(&buf, GroupMeta, i.Meta); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// YAML renders the inventory as a static Ansible YAML inventory. Every group
// becomes a child of "all"; host variables are attached where the host is
// listed.
func (i *Inventory) YAML() ([]byte, error) {
	children := make(map[string]*YmlGroup, len(i.All.Children))

	for _, name := range i.All.Children {
		group := &YmlGroup{Hosts: map[string]YmlHost{}}
		for _, host := range i.Groups[name].Hosts {
			group.Hosts[host] = YmlHost(i.Meta.Hostvars[host])
		}
		children[name] = group
	}

	out, err := yaml.Marshal(YmlInventory{
		GroupAll: {Children: children},
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal yaml inventory")
	}
	return out, nil
}

// createGroup is a no-op when the group already exists.
func (i *Inventory) createGroup(name string) *HostGroup {
	if g, ok := i.Groups[name]; ok {
		return g
	}

	g := &HostGroup{Hosts: []string{}}
	i.Groups[name] = g
	i.All.Children = append(i.All.Children, name)
	return g
}

func (i *Inventory) setHostVar(host, key, value string) {
	if i.Meta.Hostvars[host] == nil {
		i.Meta.Hostvars[host] = HostVars{}
	}
	i.Meta.Hostvars[host][key] = value
}

// hostVariables returns the host-scoped variables published under _meta.
func hostVariables(h Host) HostVars {
	return HostVars{
		VarAnsibleHost: h.IPAddress,
	}
}

func isReserved(name string) bool {
	return name == GroupAll || name == GroupMeta
}

func writeMember(buf *bytes.Buffer, key string, value interface{}) error {
	k, err := json.Marshal(key)
	if err != nil {
		return errors.Wrapf(err, "marshal group name %s", key)
	}
	v, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal group %s", key)
	}

	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
