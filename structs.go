package inventory

// Reserved group names in an Ansible dynamic inventory document.
const (
	GroupAll  = "all"
	GroupMeta = "_meta"
)

// Well-known label and variable names.
const (
	LabelAnsibleGroup = "ansible_group"
	VarAnsibleHost    = "ansible_host"
)

// Host is a normalized compute instance.
type Host struct {
	Name      string
	Zone      string
	FQDN      string
	Labels    map[string]string
	IPAddress string
}

// HostVars holds the variables of a single host, keyed by variable name.
type HostVars map[string]string

// HostGroup is a zone or label-derived group.
type HostGroup struct {
	Hosts []string `json:"hosts"`
}

// AllGroup is the distinguished "all" group listing every other group.
type AllGroup struct {
	Children []string `json:"children"`
}

// MetaGroup is the distinguished "_meta" group carrying hostvars.
type MetaGroup struct {
	Hostvars map[string]HostVars `json:"hostvars"`
}

// Inventory is the grouped result of a single discovery run.
//
// Groups keeps zone and label groups. All.Children records their first-seen order.
type Inventory struct {
	All    AllGroup
	Meta   MetaGroup
	Groups map[string]*HostGroup
}

// YmlHost, YmlGroup and YmlInventory describe a static YAML inventory.
type YmlHost map[string]string

type YmlGroup struct {
	Hosts    map[string]YmlHost   `json:"hosts,omitempty"`
	Children map[string]*YmlGroup `json:"children,omitempty"`
}

type YmlInventory map[string]*YmlGroup
