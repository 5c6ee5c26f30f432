package inventory

import "fmt"

// UnknownZoneError is returned when a host references a zone that was not
// enumerated when the inventory was created.
type UnknownZoneError struct {
	Host string
	Zone string
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("host %s is in unknown zone %s", e.Host, e.Zone)
}

// DuplicateHostError is returned when two hosts normalize to the same name.
type DuplicateHostError struct {
	Host string
}

func (e *DuplicateHostError) Error() string {
	return fmt.Sprintf("host %s is already in the inventory", e.Host)
}

// ReservedGroupError is returned when a zone or label would create a group
// named like one of the distinguished groups.
type ReservedGroupError struct {
	Host  string
	Group string
}

func (e *ReservedGroupError) Error() string {
	if e.Host == "" {
		return fmt.Sprintf("group name %q is reserved", e.Group)
	}
	return fmt.Sprintf("host %s: group name %q is reserved", e.Host, e.Group)
}
