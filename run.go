package inventory

import (
	"context"
	"log"

	"github.com/pkg/errors"
)

// Provider discovers the zones and hosts an inventory is built from.
type Provider interface {
	ListAvailabilityZones(ctx context.Context) ([]string, error)
	ListHosts(ctx context.Context) ([]Host, error)
}

// Run queries the provider for zones, then hosts, and builds the inventory.
func Run(ctx context.Context, p Provider) (*Inventory, error) {
	zones, err := p.ListAvailabilityZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list availability zones")
	}
	log.Printf("[DEBUG] discovered %d availability zones: %v", len(zones), zones)

	hosts, err := p.ListHosts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list hosts")
	}
	log.Printf("[DEBUG] discovered %d hosts", len(hosts))

	i, err := Build(zones, hosts)
	if err != nil {
		return nil, errors.Wrap(err, "build inventory")
	}
	log.Printf("[INFO] inventory has %d groups and %d hosts", len(i.All.Children), len(i.Meta.Hostvars))

	return i, nil
}
