package yandex

import (
	"context"
	"log"

	"github.com/yandex-cloud/go-genproto/yandex/cloud/compute/v1"

	inventory "github.com/inhuman/yc-inventory"
	"github.com/inhuman/yc-inventory/internal/config"
)

// ComputeAPI is the subset of the compute service the inventory reads.
type ComputeAPI interface {
	ListZones(ctx context.Context) ([]*compute.Zone, error)
	ListInstances(ctx context.Context, folderID string) ([]*compute.Instance, error)
	Close(ctx context.Context) error
}

// Client lists the zones and hosts of a single folder.
type Client struct {
	api      ComputeAPI
	folderID string
}

// NewClient authenticates with the IAM token from cfg. Credentials are
// validated before any connection is made.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	api, err := newSDKAPI(ctx, cfg.IAMToken)
	if err != nil {
		return nil, err
	}

	return NewClientWithAPI(api, cfg.FolderID), nil
}

// NewClientWithAPI wraps an existing ComputeAPI.
func NewClientWithAPI(api ComputeAPI, folderID string) *Client {
	return &Client{api: api, folderID: folderID}
}

// ListAvailabilityZones returns the IDs of every availability zone in API order.
func (c *Client) ListAvailabilityZones(ctx context.Context) ([]string, error) {
	log.Printf("[DEBUG] listing availability zones")

	zones, err := c.api.ListZones(ctx)
	if err != nil {
		return nil, newAPIError("list zones", err)
	}

	ids := make([]string, 0, len(zones))
	for _, z := range zones {
		ids = append(ids, z.GetId())
	}
	return ids, nil
}

// ListHosts returns the normalized instances of the folder.
func (c *Client) ListHosts(ctx context.Context) ([]inventory.Host, error) {
	log.Printf("[DEBUG] listing instances in folder %s", c.folderID)

	instances, err := c.api.ListInstances(ctx, c.folderID)
	if err != nil {
		return nil, newAPIError("list instances", err)
	}

	hosts := make([]inventory.Host, 0, len(instances))
	for _, instance := range instances {
		h, err := instanceToHost(instance)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

// Close releases the underlying connection.
func (c *Client) Close(ctx context.Context) error {
	return c.api.Close(ctx)
}
