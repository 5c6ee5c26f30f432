package yandex

import (
	"github.com/yandex-cloud/go-genproto/yandex/cloud/compute/v1"

	inventory "github.com/inhuman/yc-inventory"
)

// instanceToHost normalizes name, zone and label values. Label keys are
// kept as they are.
func instanceToHost(instance *compute.Instance) (inventory.Host, error) {
	ip, err := externalAddress(instance)
	if err != nil {
		return inventory.Host{}, err
	}

	labels := make(map[string]string, len(instance.GetLabels()))
	for k, v := range instance.GetLabels() {
		labels[k] = inventory.Normalize(v)
	}

	return inventory.Host{
		Name:      inventory.Normalize(instance.GetName()),
		Zone:      inventory.Normalize(instance.GetZoneId()),
		FQDN:      instance.GetFqdn(),
		Labels:    labels,
		IPAddress: ip,
	}, nil
}

// externalAddress returns the one-to-one NAT address of the first network
// interface.
func externalAddress(instance *compute.Instance) (string, error) {
	interfaces := instance.GetNetworkInterfaces()
	if len(interfaces) == 0 {
		return "", &MalformedInstanceError{Instance: instance.GetName(), Reason: "no network interfaces"}
	}

	addr := interfaces[0].GetPrimaryV4Address().GetOneToOneNat().GetAddress()
	if addr == "" {
		return "", &MalformedInstanceError{Instance: instance.GetName(), Reason: "first network interface has no external address"}
	}
	return addr, nil
}
