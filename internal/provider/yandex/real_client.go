package yandex

import (
	"context"

	"github.com/pkg/errors"
	"github.com/yandex-cloud/go-genproto/yandex/cloud/compute/v1"
	ycsdk "github.com/yandex-cloud/go-sdk"
)

// sdkAPI implements ComputeAPI on top of the Yandex Cloud SDK.
type sdkAPI struct {
	sdk *ycsdk.SDK
}

func newSDKAPI(ctx context.Context, iamToken string) (*sdkAPI, error) {
	sdk, err := ycsdk.Build(ctx, ycsdk.Config{
		Credentials: ycsdk.NewIAMTokenCredentials(iamToken),
	})
	if err != nil {
		return nil, errors.Wrap(err, "build yandex cloud sdk")
	}
	return &sdkAPI{sdk: sdk}, nil
}

// ListZones follows page tokens until every zone is read.
func (a *sdkAPI) ListZones(ctx context.Context) ([]*compute.Zone, error) {
	it := a.sdk.Compute().Zone().ZoneIterator(ctx, &compute.ListZonesRequest{})

	var zones []*compute.Zone
	for it.Next() {
		zones = append(zones, it.Value())
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return zones, nil
}

// ListInstances follows page tokens until every instance is read.
func (a *sdkAPI) ListInstances(ctx context.Context, folderID string) ([]*compute.Instance, error) {
	it := a.sdk.Compute().Instance().InstanceIterator(ctx, &compute.ListInstancesRequest{
		FolderId: folderID,
	})

	var instances []*compute.Instance
	for it.Next() {
		instances = append(instances, it.Value())
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return instances, nil
}

func (a *sdkAPI) Close(ctx context.Context) error {
	return a.sdk.Shutdown(ctx)
}
