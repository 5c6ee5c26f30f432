// Package yandex reads availability zones and compute instances from
// Yandex Cloud and turns them into inventory hosts.
//
// Instance names, zone IDs and label values have hyphens replaced with
// underscores. The host address is the public one-to-one NAT address of the
// first network interface; instances without one are rejected.
//
// API failures are returned as *APIError carrying the gRPC status code.
// Unauthenticated and PermissionDenied errors include a hint on refreshing
// the IAM token.
package yandex
