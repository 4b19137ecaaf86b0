// Package engineapi is the HTTP client for the remote projection service.
// It implements projection.Engine by forwarding each request to the
// service's /v1/projections endpoint and decoding its JSON reply. No
// modeling happens on this side of the wire.
package engineapi
