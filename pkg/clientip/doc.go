// Package clientip determines the IP address of the client of a request.
//
// Proxy headers are only used when listed as trusted, in priority order:
//
//	r.Use(clientip.Middleware(clientip.HeaderCFConnectingIP, clientip.HeaderXForwardedFor))
//
//	ip := clientip.GetIPFromContext(r.Context())
//
// Addresses are normalized: IPv4-mapped IPv6 addresses are unmapped and
// zones are dropped. Invalid header values are skipped.
package clientip
