// Package aggregate fans a single food query out to every provider, merges
// and ranks what comes back, and routes follow-up requests to the provider
// that issued an id.
//
// A provider that fails during a fan-out is logged and skipped. Failures
// only surface to the caller when a request targets exactly one provider.
package aggregate
