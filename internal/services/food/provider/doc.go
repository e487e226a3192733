// Package provider defines the upstream food-delivery provider contract and
// the identifier scheme that lets follow-up requests find their provider.
//
// Every restaurant id a provider emits is "<tag>-<n>" and every menu item id
// is "<tag>-item-<n>", where tag is the provider's fixed two-letter code.
// Routing needs nothing but that prefix.
package provider
