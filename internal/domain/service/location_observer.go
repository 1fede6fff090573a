package service

import "time"

// LocationObserver receives signals from the location pipeline. Calls are
// fire-and-forget and must never block or fail the caller.
type LocationObserver interface {
	// StoreResolutionFailed is called when a batch store lookup fails.
	StoreResolutionFailed(reason string)
	// StoreFilterApplied is called after a successful proximity filter run.
	StoreFilterApplied(requested, located, withinRadius int)
	// MalformedStoreLocation is called for every row whose coordinate could not be used.
	MalformedStoreLocation()
	// ReverseGeocodeCompleted is called after every reverse-geocoding attempt.
	ReverseGeocodeCompleted(outcome string, elapsed time.Duration)
	// LocationRequestCompleted is called after every current-location request.
	LocationRequestCompleted(outcome string)
}

// NoopLocationObserver discards every signal.
type NoopLocationObserver struct{}

func (NoopLocationObserver) StoreResolutionFailed(string) {}
func (NoopLocationObserver) StoreFilterApplied(int, int, int) {}
func (NoopLocationObserver) MalformedStoreLocation() {}
func (NoopLocationObserver) ReverseGeocodeCompleted(string, time.Duration) {}
func (NoopLocationObserver) LocationRequestCompleted(string) {}
