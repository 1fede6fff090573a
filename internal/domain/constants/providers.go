// Package constants holds configuration values shared across layers.
package constants

// Position provider types
const (
	GeolocationProviderStatic = "static"
	GeolocationProviderIPAPI  = "ipapi"
)

// Store/address datastore provider types
const (
	DatastoreProviderPostgres = "postgres"
	DatastoreProviderREST     = "rest"
)
