// Package keys holds the key metadata entity, listing queries and the service, repository and
// vault contracts of the key store.
package keys
