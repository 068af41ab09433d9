// Package service contains the application's orchestration logic,
// composing stores, the geocoder, and the auth services into the
// operations the API exposes.
package service
