// Package mocks provides hand-written test doubles for the store and
// service interfaces: in-memory stores with transactional rollback,
// plus configurable JWT, geocoder, and file remover stubs.
package mocks
