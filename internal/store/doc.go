// Package store provides abstractions for data persistence. Concrete
// implementations live under internal/platform; services depend only on
// the interfaces and error taxonomy defined here.
package store
