// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from files.
//
// The `config.Model` is the single input of the `app` package. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
