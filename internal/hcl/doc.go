// Package hcl provides the concrete HCL implementation of the settings
// loading interface defined in the `config` package. It is responsible for
// parsing the whiffcast.hcl file and for exposing the process environment to
// HCL expressions as an `env` object.
package hcl
