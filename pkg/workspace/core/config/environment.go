// Package config provides core configuration structures and utilities for workspace applications.
// This file defines read access to the process environment.
package config

import (
	"os"
)

// Undefined is how an absent environment value is rendered.
const Undefined = "undefined"

// Value is the result of an environment lookup. Absence is a valid state, not an error.
type Value struct {
	name    string
	value   string
	present bool
}

// NewValue creates a Value for a variable that is set.
func NewValue(name, value string) Value {
	return Value{name: name, value: value, present: true}
}

// Missing creates a Value for a variable that is not set.
func Missing(name string) Value {
	return Value{name: name}
}

// Name returns the variable name that was looked up.
func (v Value) Name() string {
	return v.name
}

// Get returns the value and whether the variable was set.
func (v Value) Get() (string, bool) {
	return v.value, v.present
}

// IsSet reports whether the variable was set. A variable set to "" counts as set.
func (v Value) IsSet() bool {
	return v.present
}

// String renders the value, or Undefined when the variable is absent.
func (v Value) String() string {
	if !v.present {
		return Undefined
	}
	return v.value
}

// Environment provides access to environment variables.
type Environment interface {
	// Lookup returns the named variable. It never fails; an absent variable yields a Value with IsSet false.
	Lookup(name string) Value

	// Expand replaces ${VAR} or $VAR placeholders in input. Unset variables expand to "".
	Expand(input []byte) []byte
}

// OsEnvironment is an Environment backed by the process environment.
type OsEnvironment struct{}

// NewOsEnvironment creates and returns a new instance of OsEnvironment.
func NewOsEnvironment() *OsEnvironment {
	return &OsEnvironment{}
}

// Lookup reads name with os.LookupEnv.
func (e *OsEnvironment) Lookup(name string) Value {
	if v, ok := os.LookupEnv(name); ok {
		return NewValue(name, v)
	}
	return Missing(name)
}

// Expand uses os.ExpandEnv.
func (e *OsEnvironment) Expand(input []byte) []byte {
	return []byte(os.ExpandEnv(string(input)))
}

var _ Environment = (*OsEnvironment)(nil)
