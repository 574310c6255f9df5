// Package cli wires the monitor pipeline together behind the
// joffre-monitor command.
package cli
