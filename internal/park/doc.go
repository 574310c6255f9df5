// Package park defines the park registry, the rolling date window,
// and the (park, date) check units the monitor expands them into.
package park
