// Package monitor sequences the availability check: it expands the
// park registry and date window into units, drives fetch and
// classification over each unit's candidate URLs, sends alerts on
// positives, and decides whether the end-of-run summary or an error
// report goes out.
package monitor
