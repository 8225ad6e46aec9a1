// Package testing provides test utilities, builders, and fixtures for unit tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - DocBuilder: Fluent builder for creating topology documents
//   - ScenarioDoc: The reference manager/replica/client document
//
// Usage:
//
//	doc := testing.NewDocBuilder().
//	    WithCount("replica", 3).
//	    WithoutField("client", "hostname").
//	    Bytes()
//
// The package does not import the config package so that config's own
// tests can use it.
package testing
