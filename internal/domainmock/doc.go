// Package domainmock provides a go.uber.org/mock-style mock of
// domain.Domain, hand-authored in mockgen's generated shape (this module's
// build never invokes `mockgen` itself; the file below is what
// `mockgen -source=domain/types.go -destination=internal/domainmock/mock_domain.go`
// would produce). search/astar's tests use it to control a domain's
// heuristic table per test when checking the fallback to the "zero"
// heuristic.
package domainmock
