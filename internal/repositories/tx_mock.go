package repositories

// MockTxRunner satisfies TxRunner over the in-memory repositories. There is
// no rollback: writes made before a failure stay applied, which is fine for
// tests that assert on the error path before any write happens.
type MockTxRunner struct {
	Repos RepositorySet
}

// NewMockTxRunner bundles the given in-memory repositories into a runner.
func NewMockTxRunner(repos RepositorySet) *MockTxRunner {
	return &MockTxRunner{Repos: repos}
}

// InTransaction invokes fn directly against the in-memory set.
func (t *MockTxRunner) InTransaction(fn func(repos RepositorySet) error) error {
	return fn(t.Repos)
}
