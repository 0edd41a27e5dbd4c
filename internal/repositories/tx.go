package repositories

import "gorm.io/gorm"

// RepositorySet bundles the repositories a multi-entity mutation touches.
// Inside a transaction every member is bound to the same underlying tx.
type RepositorySet struct {
	Users    UserRepository
	Products ProductRepository
	Carts    CartRepository
	Orders   OrderRepository
}

// TxRunner executes a function atomically: either every write made through
// the supplied RepositorySet commits, or all of them roll back. Order
// placement, item-status transitions and cancellation run through this.
type TxRunner interface {
	InTransaction(fn func(repos RepositorySet) error) error
}

// GORMTxRunner runs functions inside a gorm transaction.
type GORMTxRunner struct {
	db *gorm.DB
}

// NewGORMTxRunner creates a new instance of GORMTxRunner.
func NewGORMTxRunner(db *gorm.DB) *GORMTxRunner {
	return &GORMTxRunner{db: db}
}

// InTransaction opens a transaction and hands the callback a RepositorySet
// bound to it. Returning an error rolls everything back.
func (t *GORMTxRunner) InTransaction(fn func(repos RepositorySet) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(RepositorySet{
			Users:    NewGORMUserRepository(tx),
			Products: NewGORMProductRepository(tx),
			Carts:    NewGORMCartRepository(tx),
			Orders:   NewGORMOrderRepository(tx),
		})
	})
}
