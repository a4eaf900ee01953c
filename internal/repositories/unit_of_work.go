package repositories

import "gorm.io/gorm"

// TxRepos is the set of repositories available inside one unit of work. Every
// access through it runs on the same transaction.
type TxRepos interface {
	Orders() OrderRepository
	Carts() CartRepository
}

// TxManager hides transaction begin/commit/rollback from the services. fn
// runs inside a single atomic unit of work: returning nil commits, returning
// an error rolls everything back. The underlying resource is released on both
// paths.
type TxManager interface {
	WithinTx(fn func(r TxRepos) error) error
}

// GORMTxManager implements TxManager on top of gorm.DB.Transaction, which
// guarantees commit-or-rollback and connection release regardless of how fn
// exits (including panics).
type GORMTxManager struct {
	db *gorm.DB
}

// NewGORMTxManager creates a new instance of GORMTxManager.
func NewGORMTxManager(db *gorm.DB) *GORMTxManager {
	return &GORMTxManager{
		db: db,
	}
}

// WithinTx runs fn inside one database transaction.
func (m *GORMTxManager) WithinTx(fn func(r TxRepos) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(gormTxRepos{tx: tx})
	})
}

type gormTxRepos struct {
	tx *gorm.DB
}

func (r gormTxRepos) Orders() OrderRepository {
	return NewGORMOrderRepository(r.tx)
}

func (r gormTxRepos) Carts() CartRepository {
	return NewGORMCartRepository(r.tx)
}
