/*
Package executor is the commit reveal authorization and resolution
engine. It owns the match slots and the stake ledger, verifies mutual
consent through the authorize package, and applies every operation
atomically: an operation either commits its full state mutation or
leaves the store exactly as it was.

Operations are applied under one engine lock, which realizes the
host's total order. The only time based transition is deadline
expiry, evaluated against the engine's ordering tick at the moment
resolve executes.
*/
package executor

import (
	"strconv"
	"sync"

	log "github.com/inconshreveable/log15"
	"github.com/rcrowley/go-metrics"
	"github.com/shopspring/decimal"

	"github.com/leon-do/restricted-rock-paper-scissors/authorize"
	dbm "github.com/leon-do/restricted-rock-paper-scissors/common/db"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

var glog = log.New("module", "executor")

// Coins is the external coin collaborator: it collects the buy-in fee
// and pays out converted stake. Both calls may fail; the engine rolls
// its own state back when they do.
type Coins interface {
	Collect(requestID string, addr string, amount int64) error
	Pay(requestID string, addr string, amount int64) error
}

// Engine applies the game operations against a KV store.
type Engine struct {
	mu        sync.Mutex
	stateDB   dbm.DB
	rules     *types.Rules
	rate      decimal.Decimal
	recoverer authorize.Recoverer
	coins     Coins

	opened   metrics.Counter
	resolved metrics.Counter
	payouts  metrics.Counter
}

// New builds an engine over the given store and collaborator.
func New(cfg *types.Config, stateDB dbm.DB, coins Coins) (*Engine, error) {
	rate, err := decimal.NewFromString(cfg.Rules.PayoutRate)
	if err != nil {
		return nil, err
	}
	return &Engine{
		stateDB:   stateDB,
		rules:     cfg.Rules,
		rate:      rate,
		recoverer: authorize.NewVerifier(),
		coins:     coins,
		opened:    metrics.GetOrRegisterCounter("rrps.match.opened", nil),
		resolved:  metrics.GetOrRegisterCounter("rrps.match.resolved", nil),
		payouts:   metrics.GetOrRegisterCounter("rrps.stake.payouts", nil),
	}, nil
}

// SetRecoverer swaps the signature scheme, used by tests.
func (e *Engine) SetRecoverer(r authorize.Recoverer) {
	e.recoverer = r
}

func tickKey() []byte {
	return []byte("mavl-" + types.RRPSX + "-tick")
}

// CurrentTick reads the ordering counter without advancing it.
func (e *Engine) CurrentTick() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readTick(e.stateDB)
}

func readTick(kv dbm.KV) int64 {
	value, err := kv.Get(tickKey())
	if err != nil {
		return 0
	}
	tick, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		panic(err) // corrupt state db
	}
	return tick
}

// newAction stages one operation: a tx overlay over the store with
// the advanced ordering tick already written into it.
func (e *Engine) newAction() *action {
	tx := dbm.NewTxKV(e.stateDB)
	index := readTick(tx) + 1
	tx.Set(tickKey(), []byte(strconv.FormatInt(index, 10)))
	return newAction(tx, e.recoverer, e.rules, index)
}
