package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"nft-auction-engine/internal/core/domain"
	"nft-auction-engine/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Auction Repo ---

type inMemoryAuctionRepo struct {
	mu       sync.RWMutex
	auctions map[int64]*domain.AuctionRecord
}

func newInMemoryAuctionRepo() *inMemoryAuctionRepo {
	return &inMemoryAuctionRepo{auctions: make(map[int64]*domain.AuctionRecord)}
}

func copyAuction(a *domain.AuctionRecord) *domain.AuctionRecord {
	cp := *a
	if a.LeadingBid != nil {
		bid := *a.LeadingBid
		cp.LeadingBid = &bid
	}
	if a.LeadingBidder != nil {
		bidder := *a.LeadingBidder
		cp.LeadingBidder = &bidder
	}
	return &cp
}

func (r *inMemoryAuctionRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.AuctionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.auctions[a.ID]; ok {
		return fmt.Errorf("auction id already exists")
	}
	r.auctions[a.ID] = copyAuction(a)
	return nil
}

func (r *inMemoryAuctionRepo) GetByID(ctx context.Context, id int64) (*domain.AuctionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.auctions[id]
	if !ok {
		return nil, nil
	}
	return copyAuction(a), nil
}

func (r *inMemoryAuctionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.AuctionRecord, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryAuctionRepo) UpdateLeadingBid(ctx context.Context, tx pgx.Tx, id int64, bid domain.Bid, bidder string, usd decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[id]
	if !ok {
		return fmt.Errorf("auction not found")
	}
	b := bid
	a.LeadingBid = &b
	a.LeadingBidder = &bidder
	a.LeadingBidUSD = usd
	return nil
}

func (r *inMemoryAuctionRepo) MarkEnded(ctx context.Context, tx pgx.Tx, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[id]
	if !ok {
		return fmt.Errorf("auction not found")
	}
	a.Ended = true
	return nil
}

func (r *inMemoryAuctionRepo) List(ctx context.Context, params ports.AuctionListParams) ([]domain.AuctionRecord, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.AuctionRecord
	for _, a := range r.auctions {
		if params.Seller != nil && a.Seller != *params.Seller {
			continue
		}
		if params.OpenOnly && a.Ended {
			continue
		}
		result = append(result, *copyAuction(a))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.AuctionRecord{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal // key: account + "|" + currency
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{balances: make(map[string]decimal.Decimal)}
}

func ledgerKey(account, currency string) string {
	return account + "|" + currency
}

func (r *inMemoryLedgerRepo) Credit(ctx context.Context, tx pgx.Tx, account, currency string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ledgerKey(account, currency)
	r.balances[key] = r.balances[key].Add(amount)
	return nil
}

func (r *inMemoryLedgerRepo) GetBalance(ctx context.Context, account, currency string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[ledgerKey(account, currency)], nil
}

func (r *inMemoryLedgerRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, account, currency string) (decimal.Decimal, error) {
	return r.GetBalance(ctx, account, currency)
}

func (r *inMemoryLedgerRepo) Zero(ctx context.Context, tx pgx.Tx, account, currency string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[ledgerKey(account, currency)] = decimal.Zero
	return nil
}

func (r *inMemoryLedgerRepo) ListByAccount(ctx context.Context, account string) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var entries []domain.LedgerEntry
	for key, balance := range r.balances {
		if !balance.IsPositive() {
			continue
		}
		var acct, currency string
		for i := 0; i < len(key); i++ {
			if key[i] == '|' {
				acct, currency = key[:i], key[i+1:]
				break
			}
		}
		if acct != account {
			continue
		}
		entries = append(entries, domain.LedgerEntry{Account: acct, Currency: currency, Balance: balance})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Currency < entries[j].Currency })
	return entries, nil
}

// --- In-Memory Binding Repo ---

type inMemoryBindingRepo struct {
	mu       sync.RWMutex
	bindings map[string]*domain.PriceFeedBinding
}

func newInMemoryBindingRepo() *inMemoryBindingRepo {
	return &inMemoryBindingRepo{bindings: make(map[string]*domain.PriceFeedBinding)}
}

func (r *inMemoryBindingRepo) Upsert(ctx context.Context, b *domain.PriceFeedBinding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bindings[b.Currency] = &cp
	return nil
}

func (r *inMemoryBindingRepo) GetByCurrency(ctx context.Context, currency string) (*domain.PriceFeedBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[currency]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBindingRepo) List(ctx context.Context) ([]domain.PriceFeedBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.PriceFeedBinding
	for _, b := range r.bindings {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Currency < result[j].Currency })
	return result, nil
}

// --- In-Memory Engine State Repo ---

type inMemoryStateRepo struct {
	mu    sync.Mutex
	state domain.EngineState
}

func newInMemoryStateRepo() *inMemoryStateRepo {
	return &inMemoryStateRepo{state: domain.EngineState{Version: domain.VersionV1}}
}

func (r *inMemoryStateRepo) Get(ctx context.Context) (*domain.EngineState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := r.state
	return &cp, nil
}

func (r *inMemoryStateRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.EngineState, error) {
	return r.Get(ctx)
}

func (r *inMemoryStateRepo) NextAuctionID(ctx context.Context, tx pgx.Tx) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.AuctionCounter++
	return r.state.AuctionCounter, nil
}

func (r *inMemoryStateRepo) UpgradeToV2(ctx context.Context, tx pgx.Tx, minBidUSD decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Version = domain.VersionV2
	r.state.MinBidUSD = minBidUSD
	return nil
}

func (r *inMemoryStateRepo) SetMinBid(ctx context.Context, tx pgx.Tx, minBidUSD decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.MinBidUSD = minBidUSD
	return nil
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account // by address
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.Address]; ok {
		return fmt.Errorf("address already exists")
	}
	cp := *a
	r.accounts[a.Address] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.AccessKey == accessKey {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[address]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions with one mutex so the
// row-locking semantics the services rely on hold in memory too: a bid
// holding the "lock" blocks competing bids until commit or rollback.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{transactor: t}, nil
}

// serialTx is a pgx.Tx that releases the transactor mutex exactly once, on
// the first Commit or Rollback.
type serialTx struct {
	transactor *inMemoryTransactor
	done       bool
}

func (t *serialTx) finish() {
	if !t.done {
		t.done = true
		t.transactor.mu.Unlock()
	}
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) Commit(ctx context.Context) error          { t.finish(); return nil }
func (t *serialTx) Rollback(ctx context.Context) error        { t.finish(); return nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }

// --- Fake Custody Collaborators ---

// fakeCustody stands in for all three external collaborators. It tracks
// asset ownership and per-account token/native movements so settlement
// conservation can be asserted after a test run.
type fakeCustody struct {
	mu sync.Mutex

	owners map[string]string // contract|assetID -> owner ("" = engine escrow)

	nativePulled   map[string]decimal.Decimal // by account
	nativeReleased map[string]decimal.Decimal
	tokenPulled    map[string]decimal.Decimal // by token|account
	tokenReleased  map[string]decimal.Decimal

	failAssetRelease bool
	failNativePull   bool
}

func newFakeCustody() *fakeCustody {
	return &fakeCustody{
		owners:         make(map[string]string),
		nativePulled:   make(map[string]decimal.Decimal),
		nativeReleased: make(map[string]decimal.Decimal),
		tokenPulled:    make(map[string]decimal.Decimal),
		tokenReleased:  make(map[string]decimal.Decimal),
	}
}

func assetKey(contract, assetID string) string {
	return contract + "|" + assetID
}

func (f *fakeCustody) setOwner(contract, assetID, owner string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.owners[assetKey(contract, assetID)] = owner
}

func (f *fakeCustody) ownerOf(contract, assetID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.owners[assetKey(contract, assetID)]
}

func (f *fakeCustody) OwnerOf(ctx context.Context, contract, assetID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owner, ok := f.owners[assetKey(contract, assetID)]
	if !ok {
		return "", fmt.Errorf("unknown asset")
	}
	return owner, nil
}

func (f *fakeCustody) Pull(ctx context.Context, contract, assetID, from string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := assetKey(contract, assetID)
	if f.owners[key] != from {
		return fmt.Errorf("not the owner")
	}
	f.owners[key] = "" // engine escrow
	return nil
}

func (f *fakeCustody) Release(ctx context.Context, contract, assetID, to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAssetRelease {
		return fmt.Errorf("custody outage")
	}
	f.owners[assetKey(contract, assetID)] = to
	return nil
}

// fakeTokenCustody and fakeNativeVault route to the shared fakeCustody so
// one instance tracks everything.

type fakeTokenCustody struct{ c *fakeCustody }

func (f fakeTokenCustody) Pull(ctx context.Context, token, from string, amount decimal.Decimal) error {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	key := token + "|" + from
	f.c.tokenPulled[key] = f.c.tokenPulled[key].Add(amount)
	return nil
}

func (f fakeTokenCustody) Release(ctx context.Context, token, to string, amount decimal.Decimal) error {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	key := token + "|" + to
	f.c.tokenReleased[key] = f.c.tokenReleased[key].Add(amount)
	return nil
}

type fakeNativeVault struct{ c *fakeCustody }

func (f fakeNativeVault) Pull(ctx context.Context, from string, amount decimal.Decimal) error {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	if f.c.failNativePull {
		return fmt.Errorf("vault outage")
	}
	f.c.nativePulled[from] = f.c.nativePulled[from].Add(amount)
	return nil
}

func (f fakeNativeVault) Release(ctx context.Context, to string, amount decimal.Decimal) error {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	f.c.nativeReleased[to] = f.c.nativeReleased[to].Add(amount)
	return nil
}

func (f *fakeCustody) nativeNet(account string) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nativePulled[account].Sub(f.nativeReleased[account])
}
