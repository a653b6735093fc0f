package services_test

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeTx stands in for a pgx transaction. Only identity matters to the fake store.
type fakeTx struct {
	pgx.Tx
	snapshot   storeState
	committed  bool
	rolledBack bool
}

type storeState struct {
	expressions map[string]domain.NeedExpression
	orders      map[string]domain.PurchaseOrder
	receptions  map[string]domain.Reception
	sequences   map[domain.SequenceEntity]int64
}

func (s storeState) clone() storeState {
	c := storeState{
		expressions: make(map[string]domain.NeedExpression, len(s.expressions)),
		orders:      make(map[string]domain.PurchaseOrder, len(s.orders)),
		receptions:  make(map[string]domain.Reception, len(s.receptions)),
		sequences:   make(map[domain.SequenceEntity]int64, len(s.sequences)),
	}
	for k, v := range s.expressions {
		c.expressions[k] = cloneExpression(v)
	}
	for k, v := range s.orders {
		c.orders[k] = cloneOrder(v)
	}
	for k, v := range s.receptions {
		c.receptions[k] = cloneReception(v)
	}
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	return c
}

func cloneExpression(e domain.NeedExpression) domain.NeedExpression {
	e.Lines = append([]domain.NeedLine(nil), e.Lines...)
	return e
}

func cloneOrder(o domain.PurchaseOrder) domain.PurchaseOrder {
	o.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return o
}

func cloneReception(r domain.Reception) domain.Reception {
	r.Lines = append([]domain.ReceptionLine(nil), r.Lines...)
	return r
}

// fakeStore is an in-memory implementation of every repository port. A transaction holds
// txMu from Begin to Commit or Rollback, which is at least as strict as the row locks the
// PostgreSQL repositories take. Rollback restores the state captured at Begin.
type fakeStore struct {
	txMu   sync.Mutex
	dataMu sync.RWMutex
	state  storeState

	materials map[string]domain.Material
	suppliers map[string]domain.Supplier
	divisions map[string]domain.Division
	services  map[string]domain.Service

	// failures injects an error into the named writer method.
	failures map[string]error
}

var (
	_ portsrepo.NeedExpressionRepositoryWithTx = (*fakeStore)(nil)
	_ portsrepo.PurchaseOrderRepositoryWithTx  = (*fakeStore)(nil)
	_ portsrepo.ReceptionRepositoryWithTx      = (*fakeStore)(nil)
	_ portsrepo.SequenceRepository             = (*fakeStore)(nil)
	_ portsrepo.CatalogReader                  = (*fakeStore)(nil)
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		state: storeState{
			expressions: map[string]domain.NeedExpression{},
			orders:      map[string]domain.PurchaseOrder{},
			receptions:  map[string]domain.Reception{},
			sequences:   map[domain.SequenceEntity]int64{},
		},
		materials: map[string]domain.Material{
			"mat-paper": {MaterialID: "mat-paper", Code: "PAP-A4", Designation: "A4 paper ream", Unit: "ream", UnitValue: decimal.NewFromInt(5)},
			"mat-toner": {MaterialID: "mat-toner", Code: "TON-01", Designation: "Toner cartridge", Unit: "piece", UnitValue: decimal.NewFromInt(80)},
		},
		suppliers: map[string]domain.Supplier{
			"sup-1": {SupplierID: "sup-1", Name: "Office Supplies Ltd"},
		},
		divisions: map[string]domain.Division{
			"div-1": {DivisionID: "div-1", Name: "Finance"},
			"div-2": {DivisionID: "div-2", Name: "Operations"},
		},
		services: map[string]domain.Service{
			"svc-1": {ServiceID: "svc-1", DivisionID: "div-1", Name: "Accounting"},
		},
		failures: map[string]error{},
	}
}

func (f *fakeStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		NeedExpressionRepo: f,
		PurchaseOrderRepo:  f,
		ReceptionRepo:      f,
		SequenceRepo:       f,
		CatalogRepo:        f,
	}
}

func (f *fakeStore) failOn(method string, err error) {
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	f.failures[method] = err
}

func (f *fakeStore) injected(method string) error {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	return f.failures[method]
}

func asFakeTx(tx pgx.Tx) *fakeTx {
	ft, ok := tx.(*fakeTx)
	if !ok || ft.committed || ft.rolledBack {
		panic("fake store: writer called outside an open transaction")
	}
	return ft
}

// --- TransactionManager ---

func (f *fakeStore) Begin(ctx context.Context) (pgx.Tx, error) {
	f.txMu.Lock()
	f.dataMu.RLock()
	snapshot := f.state.clone()
	f.dataMu.RUnlock()
	return &fakeTx{snapshot: snapshot}, nil
}

func (f *fakeStore) Commit(ctx context.Context, tx pgx.Tx) error {
	ft := asFakeTx(tx)
	ft.committed = true
	f.txMu.Unlock()
	return nil
}

func (f *fakeStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	ft, ok := tx.(*fakeTx)
	if !ok || ft.committed || ft.rolledBack {
		return nil
	}
	f.dataMu.Lock()
	f.state = ft.snapshot
	f.dataMu.Unlock()
	ft.rolledBack = true
	f.txMu.Unlock()
	return nil
}

// --- SequenceRepository ---

func (f *fakeStore) NextValue(ctx context.Context, tx pgx.Tx, entity domain.SequenceEntity) (int64, error) {
	asFakeTx(tx)
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	f.state.sequences[entity]++
	return f.state.sequences[entity], nil
}

// --- CatalogReader ---

func (f *fakeStore) FindMaterialsByIDs(ctx context.Context, materialIDs []string) (map[string]domain.Material, error) {
	out := make(map[string]domain.Material, len(materialIDs))
	for _, id := range materialIDs {
		if m, ok := f.materials[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (f *fakeStore) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	s, ok := f.suppliers[supplierID]
	if !ok {
		return nil, apperrors.NewNotFoundError("supplier", supplierID)
	}
	return &s, nil
}

func (f *fakeStore) FindDivisionByID(ctx context.Context, divisionID string) (*domain.Division, error) {
	d, ok := f.divisions[divisionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("division", divisionID)
	}
	return &d, nil
}

func (f *fakeStore) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	s, ok := f.services[serviceID]
	if !ok {
		return nil, apperrors.NewNotFoundError("service", serviceID)
	}
	return &s, nil
}

// --- NeedExpression repository ---

func (f *fakeStore) FindNeedExpressionByID(ctx context.Context, expressionID string) (*domain.NeedExpression, error) {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	e, ok := f.state.expressions[expressionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("need expression", expressionID)
	}
	c := cloneExpression(e)
	return &c, nil
}

func (f *fakeStore) FindNeedExpressionForUpdate(ctx context.Context, tx pgx.Tx, expressionID string) (*domain.NeedExpression, error) {
	asFakeTx(tx)
	return f.FindNeedExpressionByID(ctx, expressionID)
}

func (f *fakeStore) ListNeedExpressions(ctx context.Context, filter domain.NeedExpressionFilter, limit int, nextToken *string) ([]domain.NeedExpression, *string, error) {
	f.dataMu.RLock()
	all := make([]domain.NeedExpression, 0, len(f.state.expressions))
	for _, e := range f.state.expressions {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.CreatedBy != nil && e.CreatedBy != *filter.CreatedBy {
			continue
		}
		all = append(all, cloneExpression(e))
	}
	f.dataMu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return numberLess(all[j].Number, all[i].Number) })
	page, next := pageOf(len(all), limit, nextToken)
	return all[page[0]:page[1]], next, nil
}

func (f *fakeStore) SaveNeedExpression(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error {
	asFakeTx(tx)
	if err := f.injected("SaveNeedExpression"); err != nil {
		return err
	}
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	f.state.expressions[expression.ExpressionID] = cloneExpression(expression)
	return nil
}

func (f *fakeStore) UpdateNeedExpressionStatus(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error {
	asFakeTx(tx)
	if err := f.injected("UpdateNeedExpressionStatus"); err != nil {
		return err
	}
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	stored, ok := f.state.expressions[expression.ExpressionID]
	if !ok {
		return apperrors.NewNotFoundError("need expression", expression.ExpressionID)
	}
	stored.Status = expression.Status
	stored.DecisionComment = expression.DecisionComment
	stored.DecidedBy = expression.DecidedBy
	stored.DecidedAt = expression.DecidedAt
	stored.LastUpdatedAt = expression.LastUpdatedAt
	stored.LastUpdatedBy = expression.LastUpdatedBy
	f.state.expressions[expression.ExpressionID] = stored
	return nil
}

func (f *fakeStore) ReplaceNeedExpressionContent(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error {
	asFakeTx(tx)
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	f.state.expressions[expression.ExpressionID] = cloneExpression(expression)
	return nil
}

func (f *fakeStore) DeleteNeedExpression(ctx context.Context, tx pgx.Tx, expressionID string) error {
	asFakeTx(tx)
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	delete(f.state.expressions, expressionID)
	return nil
}

// --- PurchaseOrder repository ---

func (f *fakeStore) FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	o, ok := f.state.orders[orderID]
	if !ok {
		return nil, apperrors.NewNotFoundError("purchase order", orderID)
	}
	c := cloneOrder(o)
	return &c, nil
}

func (f *fakeStore) FindPurchaseOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.PurchaseOrder, error) {
	asFakeTx(tx)
	return f.FindPurchaseOrderByID(ctx, orderID)
}

func (f *fakeStore) FindActivePurchaseOrderByExpression(ctx context.Context, tx pgx.Tx, expressionID string) (*domain.PurchaseOrder, error) {
	asFakeTx(tx)
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	for _, o := range f.state.orders {
		if o.ExpressionID == expressionID && !o.IsCancelled() {
			c := cloneOrder(o)
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("active purchase order for expression", expressionID)
}

func (f *fakeStore) ListPurchaseOrders(ctx context.Context, filter domain.PurchaseOrderFilter, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	f.dataMu.RLock()
	all := make([]domain.PurchaseOrder, 0, len(f.state.orders))
	for _, o := range f.state.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.ExpressionID != nil && o.ExpressionID != *filter.ExpressionID {
			continue
		}
		all = append(all, cloneOrder(o))
	}
	f.dataMu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return numberLess(all[j].Number, all[i].Number) })
	page, next := pageOf(len(all), limit, nextToken)
	return all[page[0]:page[1]], next, nil
}

func (f *fakeStore) SavePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error {
	asFakeTx(tx)
	if err := f.injected("SavePurchaseOrder"); err != nil {
		return err
	}
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	for _, o := range f.state.orders {
		if o.ExpressionID == order.ExpressionID && !o.IsCancelled() {
			return apperrors.ErrOrderAlreadyExists
		}
	}
	f.state.orders[order.OrderID] = cloneOrder(order)
	return nil
}

func (f *fakeStore) ReplacePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder, removedLineIDs []string) error {
	asFakeTx(tx)
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	if _, ok := f.state.orders[order.OrderID]; !ok {
		return apperrors.NewNotFoundError("purchase order", order.OrderID)
	}
	f.state.orders[order.OrderID] = cloneOrder(order)
	return nil
}

func (f *fakeStore) UpdatePurchaseOrderProgress(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error {
	asFakeTx(tx)
	if err := f.injected("UpdatePurchaseOrderProgress"); err != nil {
		return err
	}
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	stored, ok := f.state.orders[order.OrderID]
	if !ok {
		return apperrors.NewNotFoundError("purchase order", order.OrderID)
	}
	received := make(map[string]int64, len(order.Lines))
	for _, l := range order.Lines {
		received[l.LineID] = l.ReceivedQuantity
	}
	for i := range stored.Lines {
		stored.Lines[i].ReceivedQuantity = received[stored.Lines[i].LineID]
	}
	stored.Status = order.Status
	stored.LastUpdatedAt = order.LastUpdatedAt
	stored.LastUpdatedBy = order.LastUpdatedBy
	f.state.orders[order.OrderID] = stored
	return nil
}

// --- Reception repository ---

func (f *fakeStore) FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error) {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	r, ok := f.state.receptions[receptionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("reception", receptionID)
	}
	c := cloneReception(r)
	return &c, nil
}

func (f *fakeStore) ListReceptionsByOrder(ctx context.Context, orderID string) ([]domain.Reception, error) {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	out := []domain.Reception{}
	for _, r := range f.state.receptions {
		if r.OrderID == orderID {
			out = append(out, cloneReception(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return numberLess(out[i].Number, out[j].Number) })
	return out, nil
}

func (f *fakeStore) CountReceptionsByOrder(ctx context.Context, orderID string) (int, error) {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	n := 0
	for _, r := range f.state.receptions {
		if r.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) SaveReception(ctx context.Context, tx pgx.Tx, reception domain.Reception) error {
	asFakeTx(tx)
	if err := f.injected("SaveReception"); err != nil {
		return err
	}
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	f.state.receptions[reception.ReceptionID] = cloneReception(reception)
	return nil
}

func (f *fakeStore) MarkConfirmationGenerated(ctx context.Context, receptionID string, userID string, at time.Time) error {
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	r, ok := f.state.receptions[receptionID]
	if !ok {
		return apperrors.NewNotFoundError("reception", receptionID)
	}
	if !r.ConfirmationGenerated {
		r.ConfirmationGenerated = true
		r.LastUpdatedAt = at
		r.LastUpdatedBy = userID
	}
	f.state.receptions[receptionID] = r
	return nil
}

// totalReceived sums committed reception lines per order line, independent of the order rows.
func (f *fakeStore) totalReceived(orderID string) map[string]int64 {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	sums := map[string]int64{}
	for _, r := range f.state.receptions {
		if r.OrderID != orderID {
			continue
		}
		for _, l := range r.Lines {
			sums[l.OrderLineID] += l.QuantityReceived
		}
	}
	return sums
}

func pageOf(total, limit int, nextToken *string) ([2]int, *string) {
	start := 0
	if nextToken != nil {
		start, _ = strconv.Atoi(*nextToken)
	}
	if start > total {
		start = total
	}
	end := start + limit
	if end >= total {
		return [2]int{start, total}, nil
	}
	next := strconv.Itoa(end)
	return [2]int{start, end}, &next
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.DomainEvent
	err    error
}

var _ portssvc.EventPublisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func numberLess(a, b string) bool {
	na, _ := strconv.ParseInt(a, 10, 64)
	nb, _ := strconv.ParseInt(b, 10, 64)
	return na < nb
}

var errStoreDown = errors.New("store unavailable")
