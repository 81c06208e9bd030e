package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo 内存版会话存储，读写都复制条目，模拟序列化边界
type memoryRepo struct {
	mu      sync.Mutex
	carts   map[string][]Entry
	saves   int
	saveErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{carts: map[string][]Entry{}}
}

func (r *memoryRepo) Load(_ context.Context, sessionID string) (*Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries, ok := r.carts[sessionID]
	if !ok {
		return nil, nil
	}
	return &Cart{SessionID: sessionID, Entries: append([]Entry{}, entries...)}, nil
}

func (r *memoryRepo) Save(_ context.Context, cart *Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.carts[cart.SessionID] = append([]Entry{}, cart.Entries...)
	return nil
}

func (r *memoryRepo) snapshot(sessionID string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry{}, r.carts[sessionID]...)
}

// knownProducts 只认识固定商品ID的ProductChecker
type knownProducts struct {
	ids   map[string]bool
	err   error
	calls int
}

func newKnownProducts(ids ...string) *knownProducts {
	k := &knownProducts{ids: map[string]bool{}}
	for _, id := range ids {
		k.ids[id] = true
	}
	return k
}

func (k *knownProducts) ProductExists(_ context.Context, productID string) (bool, error) {
	k.calls++
	if k.err != nil {
		return false, k.err
	}
	return k.ids[productID], nil
}

type recordingPublisher struct {
	events []Event
	err    error
}

func (p *recordingPublisher) PublishCartEvent(_ context.Context, event Event) error {
	p.events = append(p.events, event)
	return p.err
}

const sid = "session-1"

func setup(products ...string) (Service, *memoryRepo, *knownProducts) {
	repo := newMemoryRepo()
	checker := newKnownProducts(products...)
	return NewService(repo, checker, nil), repo, checker
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("首次访问返回空购物车并保存", func(t *testing.T) {
		svc, repo, checker := setup()
		cart, err := svc.GetCart(ctx, sid)
		require.NoError(t, err)
		assert.NotNil(t, cart.Entries)
		assert.Empty(t, cart.Entries)
		assert.Equal(t, 1, repo.saves)
		assert.Zero(t, checker.calls, "读取购物车不校验商品")
	})

	t.Run("已存在则直接返回", func(t *testing.T) {
		svc, repo, _ := setup("p1")
		_, err := svc.UpdateCart(ctx, sid, "p1", 2)
		require.NoError(t, err)
		saves := repo.saves

		cart, err := svc.GetCart(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, []Entry{{ProductID: "p1", Qty: 2}}, cart.Entries)
		assert.Equal(t, saves, repo.saves)
	})

	t.Run("缺少会话", func(t *testing.T) {
		svc, _, _ := setup()
		_, err := svc.GetCart(ctx, "")
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestUpdateCart_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, q := range []int{1, 3, 1000} {
		svc, _, _ := setup("p1")

		_, err := svc.UpdateCart(ctx, sid, "p1", q)
		require.NoError(t, err)

		cart, err := svc.GetCart(ctx, sid)
		require.NoError(t, err)
		require.Len(t, cart.Entries, 1)
		assert.Equal(t, Entry{ProductID: "p1", Qty: q}, cart.Entries[0])
	}
}

func TestUpdateCart_UpdateInPlace(t *testing.T) {
	ctx := context.Background()
	svc, _, checker := setup("p1", "p2", "p3")

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := svc.UpdateCart(ctx, sid, id, 1)
		require.NoError(t, err)
	}
	calls := checker.calls

	cart, err := svc.UpdateCart(ctx, sid, "p2", 7)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"p1", 1}, {"p2", 7}, {"p3", 1}}, cart.Entries)
	assert.Equal(t, calls, checker.calls, "修改已有条目不再校验商品")
}

func TestUpdateCart_Removal(t *testing.T) {
	ctx := context.Background()
	for _, q := range []int{0, -1} {
		svc, repo, _ := setup("p1", "p2")
		_, err := svc.UpdateCart(ctx, sid, "p1", 4)
		require.NoError(t, err)
		_, err = svc.UpdateCart(ctx, sid, "p2", 1)
		require.NoError(t, err)

		cart, err := svc.UpdateCart(ctx, sid, "p1", q)
		require.NoError(t, err)
		assert.Equal(t, []Entry{{"p2", 1}}, cart.Entries)
		assert.Equal(t, -1, cart.IndexOf("p1"))
		assert.Equal(t, []Entry{{"p2", 1}}, repo.snapshot(sid))
	}
}

func TestUpdateCart_RemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, repo, checker := setup("p1")
	_, err := svc.UpdateCart(ctx, sid, "p1", 2)
	require.NoError(t, err)
	before := repo.snapshot(sid)
	saves := repo.saves

	cart, err := svc.UpdateCart(ctx, sid, "p9", 0)
	require.NoError(t, err)
	assert.Equal(t, before, cart.Entries)
	assert.Equal(t, before, repo.snapshot(sid))
	assert.Equal(t, saves, repo.saves)
	assert.Equal(t, 1, checker.calls)
}

func TestUpdateCart_UnknownProductRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setup("p1")
	_, err := svc.UpdateCart(ctx, sid, "p1", 1)
	require.NoError(t, err)
	before := repo.snapshot(sid)

	cart, err := svc.UpdateCart(ctx, sid, "unknown", 5)
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, before, repo.snapshot(sid))
}

func TestUpdateCart_InvalidRequest(t *testing.T) {
	svc, repo, _ := setup("p1")
	_, err := svc.UpdateCart(context.Background(), sid, "", 1)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, repo.saves)
}

func TestUpdateCart_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setup("a", "b", "c")

	for _, id := range []string{"c", "a", "b"} {
		_, err := svc.UpdateCart(ctx, sid, id, 1)
		require.NoError(t, err)
	}
	_, err := svc.UpdateCart(ctx, sid, "a", 0)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, sid, "a", 2)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"c", 1}, {"b", 1}, {"a", 2}}, cart.Entries)
}

func TestUpdateCart_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("商品查询失败", func(t *testing.T) {
		svc, _, checker := setup()
		checker.err = errors.New("database is locked")
		_, err := svc.UpdateCart(ctx, sid, "p1", 1)
		assert.ErrorIs(t, err, checker.err)
	})

	t.Run("保存失败", func(t *testing.T) {
		svc, repo, _ := setup("p1")
		repo.saveErr = errors.New("redis: connection refused")
		_, err := svc.UpdateCart(ctx, sid, "p1", 1)
		assert.ErrorIs(t, err, repo.saveErr)
	})
}

func TestUpdateCart_SessionsIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setup("p1")

	_, err := svc.UpdateCart(ctx, "alice", "p1", 1)
	require.NoError(t, err)

	other, err := svc.GetCart(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other.Entries)
}

func TestUpdateCart_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	pub := &recordingPublisher{}
	svc := NewService(repo, newKnownProducts("p1"), pub)

	_, err := svc.UpdateCart(ctx, sid, "p1", 1)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, sid, "p1", 3)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, sid, "p1", 0)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, sid, "p1", 0) // noop不发布
	require.NoError(t, err)

	require.Len(t, pub.events, 3)
	assert.Equal(t, EventItemAdded, pub.events[0].Type)
	assert.Equal(t, EventItemUpdated, pub.events[1].Type)
	assert.Equal(t, 3, pub.events[1].Qty)
	assert.Equal(t, EventItemRemoved, pub.events[2].Type)
	assert.Equal(t, 0, pub.events[2].Qty)

	t.Run("发布失败不影响结果", func(t *testing.T) {
		pub.err = errors.New("amqp: closed")
		cart, err := svc.UpdateCart(ctx, sid, "p1", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, cart.Qty("p1"))
	})
}
