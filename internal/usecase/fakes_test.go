package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/infrastructure/localstore"
	"fieldtofork/pkg/errors"
)

// memStore is an in-memory localstore.Store for tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) key(userID string, kind localstore.Kind) string {
	return fmt.Sprintf("%s_%s", kind, userID)
}

func (s *memStore) Get(userID string, kind localstore.Kind, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[s.key(userID, kind)]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (s *memStore) Put(userID string, kind localstore.Kind, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[s.key(userID, kind)] = data
	return nil
}

func (s *memStore) Delete(userID string, kind localstore.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, s.key(userID, kind))
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeProductRepo struct {
	products []*entity.Product
	seq      int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	return &fakeProductRepo{products: products}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.seq++
		product.ID = fmt.Sprintf("product-%d", r.seq)
	}
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Rating = rating
	p.RatingCount = count
	return nil
}

type fakeOrderRepo struct {
	orders    map[string]*entity.Order
	seq       int
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	order.ID = fmt.Sprintf("order-%d", r.seq)
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByBuyerID(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := 1; i <= r.seq; i++ {
		if o, ok := r.orders[fmt.Sprintf("order-%d", i)]; ok && o.UserID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := 1; i <= r.seq; i++ {
		if o, ok := r.orders[fmt.Sprintf("order-%d", i)]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	order.Status = status
	order.Tracking.CurrentStatus = status
	return nil
}

func (r *fakeOrderRepo) SetPaymentReceived(ctx context.Context, id string, received bool) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	order.PaymentReceived = received
	return nil
}

type fakeReviewRepo struct {
	// productID -> reviewerID -> review
	reviews map[string]map[string]*entity.Review
	order   map[string][]string
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews: make(map[string]map[string]*entity.Review),
		order:   make(map[string][]string),
	}
}

func (r *fakeReviewRepo) Upsert(ctx context.Context, productID string, review *entity.Review) error {
	if r.reviews[productID] == nil {
		r.reviews[productID] = make(map[string]*entity.Review)
	}
	if _, exists := r.reviews[productID][review.ID]; !exists {
		r.order[productID] = append(r.order[productID], review.ID)
	}
	r.reviews[productID][review.ID] = review
	return nil
}

func (r *fakeReviewRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, id := range r.order[productID] {
		out = append(out, r.reviews[productID][id])
	}
	return out, nil
}

type fakeChatRepo struct {
	mu       sync.Mutex
	threads  map[string]*entity.Thread
	messages map[string][]*entity.Message
	seq      int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		threads:  make(map[string]*entity.Thread),
		messages: make(map[string][]*entity.Message),
	}
}

func (r *fakeChatRepo) UpsertThread(ctx context.Context, thread *entity.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *thread
	r.threads[thread.ID] = &copied
	return nil
}

// GetThread hands back a copy the way a document read would, so callers
// never share memory with the stored thread.
func (r *fakeChatRepo) GetThread(ctx context.Context, threadID string) (*entity.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	thread, ok := r.threads[threadID]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	copied := *thread
	return &copied, nil
}

func (r *fakeChatRepo) ListThreadsByUser(ctx context.Context, uid string) ([]*entity.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Thread
	for _, t := range r.threads {
		if t.HasParticipant(uid) {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) SetTyping(ctx context.Context, threadID, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	thread, ok := r.threads[threadID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	thread.Typing = uid
	return nil
}

// typing reads the flag without racing the idle-timer goroutine.
func (r *fakeChatRepo) typing(threadID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if thread, ok := r.threads[threadID]; ok {
		return thread.Typing
	}
	return ""
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, threadID string, message *entity.Message) error {
	r.seq++
	message.ID = fmt.Sprintf("message-%d", r.seq)
	r.messages[threadID] = append(r.messages[threadID], message)
	return nil
}

func (r *fakeChatRepo) ListMessages(ctx context.Context, threadID string) ([]*entity.Message, error) {
	return r.messages[threadID], nil
}

func (r *fakeChatRepo) GetMessage(ctx context.Context, threadID, messageID string) (*entity.Message, error) {
	for _, m := range r.messages[threadID] {
		if m.ID == messageID {
			return m, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *fakeChatRepo) MarkSeen(ctx context.Context, threadID, messageID string) error {
	m, err := r.GetMessage(ctx, threadID, messageID)
	if err != nil {
		return err
	}
	m.Seen = true
	return nil
}

func (r *fakeChatRepo) DeleteMessage(ctx context.Context, threadID, messageID string) error {
	msgs := r.messages[threadID]
	for i, m := range msgs {
		if m.ID == messageID {
			r.messages[threadID] = append(msgs[:i], msgs[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	seq           int
	createErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	notification.ID = fmt.Sprintf("notification-%d", r.seq)
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	n, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	n.Read = true
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

type pushedEvent struct {
	UserID  string
	Type    string
	Payload interface{}
}

type fakePusher struct {
	mu         sync.Mutex
	pushes     []pushedEvent
	broadcasts []pushedEvent
}

func (p *fakePusher) PushToUser(userID string, eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushes = append(p.pushes, pushedEvent{UserID: userID, Type: eventType, Payload: payload})
}

func (p *fakePusher) BroadcastAll(eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.broadcasts = append(p.broadcasts, pushedEvent{Type: eventType, Payload: payload})
}

func (p *fakePusher) pushed() []pushedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pushedEvent(nil), p.pushes...)
}

func (p *fakePusher) pushedOfType(eventType string) []pushedEvent {
	var out []pushedEvent
	for _, e := range p.pushed() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
