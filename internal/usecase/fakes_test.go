package usecase

import (
	"context"
	"time"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the Postgres repositories' contract:
// lookups return (nil, nil) when nothing matches, Create assigns the next id.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	var users []*entity.User
	for id := int64(1); id < f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	nextID   int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session), nextID: 1}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	session.ID = f.nextID
	f.nextID++
	copied := *session
	f.sessions[session.Token.String()] = &copied
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID int64) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	for token, session := range f.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(f.sessions, token)
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = f.nextID
	f.nextID++
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var products []*entity.Product
	for id := int64(1); id < f.nextID; id++ {
		product, ok := f.products[id]
		if !ok {
			continue
		}
		if filter.Category != nil && product.Category != *filter.Category {
			continue
		}
		if filter.Featured != nil && product.Featured != *filter.Featured {
			continue
		}
		copied := *product
		products = append(products, &copied)
	}
	return products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

type fakeBlogRepo struct {
	posts  map[int64]*entity.BlogPost
	nextID int64
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[int64]*entity.BlogPost), nextID: 1}
}

func (f *fakeBlogRepo) Create(_ context.Context, post *entity.BlogPost) error {
	post.ID = f.nextID
	f.nextID++
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id int64) (*entity.BlogPost, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (f *fakeBlogRepo) FindAll(_ context.Context, approvedOnly bool) ([]*entity.BlogPost, error) {
	var posts []*entity.BlogPost
	for id := int64(1); id < f.nextID; id++ {
		post, ok := f.posts[id]
		if !ok {
			continue
		}
		if approvedOnly && !post.IsApproved {
			continue
		}
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, post *entity.BlogPost) error {
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id int64) error {
	delete(f.posts, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	items  map[int64][]*entity.OrderItem
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[int64]*entity.Order),
		items:  make(map[int64][]*entity.OrderItem),
		nextID: 1,
	}
}

func (f *fakeOrderRepo) CreateWithItems(_ context.Context, order *entity.Order, items []*entity.OrderItem) error {
	order.ID = f.nextID
	f.nextID++
	copied := *order
	f.orders[order.ID] = &copied

	for i, item := range items {
		item.ID = int64(i + 1)
		item.OrderID = order.ID
		itemCopy := *item
		f.items[order.ID] = append(f.items[order.ID], &itemCopy)
	}
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	for id := int64(1); id < f.nextID; id++ {
		if order, ok := f.orders[id]; ok {
			copied := *order
			orders = append(orders, &copied)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.Order, error) {
	var orders []*entity.Order
	for id := int64(1); id < f.nextID; id++ {
		if order, ok := f.orders[id]; ok && order.UserID == userID {
			copied := *order
			orders = append(orders, &copied)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindItems(_ context.Context, orderID int64) ([]*entity.OrderItem, error) {
	var items []*entity.OrderItem
	for _, item := range f.items[orderID] {
		copied := *item
		items = append(items, &copied)
	}
	return items, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

type fakeContactRepo struct {
	submissions map[int64]*entity.ContactSubmission
	nextID      int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{submissions: make(map[int64]*entity.ContactSubmission), nextID: 1}
}

func (f *fakeContactRepo) Create(_ context.Context, submission *entity.ContactSubmission) error {
	submission.ID = f.nextID
	f.nextID++
	copied := *submission
	f.submissions[submission.ID] = &copied
	return nil
}

func (f *fakeContactRepo) FindAll(_ context.Context) ([]*entity.ContactSubmission, error) {
	var submissions []*entity.ContactSubmission
	for id := int64(1); id < f.nextID; id++ {
		if submission, ok := f.submissions[id]; ok {
			copied := *submission
			submissions = append(submissions, &copied)
		}
	}
	return submissions, nil
}

func (f *fakeContactRepo) MarkResolved(_ context.Context, id int64) error {
	if submission, ok := f.submissions[id]; ok {
		submission.IsResolved = true
	}
	return nil
}

type fakeNewsletterRepo struct {
	subscriptions map[string]*entity.NewsletterSubscription
	nextID        int64
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subscriptions: make(map[string]*entity.NewsletterSubscription), nextID: 1}
}

func (f *fakeNewsletterRepo) Subscribe(_ context.Context, subscription *entity.NewsletterSubscription) error {
	if existing, ok := f.subscriptions[subscription.Email]; ok {
		*subscription = *existing
		return nil
	}
	subscription.ID = f.nextID
	f.nextID++
	copied := *subscription
	f.subscriptions[subscription.Email] = &copied
	return nil
}

func (f *fakeNewsletterRepo) FindByEmail(_ context.Context, email string) (*entity.NewsletterSubscription, error) {
	subscription, ok := f.subscriptions[email]
	if !ok {
		return nil, nil
	}
	copied := *subscription
	return &copied, nil
}

func (f *fakeNewsletterRepo) FindAll(_ context.Context) ([]*entity.NewsletterSubscription, error) {
	var subscriptions []*entity.NewsletterSubscription
	for _, subscription := range f.subscriptions {
		copied := *subscription
		subscriptions = append(subscriptions, &copied)
	}
	return subscriptions, nil
}

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if f.settings == nil {
		defaults := entity.DefaultSettings()
		f.settings = &defaults
	}
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, settings *entity.Settings) error {
	copied := *settings
	f.settings = &copied
	return nil
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Session:    newFakeSessionRepo(),
		Product:    newFakeProductRepo(),
		BlogPost:   newFakeBlogRepo(),
		Order:      newFakeOrderRepo(),
		Contact:    newFakeContactRepo(),
		Newsletter: newFakeNewsletterRepo(),
		Settings:   newFakeSettingsRepo(),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{
			TTLDays:    7,
			CookieName: "session_token",
		},
	}
}
