package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bikerz-heaven/controllers"
	"bikerz-heaven/models"
	"bikerz-heaven/routes"
	"bikerz-heaven/utils"
)

func init() {
	utils.JwtKey = []byte("test-secret")
}

// fakes holds the in-memory stores backing a test server.
type fakes struct {
	parts    *fakePartStore
	orders   *fakeOrderStore
	reviews  *fakeReviewStore
	users    *fakeUserStore
	profiles *fakeProfileStore
}

// newTestServer wires the real router, middleware and controllers over
// in-memory stores.
func newTestServer(t *testing.T) (*mux.Router, *fakes) {
	t.Helper()
	f := &fakes{
		parts:    newFakePartStore(),
		orders:   newFakeOrderStore(),
		reviews:  &fakeReviewStore{},
		users:    newFakeUserStore(),
		profiles: newFakeProfileStore(),
	}

	logger := zap.NewNop()
	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewPartController(f.parts, logger),
		controllers.NewOrderController(f.orders, f.parts, f.users, nil, logger),
		controllers.NewReviewController(f.reviews, logger),
		controllers.NewUserController(f.users, logger),
		controllers.NewProfileController(f.profiles, f.users, logger),
		f.users,
	)
	return router, f
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body []byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// fakePartStore models the mongo part collection. AdjustQuantity holds the
// lock for the whole read-modify-write, matching the atomicity of $inc.
type fakePartStore struct {
	mu    sync.Mutex
	parts map[primitive.ObjectID]models.Part
}

func newFakePartStore() *fakePartStore {
	return &fakePartStore{parts: map[primitive.ObjectID]models.Part{}}
}

func (f *fakePartStore) add(part models.Part) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if part.ID.IsZero() {
		part.ID = primitive.NewObjectID()
	}
	f.parts[part.ID] = part
	return part.ID
}

func (f *fakePartStore) quantity(id primitive.ObjectID) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.parts[id].AvailableQuantity
}

func (f *fakePartStore) List(ctx context.Context) ([]models.Part, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Part
	for _, p := range f.parts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePartStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Part, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	part, ok := f.parts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &part, nil
}

func (f *fakePartStore) Insert(ctx context.Context, part models.Part) (*mongo.InsertOneResult, error) {
	id := f.add(part)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (f *fakePartStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.parts[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(f.parts, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakePartStore) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	part, ok := f.parts[id]
	if !ok {
		return 0, nil
	}
	part.AvailableQuantity += delta
	f.parts[id] = part
	return 1, nil
}

// fakeOrderStore models the mongo order collection. failInsert forces the
// next Insert to error, for compensation paths.
type fakeOrderStore struct {
	mu         sync.Mutex
	orders     map[primitive.ObjectID]models.Order
	failInsert bool
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[primitive.ObjectID]models.Order{}}
}

func (f *fakeOrderStore) List(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderStore) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &order, nil
}

func (f *fakeOrderStore) Insert(ctx context.Context, order models.Order) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return nil, errors.New("insert failed")
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	f.orders[order.ID] = order
	return &mongo.InsertOneResult{InsertedID: order.ID}, nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(f.orders, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeOrderStore) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	order.Payment = status
	f.orders[id] = order
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeReviewStore struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (f *fakeReviewStore) List(ctx context.Context) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Review(nil), f.reviews...), nil
}

func (f *fakeReviewStore) Insert(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, review)
	return &mongo.InsertOneResult{InsertedID: review.ID}, nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) add(user models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.Email] = user
}

func (f *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &user, nil
}

func (f *fakeUserStore) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, existed := f.users[email]
	user.Email = email
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[email] = user

	result := &mongo.UpdateResult{}
	if existed {
		result.MatchedCount = 1
		result.ModifiedCount = 1
	} else {
		result.UpsertedCount = 1
		result.UpsertedID = user.ID
	}
	return result, nil
}

func (f *fakeUserStore) GrantAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	user.Role = models.RoleAdmin
	f.users[email] = user
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeProfileStore struct {
	mu       sync.Mutex
	profiles map[string]models.UserProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]models.UserProfile{}}
}

func (f *fakeProfileStore) GetByEmail(ctx context.Context, email string) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return profile, nil
}

func (f *fakeProfileStore) Upsert(ctx context.Context, profile models.UserProfile) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email := profile.Email()
	existing, existed := f.profiles[email]
	if !existed {
		existing = models.UserProfile{}
	}
	// Top-level field union, like a mongo $set.
	for k, v := range profile {
		existing[k] = v
	}
	f.profiles[email] = existing

	result := &mongo.UpdateResult{}
	if existed {
		result.MatchedCount = 1
		result.ModifiedCount = 1
	} else {
		result.UpsertedCount = 1
	}
	return result, nil
}
