// Package storetest provides in-memory stores that behave like the MongoDB
// repositories, for handler and route tests.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chachabrian/profast-backend/internal/database"
	"github.com/chachabrian/profast-backend/internal/models"
)

// Store keeps every collection in memory. Err, when set, is returned by every
// call instead of touching the data.
type Store struct {
	mu       sync.Mutex
	parcels  []models.Document
	users    []models.Document
	riders   []models.Document
	payments []models.Payment
	tracking []models.TrackingLog

	ready atomic.Bool
	Err   error
}

func New() *Store {
	s := &Store{}
	s.ready.Store(true)
	return s
}

func (s *Store) SetReady(ready bool) { s.ready.Store(ready) }

func (s *Store) Ready() bool { return s.ready.Load() }

func (s *Store) Parcels() *Parcels   { return &Parcels{s} }
func (s *Store) Users() *Users       { return &Users{s} }
func (s *Store) Riders() *Riders     { return &Riders{s} }
func (s *Store) Payments() *Payments { return &Payments{s} }
func (s *Store) Tracking() *Tracking { return &Tracking{s} }

func clone(doc models.Document) models.Document {
	out := make(models.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func insert(docs *[]models.Document, doc models.Document) database.InsertResult {
	doc = clone(doc)
	id, ok := doc["_id"]
	if !ok {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}
	*docs = append(*docs, doc)
	return database.InsertResult{Acknowledged: true, InsertedID: id}
}

func indexOf(docs []models.Document, id primitive.ObjectID) int {
	for i, doc := range docs {
		if doc["_id"] == id {
			return i
		}
	}
	return -1
}

func newer(a, b interface{}) bool {
	ta, okA := a.(time.Time)
	tb, okB := b.(time.Time)
	if okA && okB {
		return ta.After(tb)
	}
	return fmt.Sprint(a) > fmt.Sprint(b)
}

func sortNewestFirst(docs []models.Document, field string) {
	sort.SliceStable(docs, func(i, j int) bool {
		return newer(docs[i][field], docs[j][field])
	})
}

type Parcels struct{ s *Store }

func (p *Parcels) List(_ context.Context, createdBy string) ([]models.Document, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.Err != nil {
		return nil, p.s.Err
	}

	out := []models.Document{}
	for _, doc := range p.s.parcels {
		if createdBy == "" || doc[models.ParcelCreatedBy] == createdBy {
			out = append(out, clone(doc))
		}
	}
	sortNewestFirst(out, models.ParcelCreatedAt)
	return out, nil
}

func (p *Parcels) Get(_ context.Context, id string) (models.Document, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.Err != nil {
		return nil, p.s.Err
	}

	i := indexOf(p.s.parcels, oid)
	if i < 0 {
		return nil, fmt.Errorf("find parcel %s: %w", id, database.ErrNotFound)
	}
	return clone(p.s.parcels[i]), nil
}

func (p *Parcels) Create(_ context.Context, parcel models.Document) (database.InsertResult, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.Err != nil {
		return database.InsertResult{}, p.s.Err
	}
	return insert(&p.s.parcels, parcel), nil
}

func (p *Parcels) Delete(_ context.Context, id string) (database.DeleteResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return database.DeleteResult{}, err
	}

	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.Err != nil {
		return database.DeleteResult{}, p.s.Err
	}

	i := indexOf(p.s.parcels, oid)
	if i < 0 {
		return database.DeleteResult{Acknowledged: true}, nil
	}
	p.s.parcels = append(p.s.parcels[:i], p.s.parcels[i+1:]...)
	return database.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type Users struct{ s *Store }

func toUser(doc models.Document) models.User {
	u := models.User{}
	u.ID, _ = doc["_id"].(primitive.ObjectID)
	u.Email, _ = doc["email"].(string)
	if role, ok := doc["role"].(string); ok {
		u.Role = models.Role(role)
	}
	if created, ok := doc["created_at"].(time.Time); ok {
		u.CreatedAt = &created
	}
	return u
}

func (u *Users) Search(_ context.Context, emailSubstring string) ([]models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return nil, u.s.Err
	}

	needle := strings.ToLower(emailSubstring)
	out := []models.User{}
	for _, doc := range u.s.users {
		email, _ := doc["email"].(string)
		if strings.Contains(strings.ToLower(email), needle) {
			out = append(out, toUser(doc))
		}
		if len(out) == database.UserSearchLimit {
			break
		}
	}
	return out, nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return nil, u.s.Err
	}

	for _, doc := range u.s.users {
		if doc["email"] == email {
			user := toUser(doc)
			return &user, nil
		}
	}
	return nil, fmt.Errorf("find user %s: %w", email, database.ErrNotFound)
}

func (u *Users) Create(_ context.Context, user models.Document) (database.InsertResult, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return database.InsertResult{}, u.s.Err
	}

	for _, doc := range u.s.users {
		if doc["email"] == user["email"] {
			return database.InsertResult{}, fmt.Errorf("insert into users: %w", database.ErrDuplicate)
		}
	}
	return insert(&u.s.users, user), nil
}

func (u *Users) UpdateRole(_ context.Context, id string, role models.Role) (database.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}

	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return database.UpdateResult{}, u.s.Err
	}

	i := indexOf(u.s.users, oid)
	if i < 0 {
		return database.UpdateResult{Acknowledged: true}, nil
	}
	return set(u.s.users[i], "role", string(role)), nil
}

func (u *Users) SetRoleByEmail(_ context.Context, email string, role models.Role) (database.UpdateResult, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return database.UpdateResult{}, u.s.Err
	}

	for _, doc := range u.s.users {
		if doc["email"] == email {
			return set(doc, "role", string(role)), nil
		}
	}
	return database.UpdateResult{Acknowledged: true}, nil
}

// Role returns the stored role of email, or "" when the user is absent.
func (u *Users) Role(email string) string {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, doc := range u.s.users {
		if doc["email"] == email {
			role, _ := doc["role"].(string)
			return role
		}
	}
	return ""
}

func (u *Users) Count() int {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return len(u.s.users)
}

func set(doc models.Document, field string, value interface{}) database.UpdateResult {
	res := database.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if doc[field] != value {
		doc[field] = value
		res.ModifiedCount = 1
	}
	return res
}

type Riders struct{ s *Store }

func (r *Riders) Create(_ context.Context, application models.Document) (database.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return database.InsertResult{}, r.s.Err
	}
	return insert(&r.s.riders, application), nil
}

func (r *Riders) ListByStatus(_ context.Context, status string) ([]models.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	out := []models.Document{}
	for _, doc := range r.s.riders {
		if doc[models.RiderStatus] == status {
			out = append(out, clone(doc))
		}
	}
	sortNewestFirst(out, models.RiderCreatedAt)
	return out, nil
}

func (r *Riders) UpdateStatus(_ context.Context, id, status string) (database.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return database.UpdateResult{}, r.s.Err
	}

	i := indexOf(r.s.riders, oid)
	if i < 0 {
		return database.UpdateResult{Acknowledged: true}, nil
	}
	return set(r.s.riders[i], models.RiderStatus, status), nil
}

type Payments struct{ s *Store }

// Record marks the parcel paid and appends the payment, like the repository.
func (p *Payments) Record(_ context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.Err != nil {
		return primitive.NilObjectID, p.s.Err
	}

	i := indexOf(p.s.parcels, payment.ParcelID)
	if i < 0 || p.s.parcels[i][models.ParcelPaymentStatus] == models.PaymentStatusPaid {
		return primitive.NilObjectID, fmt.Errorf("mark parcel %s paid: %w", payment.ParcelID.Hex(), database.ErrNotFound)
	}
	p.s.parcels[i][models.ParcelPaymentStatus] = models.PaymentStatusPaid

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	p.s.payments = append(p.s.payments, *payment)
	return payment.ID, nil
}

func (p *Payments) ListByEmail(_ context.Context, email string) ([]models.Payment, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.Err != nil {
		return nil, p.s.Err
	}

	out := []models.Payment{}
	for _, payment := range p.s.payments {
		if payment.Email == email {
			out = append(out, payment)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

func (p *Payments) Count() int {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return len(p.s.payments)
}

type Tracking struct{ s *Store }

func (t *Tracking) Append(_ context.Context, event *models.TrackingLog) (database.InsertResult, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.s.Err != nil {
		return database.InsertResult{}, t.s.Err
	}

	stored := *event
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	t.s.tracking = append(t.s.tracking, stored)
	return database.InsertResult{Acknowledged: true, InsertedID: stored.ID}, nil
}

func (t *Tracking) Events() []models.TrackingLog {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return append([]models.TrackingLog(nil), t.s.tracking...)
}
