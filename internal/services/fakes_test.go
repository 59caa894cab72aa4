package services

import (
	"context"
	"sync"
	"time"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
)

// Фейки хранят все в памяти и не реализуют сортировку и пагинацию:
// юнит-тесты проверяют бизнес-логику сервисов, а не SQL.

// ---------------- Пользователи ----------------

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role models.UserRole, _, _ int, _ string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role models.UserRole) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// ---------------- Подрядчики ----------------

type fakeContractorRepo struct {
	contractors   map[uint]*models.Contractor
	services      map[uint]*models.ContractorService
	nextID        uint
	nextServiceID uint
	users         *fakeUserRepo
	ratingUpdates []*float64
}

func newFakeContractorRepo(users *fakeUserRepo) *fakeContractorRepo {
	return &fakeContractorRepo{
		contractors: map[uint]*models.Contractor{},
		services:    map[uint]*models.ContractorService{},
		users:       users,
	}
}

func (r *fakeContractorRepo) CreateWithUser(ctx context.Context, user *models.User, contractor *models.Contractor,
	services []models.ContractorService, _ []models.PortfolioItem) error {
	if err := r.users.Create(ctx, user); err != nil {
		return err
	}
	r.nextID++
	contractor.ID = r.nextID
	contractor.UserID = user.ID
	r.contractors[contractor.ID] = contractor
	for i := range services {
		r.nextServiceID++
		services[i].ID = r.nextServiceID
		services[i].ContractorID = contractor.ID
		svc := services[i]
		r.services[svc.ID] = &svc
	}
	return nil
}

func (r *fakeContractorRepo) FindByID(_ context.Context, id uint) (*models.Contractor, error) {
	c, ok := r.contractors[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return c, nil
}

func (r *fakeContractorRepo) FindByUserID(_ context.Context, userID uint) (*models.Contractor, error) {
	for _, c := range r.contractors {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeContractorRepo) FindApplication(ctx context.Context, id uint) (*models.Contractor, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeContractorRepo) List(_ context.Context, _, _ int, _ string) ([]models.Contractor, error) {
	var out []models.Contractor
	for _, c := range r.contractors {
		if c.IsApproved {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractorRepo) ListApplications(_ context.Context, _, _ int, _ string) ([]models.Contractor, error) {
	var out []models.Contractor
	for _, c := range r.contractors {
		if !c.IsApproved {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractorRepo) Approve(_ context.Context, contractorID uint) error {
	c, ok := r.contractors[contractorID]
	if !ok {
		return repositories.ErrNotFound
	}
	c.IsApproved = true
	if u, ok := r.users.users[c.UserID]; ok {
		u.IsActive = true
	}
	return nil
}

func (r *fakeContractorRepo) Update(_ context.Context, contractor *models.Contractor) error {
	if _, ok := r.contractors[contractor.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.contractors[contractor.ID] = contractor
	return nil
}

func (r *fakeContractorRepo) UpdateWithUser(ctx context.Context, contractor *models.Contractor, user *models.User) error {
	if err := r.Update(ctx, contractor); err != nil {
		return err
	}
	return r.users.Update(ctx, user)
}

func (r *fakeContractorRepo) UpdateAverageRating(_ context.Context, contractorID uint, rating *float64) error {
	c, ok := r.contractors[contractorID]
	if !ok {
		return repositories.ErrNotFound
	}
	c.AverageRating = rating
	r.ratingUpdates = append(r.ratingUpdates, rating)
	return nil
}

func (r *fakeContractorRepo) ListServices(_ context.Context, contractorID uint) ([]models.ContractorService, error) {
	var out []models.ContractorService
	for _, svc := range r.services {
		if svc.ContractorID == contractorID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (r *fakeContractorRepo) FindService(_ context.Context, contractorID, serviceID uint) (*models.ContractorService, error) {
	svc, ok := r.services[serviceID]
	if !ok || svc.ContractorID != contractorID {
		return nil, repositories.ErrNotFound
	}
	return svc, nil
}

func (r *fakeContractorRepo) CreateService(_ context.Context, service *models.ContractorService) error {
	r.nextServiceID++
	service.ID = r.nextServiceID
	r.services[service.ID] = service
	return nil
}

func (r *fakeContractorRepo) UpdateService(_ context.Context, service *models.ContractorService) error {
	if _, ok := r.services[service.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.services[service.ID] = service
	return nil
}

func (r *fakeContractorRepo) DeleteService(_ context.Context, contractorID, serviceID uint) error {
	svc, ok := r.services[serviceID]
	if !ok || svc.ContractorID != contractorID {
		return repositories.ErrNotFound
	}
	delete(r.services, serviceID)
	return nil
}

// ---------------- Портфолио ----------------

type fakePortfolioRepo struct {
	items  map[uint]*models.PortfolioItem
	nextID uint
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{items: map[uint]*models.PortfolioItem{}}
}

func (r *fakePortfolioRepo) ListByContractor(_ context.Context, contractorID uint, _, _ int, _ string) ([]models.PortfolioItem, error) {
	var out []models.PortfolioItem
	for _, item := range r.items {
		if item.ContractorID == contractorID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakePortfolioRepo) FindByID(_ context.Context, contractorID, itemID uint) (*models.PortfolioItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.ContractorID != contractorID {
		return nil, repositories.ErrNotFound
	}
	return item, nil
}

func (r *fakePortfolioRepo) Create(_ context.Context, item *models.PortfolioItem) error {
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return nil
}

func (r *fakePortfolioRepo) Update(_ context.Context, item *models.PortfolioItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakePortfolioRepo) Delete(_ context.Context, contractorID, itemID uint) error {
	item, ok := r.items[itemID]
	if !ok || item.ContractorID != contractorID {
		return repositories.ErrNotFound
	}
	delete(r.items, itemID)
	return nil
}

// ---------------- Мероприятия ----------------

type fakeEventRepo struct {
	events      map[uint]*models.Event
	nextID      uint
	invitations *fakeInvitationRepo
	updateCalls int
}

func newFakeEventRepo(invitations *fakeInvitationRepo) *fakeEventRepo {
	return &fakeEventRepo{events: map[uint]*models.Event{}, invitations: invitations}
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	r.nextID++
	event.ID = r.nextID
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (*models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return event, nil
}

func (r *fakeEventRepo) ListAll(_ context.Context, _, _ int, _ string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEventRepo) ListVisible(_ context.Context, userID uint, _, _ int, _ string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range r.events {
		if e.UserID == userID || e.OrganizerID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *models.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.events[event.ID] = event
	r.updateCalls++
	return nil
}

func (r *fakeEventRepo) UpdateOrganizer(_ context.Context, eventID, organizerID uint) error {
	event, ok := r.events[eventID]
	if !ok {
		return repositories.ErrNotFound
	}
	event.OrganizerID = organizerID
	return nil
}

func (r *fakeEventRepo) DeleteWithInvitations(_ context.Context, eventID uint) ([]models.EventInvitation, error) {
	if _, ok := r.events[eventID]; !ok {
		return nil, repositories.ErrNotFound
	}
	delete(r.events, eventID)

	var removed []models.EventInvitation
	for id, inv := range r.invitations.invitations {
		if inv.EventID == eventID {
			removed = append(removed, *inv)
			delete(r.invitations.invitations, id)
		}
	}
	return removed, nil
}

// ---------------- Приглашения ----------------

type fakeInvitationRepo struct {
	invitations map[uint]*models.EventInvitation
	nextID      uint
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: map[uint]*models.EventInvitation{}}
}

func (r *fakeInvitationRepo) Create(_ context.Context, invitation *models.EventInvitation) error {
	for _, inv := range r.invitations {
		if inv.EventID == invitation.EventID && inv.RecipientID == invitation.RecipientID {
			return repositories.ErrDuplicate
		}
	}
	r.nextID++
	invitation.ID = r.nextID
	if invitation.Status == "" {
		invitation.Status = models.InvitationStatusPending
	}
	r.invitations[invitation.ID] = invitation
	return nil
}

func (r *fakeInvitationRepo) FindByID(_ context.Context, id uint) (*models.EventInvitation, error) {
	inv, ok := r.invitations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return inv, nil
}

func (r *fakeInvitationRepo) FindForRecipient(_ context.Context, id, recipientID uint) (*models.EventInvitation, error) {
	inv, ok := r.invitations[id]
	if !ok || inv.RecipientID != recipientID {
		return nil, repositories.ErrNotFound
	}
	return inv, nil
}

func (r *fakeInvitationRepo) FindForEvent(_ context.Context, id, eventID uint) (*models.EventInvitation, error) {
	inv, ok := r.invitations[id]
	if !ok || inv.EventID != eventID {
		return nil, repositories.ErrNotFound
	}
	return inv, nil
}

func (r *fakeInvitationRepo) ListByEvent(_ context.Context, eventID uint, _, _ int, _ string) ([]models.EventInvitation, error) {
	var out []models.EventInvitation
	for _, inv := range r.invitations {
		if inv.EventID == eventID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) ListByRecipient(_ context.Context, recipientID uint, _, _ int, _ string) ([]models.EventInvitation, error) {
	var out []models.EventInvitation
	for _, inv := range r.invitations {
		if inv.RecipientID == recipientID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) Exists(_ context.Context, eventID, recipientID uint) (bool, error) {
	for _, inv := range r.invitations {
		if inv.EventID == eventID && inv.RecipientID == recipientID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvitationRepo) ExistsWithStatus(_ context.Context, eventID, recipientID uint, status models.InvitationStatus) (bool, error) {
	for _, inv := range r.invitations {
		if inv.EventID == eventID && inv.RecipientID == recipientID && inv.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvitationRepo) UpdateStatus(_ context.Context, id uint, status models.InvitationStatus) error {
	inv, ok := r.invitations[id]
	if !ok {
		return repositories.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (r *fakeInvitationRepo) UpdateStatusIf(_ context.Context, id uint, from, to models.InvitationStatus) (bool, error) {
	inv, ok := r.invitations[id]
	if !ok {
		return false, repositories.ErrNotFound
	}
	if inv.Status != from {
		return false, nil
	}
	inv.Status = to
	return true, nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.invitations[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.invitations, id)
	return nil
}

// ---------------- Отзывы ----------------

type fakeReviewRepo struct {
	reviews map[uint]*models.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uint]*models.Review{}}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	r.nextID++
	review.ID = r.nextID
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, contractorID, reviewID uint) (*models.Review, error) {
	review, ok := r.reviews[reviewID]
	if !ok || review.ContractorID != contractorID {
		return nil, repositories.ErrNotFound
	}
	return review, nil
}

func (r *fakeReviewRepo) ListByContractor(_ context.Context, contractorID uint, _, _ int, _ string) ([]models.Review, error) {
	var out []models.Review
	for _, review := range r.reviews {
		if review.ContractorID == contractorID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, contractorID, reviewID uint) error {
	review, ok := r.reviews[reviewID]
	if !ok || review.ContractorID != contractorID {
		return repositories.ErrNotFound
	}
	delete(r.reviews, reviewID)
	return nil
}

func (r *fakeReviewRepo) AverageRating(_ context.Context, contractorID uint) (*float64, error) {
	var sum float64
	var count int
	for _, review := range r.reviews {
		if review.ContractorID == contractorID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := sum / float64(count)
	return &avg, nil
}

// ---------------- Каталог ----------------

type fakeCatalogRepo struct {
	categories    map[uint]*models.Category
	services      map[uint]*models.Service
	nextID        uint
	nextServiceID uint
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		categories: map[uint]*models.Category{},
		services:   map[uint]*models.Service{},
	}
}

func (r *fakeCatalogRepo) ListCategories(_ context.Context, _, _ int, _ string) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindCategory(_ context.Context, id uint) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return c, nil
}

func (r *fakeCatalogRepo) CategoryNameExists(_ context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCatalogRepo) CreateCategory(_ context.Context, category *models.Category) error {
	r.nextID++
	category.ID = r.nextID
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCatalogRepo) UpdateCategory(_ context.Context, category *models.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCatalogRepo) DeleteCategory(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.categories, id)
	for svcID, svc := range r.services {
		if svc.CategoryID == id {
			delete(r.services, svcID)
		}
	}
	return nil
}

func (r *fakeCatalogRepo) ListServices(_ context.Context, categoryID uint, _, _ int, _ string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		if svc.CategoryID == categoryID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindService(_ context.Context, categoryID, serviceID uint) (*models.Service, error) {
	svc, ok := r.services[serviceID]
	if !ok || svc.CategoryID != categoryID {
		return nil, repositories.ErrNotFound
	}
	return svc, nil
}

func (r *fakeCatalogRepo) ServiceNameExists(_ context.Context, name string) (bool, error) {
	for _, svc := range r.services {
		if svc.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCatalogRepo) CreateService(_ context.Context, service *models.Service) error {
	r.nextServiceID++
	service.ID = r.nextServiceID
	r.services[service.ID] = service
	return nil
}

func (r *fakeCatalogRepo) UpdateService(_ context.Context, service *models.Service) error {
	if _, ok := r.services[service.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.services[service.ID] = service
	return nil
}

func (r *fakeCatalogRepo) DeleteService(_ context.Context, categoryID, serviceID uint) error {
	svc, ok := r.services[serviceID]
	if !ok || svc.CategoryID != categoryID {
		return repositories.ErrNotFound
	}
	delete(r.services, serviceID)
	return nil
}

// ---------------- Уведомления ----------------

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	r.nextID++
	notification.ID = r.nextID
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID uint, _, _ int, _ string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

// ---------------- Токены ----------------

type fakeTokenRepo struct {
	blacklist map[string]time.Time
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{blacklist: map[string]time.Time{}}
}

func (r *fakeTokenRepo) Blacklist(_ context.Context, token string, expiresAt time.Time) error {
	if _, ok := r.blacklist[token]; ok {
		return repositories.ErrDuplicate
	}
	r.blacklist[token] = expiresAt
	return nil
}

func (r *fakeTokenRepo) IsBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := r.blacklist[token]
	return ok, nil
}

func (r *fakeTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var count int64
	now := time.Now()
	for token, expiresAt := range r.blacklist {
		if expiresAt.Before(now) {
			delete(r.blacklist, token)
			count++
		}
	}
	return count, nil
}

// ---------------- Уведомитель ----------------

type notifierCall struct {
	UserID  uint
	Email   string
	Type    string
	Subject string
	Data    map[string]interface{}
}

// recordingNotifier записывает поставленные уведомления синхронно,
// без горутин и писем
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notifierCall
}

func (n *recordingNotifier) Queue(userID uint, toEmail string, notifType string, subject string, data map[string]interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifierCall{
		UserID:  userID,
		Email:   toEmail,
		Type:    notifType,
		Subject: subject,
		Data:    data,
	})
}

func (n *recordingNotifier) callsOfType(notifType string) []notifierCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notifierCall
	for _, call := range n.calls {
		if call.Type == notifType {
			out = append(out, call)
		}
	}
	return out
}

// ---------------- Окружение тестов ----------------

type testEnv struct {
	users       *fakeUserRepo
	contractors *fakeContractorRepo
	portfolio   *fakePortfolioRepo
	catalog     *fakeCatalogRepo
	events      *fakeEventRepo
	invitations *fakeInvitationRepo
	reviews     *fakeReviewRepo
	tokens      *fakeTokenRepo
	notifier    *recordingNotifier
	gate        *permissions.Gate
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	contractors := newFakeContractorRepo(users)
	invitations := newFakeInvitationRepo()
	events := newFakeEventRepo(invitations)
	reviews := newFakeReviewRepo()

	return &testEnv{
		users:       users,
		contractors: contractors,
		portfolio:   newFakePortfolioRepo(),
		catalog:     newFakeCatalogRepo(),
		events:      events,
		invitations: invitations,
		reviews:     reviews,
		tokens:      newFakeTokenRepo(),
		notifier:    &recordingNotifier{},
		gate:        permissions.NewGate(users, contractors, reviews, events, invitations),
	}
}

func (e *testEnv) addUser(username string, role models.UserRole, active bool) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Name:         username,
		Role:         role,
		IsActive:     active,
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user
}

func (e *testEnv) addContractor(username string, approved bool) *models.Contractor {
	user := e.addUser(username, models.UserRoleContractor, approved)
	e.contractors.nextID++
	contractor := &models.Contractor{
		BaseModel:   models.BaseModel{ID: e.contractors.nextID},
		UserID:      user.ID,
		Photo:       "photo.jpg",
		Description: "description",
		IsApproved:  approved,
		User:        user,
	}
	e.contractors.contractors[contractor.ID] = contractor
	return contractor
}

func (e *testEnv) addEvent(creator *models.User) *models.Event {
	event := &models.Event{
		UserID:      creator.ID,
		OrganizerID: creator.ID,
		Name:        "Summer wedding",
		Location:    "Riverside hall",
		StartTime:   time.Now().Add(24 * time.Hour),
		EndTime:     time.Now().Add(30 * time.Hour),
	}
	if err := e.events.Create(context.Background(), event); err != nil {
		panic(err)
	}
	return event
}

func (e *testEnv) addInvitation(event *models.Event, contractor *models.Contractor, status models.InvitationStatus) *models.EventInvitation {
	invitation := &models.EventInvitation{
		EventID:     event.ID,
		RecipientID: contractor.ID,
		SenderID:    event.UserID,
		Status:      status,
		Event:       event,
		Recipient:   contractor,
	}
	if err := e.invitations.Create(context.Background(), invitation); err != nil {
		panic(err)
	}
	return invitation
}
