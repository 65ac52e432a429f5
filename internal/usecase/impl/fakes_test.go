package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"
	"leadhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory implementation of every repository. It enforces the
// same constraints as the schema that matter to the use cases: one default
// address per user, unique natural keys and a non-negative credit balance.
type memStore struct {
	mu sync.Mutex

	users              map[uuid.UUID]entity.User
	roles              map[entity.Role]entity.RoleRecord
	addresses          map[uuid.UUID]entity.Address
	countries          map[uuid.UUID]entity.Country
	states             map[uuid.UUID]entity.State
	cities             map[uuid.UUID]entity.City
	districts          map[uuid.UUID]entity.District
	businessCategories map[uuid.UUID]entity.BusinessCategory
	categories         map[uuid.UUID]entity.Category
	products           map[uuid.UUID]entity.Product
	vendors            map[uuid.UUID]entity.Vendor
	subscriptions      map[uuid.UUID]entity.Subscription
	receipts           []entity.VendorSubscription
	leads              map[uuid.UUID]entity.Lead
	messages           []entity.Message

	// failures makes the named method return the error.
	failures map[string]error
	// commits counts successful transactions.
	commits int
}

var (
	_ repository.TransactionManager     = (*memStore)(nil)
	_ repository.RepositoryFactory      = (*memStore)(nil)
	_ repository.UserRepository         = (*memStore)(nil)
	_ repository.AddressRepository      = (*memStore)(nil)
	_ repository.VendorRepository       = (*memStore)(nil)
	_ repository.SubscriptionRepository = (*memStore)(nil)
	_ repository.LeadRepository         = (*memStore)(nil)
	_ repository.ProductRepository      = (*memStore)(nil)
	_ repository.MessageRepository      = (*memStore)(nil)
	_ repository.ReferenceRepository    = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		users:              map[uuid.UUID]entity.User{},
		roles:              map[entity.Role]entity.RoleRecord{},
		addresses:          map[uuid.UUID]entity.Address{},
		countries:          map[uuid.UUID]entity.Country{},
		states:             map[uuid.UUID]entity.State{},
		cities:             map[uuid.UUID]entity.City{},
		districts:          map[uuid.UUID]entity.District{},
		businessCategories: map[uuid.UUID]entity.BusinessCategory{},
		categories:         map[uuid.UUID]entity.Category{},
		products:           map[uuid.UUID]entity.Product{},
		vendors:            map[uuid.UUID]entity.Vendor{},
		subscriptions:      map[uuid.UUID]entity.Subscription{},
		leads:              map[uuid.UUID]entity.Lead{},
		failures:           map[string]error{},
	}
}

func (s *memStore) failOn(method string, err error) {
	s.failures[method] = err
}

func (s *memStore) fail(method string) error {
	return s.failures[method]
}

// --- TransactionManager ---

func (s *memStore) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	snapshot := s.clone()

	if err := fn(s); err != nil {
		s.restore(snapshot)

		return err
	}
	s.commits++

	return nil
}

func (s *memStore) clone() *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &memStore{
		users:              maps.Clone(s.users),
		roles:              maps.Clone(s.roles),
		addresses:          maps.Clone(s.addresses),
		countries:          maps.Clone(s.countries),
		states:             maps.Clone(s.states),
		cities:             maps.Clone(s.cities),
		districts:          maps.Clone(s.districts),
		businessCategories: maps.Clone(s.businessCategories),
		categories:         maps.Clone(s.categories),
		products:           maps.Clone(s.products),
		vendors:            maps.Clone(s.vendors),
		subscriptions:      maps.Clone(s.subscriptions),
		receipts:           slices.Clone(s.receipts),
		leads:              maps.Clone(s.leads),
		messages:           slices.Clone(s.messages),
	}
}

func (s *memStore) restore(snapshot *memStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snapshot.users
	s.roles = snapshot.roles
	s.addresses = snapshot.addresses
	s.countries = snapshot.countries
	s.states = snapshot.states
	s.cities = snapshot.cities
	s.districts = snapshot.districts
	s.businessCategories = snapshot.businessCategories
	s.categories = snapshot.categories
	s.products = snapshot.products
	s.vendors = snapshot.vendors
	s.subscriptions = snapshot.subscriptions
	s.receipts = snapshot.receipts
	s.leads = snapshot.leads
	s.messages = snapshot.messages
}

// --- RepositoryFactory ---

func (s *memStore) UserRepo() repository.UserRepository                 { return s }
func (s *memStore) AddressRepo() repository.AddressRepository           { return s }
func (s *memStore) VendorRepo() repository.VendorRepository             { return s }
func (s *memStore) SubscriptionRepo() repository.SubscriptionRepository { return s }
func (s *memStore) LeadRepo() repository.LeadRepository                 { return s }
func (s *memStore) ProductRepo() repository.ProductRepository           { return s }
func (s *memStore) MessageRepo() repository.MessageRepository           { return s }
func (s *memStore) ReferenceRepo() repository.ReferenceRepository       { return s }

// --- UserRepository ---

func (s *memStore) CreateUser(ctx context.Context, user *entity.User) error {
	if err := s.fail("CreateUser"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.MobileNumber == user.MobileNumber {
			return repository.ErrUserAlreadyExists
		}
	}
	s.users[user.ID] = *user

	return nil
}

func (s *memStore) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (s *memStore) FindUserByMobileNumber(ctx context.Context, mobileNumber string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.MobileNumber == mobileNumber {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// --- AddressRepository ---

func (s *memStore) otherDefaultExists(userID, exceptID uuid.UUID) bool {
	for _, address := range s.addresses {
		if address.UserID == userID && address.IsDefault && address.ID != exceptID {
			return true
		}
	}

	return false
}

func (s *memStore) CreateAddress(ctx context.Context, address *entity.Address) error {
	if err := s.fail("CreateAddress"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if address.IsDefault && s.otherDefaultExists(address.UserID, address.ID) {
		return repository.ErrDefaultAddressConflict
	}
	s.addresses[address.ID] = *address

	return nil
}

func (s *memStore) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	address, ok := s.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	return &address, nil
}

func (s *memStore) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*entity.Address
	for _, address := range s.addresses {
		if address.UserID == userID {
			result = append(result, &address)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (s *memStore) FindDefaultAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, address := range s.addresses {
		if address.UserID == userID && address.IsDefault {
			return &address, nil
		}
	}

	return nil, repository.ErrAddressNotFound
}

func (s *memStore) UpdateAddress(ctx context.Context, address *entity.Address) error {
	if err := s.fail("UpdateAddress"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.addresses[address.ID]; !ok {
		return repository.ErrAddressNotFound
	}
	if address.IsDefault && s.otherDefaultExists(address.UserID, address.ID) {
		return repository.ErrDefaultAddressConflict
	}
	s.addresses[address.ID] = *address

	return nil
}

func (s *memStore) SetDefault(ctx context.Context, id uuid.UUID, isDefault bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	address, ok := s.addresses[id]
	if !ok {
		return repository.ErrAddressNotFound
	}
	if isDefault && s.otherDefaultExists(address.UserID, id) {
		return repository.ErrDefaultAddressConflict
	}
	address.IsDefault = isDefault
	s.addresses[id] = address

	return nil
}

func (s *memStore) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.addresses[id]; !ok {
		return repository.ErrAddressNotFound
	}
	delete(s.addresses, id)

	return nil
}

// --- VendorRepository ---

func (s *memStore) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	if err := s.fail("CreateVendor"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vendors[vendor.ID] = *vendor

	return nil
}

func (s *memStore) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendor, ok := s.vendors[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}

	return &vendor, nil
}

func (s *memStore) FindVendorsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []*entity.Vendor{}
	for _, vendor := range s.vendors {
		if vendor.UserID == userID {
			result = append(result, &vendor)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (s *memStore) AddCredits(ctx context.Context, id uuid.UUID, credits int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendor, ok := s.vendors[id]
	if !ok {
		return repository.ErrVendorNotFound
	}
	vendor.LeadsCount += credits
	s.vendors[id] = vendor

	return nil
}

func (s *memStore) ConsumeCredit(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendor, ok := s.vendors[id]
	if !ok {
		return repository.ErrVendorNotFound
	}
	if vendor.LeadsCount < 1 {
		return repository.ErrInsufficientCredits
	}
	vendor.LeadsCount--
	vendor.LeadsConsumed++
	s.vendors[id] = vendor

	return nil
}

// --- SubscriptionRepository ---

func (s *memStore) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subscriptions {
		if existing.Name == subscription.Name {
			return repository.ErrDuplicateSubscription
		}
	}
	s.subscriptions[subscription.ID] = *subscription

	return nil
}

func (s *memStore) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscription, ok := s.subscriptions[id]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}

	return &subscription, nil
}

func (s *memStore) FindSubscriptionByName(ctx context.Context, name string) (*entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, subscription := range s.subscriptions {
		if subscription.Name == name {
			return &subscription, nil
		}
	}

	return nil, repository.ErrSubscriptionNotFound
}

func (s *memStore) EnsureSubscription(ctx context.Context, subscription *entity.Subscription) (bool, error) {
	if err := s.fail("EnsureSubscription"); err != nil {
		return false, err
	}
	existing, err := s.FindSubscriptionByName(ctx, subscription.Name)
	if err == nil {
		*subscription = *existing

		return false, nil
	}

	return true, s.CreateSubscription(ctx, subscription)
}

func (s *memStore) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	if err := s.fail("ListSubscriptions"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []*entity.Subscription{}
	for _, subscription := range s.subscriptions {
		result = append(result, &subscription)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price.LessThan(result[j].Price)
	})

	return result, nil
}

func (s *memStore) CreateReceipt(ctx context.Context, receipt *entity.VendorSubscription) error {
	if err := s.fail("CreateReceipt"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receipts = append(s.receipts, *receipt)

	return nil
}

func (s *memStore) FindReceiptsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*entity.VendorSubscription
	for i := len(s.receipts) - 1; i >= 0; i-- {
		receipt := s.receipts[i]
		if receipt.VendorID != vendorID {
			continue
		}
		if subscription, ok := s.subscriptions[receipt.SubscriptionID]; ok {
			receipt.Subscription = &subscription
		}
		result = append(result, &receipt)
	}

	return result, nil
}

// --- LeadRepository ---

func (s *memStore) CreateLead(ctx context.Context, lead *entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads[lead.ID] = *lead

	return nil
}

func (s *memStore) FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, repository.ErrLeadNotFound
	}

	return &lead, nil
}

func (s *memStore) ClaimLead(ctx context.Context, id, vendorID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return repository.ErrLeadNotFound
	}
	if lead.VendorID != nil {
		return repository.ErrLeadAlreadyClaimed
	}
	lead.VendorID = &vendorID
	s.leads[id] = lead

	return nil
}

func (s *memStore) ListLeads(ctx context.Context, filter repository.LeadFilter, page repository.Pagination) ([]*entity.Lead, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page = page.Normalize(repository.LeadOrderColumns...)

	var matched []*entity.Lead
	for _, lead := range s.leads {
		switch {
		case filter.VendorID == nil && lead.VendorID != nil:
			continue
		case filter.VendorID != nil && (lead.VendorID == nil || *lead.VendorID != *filter.VendorID):
			continue
		case filter.BusinessCategoryID != nil && lead.BusinessCategoryID != *filter.BusinessCategoryID:
			continue
		case filter.Search != "" && (lead.Description == nil || !strings.Contains(strings.ToLower(*lead.Description), strings.ToLower(filter.Search))):
			continue
		}
		matched = append(matched, &lead)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if page.Skip >= len(matched) {
		return []*entity.Lead{}, total, nil
	}

	return matched[page.Skip:min(page.Skip+page.Take, len(matched))], total, nil
}

// --- ProductRepository ---

func (s *memStore) CreateProduct(ctx context.Context, product *entity.Product) error {
	if err := s.fail("CreateProduct"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[product.CategoryID]; !ok {
		return repository.ErrCategoryNotFound
	}
	s.products[product.ID] = *product

	return nil
}

func (s *memStore) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	if category, ok := s.categories[product.CategoryID]; ok {
		product.Category = &category
	}

	return &product, nil
}

func (s *memStore) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return &category, nil
}

func (s *memStore) PriceRangeByCategory(ctx context.Context, categoryID uuid.UUID) (*repository.PriceRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		priceRange *repository.PriceRange
	)
	for _, product := range s.products {
		if product.CategoryID != categoryID {
			continue
		}
		if priceRange == nil {
			priceRange = &repository.PriceRange{Min: product.Price, Max: product.Price}

			continue
		}
		if product.Price.LessThan(priceRange.Min) {
			priceRange.Min = product.Price
		}
		if product.Price.GreaterThan(priceRange.Max) {
			priceRange.Max = product.Price
		}
	}
	if priceRange == nil {
		return nil, repository.ErrProductNotFound
	}

	return priceRange, nil
}

// --- MessageRepository ---

func (s *memStore) CreateMessage(ctx context.Context, message *entity.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, *message)

	return nil
}

func (s *memStore) LatestPerDirectedPair(ctx context.Context, filter repository.HistoryFilter, page repository.Pagination) ([]*entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type directedPair struct{ sender, recipient uuid.UUID }
	latest := map[directedPair]entity.Message{}
	for _, message := range s.messages {
		if filter.PartyID != nil && message.SenderUserID != *filter.PartyID && message.RecipientUserID != *filter.PartyID {
			continue
		}
		key := directedPair{message.SenderUserID, message.RecipientUserID}
		if current, ok := latest[key]; !ok || message.CreatedAt.After(current.CreatedAt) {
			latest[key] = message
		}
	}

	result := make([]*entity.Message, 0, len(latest))
	for _, message := range latest {
		result = append(result, &message)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if page.Take > 0 {
		result = window(result, page.Skip, page.Take)
	}

	return result, nil
}

func (s *memStore) ListConversation(ctx context.Context, filter repository.ConversationFilter, page repository.Pagination) ([]*entity.Message, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page = page.Normalize(repository.MessageOrderColumns...)

	var matched []*entity.Message
	for _, message := range s.messages {
		between := (message.SenderUserID == filter.UserIDOne && message.RecipientUserID == filter.UserIDTwo) ||
			(message.SenderUserID == filter.UserIDTwo && message.RecipientUserID == filter.UserIDOne)
		if !between {
			continue
		}
		matched = append(matched, &message)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return window(matched, page.Skip, page.Take), int64(len(matched)), nil
}

// --- ReferenceRepository ---

func (s *memStore) EnsureRole(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, ok := s.roles[name]
	if !ok {
		role = entity.RoleRecord{ID: uuid.New(), Name: name}
		s.roles[name] = role
	}

	return &role, nil
}

func (s *memStore) EnsureCountry(ctx context.Context, name, shortName string) (*entity.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, country := range s.countries {
		if country.Name == name {
			return &country, nil
		}
	}
	country := entity.Country{ID: uuid.New(), Name: name, ShortName: shortName}
	s.countries[country.ID] = country

	return &country, nil
}

func (s *memStore) EnsureState(ctx context.Context, name string, countryID uuid.UUID) (*entity.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, state := range s.states {
		if state.Name == name {
			return &state, nil
		}
	}
	state := entity.State{ID: uuid.New(), Name: name, CountryID: countryID}
	s.states[state.ID] = state

	return &state, nil
}

func (s *memStore) EnsureCity(ctx context.Context, name string, stateID uuid.UUID) (*entity.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, city := range s.cities {
		if city.Name == name && city.StateID == stateID {
			return &city, nil
		}
	}
	city := entity.City{ID: uuid.New(), Name: name, StateID: stateID}
	s.cities[city.ID] = city

	return &city, nil
}

func (s *memStore) EnsureBusinessCategory(ctx context.Context, name string) (*entity.BusinessCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, category := range s.businessCategories {
		if category.Name == name {
			return &category, nil
		}
	}
	category := entity.BusinessCategory{ID: uuid.New(), Name: name}
	s.businessCategories[category.ID] = category

	return &category, nil
}

func (s *memStore) FindCountryByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	return findReference(&s.mu, s.countries, id)
}

func (s *memStore) FindStateByID(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	return findReference(&s.mu, s.states, id)
}

func (s *memStore) FindCityByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	return findReference(&s.mu, s.cities, id)
}

func (s *memStore) FindDistrictByID(ctx context.Context, id uuid.UUID) (*entity.District, error) {
	return findReference(&s.mu, s.districts, id)
}

func findReference[T any](mu *sync.Mutex, rows map[uuid.UUID]T, id uuid.UUID) (*T, error) {
	mu.Lock()
	defer mu.Unlock()

	row, ok := rows[id]
	if !ok {
		return nil, repository.ErrReferenceNotFound
	}

	return &row, nil
}

// --- seed helpers ---

func (s *memStore) seedUser(mobile string) *entity.User {
	user := entity.User{ID: uuid.New(), FirstName: "Test", LastName: "User", MobileNumber: mobile, IsActive: true}
	s.users[user.ID] = user

	return &user
}

type seededLocation struct {
	countryID uuid.UUID
	stateID   uuid.UUID
	cityID    uuid.UUID
}

func (s *memStore) seedLocation() seededLocation {
	country := entity.Country{ID: uuid.New(), Name: "United States Of America", ShortName: "USA"}
	state := entity.State{ID: uuid.New(), Name: "Texas", CountryID: country.ID}
	city := entity.City{ID: uuid.New(), Name: "Austin", StateID: state.ID}
	s.countries[country.ID] = country
	s.states[state.ID] = state
	s.cities[city.ID] = city

	return seededLocation{countryID: country.ID, stateID: state.ID, cityID: city.ID}
}

func (s *memStore) defaultsOf(userID uuid.UUID) []entity.Address {
	var defaults []entity.Address
	for _, address := range s.addresses {
		if address.UserID == userID && address.IsDefault {
			defaults = append(defaults, address)
		}
	}

	return defaults
}

// --- collaborators ---

type mockPublisher struct {
	mock.Mock
}

var _ service.EventPublisher = (*mockPublisher)(nil)

func (m *mockPublisher) Enqueue(ctx context.Context, job *service.Job) error {
	args := m.Called(ctx, job)

	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

type mockHasher struct {
	mock.Mock
}

var _ service.PasswordHasher = (*mockHasher)(nil)

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockImageStorage struct {
	mock.Mock
}

var _ service.ImageStorage = (*mockImageStorage)(nil)

func (m *mockImageStorage) Upload(ctx context.Context, dataURL, key, folder string) (string, error) {
	args := m.Called(ctx, dataURL, key, folder)

	return args.String(0), args.Error(1)
}

func (m *mockImageStorage) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

// metricsSpy counts recorder calls.
type metricsSpy struct {
	purchased  int
	consumed   int
	rejections map[string]int
	leads      int
	importRows map[string]int
}

var _ service.MetricsRecorder = (*metricsSpy)(nil)

func newMetricsSpy() *metricsSpy {
	return &metricsSpy{rejections: map[string]int{}, importRows: map[string]int{}}
}

func (m *metricsSpy) CreditsPurchased(credits int)  { m.purchased += credits }
func (m *metricsSpy) CreditConsumed()               { m.consumed++ }
func (m *metricsSpy) ContactRejected(reason string) { m.rejections[reason]++ }
func (m *metricsSpy) LeadCreated()                  { m.leads++ }
func (m *metricsSpy) ImportRow(result string)       { m.importRows[result]++ }

func ptr[T any](v T) *T {
	return &v
}
