package impl

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"
	"time"

	deliverycontext "leadhub/internal/delivery/context"
	"leadhub/internal/domain/entity"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/repository"
	"leadhub/internal/domain/service"
	"leadhub/internal/usecase"
	"leadhub/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Positional columns of the vendor export.
const (
	colVendorName       = 0
	colFullName         = 2
	colAddressLine      = 3
	colCity             = 4
	colState            = 5
	colContactNumber    = 6
	colBusinessCategory = 10
	colZipCode          = 12

	minImportColumns = colZipCode + 1
)

const (
	importCountryName      = "United States Of America"
	importCountryShortName = "USA"
	starterPlanName        = "Single Buy Lead"

	placeholderFirstName  = "Unknown"
	placeholderLastName   = "User"
	placeholderVendorName = "Not Provided"
	placeholderAddress    = "Not provided"
)

var businessPlanItems = []string{
	"60 Buy Leads",
	"More business enquiries by e-mail & call",
	"Higher Listing on GetBizzUsa",
	"Dedicated Account Manager",
	"Comprehensive Lead Management System",
	"Get Buyer Contact details via e-mail & SMS",
}

// baselinePlans are created on the first import and left alone afterwards.
func baselinePlans() []*entity.Subscription {
	return []*entity.Subscription{
		newPlan(starterPlanName, "Minimalistic option for personal use & for your next lead.", 1, 2,
			"1 Buy Lead", "Get Buyer Contact details via e-mail & SMS"),
		newPlan("Monthly Plan", "Standard option for business use & for your next leads.", 60, 50, businessPlanItems...),
		newPlan("Yearly Plan", "Premium option for business use & for your next leads.", 885, 200, businessPlanItems...),
	}
}

func newPlan(name, description string, leads int, price int64, items ...string) *entity.Subscription {
	plan := &entity.Subscription{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		LeadsCount:  leads,
		Price:       decimal.NewFromInt(price),
	}
	for _, item := range items {
		plan.Items = append(plan.Items, entity.SubscriptionItem{ID: uuid.New(), SubscriptionID: plan.ID, Name: item})
	}

	return plan
}

// importFixtures are the shared rows every imported vendor points at.
type importFixtures struct {
	vendorRole  *entity.RoleRecord
	country     *entity.Country
	starterPlan *entity.Subscription
}

// vendorRow is one parsed data row of the export.
type vendorRow struct {
	line             int
	vendorName       string
	firstName        string
	lastName         string
	addressLine      string
	city             string
	state            string
	mobileNumber     string
	businessCategory string
	zipCode          *string
}

// importService implements the ImportUsecase interface.
type importService struct {
	txManager      repository.TransactionManager
	defaultManager usecase.DefaultAddressManager
	hasher         service.PasswordHasher
	metrics        service.MetricsRecorder
	logger         *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DefaultManager usecase.DefaultAddressManager
	Hasher         service.PasswordHasher
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager:      params.TxManager,
		defaultManager: params.DefaultManager,
		hasher:         params.Hasher,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportVendors reads the export, makes sure the shared fixtures exist and then
// onboards every row in its own transaction.
func (srv *importService) ImportVendors(ctx context.Context, caller *entity.Caller, r io.Reader) (*usecase.ImportSummary, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins can import vendors")
	}

	start := time.Now()

	records, err := readRecords(r)
	if err != nil {
		return nil, domainerrors.ErrImportPayloadInvalid.WrapMessage(err.Error())
	}

	fixtures, err := srv.ensureFixtures(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to prepare import fixtures", slog.Any("error", err))

		return nil, err
	}

	summary := &usecase.ImportSummary{}
	for i, record := range records {
		// Line 1 is the header.
		line := i + 2
		summary.Rows++

		row, ok, err := parseVendorRow(line, record)
		if err != nil {
			summary.Failed++
			srv.metrics.ImportRow(service.ImportRowFailed)
			srv.log(ctx).Warn("Rejected import row", slog.Int("line", line), slog.Any("error", err))

			continue
		}
		if !ok {
			summary.Skipped++
			srv.metrics.ImportRow(service.ImportRowSkipped)

			continue
		}

		if err := srv.importRow(ctx, fixtures, row); err != nil {
			summary.Failed++
			srv.metrics.ImportRow(service.ImportRowFailed)
			srv.log(ctx).Warn("Failed to import row", slog.Int("line", line), slog.String("mobileNumber", row.mobileNumber), slog.Any("error", err))

			continue
		}

		summary.Imported++
		srv.metrics.ImportRow(service.ImportRowImported)
	}

	srv.log(ctx).Info("Vendor import finished",
		slog.Int("rows", summary.Rows),
		slog.Int("imported", summary.Imported),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.String("duration", util.FormatDuration(time.Since(start))),
	)

	return summary, nil
}

// readRecords parses the whole CSV and drops the header row.
func readRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse csv")
	}

	nonEmpty := records[:0]
	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		nonEmpty = append(nonEmpty, record)
	}

	if len(nonEmpty) == 0 {
		return nil, nil
	}

	return nonEmpty[1:], nil
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}

// parseVendorRow reports ok=false for rows without a contact number.
func parseVendorRow(line int, record []string) (*vendorRow, bool, error) {
	if len(record) < minImportColumns {
		return nil, false, errors.Errorf("expected at least %d columns, got %d", minImportColumns, len(record))
	}

	field := func(i int) string {
		return strings.TrimSpace(record[i])
	}

	mobileNumber := field(colContactNumber)
	if mobileNumber == "" {
		return nil, false, nil
	}

	firstName, lastName := splitFullName(field(colFullName))
	row := &vendorRow{
		line:             line,
		vendorName:       orDefault(field(colVendorName), placeholderVendorName),
		firstName:        firstName,
		lastName:         lastName,
		addressLine:      orDefault(field(colAddressLine), placeholderAddress),
		city:             field(colCity),
		state:            field(colState),
		mobileNumber:     mobileNumber,
		businessCategory: field(colBusinessCategory),
	}
	if zip := field(colZipCode); zip != "" {
		row.zipCode = &zip
	}

	if row.state == "" || row.city == "" {
		return nil, false, errors.New("state and city are required")
	}

	return row, true, nil
}

// splitFullName takes the first two words of the name, substituting placeholders for missing parts.
func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)

	switch len(parts) {
	case 0:
		return placeholderFirstName, placeholderLastName
	case 1:
		return parts[0], placeholderLastName
	default:
		return parts[0], parts[1]
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// ensureFixtures upserts the vendor role, the default country and the baseline plans.
func (srv *importService) ensureFixtures(ctx context.Context) (*importFixtures, error) {
	fixtures := &importFixtures{}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		refRepo := repos.ReferenceRepo()

		role, err := refRepo.EnsureRole(ctx, entity.RoleVendor)
		if err != nil {
			return errors.Wrap(err, "failed to ensure vendor role")
		}
		fixtures.vendorRole = role

		country, err := refRepo.EnsureCountry(ctx, importCountryName, importCountryShortName)
		if err != nil {
			return errors.Wrap(err, "failed to ensure country")
		}
		fixtures.country = country

		for _, plan := range baselinePlans() {
			created, err := repos.SubscriptionRepo().EnsureSubscription(ctx, plan)
			if err != nil {
				return errors.Wrapf(err, "failed to ensure plan %q", plan.Name)
			}
			if created {
				srv.log(ctx).Info("Created baseline plan", slog.String("plan", plan.Name))
			}
			if plan.Name == starterPlanName {
				fixtures.starterPlan = plan
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure import fixtures")
	}

	return fixtures, nil
}

// importRow onboards one vendor: reference rows, user, default address, vendor and
// the starter plan receipt. Nothing of the row persists when any step fails.
func (srv *importService) importRow(ctx context.Context, fixtures *importFixtures, row *vendorRow) error {
	passwordHash, err := srv.hasher.Hash(row.mobileNumber)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		refRepo := repos.ReferenceRepo()
		now := time.Now()

		var businessCategoryID *uuid.UUID
		if row.businessCategory != "" {
			category, err := refRepo.EnsureBusinessCategory(ctx, row.businessCategory)
			if err != nil {
				return errors.Wrap(err, "failed to ensure business category")
			}
			businessCategoryID = &category.ID
		}

		user, created, err := findOrCreateVendorUser(ctx, repos.UserRepo(), fixtures.vendorRole, row, passwordHash)
		if err != nil {
			return err
		}

		state, err := refRepo.EnsureState(ctx, row.state, fixtures.country.ID)
		if err != nil {
			return errors.Wrap(err, "failed to ensure state")
		}

		city, err := refRepo.EnsureCity(ctx, row.city, state.ID)
		if err != nil {
			return errors.Wrap(err, "failed to ensure city")
		}

		address := &entity.Address{
			ID:             uuid.New(),
			UserID:         user.ID,
			CountryID:      fixtures.country.ID,
			StateID:        state.ID,
			CityID:         city.ID,
			AddressLineOne: row.addressLine,
			ZipCode:        row.zipCode,
			IsDefault:      true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		// A user that already existed may hold a default address that must be demoted first.
		if !created {
			if _, err := srv.defaultManager.EnsureDefault(ctx, repos, user.ID, nil); err != nil {
				return err
			}
		}
		if err := repos.AddressRepo().CreateAddress(ctx, address); err != nil {
			return mapAddressError(err)
		}

		vendor := &entity.Vendor{
			ID:                 uuid.New(),
			UserID:             user.ID,
			AddressID:          &address.ID,
			Name:               row.vendorName,
			BusinessCategoryID: businessCategoryID,
			VendorStatus:       entity.VendorStatusTrial,
			PaymentStatus:      entity.PaymentStatusUnpaid,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := repos.VendorRepo().CreateVendor(ctx, vendor); err != nil {
			return mapVendorError(err)
		}

		receipt := &entity.VendorSubscription{
			ID:             uuid.New(),
			VendorID:       vendor.ID,
			SubscriptionID: fixtures.starterPlan.ID,
			Price:          decimal.Zero,
			PurchasedAt:    now,
		}
		if err := repos.SubscriptionRepo().CreateReceipt(ctx, receipt); err != nil {
			return mapSubscriptionError(err)
		}

		return nil
	})
}

func findOrCreateVendorUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	role *entity.RoleRecord,
	row *vendorRow,
	passwordHash string,
) (*entity.User, bool, error) {
	user, err := userRepo.FindUserByMobileNumber(ctx, row.mobileNumber)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by mobile number")
	}

	now := time.Now()
	user = &entity.User{
		ID:           uuid.New(),
		FirstName:    row.firstName,
		LastName:     row.lastName,
		MobileNumber: row.mobileNumber,
		PasswordHash: passwordHash,
		RoleID:       role.ID,
		IsActive:     true,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		return nil, false, mapUserError(err)
	}

	return user, true, nil
}
