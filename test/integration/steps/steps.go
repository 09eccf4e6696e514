// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leviis10/old-money/internal/application/usecase/budget"
	"github.com/leviis10/old-money/internal/application/usecase/budgetconfig"
	"github.com/leviis10/old-money/internal/application/usecase/category"
	"github.com/leviis10/old-money/internal/application/usecase/transaction"
	"github.com/leviis10/old-money/internal/application/usecase/wallet"
	"github.com/leviis10/old-money/internal/infra/server/router"
	"github.com/leviis10/old-money/internal/integration/adapters"
	"github.com/leviis10/old-money/internal/integration/entrypoint/controller"
	"github.com/leviis10/old-money/internal/integration/entrypoint/middleware"
	"github.com/leviis10/old-money/internal/integration/persistence"
	"github.com/leviis10/old-money/internal/integration/persistence/model"
	"github.com/leviis10/old-money/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

const revokedKeyPrefix = "revoked_token:"

type testContext struct {
	uri     string
	headers map[string]string
	client  *http.Client

	response *response

	db    *mock.Db
	redis *redis.Client

	accessToken string

	currentUserID         uuid.UUID
	currentWalletID       uuid.UUID
	secondWalletID        uuid.UUID
	currentCategoryID     uuid.UUID
	currentBudgetID       uuid.UUID
	currentBudgetConfigID uuid.UUID
	lastTransactionID     uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var portInit sync.Once
var testServerPort int
var testDB *mock.Db
var testRedis *redis.Client

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeTestSuite configures global suite resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers every step definition.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"wallets":        &model.WalletModel{},
			"categories":     &model.CategoryModel{},
			"budget_configs": &model.BudgetConfigModel{},
			"budgets":        &model.BudgetModel{},
			"transactions":   &model.TransactionModel{},
		}),
		redis: mock.NewRedis(),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a user exists with username "([^"]*)"$`, test.aUserExistsWithUsername)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^the access token has been revoked$`, test.theAccessTokenHasBeenRevoked)
	ctx.Given(`^a wallet exists with name "([^"]*)" and balance "([^"]*)"$`, test.aWalletExistsWithNameAndBalance)
	ctx.Given(`^another wallet exists with name "([^"]*)" and balance "([^"]*)"$`, test.anotherWalletExistsWithNameAndBalance)
	ctx.Given(`^a category exists with name "([^"]*)"$`, test.aCategoryExistsWithName)
	ctx.Given(`^a budget exists with name "([^"]*)" and limit "([^"]*)"$`, test.aBudgetExistsWithNameAndLimit)
	ctx.Given(`^a budget config exists with name "([^"]*)" and repetition "([^"]*)"$`, test.aBudgetConfigExistsWithNameAndRepetition)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.currentUserID = uuid.Nil
	t.currentWalletID = uuid.Nil
	t.secondWalletID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.currentBudgetConfigID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			walletRepo := persistence.NewWalletRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			budgetConfigRepo := persistence.NewBudgetConfigRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			uow := persistence.NewUnitOfWork(testDB.DbConn)

			tokenService := adapters.NewTokenService(testJWTSecret, testRedis)

			listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
			getWalletUseCase := wallet.NewGetWalletUseCase(walletRepo)
			createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)
			updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo)
			deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo)

			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
			getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
			createBudgetUseCase := budget.NewCreateBudgetUseCase(uow)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

			listBudgetConfigsUseCase := budgetconfig.NewListBudgetConfigsUseCase(budgetConfigRepo)
			getBudgetConfigUseCase := budgetconfig.NewGetBudgetConfigUseCase(budgetConfigRepo)
			createBudgetConfigUseCase := budgetconfig.NewCreateBudgetConfigUseCase(budgetConfigRepo)
			updateBudgetConfigUseCase := budgetconfig.NewUpdateBudgetConfigUseCase(budgetConfigRepo)
			deleteBudgetConfigUseCase := budgetconfig.NewDeleteBudgetConfigUseCase(budgetConfigRepo)

			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(uow)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(uow)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(uow)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			walletController := controller.NewWalletController(
				listWalletsUseCase,
				getWalletUseCase,
				createWalletUseCase,
				updateWalletUseCase,
				deleteWalletUseCase,
			)
			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)
			budgetController := controller.NewBudgetController(
				listBudgetsUseCase,
				getBudgetUseCase,
				createBudgetUseCase,
				updateBudgetUseCase,
				deleteBudgetUseCase,
			)
			budgetConfigController := controller.NewBudgetConfigController(
				listBudgetConfigsUseCase,
				getBudgetConfigUseCase,
				createBudgetConfigUseCase,
				updateBudgetConfigUseCase,
				deleteBudgetConfigUseCase,
			)
			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				getTransactionUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)

			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				walletController,
				categoryController,
				budgetController,
				budgetConfigController,
				transactionController,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithUsername(username string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:        userID,
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(user).Error
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"username":   "test-user",
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = signed
	return nil
}

func (t *testContext) theAccessTokenHasBeenRevoked() error {
	if t.accessToken == "" {
		return errors.New("no access token to revoke")
	}
	return t.redis.Set(context.TODO(), revokedKeyPrefix+t.accessToken, "revoked", 0).Err()
}

func (t *testContext) aWalletExistsWithNameAndBalance(name, balance string) error {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	walletID := uuid.New()
	t.currentWalletID = walletID

	now := time.Now().UTC()
	walletModel := &model.WalletModel{
		ID:        walletID,
		UserID:    t.currentUserID,
		Name:      name,
		Balance:   amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(walletModel).Error
}

func (t *testContext) anotherWalletExistsWithNameAndBalance(name, balance string) error {
	keep := t.currentWalletID
	if err := t.aWalletExistsWithNameAndBalance(name, balance); err != nil {
		return err
	}
	t.secondWalletID = t.currentWalletID
	t.currentWalletID = keep
	return nil
}

func (t *testContext) aCategoryExistsWithName(name string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aBudgetExistsWithNameAndLimit(name, limit string) error {
	amount, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	budgetModel := &model.BudgetModel{
		ID:            budgetID,
		UserID:        t.currentUserID,
		Name:          name,
		StartDate:     start,
		EndDate:       end,
		Limit:         amount,
		CurrentAmount: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) aBudgetConfigExistsWithNameAndRepetition(name, repetition string) error {
	configID := uuid.New()
	t.currentBudgetConfigID = configID

	now := time.Now().UTC()
	configModel := &model.BudgetConfigModel{
		ID:             configID,
		UserID:         t.currentUserID,
		Name:           name,
		Limit:          decimal.RequireFromString("500"),
		RepetitionType: repetition,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return t.db.DbConn.Create(configModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{wallet_id}}", t.currentWalletID.String())
	content = strings.ReplaceAll(content, "{{second_wallet_id}}", t.secondWalletID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{budget_config_id}}", t.currentBudgetConfigID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)
	return nil
}

// captureIDs remembers the id of a freshly created resource so later steps
// can reference it through path placeholders. The resource kind is inferred
// from fields only that kind carries.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasField(body, "flow_direction"):
		t.lastTransactionID = id
	case hasField(body, "current_amount"):
		t.currentBudgetID = id
	case hasField(body, "repetition_type"):
		t.currentBudgetConfigID = id
	case hasField(body, "balance"):
		t.currentWalletID = id
	}
}

func hasField(body map[string]any, field string) bool {
	_, ok := body[field]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	raw, err := json.Marshal(t.response.body)
	if err != nil {
		return err
	}
	if !strings.Contains(string(raw), expected) {
		return fmt.Errorf("response does not contain %q: %s", expected, raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

// countRows counts rows in a table, soft-deleted rows included, optionally
// filtered by column value criteria.
func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(slicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q (criteria %v), got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	objectMap, ok := object.(map[string]any)
	if !ok {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
