package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dealdesk/deal-management-api/internal/database"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"github.com/dealdesk/deal-management-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CounselHandlerTestSuite defines the test suite for CounselHandler
type CounselHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *CounselHandler
}

// SetupTest runs before each test
func (suite *CounselHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.LawFirm{},
		&models.Attorney{},
		&models.Company{},
		&models.Deal{},
		&models.DealCounsel{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	counselRepo := repository.NewCounselRepository(suite.db)
	dealRepo := repository.NewDealRepository(suite.db)
	counselService := services.NewCounselService(counselRepo, dealRepo, zap.NewNop())
	suite.handler = NewCounselHandler(counselService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *CounselHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *CounselHandlerTestSuite) createTestDeal(name string) *models.Deal {
	user := &models.User{Username: name + "_user", FullName: "Test User", PasswordHash: "x"}
	suite.db.Create(user)

	company := &models.Company{Name: name + " Co"}
	suite.db.Create(company)

	deal := &models.Deal{
		Name:          name,
		ReferenceCode: name + "_REF",
		CompanyID:     company.ID,
		CreatorID:     user.ID,
	}
	suite.db.Create(deal)
	return deal
}

func (suite *CounselHandlerTestSuite) createTestFirm(name string) *models.LawFirm {
	firm := &models.LawFirm{Name: name}
	suite.db.Create(firm)
	return firm
}

func (suite *CounselHandlerTestSuite) createTestAttorney(name string, firmID uint64) *models.Attorney {
	attorney := &models.Attorney{Name: name, LawFirmID: firmID}
	suite.db.Create(attorney)
	return attorney
}

func (suite *CounselHandlerTestSuite) createCounselRow(dealID uint64, role models.CounselRole, firmID uint64, attorneyID *uint64) *models.DealCounsel {
	row := &models.DealCounsel{
		DealID:     dealID,
		Role:       role,
		LawFirmID:  firmID,
		AttorneyID: attorneyID,
	}
	suite.db.Create(row)
	return row
}

func (suite *CounselHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	return c, w
}

// TestListForDeal_Success tests listing a deal's counsel rows
func (suite *CounselHandlerTestSuite) TestListForDeal_Success() {
	deal := suite.createTestDeal("Series B")
	firm := suite.createTestFirm("Harwood & Gray LLP")
	attorney := suite.createTestAttorney("A. Smith", firm.ID)
	attorneyID := attorney.ID
	suite.createCounselRow(deal.ID, models.CounselRoleLead, firm.ID, &attorneyID)

	c, w := suite.createAuthContext("GET", "/api/deals/1/counsels", nil, 1)
	c.Set("deal", *deal)

	suite.handler.ListForDeal(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	counsels := response["counsels"].([]interface{})
	assert.Len(suite.T(), counsels, 1)

	first := counsels[0].(map[string]interface{})
	assert.Equal(suite.T(), string(models.CounselRoleLead), first["role"])
	assert.Equal(suite.T(), "Harwood & Gray LLP", first["law_firm"].(map[string]interface{})["name"])
}

// TestGetWorkingSet_Success tests flattening rows into the editable set
func (suite *CounselHandlerTestSuite) TestGetWorkingSet_Success() {
	deal := suite.createTestDeal("Series B")
	firm := suite.createTestFirm("Harwood & Gray LLP")
	attorney := suite.createTestAttorney("A. Smith", firm.ID)
	attorneyID := attorney.ID
	suite.createCounselRow(deal.ID, models.CounselRoleLead, firm.ID, &attorneyID)
	suite.createCounselRow(deal.ID, models.CounselRoleLead, firm.ID, nil)

	c, w := suite.createAuthContext("GET", "/api/deal-counsels/working-set", nil, 1)
	c.Request.URL.RawQuery = "deal_id=1&role=Lead+Counsel"

	suite.handler.GetWorkingSet(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Entries []map[string]interface{} `json:"entries"`
		Groups  map[string]interface{}   `json:"groups"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Entries, 2)
	assert.Len(suite.T(), response.Groups, 1)
}

// TestGetWorkingSet_InvalidRole tests the working set with an unknown role
func (suite *CounselHandlerTestSuite) TestGetWorkingSet_InvalidRole() {
	suite.createTestDeal("Series B")

	c, w := suite.createAuthContext("GET", "/api/deal-counsels/working-set", nil, 1)
	c.Request.URL.RawQuery = "deal_id=1&role=Main+Counsel"

	suite.handler.GetWorkingSet(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestReplace_Success tests the bulk replace of one role's counsel set
func (suite *CounselHandlerTestSuite) TestReplace_Success() {
	deal := suite.createTestDeal("Series B")
	firm := suite.createTestFirm("Harwood & Gray LLP")
	attorney := suite.createTestAttorney("A. Smith", firm.ID)

	// Pre-existing row for the role that the replace must supersede
	oldFirm := suite.createTestFirm("Old Firm LLP")
	suite.createCounselRow(deal.ID, models.CounselRoleLead, oldFirm.ID, nil)

	// Same firm under another role must survive untouched
	suite.createCounselRow(deal.ID, models.CounselRoleSupporting, oldFirm.ID, nil)

	requestBody := map[string]interface{}{
		"dealId": deal.ID,
		"role":   string(models.CounselRoleLead),
		"entries": []map[string]interface{}{
			{"lawFirmId": firm.ID, "attorneyId": attorney.ID},
			{"lawFirmId": firm.ID, "attorneyId": nil},
		},
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/deal-counsels/replace", body, 1)

	suite.handler.Replace(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var rows []models.DealCounsel
	err := suite.db.Where("deal_id = ? AND role = ?", deal.ID, models.CounselRoleLead).
		Order("id ASC").Find(&rows).Error
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), firm.ID, rows[0].LawFirmID)
	assert.NotNil(suite.T(), rows[0].AttorneyID)
	assert.Nil(suite.T(), rows[1].AttorneyID)

	var supportingCount int64
	suite.db.Model(&models.DealCounsel{}).
		Where("deal_id = ? AND role = ?", deal.ID, models.CounselRoleSupporting).
		Count(&supportingCount)
	assert.Equal(suite.T(), int64(1), supportingCount)
}

// TestReplace_StringIDsCoerced tests that string-typed ids are accepted
func (suite *CounselHandlerTestSuite) TestReplace_StringIDsCoerced() {
	deal := suite.createTestDeal("Series B")
	firm := suite.createTestFirm("Harwood & Gray LLP")

	body := []byte(`{
		"dealId": 1,
		"role": "Lead Counsel",
		"entries": [{"lawFirmId": "1", "attorneyId": null}]
	}`)

	c, w := suite.createAuthContext("POST", "/api/deal-counsels/replace", body, 1)

	suite.handler.Replace(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var rows []models.DealCounsel
	err := suite.db.Where("deal_id = ?", deal.ID).Find(&rows).Error
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), firm.ID, rows[0].LawFirmID)
}

// TestReplace_DropsUnparseableEntries tests that bad ids are dropped, not
// rejected
func (suite *CounselHandlerTestSuite) TestReplace_DropsUnparseableEntries() {
	deal := suite.createTestDeal("Series B")
	suite.createTestFirm("Harwood & Gray LLP")

	body := []byte(`{
		"dealId": 1,
		"role": "Lead Counsel",
		"entries": [
			{"lawFirmId": "oops", "attorneyId": null},
			{"lawFirmId": 1, "attorneyId": null}
		]
	}`)

	c, w := suite.createAuthContext("POST", "/api/deal-counsels/replace", body, 1)

	suite.handler.Replace(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.DealCounsel{}).Where("deal_id = ?", deal.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestReplace_EmptySetClearsRole tests replacing with an empty set
func (suite *CounselHandlerTestSuite) TestReplace_EmptySetClearsRole() {
	deal := suite.createTestDeal("Series B")
	firm := suite.createTestFirm("Harwood & Gray LLP")
	suite.createCounselRow(deal.ID, models.CounselRoleLead, firm.ID, nil)

	body := []byte(`{"dealId": 1, "role": "Lead Counsel", "entries": []}`)

	c, w := suite.createAuthContext("POST", "/api/deal-counsels/replace", body, 1)

	suite.handler.Replace(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.DealCounsel{}).Where("deal_id = ?", deal.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestReplace_DealNotFound tests replacing on a missing deal
func (suite *CounselHandlerTestSuite) TestReplace_DealNotFound() {
	body := []byte(`{"dealId": 9999, "role": "Lead Counsel", "entries": []}`)

	c, w := suite.createAuthContext("POST", "/api/deal-counsels/replace", body, 1)

	suite.handler.Replace(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestReplace_InvalidRole tests replacing with an unknown role
func (suite *CounselHandlerTestSuite) TestReplace_InvalidRole() {
	suite.createTestDeal("Series B")

	body := []byte(`{"dealId": 1, "role": "Main Counsel", "entries": []}`)

	c, w := suite.createAuthContext("POST", "/api/deal-counsels/replace", body, 1)

	suite.handler.Replace(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSuite runs the test suite
func TestCounselHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CounselHandlerTestSuite))
}
