package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var incomeSourceColumns = []string{"id", "user_id", "name", "amount", "created_at", "updated_at", "deleted_at"}

func newIncomeSourceRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewIncomeSourceHandler()
	r := gin.New()
	r.Use(setUserIDMiddleware(userID))
	r.POST("/income-sources", h.Create)
	r.GET("/income-sources", h.List)
	r.PUT("/income-sources/:id", h.Update)
	r.DELETE("/income-sources/:id", h.Delete)
	r.POST("/income-sources/:id/periods", h.RegisterPeriod)
	r.GET("/income-periods", h.ListPeriods)
	return r
}

func TestIncomeSourceHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `income_sources`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	w, resp := doJSON(newIncomeSourceRouter(7), http.MethodPost, "/income-sources", `{"name":"工资","amount":"8000"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["id"])
	assert.Equal(t, float64(7), data["user_id"])
	assert.Equal(t, "8000", data["amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_Create_InvalidAmount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := newIncomeSourceRouter(7)
	for _, body := range []string{
		`{"name":"工资","amount":0}`,
		`{"name":"工资","amount":-5}`,
		`{"name":"工资","amount":"0.004"}`,
		`{"name":"工资"}`,
		`{"amount":100}`,
	} {
		w, _ := doJSON(router, http.MethodPost, "/income-sources", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestIncomeSourceHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `income_sources` WHERE user_id IN \\(\\?,\\?\\)").
		WithArgs(0, 7).
		WillReturnRows(sqlmock.NewRows(incomeSourceColumns).
			AddRow(1, 0, "默认收入", "3000.00", now, now, nil).
			AddRow(2, 7, "工资", "8000.00", now, now, nil))

	w, resp := doJSON(newIncomeSourceRouter(7), http.MethodGet, "/income-sources", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "默认收入", data[0].(map[string]interface{})["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `income_sources`").
		WithArgs(2, 7).
		WillReturnRows(sqlmock.NewRows(incomeSourceColumns).
			AddRow(2, 7, "工资", "8000.00", now, now, nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `income_sources` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, resp := doJSON(newIncomeSourceRouter(7), http.MethodPut, "/income-sources/2", `{"amount":"9000.5"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "9000.5", data["amount"])
	assert.Equal(t, "工资", data["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_Update_RoundsToZero(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 四舍五入到分后为 0 的金额在查库前被拒绝
	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodPut, "/income-sources/2", `{"amount":"0.004"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_Update_NotOwner(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 管理员共享的收入来源对普通用户只读
	mock.ExpectQuery("SELECT \\* FROM `income_sources`").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows(incomeSourceColumns))

	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodPut, "/income-sources/1", `{"name":"改名"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `income_sources` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodDelete, "/income-sources/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `income_sources` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodDelete, "/income-sources/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_InvalidID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodDelete, "/income-sources/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIncomeSourceHandler_RegisterPeriod(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `income_sources`").
		WithArgs(1, 0, 7).
		WillReturnRows(sqlmock.NewRows(incomeSourceColumns).
			AddRow(1, 0, "默认收入", "3000.00", now, now, nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `income_source_periods`").
		WithArgs(1, 7, 3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `income_source_periods`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	w, resp := doJSON(newIncomeSourceRouter(7), http.MethodPost, "/income-sources/1/periods", `{"month":3,"year":2024}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(11), data["id"])
	assert.Equal(t, float64(7), data["user_id"])
	assert.Equal(t, "默认收入", data["income_source"].(map[string]interface{})["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_RegisterPeriod_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `income_sources`").
		WillReturnRows(sqlmock.NewRows(incomeSourceColumns).
			AddRow(2, 7, "工资", "8000.00", now, now, nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `income_source_periods`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodPost, "/income-sources/2/periods", `{"month":3,"year":2024}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_RegisterPeriod_InvalidMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodPost, "/income-sources/2/periods", `{"month":13,"year":2024}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIncomeSourceHandler_RegisterPeriod_SourceNotVisible(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `income_sources`").
		WillReturnRows(sqlmock.NewRows(incomeSourceColumns))

	w, _ := doJSON(newIncomeSourceRouter(7), http.MethodPost, "/income-sources/9/periods", `{"month":3,"year":2024}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeSourceHandler_ListPeriods(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	old := timeNow
	timeNow = func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }
	defer func() { timeNow = old }()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `income_source_periods`").
		WithArgs(0, 7, 3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"id", "income_source_id", "year", "month", "user_id", "created_at"}).
			AddRow(1, 1, 2024, 3, 0, now).
			AddRow(2, 2, 2024, 3, 7, now.Add(time.Minute)))
	mock.ExpectQuery("SELECT \\* FROM `income_sources`").
		WillReturnRows(sqlmock.NewRows(incomeSourceColumns).
			AddRow(1, 0, "默认收入", "3000.00", now, now, nil).
			AddRow(2, 7, "工资", "8000.00", now, now, nil))

	w, resp := doJSON(newIncomeSourceRouter(7), http.MethodGet, "/income-periods", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "工资", data[1].(map[string]interface{})["income_source"].(map[string]interface{})["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}
