package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/api/handlers"
	"sale-company-api-server/internal/models"
)

func newJobEnv() *testEnv {
	env := newTestEnv()
	h := &handlers.JobOpeningHandler{Store: env.stores.JobOpenings, Logger: env.logger}
	env.router.GET("/job-openings", h.ListJobOpenings)
	env.router.GET("/job-openings/:id", h.GetJobOpening)
	env.router.POST("/job-openings", h.CreateJobOpening)
	env.router.PUT("/job-openings/:id", h.UpdateJobOpening)
	env.router.DELETE("/job-openings/:id", h.DeleteJobOpening)
	return env
}

func validJobBody() map[string]any {
	return map[string]any{
		"title":        "Nhân viên kinh doanh",
		"description":  "Phụ trách khu vực miền Nam",
		"requirements": "Tốt nghiệp THPT trở lên",
		"salaryText":   "8-12 triệu",
		"quantityText": "03 người",
		"location":     "TP. Hồ Chí Minh",
		"experience":   "1 năm",
		"deadline":     "2026-12-31",
	}
}

func TestCreateJobOpeningDefaultsToActive(t *testing.T) {
	env := newJobEnv()

	w := env.do(t, http.MethodPost, "/job-openings", validJobBody())

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, models.JobStatusActive, data["status"])
	assert.NotEmpty(t, data["postedAt"])
}

func TestCreateJobOpeningAcceptsRFC3339Deadline(t *testing.T) {
	env := newJobEnv()

	body := validJobBody()
	body["deadline"] = time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339)
	w := env.do(t, http.MethodPost, "/job-openings", body)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateJobOpeningRejectsBadInput(t *testing.T) {
	env := newJobEnv()

	body := validJobBody()
	body["deadline"] = "31/12/2026"
	w := env.do(t, http.MethodPost, "/job-openings", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = validJobBody()
	body["status"] = "archived"
	w = env.do(t, http.MethodPost, "/job-openings", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = validJobBody()
	delete(body, "title")
	w = env.do(t, http.MethodPost, "/job-openings", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListJobOpeningsStatusFilterAndLimit(t *testing.T) {
	env := newJobEnv()

	for _, job := range []models.JobOpening{
		{Title: "Kế toán", Status: models.JobStatusActive},
		{Title: "Thủ kho", Status: models.JobStatusClosed},
		{Title: "Tài xế", Status: models.JobStatusActive},
	} {
		j := job
		j.Description = "mô tả"
		j.Requirements = "yêu cầu"
		require.NoError(t, env.stores.JobOpenings.Create(testCtx(), &j))
	}

	w := env.do(t, http.MethodGet, "/job-openings?status=active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := listOf(t, w)
	require.Len(t, list, 2)
	// postedAt giảm dần: tin mới đăng lên đầu.
	assert.Equal(t, "Tài xế", list[0].(map[string]any)["title"])

	w = env.do(t, http.MethodGet, "/job-openings?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, listOf(t, w), 1)

	w = env.do(t, http.MethodGet, "/job-openings?limit=-2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateJobOpeningStatus(t *testing.T) {
	env := newJobEnv()

	job := &models.JobOpening{Title: "Sắp đóng", Status: models.JobStatusActive}
	require.NoError(t, env.stores.JobOpenings.Create(testCtx(), job))

	w := env.do(t, http.MethodPut, "/job-openings/"+job.ID.Hex(), map[string]any{"status": "closed"})

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, models.JobStatusClosed, data["status"])
	assert.Equal(t, "Sắp đóng", data["title"])
}

func TestDeleteJobOpening(t *testing.T) {
	env := newJobEnv()

	job := &models.JobOpening{Title: "Hết hạn"}
	require.NoError(t, env.stores.JobOpenings.Create(testCtx(), job))

	w := env.do(t, http.MethodDelete, "/job-openings/"+job.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/job-openings/"+job.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/job-openings/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
