package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TerraNebular-Backend/internal/domain/model"
)

type stubAskUseCase struct {
	result  *model.AskResult
	err     error
	lastReq *model.AskRequest
}

func (s *stubAskUseCase) Ask(ctx context.Context, req *model.AskRequest) (*model.AskResult, error) {
	s.lastReq = req
	return s.result, s.err
}

func (s *stubAskUseCase) SweepCache(ctx context.Context) (int64, error) {
	return 0, nil
}

func setupAskRouter(uc *stubAskUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/ai/question", NewAskHandler(uc).AskQuestion)
	return r
}

func postQuestion(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/question", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAskQuestion_Success(t *testing.T) {
	uc := &stubAskUseCase{
		result: &model.AskResult{
			Response: "YES, permitted.",
			ZoneName: "C1-Mixed use zone",
		},
	}
	r := setupAskRouter(uc)

	w := postQuestion(r, `{"question":"Can I open a shop?","lat":-1.9536,"lng":30.0606,"language":"en"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var result model.AskResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "YES, permitted.", result.Response)

	// The handler fills in client attribution before delegating.
	require.NotNil(t, uc.lastReq)
	assert.NotEmpty(t, uc.lastReq.IPAddress)
}

func TestAskQuestion_InvalidJSON(t *testing.T) {
	r := setupAskRouter(&stubAskUseCase{})

	w := postQuestion(r, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskQuestion_MissingQuestion(t *testing.T) {
	r := setupAskRouter(&stubAskUseCase{})

	w := postQuestion(r, `{"question":"   ","lat":-1.95,"lng":30.06}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing_parameter", body["error"])
}

func TestAskQuestion_QuestionTooLong(t *testing.T) {
	r := setupAskRouter(&stubAskUseCase{})

	long := strings.Repeat("a", 1001)
	w := postQuestion(r, `{"question":"`+long+`","lat":-1.95,"lng":30.06}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskQuestion_OutOfBounds(t *testing.T) {
	r := setupAskRouter(&stubAskUseCase{})

	w := postQuestion(r, `{"question":"q","lat":0.35,"lng":32.58}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "out_of_bounds", body["error"])
}

func TestAskQuestion_UnsupportedLanguage(t *testing.T) {
	r := setupAskRouter(&stubAskUseCase{})

	w := postQuestion(r, `{"question":"q","lat":-1.95,"lng":30.06,"language":"de"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskQuestion_StoreTimeout(t *testing.T) {
	r := setupAskRouter(&stubAskUseCase{err: model.ErrStoreTimeout})

	w := postQuestion(r, `{"question":"q","lat":-1.95,"lng":30.06}`)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}
