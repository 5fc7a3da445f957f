package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
	"github.com/vinhph2/quizhub-api/internal/service"
)

type QuizHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockQuizService
	handler     *QuizHandler
}

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) Submit(ctx context.Context, tenantName string, req dto.QuizSubmissionRequest) (dto.QuizResultResponse, error) {
	args := m.Called(ctx, tenantName, req)
	return args.Get(0).(dto.QuizResultResponse), args.Error(1)
}

func (s *QuizHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockQuizService)
	s.handler = NewQuizHandler(s.mockService)

	// Setup routes
	s.router.POST("/:tenant/student/submit", s.handler.Submit)
}

func TestQuizHandler(t *testing.T) {
	suite.Run(t, new(QuizHandlerTestSuite))
}

func (s *QuizHandlerTestSuite) submit(tenant string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/"+tenant+"/student/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *QuizHandlerTestSuite) TestSubmit_Success() {
	// Arrange
	req := dto.QuizSubmissionRequest{Username: "alice", Answers: []bool{true, false, false}}
	expectedResponse := dto.QuizResultResponse{
		Message:  "You scored 2/3",
		Username: "alice",
		Score:    2,
		Total:    3,
	}
	s.mockService.On("Submit", mock.Anything, "acme", req).Return(expectedResponse, nil)

	// Act
	w := s.submit("acme", req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.QuizResultResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expectedResponse, response)
	s.mockService.AssertExpectations(s.T())
}

func (s *QuizHandlerTestSuite) TestSubmit_NoQuestions() {
	// Arrange
	req := dto.QuizSubmissionRequest{Username: "alice", Answers: []bool{true}}
	s.mockService.On("Submit", mock.Anything, "acme", req).
		Return(dto.QuizResultResponse{}, service.ErrNoQuestions)

	// Act
	w := s.submit("acme", req)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("No questions found for this tenant", response.Detail)
}

func (s *QuizHandlerTestSuite) TestSubmit_UserNotFound() {
	// Arrange
	req := dto.QuizSubmissionRequest{Username: "ghost", Answers: []bool{true}}
	s.mockService.On("Submit", mock.Anything, "acme", req).
		Return(dto.QuizResultResponse{}, service.ErrUserNotFound)

	// Act
	w := s.submit("acme", req)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("User not found", response.Detail)
}

func (s *QuizHandlerTestSuite) TestSubmit_MissingUsername() {
	// Act
	w := s.submit("acme", map[string]any{"answers": []bool{true}})

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything, mock.Anything)
}
