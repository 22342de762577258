package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/entity"
	"github.com/wis-software/huntflow-reloaded-bot/internal/handlers/test"
	"github.com/wis-software/huntflow-reloaded-bot/internal/huntflow"
)

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	return response
}

func TestSlackHandler_HandleSlashCommand_Interviews(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should list candidates with scheduled interviews",
			text: "interviews",
			buildMocks: func(m test.ServiceMocks) {
				candidates := []entity.Candidate{
					{FirstName: "Ivan", LastName: "Petrov"},
					{FirstName: "Anna", LastName: "Smirnova"},
				}
				m.HuntflowServiceMock.EXPECT().
					Candidates(gomock.Any()).
					Return(candidates, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "1. Ivan Petrov")
				assert.Contains(t, response.Text, "2. Anna Smirnova")
			},
		},
		{
			name: "Should report when there are no scheduled interviews",
			text: "interviews",
			buildMocks: func(m test.ServiceMocks) {
				m.HuntflowServiceMock.EXPECT().
					Candidates(gomock.Any()).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				response := decodeResponse(t, resp)
				assert.Equal(t, "There are no scheduled interviews.", response.Text)
			},
		},
		{
			name: "Should translate server error codes",
			text: "list",
			buildMocks: func(m test.ServiceMocks) {
				backendErr := &huntflow.BackendError{
					Status: http.StatusBadRequest,
					Code:   "invalid_auth_creds",
					Detail: "Incorrect email or password",
				}
				m.HuntflowServiceMock.EXPECT().
					Candidates(gomock.Any()).
					Return(nil, backendErr).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Authorization failed. Check the service account credentials.")
			},
		},
		{
			name: "Should fall back to a generic message for unknown codes",
			text: "interviews",
			buildMocks: func(m test.ServiceMocks) {
				backendErr := &huntflow.BackendError{Status: http.StatusBadRequest, Code: "wonder_code"}
				m.HuntflowServiceMock.EXPECT().
					Candidates(gomock.Any()).
					Return(nil, backendErr).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Unknown error. Please try again.")
			},
		},
		{
			name: "Should use the retry message for non-backend failures",
			text: "interviews",
			buildMocks: func(m test.ServiceMocks) {
				m.HuntflowServiceMock.EXPECT().
					Candidates(gomock.Any()).
					Return(nil, errors.New("connection refused")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Something went wrong. Please try again.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/huntflow", tt.text, "C123456789", "hr-channel", "U987654321", "T123456789", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Delete(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		channelID     string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name:      "Should delete interview and announce in the reminder channel",
			text:      "delete Ivan Petrov",
			channelID: "C123456789",
			buildMocks: func(m test.ServiceMocks) {
				m.HuntflowServiceMock.EXPECT().
					DeleteInterview(gomock.Any(), entity.Candidate{FirstName: "Ivan", LastName: "Petrov"}).
					Return(nil).Times(1)

				m.SlackClientMock.EXPECT().
					PostMessage(test.ReminderChannel, gomock.Any()).
					Return("", "", nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "The interview has been deleted.")
			},
		},
		{
			name:      "Should not announce when deleted from the reminder channel itself",
			text:      "delete Ivan Petrov",
			channelID: test.ReminderChannel,
			buildMocks: func(m test.ServiceMocks) {
				m.HuntflowServiceMock.EXPECT().
					DeleteInterview(gomock.Any(), entity.Candidate{FirstName: "Ivan", LastName: "Petrov"}).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "The interview has been deleted.")
			},
		},
		{
			name:       "Should require the candidate's full name",
			text:       "delete Ivan",
			channelID:  "C123456789",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "full name")
			},
		},
		{
			name:      "Should report a missing candidate",
			text:      "delete Ivan Petrov",
			channelID: "C123456789",
			buildMocks: func(m test.ServiceMocks) {
				backendErr := &huntflow.BackendError{
					Status: http.StatusBadRequest,
					Code:   "no_candidate",
					Detail: "There is no candidate with such name",
				}
				m.HuntflowServiceMock.EXPECT().
					DeleteInterview(gomock.Any(), gomock.Any()).
					Return(backendErr).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "There is no such candidate.")
			},
		},
		{
			name:      "Should report a candidate without interviews",
			text:      "delete Ivan Petrov",
			channelID: "C123456789",
			buildMocks: func(m test.ServiceMocks) {
				backendErr := &huntflow.BackendError{
					Status: http.StatusBadRequest,
					Code:   "no_interview",
					Detail: "Candidate does not have non-expired interviews",
				}
				m.HuntflowServiceMock.EXPECT().
					DeleteInterview(gomock.Any(), gomock.Any()).
					Return(backendErr).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "The candidate does not have a non-expired interview.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/huntflow", tt.text, tt.channelID, "hr-channel", "U987654321", "T123456789", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Fwd(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should list people with upcoming start dates",
			text: "fwd",
			buildMocks: func(m test.ServiceMocks) {
				users := []entity.Candidate{
					{FirstName: "Ivan", LastName: "Petrov"},
				}
				m.HuntflowServiceMock.EXPECT().
					UpcomingStarters(gomock.Any()).
					Return(users, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "1. Ivan Petrov")
			},
		},
		{
			name: "Should report when nobody is starting soon",
			text: "fwd",
			buildMocks: func(m test.ServiceMocks) {
				m.HuntflowServiceMock.EXPECT().
					UpcomingStarters(gomock.Any()).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, "Nobody has an upcoming start date.", response.Text)
			},
		},
		{
			name: "Should show the candidate's start date",
			text: "fwd Ivan Petrov",
			buildMocks: func(m test.ServiceMocks) {
				record := &entity.FwdCandidate{
					Candidate: entity.Candidate{FirstName: "Ivan", LastName: "Petrov"},
					Fwd:       "2026-09-14",
				}
				m.HuntflowServiceMock.EXPECT().
					StartDate(gomock.Any(), entity.Candidate{FirstName: "Ivan", LastName: "Petrov"}).
					Return(record, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Equal(t, "Ivan Petrov starts work on 14.09.", response.Text)
			},
		},
		{
			name:       "Should require the candidate's full name",
			text:       "fwd Ivan",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "full name")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/huntflow", tt.text, "C123456789", "hr-channel", "U987654321", "T123456789", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/huntflow", "reschedule Ivan Petrov", "C123456789", "hr-channel", "U987654321", "T123456789", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "unknown command: reschedule")
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/huntflow", "", "C123456789", "hr-channel", "U987654321", "T123456789", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "Available commands")
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/huntflow", "interviews", "C123456789", "hr-channel", "U987654321", "T123456789", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}
