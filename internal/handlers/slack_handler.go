package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/wis-software/huntflow-reloaded-bot/internal/domain"
	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/contract"
	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/entity"
	"github.com/wis-software/huntflow-reloaded-bot/internal/huntflow"
	slackcmd "github.com/wis-software/huntflow-reloaded-bot/internal/slack"
)

const fwdDateLayout = "2006-01-02"

type SlackHandler struct {
	slackClient     contract.SlackClient
	huntflowService contract.HuntflowService
	signingSecret   string
	reminderChannel string
}

func New(slackClient contract.SlackClient, huntflowService contract.HuntflowService, signingSecret, reminderChannel string) *SlackHandler {
	return &SlackHandler{
		slackClient:     slackClient,
		huntflowService: huntflowService,
		signingSecret:   signingSecret,
		reminderChannel: reminderChannel,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdInterviews:
		return h.handleInterviews(ctx)
	case slackcmd.CmdDelete:
		return h.handleDelete(ctx, cmd, slashCmd)
	case slackcmd.CmdFwd:
		if len(cmd.Args) == 0 {
			return h.handleFwdList(ctx)
		}
		return h.handleFwdUser(ctx, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleInterviews(ctx context.Context) *slack.Msg {
	candidates, err := h.huntflowService.Candidates(ctx)
	if err != nil {
		return h.serverErrorResponse(err)
	}

	if len(candidates) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         domain.MsgNoScheduledInterviews,
		}
	}

	var list strings.Builder
	list.WriteString("*Candidates with scheduled interviews:*\n")
	for i, candidate := range candidates {
		list.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, candidate.FirstName, candidate.LastName))
	}
	list.WriteString("\nUse `/huntflow delete FirstName LastName` to remove an interview.")

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleDelete(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Please provide the candidate's full name: `/huntflow delete FirstName LastName`")
	}

	candidate := entity.Candidate{
		FirstName: cmd.Args[0],
		LastName:  cmd.Args[1],
	}

	if err := h.huntflowService.DeleteInterview(ctx, candidate); err != nil {
		return h.serverErrorResponse(err)
	}

	// Announce the deletion in the reminder channel when the command was
	// issued somewhere else.
	if h.reminderChannel != "" && slashCmd.ChannelID != h.reminderChannel {
		announcement := fmt.Sprintf("The interview of %s %s was deleted by <@%s>",
			candidate.FirstName, candidate.LastName, slashCmd.UserID)
		if _, _, err := h.slackClient.PostMessage(h.reminderChannel, slack.MsgOptionText(announcement, false)); err != nil {
			log.Printf("ERROR: could not announce the deletion: %v", err)
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s", domain.MsgInterviewDeleted),
	}
}

func (h *SlackHandler) handleFwdList(ctx context.Context) *slack.Msg {
	users, err := h.huntflowService.UpcomingStarters(ctx)
	if err != nil {
		return h.serverErrorResponse(err)
	}

	if len(users) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         domain.MsgNoUpcomingStarters,
		}
	}

	var list strings.Builder
	list.WriteString("*People with an upcoming start date:*\n")
	for i, user := range users {
		list.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, user.FirstName, user.LastName))
	}
	list.WriteString("\nUse `/huntflow fwd FirstName LastName` to see the date.")

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleFwdUser(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Please provide the candidate's full name: `/huntflow fwd FirstName LastName`")
	}

	candidate := entity.Candidate{
		FirstName: cmd.Args[0],
		LastName:  cmd.Args[1],
	}

	record, err := h.huntflowService.StartDate(ctx, candidate)
	if err != nil {
		return h.serverErrorResponse(err)
	}

	date, err := time.Parse(fwdDateLayout, record.Fwd)
	if err != nil {
		log.Printf("ERROR: could not parse start date %q: %v", record.Fwd, err)
		return h.createErrorResponse(domain.MsgErrorTryAgain)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("%s %s starts work on %s.", record.FirstName, record.LastName, date.Format("02.01")),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serverErrorResponse maps a management-server error to user-facing text.
// 400 responses carry a server error code with a localized message; anything
// else gets a generic retry message. Either way the error is logged.
func (h *SlackHandler) serverErrorResponse(err error) *slack.Msg {
	log.Printf("ERROR: huntflow request failed: %v", err)

	var backendErr *huntflow.BackendError
	if errors.As(err, &backendErr) && backendErr.Status == http.StatusBadRequest {
		return h.createErrorResponse(domain.ServerErrorMessage(backendErr.Code))
	}

	return h.createErrorResponse(domain.MsgErrorTryAgain)
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
