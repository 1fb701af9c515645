package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photocontest-api/internal/api/handler/v1/request"
	"photocontest-api/internal/api/handler/v1/response"
	"photocontest-api/internal/domain"
)

type ContestService interface {
	CreateContest(ctx context.Context, contest domain.Contest, organizerID uint) (domain.Contest, error)
	UpdateContest(ctx context.Context, contestID, userID uint, title, description string, endDate *time.Time) (domain.Contest, error)
	GetContest(ctx context.Context, contestID uint) (domain.Contest, error)
	GetContests(ctx context.Context) ([]domain.Contest, error)
	GetActiveContests(ctx context.Context) ([]domain.Contest, error)
	GetInactiveContests(ctx context.Context) ([]domain.Contest, error)
	GetContestsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Contest, error)
	GetContestsByParticipant(ctx context.Context, userID uint) ([]domain.Contest, error)
	Join(ctx context.Context, contestID, userID uint) error
	Upload(ctx context.Context, contestID, userID uint, uploads []domain.PictureUpload) ([]domain.Picture, error)
	InviteUser(ctx context.Context, contestID, inviterID uint, username string, invType domain.InvitationType) (domain.Invitation, error)
	JoinCommittee(ctx context.Context, contestID, userID uint) error
	AddRewards(ctx context.Context, contestID, organizerID uint, rewards []domain.Reward) ([]domain.Reward, error)
	Finalize(ctx context.Context, contestID, userID uint) ([]domain.ContestWinner, error)
	Dismiss(ctx context.Context, contestID, userID uint) error
	GetContestWinners(ctx context.Context, contestID uint) ([]domain.ContestWinner, error)
}

type ContestHandler struct {
	svc ContestService
}

func NewContestHandler(svc ContestService) *ContestHandler {
	return &ContestHandler{
		svc: svc,
	}
}

// HandleCreateContest godoc
// @Summary      Create a contest
// @Tags         contests
// @Produce      json
// @Param        request   body      request.CreateContestRequest true "request body"
// @Success      201      {object}   domain.Contest
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /contests [post]
func (h *ContestHandler) HandleCreateContest(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req request.CreateContestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	contest := domain.Contest{
		Title:                 req.Title,
		Description:           req.Description,
		ParticipationStrategy: domain.ParticipationStrategyType(req.ParticipationStrategy),
		VotingStrategy:        domain.VotingStrategyType(req.VotingStrategy),
		DeadlineStrategy:      domain.DeadlineStrategyType(req.DeadlineStrategy),
		RewardStrategy:        domain.RewardStrategyType(req.RewardStrategy),
		SubmissionDeadline:    req.SubmissionDeadline,
		ParticipantsLimit:     req.ParticipantsLimit,
		TopNPlaces:            req.TopNPlaces,
	}

	created, err := h.svc.CreateContest(ctx.Request.Context(), contest, userID)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleCreateContest -> h.svc.CreateContest -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateContest godoc
// @Summary      Update contest title, description or end date
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Param        request   body      request.UpdateContestRequest true "request body"
// @Success      200      {object}   domain.Contest
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /contests/{contestID} [put]
func (h *ContestHandler) HandleUpdateContest(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	var req request.UpdateContestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateContest(ctx.Request.Context(), contestID, userID, req.Title, req.Description, req.EndDate)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleUpdateContest -> h.svc.UpdateContest -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetContest godoc
// @Summary      Get a contest by ID
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Success      200      {object}   domain.Contest
// @Failure      404      {object}   response.Err
// @Router       /contests/{contestID} [get]
func (h *ContestHandler) HandleGetContest(ctx *gin.Context) {
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	contest, err := h.svc.GetContest(ctx.Request.Context(), contestID)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleGetContest -> h.svc.GetContest -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, contest)
}

// HandleGetContests godoc
// @Summary      List contests
// @Description  The filter query narrows the listing to active, inactive, organized or participating contests.
// @Tags         contests
// @Produce      json
// @Param        filter    query      string false "one of: active, inactive, organized, participating"
// @Success      200      {array}    domain.Contest
// @Failure      400      {object}   response.Err
// @Router       /contests [get]
func (h *ContestHandler) HandleGetContests(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var (
		contests []domain.Contest
		err      error
	)

	switch filter := ctx.Query("filter"); filter {
	case "":
		contests, err = h.svc.GetContests(ctx.Request.Context())
	case "active":
		contests, err = h.svc.GetActiveContests(ctx.Request.Context())
	case "inactive":
		contests, err = h.svc.GetInactiveContests(ctx.Request.Context())
	case "organized":
		contests, err = h.svc.GetContestsByOrganizer(ctx.Request.Context(), userID)
	case "participating":
		contests, err = h.svc.GetContestsByParticipant(ctx.Request.Context(), userID)
	default:
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unknown filter %q", filter)))
		return
	}
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleGetContests -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, contests)
}

// HandleJoinContest godoc
// @Summary      Join a contest as participant
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Success      200      {object}   gin.H
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /contests/{contestID}/join [post]
func (h *ContestHandler) HandleJoinContest(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	if err := h.svc.Join(ctx.Request.Context(), contestID, userID); err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleJoinContest -> h.svc.Join -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "you have joined the contest"})
}

// HandleUploadPictures godoc
// @Summary      Upload pictures to a contest
// @Tags         contests
// @Accept       multipart/form-data
// @Produce      json
// @Param        contestID path       int  true "contest ID"
// @Param        pictures  formData   file true "picture files"
// @Success      201      {array}    domain.Picture
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /contests/{contestID}/pictures [post]
func (h *ContestHandler) HandleUploadPictures(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	uploads, err := readUploads(form.File["pictures"])
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	pictures, err := h.svc.Upload(ctx.Request.Context(), contestID, userID, uploads)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleUploadPictures -> h.svc.Upload -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, pictures)
}

// HandleInviteUser godoc
// @Summary      Invite a user to the committee or to a closed contest
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Param        request   body      request.InviteUserRequest true "request body"
// @Success      201      {object}   domain.Invitation
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /contests/{contestID}/invitations [post]
func (h *ContestHandler) HandleInviteUser(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	var req request.InviteUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invitation, err := h.svc.InviteUser(ctx.Request.Context(), contestID, userID, req.Username, domain.InvitationType(req.Type))
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleInviteUser -> h.svc.InviteUser -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, invitation)
}

// HandleJoinCommittee godoc
// @Summary      Accept a committee invitation
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Success      200      {object}   gin.H
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /contests/{contestID}/committee/join [post]
func (h *ContestHandler) HandleJoinCommittee(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	if err := h.svc.JoinCommittee(ctx.Request.Context(), contestID, userID); err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleJoinCommittee -> h.svc.JoinCommittee -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "you have joined the committee"})
}

// HandleAddRewards godoc
// @Summary      Add reward templates to a contest
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Param        request   body      request.AddRewardsRequest true "request body"
// @Success      201      {array}    domain.Reward
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Router       /contests/{contestID}/rewards [post]
func (h *ContestHandler) HandleAddRewards(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	var req request.AddRewardsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rewards := make([]domain.Reward, len(req.Rewards))
	for i, r := range req.Rewards {
		rewards[i] = domain.Reward{
			Name:        r.Name,
			Description: r.Description,
			Place:       r.Place,
			ImageURL:    r.ImageURL,
		}
	}

	created, err := h.svc.AddRewards(ctx.Request.Context(), contestID, userID, rewards)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleAddRewards -> h.svc.AddRewards -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleFinalizeContest godoc
// @Summary      Finalize a contest and compute the winners
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Success      200      {array}    domain.ContestWinner
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /contests/{contestID}/finalize [post]
func (h *ContestHandler) HandleFinalizeContest(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	winners, err := h.svc.Finalize(ctx.Request.Context(), contestID, userID)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleFinalizeContest -> h.svc.Finalize -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, winners)
}

// HandleDismissContest godoc
// @Summary      Dismiss a contest without rewards
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Success      200      {object}   gin.H
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /contests/{contestID}/dismiss [post]
func (h *ContestHandler) HandleDismissContest(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	if err := h.svc.Dismiss(ctx.Request.Context(), contestID, userID); err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleDismissContest -> h.svc.Dismiss -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "the contest has been dismissed"})
}

// HandleGetContestWinners godoc
// @Summary      Get the winners of a finalized contest
// @Tags         contests
// @Produce      json
// @Param        contestID path       int true "contest ID"
// @Success      200      {array}    domain.ContestWinner
// @Failure      404      {object}   response.Err
// @Router       /contests/{contestID}/winners [get]
func (h *ContestHandler) HandleGetContestWinners(ctx *gin.Context) {
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	winners, err := h.svc.GetContestWinners(ctx.Request.Context(), contestID)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleGetContestWinners -> h.svc.GetContestWinners -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, winners)
}
