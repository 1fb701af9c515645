package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"photocontest-api/internal/api/handler/v1/response"
	"photocontest-api/internal/domain"
)

type InvitationService interface {
	GetUserInvitations(ctx context.Context, userID uint) ([]domain.Invitation, error)
	DeclineInvitation(ctx context.Context, invitationID, userID uint) error
}

type InvitationHandler struct {
	svc InvitationService
}

func NewInvitationHandler(svc InvitationService) *InvitationHandler {
	return &InvitationHandler{
		svc: svc,
	}
}

// HandleGetMyInvitations godoc
// @Summary      List the authenticated user's invitations
// @Tags         invitations
// @Produce      json
// @Success      200      {array}    domain.Invitation
// @Failure      401      {object}   response.Err
// @Router       /invitations [get]
func (h *InvitationHandler) HandleGetMyInvitations(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	invitations, err := h.svc.GetUserInvitations(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleGetMyInvitations -> h.svc.GetUserInvitations -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, invitations)
}

// HandleDeclineInvitation godoc
// @Summary      Decline an invitation
// @Tags         invitations
// @Produce      json
// @Param        invitationID path    int true "invitation ID"
// @Success      200      {object}   gin.H
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /invitations/{invitationID}/decline [post]
func (h *InvitationHandler) HandleDeclineInvitation(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	invitationID, ok := parseIDParam(ctx, "invitationID")
	if !ok {
		return
	}

	if err := h.svc.DeclineInvitation(ctx.Request.Context(), invitationID, userID); err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleDeclineInvitation -> h.svc.DeclineInvitation -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "the invitation has been declined"})
}
